package tui

// Color constants for the deepwork theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Titles, active menu items
	ColorSecondaryText = "#B1B8C7" // Subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled menu items
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Logo, accent elements, active borders
	ColorAccentBright = "#A78BFA" // Clock, highlights

	// State Colors
	ColorError   = "#EF4444" // Alerts
	ColorSuccess = "#22C55E" // Notifications
	ColorWarning = "#F59E0B" // Paused clock
)
