package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/balkashynov/deepwork/internal/stats"
	"github.com/balkashynov/deepwork/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show daily, weekly and lifetime totals",
	Long: `Show how much time went into each category today, over the last seven
days and overall.

Examples:
  deepwork stats
  deepwork stats --table`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := current.ctrl.Statistics()
		asTable, _ := cmd.Flags().GetBool("table")
		if asTable {
			fmt.Fprintln(cmd.OutOrStdout(), renderStatsTable(st))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), st.String())
		return nil
	},
}

// renderStatsTable lays the statistics out with one row per category and a
// total row at the bottom.
func renderStatsTable(st stats.Statistics) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tui.ColorAccentBright)).
		Bold(true).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tui.ColorPrimaryText)).
		Padding(0, 1)
	totalStyle := cellStyle.Bold(true)

	rows := make([][]string, 0, len(st.Categories)+1)
	for _, c := range st.Categories {
		rows = append(rows, totalsRow(c.Name, c.Totals))
	}
	rows = append(rows, totalsRow("Total", st.Overall))
	last := len(rows)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorBorder))).
		Headers("Category", "Today", "This week", "Lifetime").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == last-1:
				return totalStyle
			default:
				return cellStyle
			}
		})

	title := fmt.Sprintf("Statistics for %s", st.Now.Format(time.DateOnly))
	out := title + "\n" + t.Render()
	if st.Skipped > 0 {
		out += fmt.Sprintf("\n%d entries skipped (unreadable date)", st.Skipped)
	}
	return out
}

func totalsRow(name string, t stats.Totals) []string {
	return []string{
		name,
		stats.FormatMinutes(t.Daily),
		stats.FormatMinutes(t.Weekly),
		stats.FormatMinutes(t.Lifetime),
	}
}

func init() {
	statsCmd.Flags().Bool("table", false, "render as a table")
}
