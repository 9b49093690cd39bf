package login

import (
	"encoding/xml"
	"os"
	"strings"
	"testing"
)

func TestSetRegistered(t *testing.T) {
	for _, goos := range []string{"darwin", "linux"} {
		a := &Autostart{Home: t.TempDir(), Executable: "/usr/local/bin/deepwork", GOOS: goos}

		if err := a.SetRegistered(true); err != nil {
			t.Fatalf("%s: SetRegistered(true): %v", goos, err)
		}
		if !a.Registered() {
			t.Fatalf("%s: not registered after enable", goos)
		}
		data, err := os.ReadFile(a.Path())
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "/usr/local/bin/deepwork") {
			t.Errorf("%s: login item does not reference executable:\n%s", goos, data)
		}

		if err := a.SetRegistered(false); err != nil {
			t.Fatalf("%s: SetRegistered(false): %v", goos, err)
		}
		if a.Registered() {
			t.Errorf("%s: still registered after disable", goos)
		}
		// second removal is fine
		if err := a.SetRegistered(false); err != nil {
			t.Errorf("%s: removing twice: %v", goos, err)
		}
	}
}

func TestPath(t *testing.T) {
	mac := &Autostart{Home: "/home/u", GOOS: "darwin"}
	if !strings.HasSuffix(mac.Path(), "Library/LaunchAgents/com.deepwork.timer.plist") {
		t.Errorf("darwin path = %s", mac.Path())
	}
	linux := &Autostart{Home: "/home/u", GOOS: "linux"}
	if !strings.HasSuffix(linux.Path(), ".config/autostart/deepwork.desktop") {
		t.Errorf("linux path = %s", linux.Path())
	}
}

func TestLaunchAgentEscapesExecutable(t *testing.T) {
	exe := "/Users/me/R&D <tools>/deepwork"
	a := &Autostart{Home: t.TempDir(), Executable: exe, GOOS: "darwin"}
	if err := a.SetRegistered(true); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(a.Path())
	if err != nil {
		t.Fatal(err)
	}

	// the plist must stay well formed and carry the path unchanged
	var plist struct {
		Dict struct {
			Strings []string `xml:"string"`
			Arrays  []struct {
				Strings []string `xml:"string"`
			} `xml:"array"`
		} `xml:"dict"`
	}
	if err := xml.Unmarshal(data, &plist); err != nil {
		t.Fatalf("invalid plist: %v\n%s", err, data)
	}
	if len(plist.Dict.Arrays) != 1 || len(plist.Dict.Arrays[0].Strings) != 1 || plist.Dict.Arrays[0].Strings[0] != exe {
		t.Errorf("ProgramArguments = %+v, want [%s]", plist.Dict.Arrays, exe)
	}
}
