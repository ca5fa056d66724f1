// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme. Values are hex strings.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // base background
	BgClosed    string `toml:"bg_closed"`    // out-of-hours slots
	BgSelection string `toml:"bg_selection"` // cursor, selection
	Fg          string `toml:"fg"`           // primary foreground
	FgMuted     string `toml:"fg_muted"`     // ruler, closed slots
	Accent      string `toml:"accent"`       // borders, headers
	NowLine     string `toml:"now_line"`     // current-time marker
	Warning     string `toml:"warning"`      // drag mode, destructive prompts

	// Appointment type colors.
	FirstVisit string `toml:"first_visit"`
	FollowUp   string `toml:"follow_up"`
	Procedure  string `toml:"procedure"`
	Emergency  string `toml:"emergency"`

	// Status accents layered over the type color.
	Cancelled string `toml:"cancelled"`
	NoShow    string `toml:"no_show"`
}

// Load loads a theme by name from the embedded files. Unknown names
// fall back to mocha.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	return &t, nil
}

// Available returns the embedded theme names.
func Available() []string {
	return []string{"mocha", "latte"}
}

// IsAvailable reports whether a theme name is embedded.
func IsAvailable(name string) bool {
	for _, n := range Available() {
		if n == strings.ToLower(name) {
			return true
		}
	}
	return false
}
