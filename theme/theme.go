package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds the widget's color palette. Colors are lipgloss color
// strings: ANSI 256 indexes like "99" or hex values like "#ff00ff".
type Theme struct {
	TitleColor     string `toml:"title_color"`
	CursorBg       string `toml:"cursor_bg"`
	SelectedFg     string `toml:"selected_fg"`
	IndicatorColor string `toml:"indicator_color"`
	HelpColor      string `toml:"help_color"`
}

// Default returns the built-in palette.
func Default() *Theme {
	return &Theme{
		TitleColor:     "99",
		CursorBg:       "238",
		SelectedFg:     "78",
		IndicatorColor: "214",
		HelpColor:      "241",
	}
}

// Load reads a theme from a TOML file. A missing file yields the default
// palette; keys absent from the file keep their defaults.
func Load(path string) (*Theme, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	t := Default()
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	return t, nil
}

// Save writes the theme to a TOML file.
func Save(t *Theme, path string) error {
	data, err := toml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}

	return nil
}
