package tui

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
)

// Theme is the viewer's color palette. The marker colors follow the
// original plotter's blue/red/green intensity colormap.
type Theme struct {
	Title      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Axis       lipgloss.Color
	Label      lipgloss.Color
	Status     lipgloss.Color
	Error      lipgloss.Color
	Marker     lipgloss.Color
	MarkerLow  lipgloss.Color
	MarkerMid  lipgloss.Color
	MarkerHigh lipgloss.Color
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Title:      colorLavender,
		Text:       colorText,
		Muted:      colorOverlay1,
		Axis:       colorSurface2,
		Label:      colorSubtext0,
		Status:     colorPeach,
		Error:      colorRed,
		Marker:     colorPeach,
		MarkerLow:  colorBlue,
		MarkerMid:  colorRed,
		MarkerHigh: colorGreen,
	}
}

// themeFile mirrors Theme with hex strings, for the user override file.
type themeFile struct {
	Title      string `toml:"title"`
	Text       string `toml:"text"`
	Muted      string `toml:"muted"`
	Axis       string `toml:"axis"`
	Label      string `toml:"label"`
	Status     string `toml:"status"`
	Error      string `toml:"error"`
	Marker     string `toml:"marker"`
	MarkerLow  string `toml:"marker_low"`
	MarkerMid  string `toml:"marker_mid"`
	MarkerHigh string `toml:"marker_high"`
}

// LoadTheme reads a TOML palette override, keeping defaults for any color
// the file leaves out.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	var f themeFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return t, fmt.Errorf("theme file: %w", err)
	}
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&t.Title, f.Title)
	set(&t.Text, f.Text)
	set(&t.Muted, f.Muted)
	set(&t.Axis, f.Axis)
	set(&t.Label, f.Label)
	set(&t.Status, f.Status)
	set(&t.Error, f.Error)
	set(&t.Marker, f.Marker)
	set(&t.MarkerLow, f.MarkerLow)
	set(&t.MarkerMid, f.MarkerMid)
	set(&t.MarkerHigh, f.MarkerHigh)
	return t, nil
}
