package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLoadThemePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	data := []byte(`
marker = "#ffffff"
marker_low = "#000011"
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.Marker != lipgloss.Color("#ffffff") {
		t.Errorf("marker = %v", theme.Marker)
	}
	if theme.MarkerLow != lipgloss.Color("#000011") {
		t.Errorf("marker_low = %v", theme.MarkerLow)
	}
	// untouched colors keep their defaults
	if theme.Axis != DefaultTheme().Axis {
		t.Errorf("axis = %v, want default", theme.Axis)
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing theme file")
	}
}
