package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const displayFile = "display.json"

// Display holds view preferences the user changes at runtime. Parsed scan
// data itself is never persisted.
type Display struct {
	IntensityColors bool `json:"intensity_colors"`
}

func displayPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "ldsview")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, displayFile), nil
}

func SaveDisplay(d Display) error {
	path, err := displayPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func LoadDisplay() (*Display, error) {
	path, err := displayPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var d Display
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
