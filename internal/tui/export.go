package tui

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/ldstools/ldsview/internal/lds"
)

// exportCmd writes the scan to a CSV file in the configured export
// directory. The uuid suffix keeps filenames unique across sessions.
func (a *App) exportCmd(scan lds.Scan, index int) tea.Cmd {
	dir := a.cfg.Export.Dir
	return func() tea.Msg {
		name := fmt.Sprintf("scan%03d-%s.csv", index+1, uuid.NewString()[:8])
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return errMsg{fmt.Errorf("export: %w", err)}
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write([]string{"angle", "distance_mm", "intensity", "error_code"}); err != nil {
			return errMsg{fmt.Errorf("export: %w", err)}
		}
		for _, r := range scan.Readings() {
			row := []string{
				strconv.Itoa(r.Angle),
				strconv.Itoa(r.DistanceMM),
				strconv.Itoa(r.Intensity),
				strconv.Itoa(r.ErrorCode),
			}
			if err := w.Write(row); err != nil {
				return errMsg{fmt.Errorf("export: %w", err)}
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return errMsg{fmt.Errorf("export: %w", err)}
		}
		return statusMsg("exported " + path)
	}
}
