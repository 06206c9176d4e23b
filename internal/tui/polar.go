package tui

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldstools/ldsview/internal/lds"
)

const (
	markerRune = '•'
	robotRune  = '+'
)

// PolarPlot draws one scan as a top-down point cloud, robot at the origin
// facing +X. RangeM is held fixed across frames so stepping through scans
// doesn't rescale the world.
type PolarPlot struct {
	Width, Height   int
	RangeM          float64
	MaxRangeMM      int
	IntensityColors bool
	Theme           Theme
}

func (p PolarPlot) Render(scan lds.Scan) string {
	if p.Width < 8 || p.Height < 4 {
		return ""
	}
	yr := p.RangeM
	if yr <= 0 {
		yr = 1
	}
	// Terminal cells are roughly twice as tall as wide; widen the X range
	// so the point cloud keeps a square aspect.
	xr := yr * float64(p.Width) / (2 * float64(p.Height))
	if xr < yr {
		xr = yr
	}

	chart := linechart.New(p.Width, p.Height, -xr, xr, -yr, yr)
	chart.AxisStyle = lipgloss.NewStyle().Foreground(p.Theme.Axis)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(p.Theme.Label)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.DrawXYAxisAndLabel()

	maxIntensity := scan.MaxIntensity()
	readings := scan.Readings()
	for i, pt := range scan.Points(p.MaxRangeMM) {
		if pt.X == 0 && pt.Y == 0 {
			continue // no return at this angle
		}
		cpt, ok := p.cell(&chart, pt.X, pt.Y)
		if !ok {
			continue
		}
		chart.Canvas.SetRuneWithStyle(cpt, markerRune, p.markerStyle(readings[i].Intensity, maxIntensity))
	}

	if cpt, ok := p.cell(&chart, 0, 0); ok {
		chart.Canvas.SetRuneWithStyle(cpt, robotRune, lipgloss.NewStyle().Foreground(p.Theme.Status))
	}
	return chart.View()
}

// cell maps a world coordinate in meters to a canvas cell, skipping points
// that land outside the drawable area.
func (p PolarPlot) cell(chart *linechart.Model, x, y float64) (canvas.Point, bool) {
	scaled := chart.ScaleFloat64Point(canvas.Float64Point{X: x, Y: y})
	cpt := canvas.CanvasPointFromFloat64Point(chart.Origin(), scaled)
	// Account for the axis label row and column.
	if chart.YStep() > 0 {
		cpt.X++
	}
	if chart.XStep() > 0 {
		cpt.Y--
	}
	if cpt.X < 0 || cpt.X >= chart.Width() || cpt.Y < 0 || cpt.Y >= chart.Canvas.Height() {
		return canvas.Point{}, false
	}
	return cpt, true
}

func (p PolarPlot) markerStyle(intensity, maxIntensity int) lipgloss.Style {
	if !p.IntensityColors || maxIntensity == 0 {
		return lipgloss.NewStyle().Foreground(p.Theme.Marker)
	}
	// Relative thirds of the scan's strongest return.
	switch {
	case intensity*3 <= maxIntensity:
		return lipgloss.NewStyle().Foreground(p.Theme.MarkerLow)
	case intensity*3 <= 2*maxIntensity:
		return lipgloss.NewStyle().Foreground(p.Theme.MarkerMid)
	default:
		return lipgloss.NewStyle().Foreground(p.Theme.MarkerHigh)
	}
}
