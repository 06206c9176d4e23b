// Package tui renders parsed LDS scans as navigable polar plot frames.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ldstools/ldsview/internal/config"
	"github.com/ldstools/ldsview/internal/navigator"
	"github.com/ldstools/ldsview/internal/prefs"
)

// axisMargin widens the fixed world range a little past the furthest return.
const axisMargin = 0.1

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	First     key.Binding
	Last      key.Binding
	Jump      key.Binding
	Intensity key.Binding
	Export    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d", "next")),
		Prev:      key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a", "prev")),
		First:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Last:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		Jump:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "go to")),
		Intensity: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "intensity")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// App is the viewer's Bubble Tea model. Navigation state lives in the
// navigator; the app only holds presentation state.
type App struct {
	cfg       config.Config
	nav       *navigator.Navigator
	theme     Theme
	keys      keyMap
	source    string
	bound     float64 // fixed world half-extent in meters
	width     int
	height    int
	intensity bool
	status    string
	statusErr bool
	jumping   bool
	jumpInput textinput.Model
}

type statusMsg string

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// New builds the app over an already-constructed navigator. The world range
// is derived once from the full sequence so every frame shares axes.
func New(cfg config.Config, nav *navigator.Navigator, source string) *App {
	theme := DefaultTheme()
	status := ""
	if cfg.UI.ThemeFile != "" {
		t, err := LoadTheme(cfg.UI.ThemeFile)
		if err != nil {
			status = "theme: " + err.Error()
		}
		theme = t
	}

	intensity := cfg.Plot.IntensityColors
	if d, err := prefs.LoadDisplay(); err == nil && d != nil {
		intensity = d.IntensityColors
	}

	ti := textinput.New()
	ti.Prompt = "go to scan: "
	ti.Placeholder = "1"
	ti.CharLimit = 6

	return &App{
		cfg:       cfg,
		nav:       nav,
		theme:     theme,
		keys:      defaultKeyMap(),
		source:    source,
		bound:     nav.Sequence().Bound(cfg.Plot.MaxRangeMM) + axisMargin,
		intensity: intensity,
		status:    status,
		jumpInput: ti,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case tea.KeyMsg:
		if a.jumping {
			return a.handleJumpKey(m)
		}
		return a.handleKey(m)
	case statusMsg:
		a.status = string(m)
		a.statusErr = false
	case errMsg:
		a.status = "error: " + m.Error()
		a.statusErr = true
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Next):
		a.nav.Advance()
		a.status = ""
	case key.Matches(m, a.keys.Prev):
		a.nav.Retreat()
		a.status = ""
	case key.Matches(m, a.keys.First):
		a.nav.Jump(0)
		a.status = ""
	case key.Matches(m, a.keys.Last):
		a.nav.Jump(a.nav.Len() - 1)
		a.status = ""
	case key.Matches(m, a.keys.Jump):
		a.jumping = true
		a.jumpInput.SetValue("")
		return a, a.jumpInput.Focus()
	case key.Matches(m, a.keys.Intensity):
		a.intensity = !a.intensity
		return a, a.saveDisplayCmd()
	case key.Matches(m, a.keys.Export):
		return a, a.exportCmd(a.nav.Current(), a.nav.Index())
	}
	return a, nil
}

func (a *App) handleJumpKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.jumping = false
		a.jumpInput.Blur()
		return a, nil
	case tea.KeyEnter:
		a.jumping = false
		a.jumpInput.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(a.jumpInput.Value()))
		if err != nil {
			a.status = "enter a scan number"
			a.statusErr = true
			return a, nil
		}
		a.nav.Jump(n - 1) // 1-based on screen
		a.status = ""
		return a, nil
	}
	var cmd tea.Cmd
	a.jumpInput, cmd = a.jumpInput.Update(m)
	return a, cmd
}

func (a *App) saveDisplayCmd() tea.Cmd {
	intensity := a.intensity
	return func() tea.Msg {
		if err := prefs.SaveDisplay(prefs.Display{IntensityColors: intensity}); err != nil {
			return errMsg{err}
		}
		if intensity {
			return statusMsg("intensity colors on")
		}
		return statusMsg("intensity colors off")
	}
}

func (a *App) View() string {
	cur := a.nav.Current()

	titleStyle := lipgloss.NewStyle().Foreground(a.theme.Title).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(a.theme.Text)
	mutedStyle := lipgloss.NewStyle().Foreground(a.theme.Muted)

	header := titleStyle.Render("ldsview") + "  " +
		textStyle.Render(fmt.Sprintf("Scan %d of %d", a.nav.Index()+1, a.nav.Len())) + "  " +
		mutedStyle.Render(fmt.Sprintf("%d readings", cur.Len()))
	if a.width > 0 {
		pathW := a.width - ansi.StringWidth(header) - 2
		if pathW > 8 {
			header += "  " + mutedStyle.Render(ansi.Truncate(a.source, pathW, "…"))
		}
	}

	plotH := a.height - 4 // header, status, footer, spacing
	if plotH < 4 {
		plotH = 4
	}
	plotW := a.width
	if plotW <= 0 {
		plotW = 80
		plotH = 24
	}
	plot := PolarPlot{
		Width:           plotW,
		Height:          plotH,
		RangeM:          a.bound,
		MaxRangeMM:      a.cfg.Plot.MaxRangeMM,
		IntensityColors: a.intensity,
		Theme:           a.theme,
	}
	body := plot.Render(cur)

	var status string
	switch {
	case a.jumping:
		status = a.jumpInput.View()
	case a.statusErr:
		status = lipgloss.NewStyle().Foreground(a.theme.Error).Render(a.status)
	default:
		status = lipgloss.NewStyle().Foreground(a.theme.Status).Render(a.status)
	}

	return header + "\n" + body + "\n" + status + "\n" + a.footer()
}

func (a *App) footer() string {
	mutedStyle := lipgloss.NewStyle().Foreground(a.theme.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(a.theme.Label)
	bindings := []key.Binding{
		a.keys.Prev, a.keys.Next, a.keys.First, a.keys.Last,
		a.keys.Jump, a.keys.Intensity, a.keys.Export, a.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+mutedStyle.Render(" "+h.Desc))
	}
	return strings.Join(parts, mutedStyle.Render("  ·  "))
}
