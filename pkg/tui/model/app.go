package model

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/modoterra/lucerna/pkg/callsite"
	"github.com/modoterra/lucerna/pkg/console"
	"github.com/modoterra/lucerna/pkg/core"
	"github.com/modoterra/lucerna/pkg/settings"
)

// Mode identifies the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditor
)

const defaultSample = "the quick brown fox jumps over the lazy dog"

// App is the root Bubble Tea model: a theme picker on the left, a live
// preview of one decorated line per level on the right.
type App struct {
	// Working configuration; edits apply live to the preview.
	cfg    console.Config
	themes []core.Theme

	// UI
	selectedIdx int
	sample      string
	mode        Mode
	editor      *EditorModel
	width       int
	height      int

	// Status display
	statusMsg string
}

// New creates a preview app starting from cfg.
func New(cfg console.Config) App {
	themes := core.Themes()
	idx := 0
	for i, t := range themes {
		if t == cfg.Theme {
			idx = i
			break
		}
	}
	return App{
		cfg:         cfg,
		themes:      themes,
		selectedIdx: idx,
		sample:      defaultSample,
		mode:        ModeNormal,
	}
}

// Init sets the window title.
func (a App) Init() tea.Cmd {
	return tea.SetWindowTitle("Lucerna")
}

// previewSource feeds the preview logger a stable caller so every
// theme renders the same location parts.
type previewSource struct{}

func (previewSource) Frames() []callsite.Frame {
	return []callsite.Frame{{Function: "app.handleRequest", File: "/srv/app/handlers.go", Line: "88"}}
}

// captureSink collects rendered lines instead of writing them out.
type captureSink struct {
	lines []string
}

func (s *captureSink) Write(e core.Event) error {
	var b strings.Builder
	b.WriteString(e.Prefix)
	for i, arg := range e.Args {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", arg)
	}
	s.lines = append(s.lines, b.String())
	return nil
}

// previewLines renders one sample line per level through a real logger
// so the preview is exactly what callers get.
func previewLines(cfg console.Config, sample string) []string {
	sink := &captureSink{}
	l := console.New(
		console.WithConfig(cfg),
		console.WithSink(sink),
		console.WithSource(previewSource{}),
	)
	l.Log(sample)
	l.Info(sample)
	l.Warning(sample)
	l.Error(sample)
	l.Debug(sample)
	return sink.lines
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.mode == ModeEditor && a.editor != nil {
		return a.editor.HandleKey(a, msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "j", "down":
		if a.selectedIdx < len(a.themes)-1 {
			a.selectedIdx++
			a.cfg.Theme = a.themes[a.selectedIdx]
		}
	case "k", "up":
		if a.selectedIdx > 0 {
			a.selectedIdx--
			a.cfg.Theme = a.themes[a.selectedIdx]
		}

	case "d":
		a.cfg.ShowDate = !a.cfg.ShowDate
	case "f":
		a.cfg.ShowFilename = !a.cfg.ShowFilename
	case "n":
		a.cfg.ShowLineNumber = !a.cfg.ShowLineNumber
	case "e":
		a.cfg.UseEmojis = !a.cfg.UseEmojis

	case "m":
		a.editor = NewMessageEditor(a.sample)
		a.mode = ModeEditor
		return a, a.editor.Focus()

	case "w":
		path := settings.DefaultPath()
		if err := settings.Save(path, overlayFor(a.cfg)); err != nil {
			a.statusMsg = "error: " + err.Error()
		} else {
			a.statusMsg = "saved " + path
		}
	}

	return a, nil
}

// overlayFor turns the full working configuration into a complete
// overlay for saving.
func overlayFor(c console.Config) console.Overlay {
	return console.Overlay{
		Theme:          &c.Theme,
		ShowDate:       &c.ShowDate,
		ShowFilename:   &c.ShowFilename,
		ShowLineNumber: &c.ShowLineNumber,
		ShowLogLevel:   &c.ShowLogLevel,
		UseEmojis:      &c.UseEmojis,
		Disable:        &c.Disable,
		ErrorHandling:  &c.ErrorHandling,
	}
}
