package model

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/modoterra/lucerna/pkg/console"
	"github.com/modoterra/lucerna/pkg/core"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(key(k))
		next, ok := m.(App)
		if !ok {
			t.Fatalf("Update returned %T, want App", m)
		}
		a = next
	}
	return a
}

func TestPreviewLinesOnePerLevel(t *testing.T) {
	cfg := console.DefaultConfig()
	cfg.Theme = core.ThemeMinimal

	lines := previewLines(cfg, "hello")

	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	wantTags := []string{"[LOG]", "[INFO]", "[WARNING]", "[ERROR]", "[DEBUG]"}
	for i, tag := range wantTags {
		if !strings.Contains(lines[i], tag) {
			t.Errorf("line %d missing %s: %q", i, tag, lines[i])
		}
		if !strings.Contains(lines[i], "[handlers.go]") || !strings.Contains(lines[i], "(88)") {
			t.Errorf("line %d missing preview caller parts: %q", i, lines[i])
		}
		if !strings.Contains(lines[i], "hello") {
			t.Errorf("line %d missing sample text: %q", i, lines[i])
		}
	}
}

func TestThemeNavigation(t *testing.T) {
	a := New(console.DefaultConfig())
	if a.cfg.Theme != core.ThemeDark {
		t.Fatalf("start theme: got %q, want dark", a.cfg.Theme)
	}

	a = press(t, a, "j")
	if a.cfg.Theme != core.ThemeLight {
		t.Errorf("after j: got %q, want light", a.cfg.Theme)
	}

	a = press(t, a, "k", "k")
	if a.cfg.Theme != core.ThemeDark {
		t.Errorf("k at top should stay on dark, got %q", a.cfg.Theme)
	}
}

func TestToggleKeys(t *testing.T) {
	tests := []struct {
		key string
		get func(console.Config) bool
	}{
		{"d", func(c console.Config) bool { return c.ShowDate }},
		{"f", func(c console.Config) bool { return c.ShowFilename }},
		{"n", func(c console.Config) bool { return c.ShowLineNumber }},
		{"e", func(c console.Config) bool { return c.UseEmojis }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			a := New(console.DefaultConfig())
			before := tt.get(a.cfg)
			a = press(t, a, tt.key)
			if got := tt.get(a.cfg); got == before {
				t.Errorf("%s did not toggle, still %v", tt.key, got)
			}
			a = press(t, a, tt.key)
			if got := tt.get(a.cfg); got != before {
				t.Errorf("%s did not toggle back, got %v", tt.key, got)
			}
		})
	}
}

func TestMessageEditorApply(t *testing.T) {
	a := New(console.DefaultConfig())

	a = press(t, a, "m")
	if a.mode != ModeEditor {
		t.Fatalf("m should open the editor, mode %d", a.mode)
	}

	a = press(t, a, "!", "enter")
	if a.mode != ModeNormal {
		t.Errorf("enter should close the editor, mode %d", a.mode)
	}
	if !strings.HasSuffix(a.sample, "!") {
		t.Errorf("sample not updated: %q", a.sample)
	}
}

func TestMessageEditorCancel(t *testing.T) {
	a := New(console.DefaultConfig())
	before := a.sample

	a = press(t, a, "m", "!", "esc")
	if a.mode != ModeNormal {
		t.Errorf("esc should close the editor, mode %d", a.mode)
	}
	if a.sample != before {
		t.Errorf("esc should discard edits: got %q, want %q", a.sample, before)
	}
}

func TestOverlayForCarriesEveryField(t *testing.T) {
	cfg := console.Config{
		Theme:          core.ThemeNeon,
		ShowDate:       false,
		ShowFilename:   true,
		ShowLineNumber: false,
		ShowLogLevel:   true,
		UseEmojis:      false,
		Disable:        false,
		ErrorHandling:  core.PolicyFallback,
	}

	o := overlayFor(cfg)

	var got console.Config
	o.Apply(&got)
	if got != cfg {
		t.Errorf("round trip: got %+v, want %+v", got, cfg)
	}
}
