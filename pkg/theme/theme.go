// Package theme holds the static style and emoji tables keyed by theme
// and level.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/modoterra/lucerna/pkg/core"
)

var (
	darkStyles = map[core.Level]lipgloss.Style{
		core.LevelLog:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		core.LevelInfo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		core.LevelWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		core.LevelError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		core.LevelDebug:   lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	}

	lightStyles = map[core.Level]lipgloss.Style{
		core.LevelLog:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		core.LevelInfo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
		core.LevelWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130")),
		core.LevelError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
		core.LevelDebug:   lipgloss.NewStyle().Foreground(lipgloss.Color("90")),
	}

	neonStyles = map[core.Level]lipgloss.Style{
		core.LevelLog:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		core.LevelInfo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		core.LevelWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		core.LevelError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
		core.LevelDebug:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("118")),
	}

	minimalStyles = map[core.Level]lipgloss.Style{
		core.LevelLog:     lipgloss.NewStyle(),
		core.LevelInfo:    lipgloss.NewStyle(),
		core.LevelWarning: lipgloss.NewStyle(),
		core.LevelError:   lipgloss.NewStyle(),
		core.LevelDebug:   lipgloss.NewStyle(),
	}

	styles = map[core.Theme]map[core.Level]lipgloss.Style{
		core.ThemeDark:    darkStyles,
		core.ThemeLight:   lightStyles,
		core.ThemeNeon:    neonStyles,
		core.ThemeMinimal: minimalStyles,
	}

	emojis = map[core.Level]string{
		core.LevelLog:     "📝",
		core.LevelInfo:    "ℹ️",
		core.LevelWarning: "⚠️",
		core.LevelError:   "❌",
		core.LevelDebug:   "🐛",
	}
)

// StyleFor returns the prefix style for a theme and level. Unknown
// themes use the dark table; unknown levels use the generic LOG style.
// The lookup is pure: identical inputs always yield the same style.
func StyleFor(t core.Theme, l core.Level) lipgloss.Style {
	table, ok := styles[t]
	if !ok {
		table = darkStyles
	}
	s, ok := table[l]
	if !ok {
		s = table[core.LevelLog]
	}
	return s
}

// EmojiFor returns the emoji for a level, falling back to the generic
// one for unknown levels.
func EmojiFor(l core.Level) string {
	if e, ok := emojis[l]; ok {
		return e
	}
	return emojis[core.LevelLog]
}
