package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	onStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the TUI.
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "loading..."
	}

	// Editor overlay
	if a.mode == ModeEditor && a.editor != nil {
		editorView := a.editor.View(a.width - 4)
		return paneStyle.Width(a.width - 4).Height(a.height - 2).Render(editorView)
	}

	statusBarH := 2
	mainH := a.height - statusBarH - 2
	listW := 24
	previewW := a.width - listW - 6

	list := a.renderThemeList(listW)
	listPane := paneStyle.Width(listW).Height(mainH).Render(
		titleStyle.Render(" Themes ") + "\n" + list,
	)

	preview := a.renderPreview(previewW)
	previewPane := paneStyle.Width(previewW).Height(mainH).Render(
		titleStyle.Render(" Preview ") + "\n" + preview,
	)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
	statusBar := a.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, topRow, statusBar)
}

func (a App) renderThemeList(w int) string {
	var b strings.Builder
	for i, theme := range a.themes {
		line := fmt.Sprintf(" %-*s", w-2, string(theme))
		if i == a.selectedIdx {
			line = selectedStyle.Width(w).Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(toggleLine("d", "date", a.cfg.ShowDate))
	b.WriteString(toggleLine("f", "filename", a.cfg.ShowFilename))
	b.WriteString(toggleLine("n", "line number", a.cfg.ShowLineNumber))
	b.WriteString(toggleLine("e", "emojis", a.cfg.UseEmojis))
	return b.String()
}

func toggleLine(key, label string, on bool) string {
	mark := dimStyle.Render("○")
	if on {
		mark = onStyle.Render("●")
	}
	return fmt.Sprintf(" %s %s %s\n", mark, dimStyle.Render(key+":"), label)
}

func (a App) renderPreview(w int) string {
	var b strings.Builder
	for _, line := range previewLines(a.cfg, a.sample) {
		b.WriteString(truncate(line, w) + "\n")
	}
	return b.String()
}

func (a App) renderStatusBar() string {
	left := a.statusMsg
	right := "j/k:theme d/f/n/e:toggle m:message w:save q:quit"
	if a.mode == ModeEditor {
		right = "enter:apply esc:cancel"
	}

	gap := a.width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return helpStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
