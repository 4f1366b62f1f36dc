package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"addpath/internal/inspect"
	"addpath/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	targetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")) // Red

	dupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	detailStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green
)

func (m AppModel) View() string {
	if m.Loading {
		return fmt.Sprintf("\n  %s Inspecting PATH... please wait.\n", m.Spinner.View())
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("addpath — PATH entries"))
	b.WriteString("\n\n")

	// Keep the list within the window, scrolled around the cursor.
	visible := m.WindowSize.Height - 12
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.SelectedIdx >= visible {
		start = m.SelectedIdx - visible + 1
	}
	end := start + visible
	if end > len(m.Inspection.Entries) {
		end = len(m.Inspection.Entries)
	}

	for i := start; i < end; i++ {
		e := m.Inspection.Entries[i]
		line := fmt.Sprintf("%s %3d. %s", entryIcon(e), i+1, e.Value)

		switch {
		case i == m.SelectedIdx:
			line = selectedItemStyle.Render(line)
		case e.IsTarget:
			line = targetStyle.Render(line)
		case !e.Exists:
			line = missingStyle.Render(line)
		case e.IsDuplicate:
			line = dupStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.Inspection.Entries) == 0 {
		b.WriteString(dimStyle.Render("  (PATH is empty)") + "\n")
	}

	b.WriteString("\n" + m.detailView() + "\n")

	if m.StatusLine != "" {
		b.WriteString(statusStyle.Render(m.StatusLine) + "\n")
	}

	help := "↑/↓ move  a add managed dir  r refresh  q quit"
	if m.Inspection.TargetFound {
		help = "↑/↓ move  r refresh  q quit"
	}
	b.WriteString(dimStyle.Render(help) + "\n")

	return b.String()
}

// detailView renders the box describing the selected entry.
func (m AppModel) detailView() string {
	if m.SelectedIdx >= len(m.Inspection.Entries) {
		target := m.Target
		if m.Inspection.TargetFound {
			return detailStyle.Render(targetStyle.Render(target) + "\nAlready in PATH.")
		}
		return detailStyle.Render(target + "\nNot in PATH. Press 'a' to add it.")
	}

	e := m.Inspection.Entries[m.SelectedIdx]
	var lines []string
	lines = append(lines, e.Value)

	if e.IsTarget {
		lines = append(lines, targetStyle.Render("Managed by addpath."))
	}
	if !e.Exists {
		lines = append(lines, missingStyle.Render("Directory does not exist."))
	}
	if e.IsDuplicate {
		lines = append(lines, dupStyle.Render(e.Remediation))
	}
	if e.SourceFile != "" {
		lines = append(lines, fmt.Sprintf("Defined in %s:%d", e.SourceFile, e.SourceLine))
		if src := inspect.LineAt(e.SourceFile, e.SourceLine); src != "" {
			lines = append(lines, dimStyle.Render("  "+strings.TrimSpace(src)))
		}
	} else {
		lines = append(lines, dimStyle.Render("No config file attribution (session entry?)"))
	}

	return detailStyle.Render(strings.Join(lines, "\n"))
}

func entryIcon(e model.PathEntry) string {
	switch {
	case e.IsTarget:
		return model.IconTarget
	case !e.Exists:
		return model.IconMissing
	case e.IsDuplicate:
		return model.IconDuplicate
	default:
		return model.IconOK
	}
}
