package tui

import (
	"bytes"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"addpath/internal/ensure"
	"addpath/internal/inspect"
	"addpath/internal/model"
)

// MsgInspected carries a fresh PATH inspection.
type MsgInspected model.Inspection

// MsgAdded carries the ensure output after the target was added.
type MsgAdded string

// MsgError indicates an error occurred.
type MsgError error

// Init kicks off the initial inspection.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, m.inspectCmd())
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case MsgInspected:
		m.Loading = false
		m.Inspection = model.Inspection(msg)
		if m.SelectedIdx >= len(m.Inspection.Entries) {
			m.SelectedIdx = 0
		}
		return m, nil

	case MsgAdded:
		m.StatusLine = string(msg)
		// Re-read the PATH this process now carries.
		return m, m.inspectCmd()

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.Inspection.Entries)-1 {
				m.SelectedIdx++
			}
		case "g":
			m.SelectedIdx = 0
		case "G":
			if n := len(m.Inspection.Entries); n > 0 {
				m.SelectedIdx = n - 1
			}
		case "r":
			m.StatusLine = ""
			return m, m.inspectCmd()
		case "a":
			if m.Inspection.TargetFound {
				m.StatusLine = m.Target + " is already in PATH."
				return m, nil
			}
			return m, m.addCmd()
		}
	}

	return m, nil
}

// inspectCmd analyzes the current process PATH in the background.
func (m AppModel) inspectCmd() tea.Cmd {
	return func() tea.Msg {
		ins := inspect.Analyze(os.Getenv("PATH"), m.Separator, m.Target)
		inspect.Attribute(&ins)
		return MsgInspected(ins)
	}
}

// addCmd runs the ensure operation against the real PATH.
func (m AppModel) addCmd() tea.Cmd {
	return func() tea.Msg {
		var out bytes.Buffer
		_, err := ensure.Run(ensure.Options{
			Dir:       m.Target,
			PathValue: os.Getenv("PATH"),
			Separator: m.Separator,
			Writer:    m.Writer,
			Out:       &out,
		})
		if err != nil {
			return MsgError(err)
		}
		return MsgAdded(strings.TrimSpace(out.String()))
	}
}
