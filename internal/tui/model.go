package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"addpath/internal/env"
	"addpath/internal/model"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Inspection model.Inspection
	Target     string
	Separator  string
	Writer     env.Writer
	Loading    bool
	Err        error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg
	StatusLine  string

	// Components
	Spinner spinner.Model
}

// InitialModel returns the initial state for the given managed directory.
func InitialModel(target, separator string, writer env.Writer) AppModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return AppModel{
		Target:    target,
		Separator: separator,
		Writer:    writer,
		Loading:   true,
		Spinner:   sp,
	}
}
