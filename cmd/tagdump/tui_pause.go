package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// pauseModel is the Bubble Tea model for the post-dump pause prompt.
type pauseModel struct{}

func (m pauseModel) Init() tea.Cmd {
	return nil
}

func (m pauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pauseModel) View() string {
	return "\n  Press Enter to exit.\n"
}

// runPausePrompt blocks until the user dismisses the prompt.
func runPausePrompt() error {
	p := tea.NewProgram(pauseModel{})
	_, err := p.Run()
	return err
}
