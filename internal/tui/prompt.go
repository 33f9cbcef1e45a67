// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PathPromptModel asks for the ciphertext path. An empty answer selects the
// default path.
type PathPromptModel struct {
	input       textinput.Model
	defaultPath string

	path       string
	quitByUser bool
}

// NewPathPromptModel creates a focused prompt showing defaultPath as its
// placeholder.
func NewPathPromptModel(defaultPath string) PathPromptModel {
	input := textinput.New()
	input.Placeholder = defaultPath
	input.CharLimit = 4096
	input.Width = 50
	input.Prompt = "> "
	input.Focus()

	return PathPromptModel{
		input:       input,
		defaultPath: defaultPath,
	}
}

// Init implements [tea.Model].
func (m PathPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter accepts the answer, esc and ctrl+c
// cancel; every other key goes to the input.
func (m PathPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			m.path = strings.TrimSpace(m.input.Value())
			if m.path == "" {
				m.path = m.defaultPath
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m PathPromptModel) View() string {
	data := "Path to the encrypted file:\n\n" + m.input.View()
	return renderPage("CIPHER CHASE SOLVER", data, "enter: decrypt │ esc: quit")
}

// Path returns the accepted path, empty until enter is pressed.
func (m PathPromptModel) Path() string {
	return m.path
}
