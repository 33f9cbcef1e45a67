package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// PromptPath runs the path prompt on in/out and returns the chosen path.
// It returns [ErrUserQuit] if the prompt is cancelled.
func PromptPath(defaultPath string, in io.Reader, out io.Writer) (string, error) {
	program := tea.NewProgram(
		NewPathPromptModel(defaultPath),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	finalModel, err := program.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(PathPromptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.Path(), nil
}
