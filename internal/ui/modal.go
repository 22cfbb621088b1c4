package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// Update returns the updated modal, a command, and whether the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmModal asks a yes/no question and runs onAnswer with the reply.
type confirmModal struct {
	prompt   string
	subject  string
	onAnswer func(yes bool) tea.Cmd
}

func newConfirmModal(prompt, subject string, onAnswer func(yes bool) tea.Cmd) confirmModal {
	return confirmModal{prompt: prompt, subject: subject, onAnswer: onAnswer}
}

func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Yes):
		return c, c.answer(true), true
	case key.Matches(keyMsg, keys.No), key.Matches(keyMsg, keys.ForceQuit):
		return c, c.answer(false), true
	}
	return c, nil, false
}

func (c confirmModal) answer(yes bool) tea.Cmd {
	if c.onAnswer == nil {
		return nil
	}
	return c.onAnswer(yes)
}

func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Confirm"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(c.prompt))
	if c.subject != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.AccentText.Render(c.subject))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("y: Yes  •  n/Esc: No"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(50).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
