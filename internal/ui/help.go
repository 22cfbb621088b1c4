package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Navigation",
		items: []helpItem{
			{"tab", "Next view"},
			{"s/f/l/a", "Search/Form/Books/Activity"},
			{"j/k", "Move down/up"},
			{"g/G", "Go to top/bottom"},
		},
	},
	{
		title: "Search & Add",
		items: []helpItem{
			{"enter", "Search / use book / save"},
			{"/", "Edit query"},
			{"esc", "Leave input"},
			{"up/down", "Move between form fields"},
		},
	},
	{
		title: "My Books",
		items: []helpItem{
			{"r", "Mark as read"},
			{"d", "Delete (asks first)"},
			{"R", "Reload list"},
		},
	},
	{
		title: "General",
		items: []helpItem{
			{"Space", "Follow activity log"},
			{"T", "Cycle theme"},
			{"h/?", "Toggle help"},
			{"e/ctrl+c", "Quit"},
		},
	},
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Width(12)
	for i, section := range helpSections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(helpSections)-1 {
			b.WriteString("\n")
		}
	}

	return m.placeModal(b.String(), 46)
}

// placeModal centres content in a bordered box over the whole screen.
func (m Model) placeModal(content string, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width).
		Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
