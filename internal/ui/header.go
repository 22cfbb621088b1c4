package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderMain renders the full screen: header, command bar, the active view
// and the alert line.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())
	b.WriteString("\n")

	b.WriteString(m.renderAlertLine())

	return b.String()
}

// contentHeight is the height of the view box: header, command bar and alert
// line take one row each.
func (m Model) contentHeight() int {
	return max(m.height-3, 3)
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	width := m.width
	height := m.contentHeight()
	inner := width - 4

	switch m.currentView {
	case ViewForm:
		return m.renderTitledBox("Add Book", m.renderForm(inner), width, height, true)
	case ViewShelf:
		return m.renderTitledBox(m.shelfTitle(), m.renderShelf(inner, height-2), width, height, true)
	case ViewActivity:
		return m.renderTitledBox(m.activityTitle(), m.activityViewport.View(), width, height, true)
	default:
		return m.renderTitledBox("Search Books", m.renderSearch(inner, height-2), width, height, true)
	}
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("shelf", styles.Logo)}
	compact := m.width < LayoutCompactWidth

	if m.apiURL != "" && !compact {
		parts = append(parts,
			bg.Render("api", styles.FaintText)+bg.Space()+
				bg.Render(truncateMiddle(m.apiURL, 40), styles.MutedText))
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("OFFLINE", styles.DangerText))
	} else if count := len(m.snapshot.Shelf.Cards); count > 0 {
		parts = append(parts,
			bg.Render(fmt.Sprintf("%d", count), styles.AccentText)+bg.Space()+
				bg.Render(pluralize(count, "book", "books"), styles.MutedText))
	}

	if !m.snapshot.LastUpdated.IsZero() && !compact {
		parts = append(parts,
			bg.Render("updated", styles.FaintText)+bg.Space()+
				bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.MutedText))
	}

	content := bg.Join(parts, sep)
	if ansi.StringWidth(content) > m.width-2 {
		content = ansi.Truncate(content, max(m.width-2, 0), "")
	}
	return styles.Header.Width(m.width).Render(content)
}

// renderCommandBar renders the view tabs and the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	tabs := make([]string, 0, len(viewOrder))
	for _, v := range viewOrder {
		label := v.Title()
		if v == m.currentView {
			tabs = append(tabs, bg.Render("["+label+"]", styles.AccentText.Bold(true)))
		} else {
			tabs = append(tabs, bg.Render(label, styles.MutedText))
		}
	}

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewForm:
		commands = []cmd{
			{"enter", "Save"},
			{"up/down", "Field"},
			{"esc", "Back"},
		}
	case ViewShelf:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"r", "Read"},
			{"d", "Delete"},
			{"R", "Reload"},
		}
	case ViewActivity:
		followLabel := "Pause"
		if !m.activity.follow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
		}
	default:
		if m.queryFocused {
			commands = []cmd{
				{"enter", "Search"},
				{"esc", "Results"},
			}
		} else {
			commands = []cmd{
				{"j/k", "Navigate"},
				{"enter", "Use book"},
				{"/", "Query"},
			}
		}
	}
	commands = append(commands, cmd{"tab", "View"}, cmd{"?", "More"})

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	line := bg.Join(tabs, " ") + bg.Spaces(3) + bg.Join(segments, "  ")
	if ansi.StringWidth(line) > m.width {
		line = ansi.Truncate(line, m.width, "")
	}
	return bg.FillLine(line, m.width)
}

// renderAlertLine shows the latest alert until it expires.
func (m Model) renderAlertLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)
	if m.alert == "" {
		return bg.FillLine("", m.width)
	}
	style := styles.DangerText
	if isSuccessAlert(m.alert) {
		style = styles.SuccessText
	}
	text := truncate(m.alert, max(m.width-2, 1))
	return bg.FillLine(bg.Space()+bg.Render(text, style), m.width)
}

func isSuccessAlert(msg string) bool {
	return !strings.HasPrefix(msg, "Failed")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := ansi.StringWidth(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		Background(lipgloss.Color(bgColorStr)).
		PaddingLeft(1)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], max(innerWidth-1, 0), "")
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}

// cardWindow returns the slice of lines to draw so that the selected card,
// spanning [start, end), stays visible within height rows.
func cardWindow(lines []string, start, end, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	top := 0
	if end > height {
		top = end - height
	}
	if start < top {
		top = start
	}
	top = min(top, len(lines)-height)
	return lines[top : top+height]
}
