package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/logtail"
)

// activityState tracks the tail of the application log.
type activityState struct {
	follow      bool
	lastRefresh time.Time
	entries     []logtail.Entry
	err         error
}

type activityMsg struct {
	entries []logtail.Entry
	err     error
}

// refreshActivity reads the end of the log file off the UI goroutine.
func (m Model) refreshActivity() tea.Cmd {
	path := m.logPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := logtail.Tail(path, ActivityLineLimit)
		return activityMsg{entries: entries, err: err}
	}
}

func (m *Model) handleActivity(msg activityMsg) {
	m.activity.err = msg.err
	if msg.err == nil {
		m.activity.entries = msg.entries
	}
	m.updateActivityViewport()
}

func (m *Model) updateActivityViewport() {
	width := max(m.width-4, 1)
	height := max(m.contentHeight()-2, 1)
	if m.activityViewport.Width == 0 {
		m.activityViewport = viewport.New(width, height)
	}
	m.activityViewport.Width = width
	m.activityViewport.Height = height
	m.activityViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.activityViewport.SetContent(m.renderActivityContent(width))

	if m.activity.follow {
		m.activityViewport.GotoBottom()
	}
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.activity.follow = !m.activity.follow
		if m.activity.follow {
			m.activityViewport.GotoBottom()
		}
	case key.Matches(msg, m.keys.Down):
		m.activityViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.activity.follow = false
		m.activityViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		m.activity.follow = false
		m.activityViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.activityViewport.GotoBottom()
	}
	return m, nil
}

func (m Model) activityTitle() string {
	title := "Activity"
	if !m.activity.follow {
		title += " (paused)"
	}
	if m.logPath != "" {
		title += " · " + truncateMiddle(m.logPath, 40)
	}
	return title
}

func (m Model) renderActivityContent(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	if m.activity.err != nil {
		return bg.Render(truncate(fmt.Sprintf("Cannot read log: %v", m.activity.err), width), styles.DangerText)
	}
	if len(m.activity.entries) == 0 {
		return bg.Render("No activity yet.", styles.FaintText)
	}

	lines := make([]string, 0, len(m.activity.entries))
	for _, entry := range m.activity.entries {
		style := levelStyle(entry.Level, styles)
		lines = append(lines, bg.FillLine(bg.Render(truncate(entry.Summary(), width), style), width))
	}
	return strings.Join(lines, "\n")
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.Text
	}
}
