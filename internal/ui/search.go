package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/shelf"
)

func (m *Model) initQueryInput() {
	ti := textinput.New()
	ti.Placeholder = "Search by title, author or ISBN"
	ti.Prompt = "› "
	ti.CharLimit = queryCharLimit
	ti.Width = 40
	m.queryInput = ti
}

func (m *Model) focusQuery() tea.Cmd {
	m.queryFocused = true
	return m.queryInput.Focus()
}

func (m *Model) blurQuery() {
	m.queryFocused = false
	m.queryInput.Blur()
}

// handleQueryKey handles keys while the query input is focused.
func (m Model) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.searchCmd(m.queryInput.Value())
	case key.Matches(msg, m.keys.Escape):
		m.blurQuery()
		return m, nil
	case msg.String() == "down":
		if len(m.snapshot.Results.Cards) > 0 {
			m.blurQuery()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

// handleResultsKey handles keys while the result list has focus.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := m.snapshot.Results.Cards

	if row, ok := m.moveRow(msg, m.resultRow, len(cards)); ok {
		if key.Matches(msg, m.keys.Up) && m.resultRow == 0 {
			return m, m.focusQuery()
		}
		m.resultRow = row
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.resultRow < len(cards) {
			return m.useResult(cards[m.resultRow])
		}
	case key.Matches(msg, m.keys.FocusQuery), key.Matches(msg, m.keys.Escape):
		return m, m.focusQuery()
	}
	return m, nil
}

// useResult copies a result into the save form and opens it.
func (m Model) useResult(card shelf.ResultCard) (tea.Model, tea.Cmd) {
	if m.actions == nil {
		return m, nil
	}
	form := m.actions.Select(card.Book)
	m.setFormInputs(form)
	if m.store != nil {
		m.applySnapshot(m.store.Snapshot())
	}
	m.formFocusIdx = 0
	return m.setView(ViewForm)
}

// renderSearch renders the query input, the inline error and the results.
func (m Model) renderSearch(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	header := []string{
		bg.Render("Query", styles.MutedText),
		m.queryInput.View(),
	}
	if msg := m.snapshot.SearchError; msg != "" {
		header = append(header, bg.Render(truncate(msg, width), styles.DangerText))
	} else {
		header = append(header, "")
	}
	header = append(header, "")

	results := m.snapshot.Results
	var body []string
	switch results.State {
	case shelf.RegionItems:
		body = m.renderResultCards(results.Cards, width, max(height-len(header), 1))
	case shelf.RegionLoading, shelf.RegionEmpty:
		body = []string{bg.Render(results.Message, styles.MutedText)}
	default:
		body = []string{bg.Render("Type a title, author or ISBN and press enter.", styles.FaintText)}
	}

	return strings.Join(append(header, body...), "\n")
}

func (m Model) renderResultCards(cards []shelf.ResultCard, width, height int) []string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	selStyles := m.theme.Styles().WithBackground(m.theme.SelectionBg)
	selBg := NewBgStyle(m.theme.SelectionBg)

	var lines []string
	selStart, selEnd := 0, 0
	for i, card := range cards {
		selected := i == m.resultRow && !m.queryFocused
		s, b := styles, bg
		if selected {
			s, b = selStyles, selBg
			selStart = len(lines)
		}

		block := []string{
			b.Render(truncate(card.Title, width), s.Text.Bold(true)),
			b.Render("Author:", s.FaintText) + b.Space() + b.Render(truncate(card.Author, width-8), s.MutedText),
		}
		if card.Year != "" {
			block = append(block, b.Render("Year:", s.FaintText)+b.Space()+b.Render(card.Year, s.MutedText))
		}
		if card.ISBN != "" {
			block = append(block, b.Render("ISBN:", s.FaintText)+b.Space()+b.Render(truncate(card.ISBN, width-6), s.MutedText))
		}
		action := "[ " + card.Action + " ]"
		if selected {
			block = append(block, b.Render(action, s.AccentText.Bold(true)))
		} else {
			block = append(block, b.Render(action, s.FaintText))
		}

		for _, line := range block {
			lines = append(lines, b.FillLine(line, width))
		}
		if selected {
			selEnd = len(lines)
		}
		lines = append(lines, "")
	}

	return cardWindow(lines, selStart, selEnd, height)
}
