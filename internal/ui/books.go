package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/shelf"
)

// handleShelfKey handles keys in My Books.
func (m Model) handleShelfKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := m.snapshot.Shelf.Cards

	if row, ok := m.moveRow(msg, m.shelfRow, len(cards)); ok {
		m.shelfRow = row
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Reload):
		return m, m.listCmd()
	case key.Matches(msg, m.keys.MarkRead):
		card, ok := m.selectedBook()
		if !ok || !card.CanMarkRead {
			return m, nil
		}
		return m, m.markReadCmd(card.ID)
	case key.Matches(msg, m.keys.Delete):
		card, ok := m.selectedBook()
		if !ok {
			return m, nil
		}
		id := card.ID
		m.modal = newConfirmModal(shelf.MsgConfirmDelete, card.Title, func(yes bool) tea.Cmd {
			return m.deleteCmd(id, yes)
		})
		return m, nil
	}
	return m, nil
}

func (m Model) selectedBook() (shelf.BookCard, bool) {
	cards := m.snapshot.Shelf.Cards
	if m.shelfRow < 0 || m.shelfRow >= len(cards) {
		return shelf.BookCard{}, false
	}
	return cards[m.shelfRow], true
}

func (m Model) shelfTitle() string {
	if n := len(m.snapshot.Shelf.Cards); n > 0 {
		return fmt.Sprintf("My Books (%d)", n)
	}
	return "My Books"
}

func (m Model) renderShelf(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	list := m.snapshot.Shelf
	switch list.State {
	case shelf.RegionItems:
		return strings.Join(m.renderBookCards(list.Cards, width, height), "\n")
	case shelf.RegionError:
		return bg.Render(truncate(list.Message, width), styles.DangerText)
	case shelf.RegionLoading, shelf.RegionEmpty:
		return bg.Render(list.Message, styles.MutedText)
	default:
		return bg.Render("Press R to load your books.", styles.FaintText)
	}
}

func (m Model) renderBookCards(cards []shelf.BookCard, width, height int) []string {
	base := m.theme.Styles()
	styles := base.WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	selStyles := base.WithBackground(m.theme.SelectionBg)
	selBg := NewBgStyle(m.theme.SelectionBg)

	var lines []string
	selStart, selEnd := 0, 0
	for i, card := range cards {
		selected := i == m.shelfRow
		s, b := styles, bg
		if selected {
			s, b = selStyles, selBg
			selStart = len(lines)
		}

		badge := base.StatusStyle(card.StatusKey).Render(card.Status)
		titleWidth := max(width-len(card.Status)-3, 1)
		block := []string{
			b.Render(truncate(card.Title, titleWidth), s.Text.Bold(true)) + b.Space() + badge,
			b.Render("Author:", s.FaintText) + b.Space() + b.Render(truncate(card.Author, width-8), s.MutedText),
		}
		if card.Year != "" {
			block = append(block, b.Render("Year:", s.FaintText)+b.Space()+b.Render(card.Year, s.MutedText))
		}
		if card.ISBN != "" {
			block = append(block, b.Render("ISBN:", s.FaintText)+b.Space()+b.Render(truncate(card.ISBN, width-6), s.MutedText))
		}

		markStyle := s.FaintText
		if card.CanMarkRead && selected {
			markStyle = s.AccentText
		}
		deleteStyle := s.FaintText
		if selected {
			deleteStyle = s.DangerText
		}
		actions := b.Render("[r] Mark as Read", markStyle)
		if !card.CanMarkRead {
			actions = b.Render("[r] Mark as Read", s.FaintText.Strikethrough(true))
		}
		actions += b.Spaces(2) + b.Render("[d] Delete", deleteStyle)
		block = append(block, actions)

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
