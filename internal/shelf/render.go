package shelf

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/shelf/internal/catalog"
)

// RenderResults turns search results into the results region.
func RenderResults(books []catalog.Book) ResultsView {
	if len(books) == 0 {
		return ResultsView{State: RegionEmpty, Message: MsgNoResults}
	}
	cards := make([]ResultCard, 0, len(books))
	for _, b := range books {
		cards = append(cards, ResultCard{
			Title:  Sanitize(b.Title),
			Author: authorText(b.Author),
			Year:   yearText(b.PublicationYear),
			ISBN:   Sanitize(b.ISBN),
			Action: LabelUseBook,
			Book:   b,
		})
	}
	return ResultsView{State: RegionItems, Cards: cards}
}

// RenderShelf turns the saved collection into the list region, keeping
// backend order.
func RenderShelf(books []catalog.Book) ListView {
	if len(books) == 0 {
		return ListView{State: RegionEmpty, Message: MsgNoBooks}
	}
	cards := make([]BookCard, 0, len(books))
	for _, b := range books {
		status := Sanitize(string(b.Status))
		cards = append(cards, BookCard{
			ID:          b.ID,
			Title:       Sanitize(b.Title),
			Author:      authorText(b.Author),
			Year:        yearText(b.PublicationYear),
			ISBN:        Sanitize(b.ISBN),
			Status:      status,
			StatusKey:   strings.ToLower(strings.TrimSpace(status)),
			CanMarkRead: !b.Status.IsRead(),
		})
	}
	return ListView{State: RegionItems, Cards: cards}
}

// Sanitize removes terminal escape sequences and control characters from
// backend or user supplied text before it is drawn.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	stripped := ansi.Strip(text)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, stripped)
}

func authorText(author string) string {
	if author = Sanitize(author); strings.TrimSpace(author) == "" {
		return UnknownAuthor
	}
	return author
}

func yearText(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
