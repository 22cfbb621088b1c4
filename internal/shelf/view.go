package shelf

import (
	"strconv"

	"github.com/five82/shelf/internal/catalog"
)

// RegionState describes what a display region currently holds.
type RegionState int

const (
	RegionBlank RegionState = iota
	RegionLoading
	RegionEmpty
	RegionItems
	RegionError
)

func (s RegionState) String() string {
	switch s {
	case RegionLoading:
		return "loading"
	case RegionEmpty:
		return "empty"
	case RegionItems:
		return "items"
	case RegionError:
		return "error"
	default:
		return "blank"
	}
}

// ResultsView is the rendered search-results region.
type ResultsView struct {
	State   RegionState
	Message string
	Cards   []ResultCard
}

// ResultCard is one search result. Year and ISBN are empty when the line
// should be omitted.
type ResultCard struct {
	Title  string
	Author string
	Year   string
	ISBN   string
	Action string
	// Book is the unsanitised record handed back to Select.
	Book catalog.Book
}

// ListView is the rendered saved-collection region.
type ListView struct {
	State   RegionState
	Message string
	Cards   []BookCard
}

// BookCard is one saved book.
type BookCard struct {
	ID     int64
	Title  string
	Author string
	Year   string
	ISBN   string
	// Status is displayed exactly as returned by the backend.
	Status string
	// StatusKey is the lower-cased status used for styling.
	StatusKey   string
	CanMarkRead bool
}

// Form holds the editable save-form fields as typed.
type Form struct {
	ISBN   string
	Title  string
	Author string
	Year   string
}

// FormFromBook converts a search result into form values. Text is copied
// verbatim so saving without edits sends the result unchanged; the form input
// sanitises what it draws. A zero year leaves the field empty.
func FormFromBook(b catalog.Book) Form {
	year := ""
	if b.PublicationYear != 0 {
		year = strconv.Itoa(b.PublicationYear)
	}
	return Form{
		ISBN:   b.ISBN,
		Title:  b.Title,
		Author: b.Author,
		Year:   year,
	}
}
