package catalog

import "strings"

// Status is the reading state the backend assigns to a saved book.
type Status string

const (
	StatusUnread Status = "Unread"
	StatusRead   Status = "Read"
	// StatusPending is what the reference backend stores for unread books.
	StatusPending Status = "Pending"
)

// IsRead reports whether the status is Read, ignoring case and padding.
func (s Status) IsRead() bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(StatusRead))
}

// Book mirrors the book payload exchanged with the backend. Search results
// carry no ID or Status; saved books carry both.
type Book struct {
	ID              int64  `json:"id,omitempty"`
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publication_year"`
	Status          Status `json:"status,omitempty"`
}

// Saved reports whether the backend has assigned the book an identifier.
func (b Book) Saved() bool {
	return b.ID > 0
}

// SaveRequest is the body of POST /books/save. An empty ISBN is omitted so a
// result that had none is saved with none.
type SaveRequest struct {
	ISBN            string `json:"isbn,omitempty"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publication_year"`
}

// DeleteResponse is the acknowledgement returned by DELETE /books/{id}.
type DeleteResponse struct {
	Message string `json:"message"`
}
