package shelf

import (
	"context"

	"github.com/five82/shelf/internal/catalog"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// Backend is the REST surface the controller drives. *catalog.Client
// implements it.
type Backend interface {
	Search(ctx context.Context, query string) ([]catalog.Book, error)
	Save(ctx context.Context, req catalog.SaveRequest) (catalog.Book, error)
	List(ctx context.Context) ([]catalog.Book, error)
	MarkRead(ctx context.Context, id int64) (catalog.Book, error)
	Delete(ctx context.Context, id int64) error
}

var _ Backend = (*catalog.Client)(nil)

// View receives render instructions. Each method replaces its region
// wholesale; implementations must be safe for concurrent use because actions
// complete on their own goroutines.
type View interface {
	// SetSearchError shows the inline search message. Empty hides it.
	SetSearchError(msg string)
	SetResults(results ResultsView)
	ClearQuery()
	SetForm(form Form)
	// SetFormError shows the inline save-form message. Empty hides it.
	SetFormError(msg string)
	SetShelf(list ListView)
	Alert(msg string)
}

// ConfirmFunc asks the user to approve a destructive action.
type ConfirmFunc func(prompt string) bool
