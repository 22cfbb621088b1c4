package shelf

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/five82/shelf/internal/catalog"
)

// Options configure a Controller.
type Options struct {
	Backend Backend
	View    View
	// MaxPublicationYear bounds publication_year on save; zero uses the default.
	MaxPublicationYear int
	Logger             *zap.Logger
}

// Controller turns user actions into backend calls and render instructions.
// Actions may run concurrently; each region is guarded by a generation counter
// so a slow response never overwrites the output of a newer request. The
// counter check and the region write happen under the region's mutex.
type Controller struct {
	backend   Backend
	view      View
	validator *FormValidator
	log       *zap.Logger

	searchMu  sync.Mutex
	searchGen uint64

	listMu  sync.Mutex
	listGen uint64
}

// New validates options and builds a Controller.
func New(opts Options) (*Controller, error) {
	if opts.Backend == nil {
		return nil, errors.New("shelf controller requires a backend")
	}
	if opts.View == nil {
		return nil, errors.New("shelf controller requires a view")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		backend:   opts.Backend,
		view:      opts.View,
		validator: NewFormValidator(opts.MaxPublicationYear),
		log:       log.Named("shelf"),
	}, nil
}

// MaxPublicationYear returns the bound applied on save.
func (c *Controller) MaxPublicationYear() int {
	return c.validator.MaxYear()
}

// Search looks up query in the external source and renders the results.
func (c *Controller) Search(ctx context.Context, query string) error {
	q := strings.TrimSpace(query)
	if q == "" {
		c.searchMu.Lock()
		c.view.SetSearchError(MsgEmptyQuery)
		c.searchMu.Unlock()
		return &ValidationError{Field: "query", Message: MsgEmptyQuery}
	}

	c.searchMu.Lock()
	c.searchGen++
	gen := c.searchGen
	c.view.SetSearchError("")
	c.view.SetResults(ResultsView{State: RegionLoading, Message: MsgSearching})
	c.searchMu.Unlock()

	results, err := c.backend.Search(ctx, q)

	c.searchMu.Lock()
	defer c.searchMu.Unlock()
	if gen != c.searchGen {
		c.log.Debug("dropping stale search response", zap.String("query", q), zap.Uint64("generation", gen))
		return nil
	}
	if err != nil {
		c.log.Warn("search failed", zap.String("query", q), zap.Error(err))
		c.view.SetSearchError(prefixSearchFailed + searchReason(err))
		c.view.SetResults(ResultsView{})
		return err
	}

	c.log.Info("search completed", zap.String("query", q), zap.Int("results", len(results)))
	c.view.SetResults(RenderResults(results))
	return nil
}

// Select copies a search result into the save form. No request is made.
func (c *Controller) Select(book catalog.Book) Form {
	form := FormFromBook(book)
	c.view.SetForm(form)
	return form
}

// Save validates form, persists it, clears the search and refreshes the list.
func (c *Controller) Save(ctx context.Context, form Form) error {
	req, err := c.validator.Validate(form)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.view.SetFormError(verr.Message)
		}
		return err
	}
	c.view.SetFormError("")

	book, err := c.backend.Save(ctx, req)
	if err != nil {
		c.log.Warn("save failed", zap.String("title", req.Title), zap.Error(err))
		c.view.Alert(prefixSaveFailed + remoteReason(err, fallbackSave))
		return err
	}
	c.log.Info("book saved", zap.Int64("id", book.ID), zap.String("title", req.Title))

	c.clearSearch()
	c.view.Alert(MsgSaved)
	c.refresh(ctx)
	return nil
}

// List fetches and renders the saved collection. Failures are rendered in
// place of the list.
func (c *Controller) List(ctx context.Context) error {
	c.listMu.Lock()
	c.listGen++
	gen := c.listGen
	c.view.SetShelf(ListView{State: RegionLoading, Message: MsgLoadingBooks})
	c.listMu.Unlock()

	books, err := c.backend.List(ctx)

	c.listMu.Lock()
	defer c.listMu.Unlock()
	if gen != c.listGen {
		c.log.Debug("dropping stale list response", zap.Uint64("generation", gen))
		return nil
	}
	if err != nil {
		c.log.Warn("list failed", zap.Error(err))
		c.view.SetShelf(ListView{State: RegionError, Message: prefixListFailed + statusReason(err)})
		return err
	}

	c.log.Debug("list loaded", zap.Int("books", len(books)))
	c.view.SetShelf(RenderShelf(books))
	return nil
}

// MarkRead moves a book to Read and refreshes the list from the backend.
func (c *Controller) MarkRead(ctx context.Context, id int64) error {
	if _, err := c.backend.MarkRead(ctx, id); err != nil {
		c.log.Warn("mark read failed", zap.Int64("id", id), zap.Error(err))
		c.view.Alert(prefixMarkFailed + remoteReason(err, fallbackUpdate))
		return err
	}
	c.log.Info("book marked read", zap.Int64("id", id))
	c.refresh(ctx)
	return nil
}

// Delete removes a book once confirm approves. A nil confirm or a refusal
// does nothing.
func (c *Controller) Delete(ctx context.Context, id int64, confirm ConfirmFunc) error {
	if confirm == nil || !confirm(MsgConfirmDelete) {
		c.log.Debug("delete declined", zap.Int64("id", id))
		return nil
	}
	if err := c.backend.Delete(ctx, id); err != nil {
		c.log.Warn("delete failed", zap.Int64("id", id), zap.Error(err))
		c.view.Alert(prefixDeleteFailed + remoteReason(err, fallbackDelete))
		return err
	}
	c.log.Info("book deleted", zap.Int64("id", id))
	c.refresh(ctx)
	return nil
}

func (c *Controller) clearSearch() {
	c.searchMu.Lock()
	defer c.searchMu.Unlock()
	c.searchGen++
	c.view.ClearQuery()
	c.view.SetResults(ResultsView{})
}

// refresh re-renders the list; its failures are already shown inline.
func (c *Controller) refresh(ctx context.Context) {
	_ = c.List(ctx)
}

// searchReason describes a failed search: the status text for a backend
// error, the transport error otherwise.
func searchReason(err error) string {
	if apiErr, ok := catalog.AsAPIError(err); ok {
		return "Search failed: " + Sanitize(apiErr.StatusText)
	}
	return transportReason(err)
}

func statusReason(err error) string {
	if apiErr, ok := catalog.AsAPIError(err); ok {
		return Sanitize(apiErr.StatusText)
	}
	return transportReason(err)
}

// remoteReason prefers the backend's detail text and falls back to a
// per-operation message.
func remoteReason(err error, fallback string) string {
	if apiErr, ok := catalog.AsAPIError(err); ok {
		if detail := Sanitize(apiErr.Detail); detail != "" {
			return detail
		}
		return fallback
	}
	return transportReason(err)
}

func transportReason(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return Sanitize(urlErr.Err.Error())
	}
	return Sanitize(err.Error())
}
