package shelf_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/shelf"
	"github.com/five82/shelf/internal/shelf/mocks"
)

var dune = catalog.Book{
	ISBN:            "9780441013593",
	Title:           "Dune",
	Author:          "Frank Herbert",
	PublicationYear: 1965,
}

// recordingView keeps the latest content of every region.
type recordingView struct {
	mu          sync.Mutex
	searchError string
	results     shelf.ResultsView
	cleared     int
	form        shelf.Form
	formError   string
	list        shelf.ListView
	listHistory []shelf.RegionState
	alerts      []string

	// beforeShelf runs at the start of every SetShelf call.
	beforeShelf func(shelf.ListView)
}

func (v *recordingView) SetSearchError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchError = msg
}

func (v *recordingView) SetResults(results shelf.ResultsView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.results = results
}

func (v *recordingView) ClearQuery() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cleared++
}

func (v *recordingView) SetForm(form shelf.Form) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form = form
}

func (v *recordingView) SetFormError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formError = msg
}

func (v *recordingView) SetShelf(list shelf.ListView) {
	if v.beforeShelf != nil {
		v.beforeShelf(list)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.list = list
	v.listHistory = append(v.listHistory, list.State)
}

func (v *recordingView) Alert(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerts = append(v.alerts, msg)
}

func newController(t *testing.T) (*shelf.Controller, *mocks.MockBackend, *recordingView) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	view := &recordingView{}
	c, err := shelf.New(shelf.Options{Backend: backend, View: view})
	require.NoError(t, err)
	return c, backend, view
}

func TestNew_RequiresPorts(t *testing.T) {
	_, err := shelf.New(shelf.Options{View: &recordingView{}})
	require.Error(t, err)

	ctrl := gomock.NewController(t)
	_, err = shelf.New(shelf.Options{Backend: mocks.NewMockBackend(ctrl)})
	require.Error(t, err)
}

func TestNew_DefaultsMaxYear(t *testing.T) {
	c, _, _ := newController(t)
	require.Equal(t, shelf.DefaultMaxPublicationYear, c.MaxPublicationYear())
}

func TestSearch_EmptyQueryMakesNoRequest(t *testing.T) {
	c, _, view := newController(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		err := c.Search(context.Background(), q)
		var verr *shelf.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, shelf.MsgEmptyQuery, view.searchError)
	}
}

func TestSearch_RendersResults(t *testing.T) {
	c, backend, view := newController(t)
	backend.EXPECT().Search(gomock.Any(), "dune").Return([]catalog.Book{dune}, nil)

	require.NoError(t, c.Search(context.Background(), "  dune  "))
	require.Empty(t, view.searchError)
	require.Equal(t, shelf.RegionItems, view.results.State)
	require.Len(t, view.results.Cards, 1)
	card := view.results.Cards[0]
	require.Equal(t, "Dune", card.Title)
	require.Equal(t, "Frank Herbert", card.Author)
	require.Equal(t, "1965", card.Year)
	require.Equal(t, "9780441013593", card.ISBN)
	require.Equal(t, shelf.LabelUseBook, card.Action)
}

func TestSearch_NoResults(t *testing.T) {
	c, backend, view := newController(t)
	backend.EXPECT().Search(gomock.Any(), "zzzz").Return([]catalog.Book{}, nil)

	require.NoError(t, c.Search(context.Background(), "zzzz"))
	require.Equal(t, shelf.RegionEmpty, view.results.State)
	require.Equal(t, shelf.MsgNoResults, view.results.Message)
}

func TestSearch_FailureShowsStatus(t *testing.T) {
	c, backend, view := newController(t)
	apiErr := &catalog.APIError{Method: "GET", Path: "/books/search", Status: 502, StatusText: "Bad Gateway"}
	backend.EXPECT().Search(gomock.Any(), "dune").Return(nil, apiErr)

	err := c.Search(context.Background(), "dune")
	require.ErrorIs(t, err, apiErr)
	require.Equal(t, "Failed to search books: Search failed: Bad Gateway", view.searchError)
	require.Equal(t, shelf.RegionBlank, view.results.State)
}

func TestSearch_StaleResponseIsDropped(t *testing.T) {
	c, backend, view := newController(t)
	started := make(chan struct{})
	release := make(chan struct{})

	slow := []catalog.Book{{Title: "Slow"}}
	fast := []catalog.Book{{Title: "Fast"}}
	backend.EXPECT().Search(gomock.Any(), "first").DoAndReturn(
		func(context.Context, string) ([]catalog.Book, error) {
			close(started)
			<-release
			return slow, nil
		})
	backend.EXPECT().Search(gomock.Any(), "second").Return(fast, nil)

	done := make(chan error, 1)
	go func() { done <- c.Search(context.Background(), "first") }()
	<-started

	require.NoError(t, c.Search(context.Background(), "second"))
	close(release)
	require.NoError(t, <-done)

	require.Len(t, view.results.Cards, 1)
	require.Equal(t, "Fast", view.results.Cards[0].Title)
}

func TestList_NewerRequestWaitsForOlderWrite(t *testing.T) {
	c, backend, view := newController(t)
	gomock.InOrder(
		backend.EXPECT().List(gomock.Any()).Return([]catalog.Book{{ID: 1, Title: "Old"}}, nil),
		backend.EXPECT().List(gomock.Any()).Return([]catalog.Book{{ID: 2, Title: "Fresh"}}, nil),
	)

	newer := make(chan error, 1)
	finished := make(chan struct{})
	var once sync.Once
	view.beforeShelf = func(list shelf.ListView) {
		if list.State != shelf.RegionItems || list.Cards[0].Title != "Old" {
			return
		}
		// A newer load started while the older response is being written
		// must not complete before that write does.
		once.Do(func() {
			go func() {
				newer <- c.List(context.Background())
				close(finished)
			}()
			select {
			case <-finished:
			case <-time.After(100 * time.Millisecond):
			}
		})
	}

	require.NoError(t, c.List(context.Background()))
	require.NoError(t, <-newer)

	view.mu.Lock()
	defer view.mu.Unlock()
	require.Equal(t, shelf.RegionItems, view.list.State)
	require.Len(t, view.list.Cards, 1)
	require.Equal(t, "Fresh", view.list.Cards[0].Title)
}

func TestSave_InvalidFormMakesNoRequest(t *testing.T) {
	c, _, view := newController(t)

	forms := []shelf.Form{
		{Author: "Frank Herbert", Year: "1965"},
		{Title: "Dune", Year: "1965"},
		{Title: "Dune", Author: "Frank Herbert", Year: "soon"},
		{Title: "Dune", Author: "Frank Herbert", Year: "3000"},
	}
	for _, form := range forms {
		view.SetForm(form)
		err := c.Save(context.Background(), form)
		var verr *shelf.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, verr.Message, view.formError)
		require.Equal(t, form, view.form, "form values must be kept")
	}
	require.Empty(t, view.alerts)
}

func TestSelectThenSave_SendsExactFields(t *testing.T) {
	c, backend, view := newController(t)
	saved := dune
	saved.ID = 11
	saved.Status = catalog.StatusUnread

	gomock.InOrder(
		backend.EXPECT().Save(gomock.Any(), catalog.SaveRequest{
			ISBN:            "9780441013593",
			Title:           "Dune",
			Author:          "Frank Herbert",
			PublicationYear: 1965,
		}).Return(saved, nil),
		backend.EXPECT().List(gomock.Any()).Return([]catalog.Book{saved}, nil),
	)

	form := c.Select(dune)
	require.Equal(t, form, view.form)
	require.Equal(t, "1965", form.Year)

	require.NoError(t, c.Save(context.Background(), form))
	require.Equal(t, []string{shelf.MsgSaved}, view.alerts)
	require.Equal(t, 1, view.cleared)
	require.Equal(t, shelf.RegionBlank, view.results.State)
	require.Equal(t, shelf.RegionItems, view.list.State)
	require.Len(t, view.list.Cards, 1)
	require.True(t, view.list.Cards[0].CanMarkRead)
}

func TestSave_FailureAlertsDetailOrFallback(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "detail",
			err:  &catalog.APIError{Status: 400, Detail: "Book already exists"},
			want: "Failed to add book: Book already exists",
		},
		{
			name: "no detail",
			err:  &catalog.APIError{Status: 500, StatusText: "Internal Server Error"},
			want: "Failed to add book: Failed to add book",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, backend, view := newController(t)
			backend.EXPECT().Save(gomock.Any(), gomock.Any()).Return(catalog.Book{}, tt.err)

			err := c.Save(context.Background(), shelf.Form{Title: "Dune", Author: "Frank Herbert", Year: "1965"})
			require.Error(t, err)
			require.Equal(t, []string{tt.want}, view.alerts)
			require.Zero(t, view.cleared)
		})
	}
}

func TestList_States(t *testing.T) {
	c, backend, view := newController(t)
	backend.EXPECT().List(gomock.Any()).Return([]catalog.Book{}, nil)

	require.NoError(t, c.List(context.Background()))
	require.Equal(t, []shelf.RegionState{shelf.RegionLoading, shelf.RegionEmpty}, view.listHistory)
	require.Equal(t, shelf.MsgNoBooks, view.list.Message)
}

func TestList_FailureRendersInPlace(t *testing.T) {
	c, backend, view := newController(t)
	backend.EXPECT().List(gomock.Any()).Return(nil, &catalog.APIError{Status: 503, StatusText: "Service Unavailable"})

	require.Error(t, c.List(context.Background()))
	require.Equal(t, shelf.RegionError, view.list.State)
	require.Equal(t, "Failed to load books: Service Unavailable", view.list.Message)
}

func TestList_TransportFailure(t *testing.T) {
	c, backend, view := newController(t)
	backend.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	require.Error(t, c.List(context.Background()))
	require.Equal(t, "Failed to load books: connection refused", view.list.Message)
}

func TestMarkRead_RefreshesList(t *testing.T) {
	c, backend, view := newController(t)
	read := dune
	read.ID = 4
	read.Status = catalog.StatusRead

	gomock.InOrder(
		backend.EXPECT().MarkRead(gomock.Any(), int64(4)).Return(read, nil),
		backend.EXPECT().List(gomock.Any()).Return([]catalog.Book{read}, nil),
	)

	require.NoError(t, c.MarkRead(context.Background(), 4))
	require.Empty(t, view.alerts)
	require.False(t, view.list.Cards[0].CanMarkRead)
	require.Equal(t, "read", view.list.Cards[0].StatusKey)
}

func TestMarkRead_FailureAlerts(t *testing.T) {
	c, backend, view := newController(t)
	backend.EXPECT().MarkRead(gomock.Any(), int64(4)).Return(catalog.Book{}, &catalog.APIError{Status: 404})

	require.Error(t, c.MarkRead(context.Background(), 4))
	require.Equal(t, []string{"Failed to mark as read: Failed to update book"}, view.alerts)
}

func TestDelete_DeclinedMakesNoRequest(t *testing.T) {
	c, _, view := newController(t)

	var prompt string
	require.NoError(t, c.Delete(context.Background(), 7, func(p string) bool {
		prompt = p
		return false
	}))
	require.Equal(t, shelf.MsgConfirmDelete, prompt)
	require.NoError(t, c.Delete(context.Background(), 7, nil))
	require.Empty(t, view.alerts)
}

func TestDelete_NotFoundAlertsWithoutRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	view := mocks.NewMockView(ctrl)

	backend.EXPECT().Delete(gomock.Any(), int64(7)).Return(&catalog.APIError{Status: 404, StatusText: "Not Found", Detail: "not found"})
	view.EXPECT().Alert("Failed to delete book: not found")

	c, err := shelf.New(shelf.Options{Backend: backend, View: view})
	require.NoError(t, err)

	err = c.Delete(context.Background(), 7, func(string) bool { return true })
	apiErr, ok := catalog.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, 404, apiErr.Status)
}

func TestDelete_ConfirmedRefreshes(t *testing.T) {
	c, backend, view := newController(t)
	gomock.InOrder(
		backend.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil),
		backend.EXPECT().List(gomock.Any()).Return([]catalog.Book{}, nil),
	)

	require.NoError(t, c.Delete(context.Background(), 7, func(string) bool { return true }))
	require.Equal(t, shelf.RegionEmpty, view.list.State)
}
