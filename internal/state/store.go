package state

import (
	"sync"
	"time"

	"github.com/five82/shelf/internal/shelf"
)

// maxAlerts bounds the retained alert history.
const maxAlerts = 50

// Alert is one transient notification raised by the controller.
type Alert struct {
	Seq     uint64
	Message string
	At      time.Time
}

// Snapshot represents the latest content of every display region.
type Snapshot struct {
	SearchError string
	Results     shelf.ResultsView
	// QueryRevision increments whenever the query input must be emptied.
	QueryRevision uint64

	Form shelf.Form
	// FormRevision increments whenever Form is replaced by the controller.
	FormRevision uint64
	FormError    string

	Shelf       shelf.ListView
	LastUpdated time.Time
	// ConsecutiveFailures counts list loads that ended in an error.
	ConsecutiveFailures int

	Alerts []Alert
}

// IsOffline returns true when the backend has failed several list loads in a
// row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// LatestAlert returns the newest alert, if any.
func (s Snapshot) LatestAlert() (Alert, bool) {
	if len(s.Alerts) == 0 {
		return Alert{}, false
	}
	return s.Alerts[len(s.Alerts)-1], true
}

// Store coordinates concurrent region updates. It implements shelf.View.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	alertSeq uint64
}

var _ shelf.View = (*Store)(nil)

func (s *Store) SetSearchError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SearchError = msg
}

func (s *Store) SetResults(results shelf.ResultsView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results.Cards = cloneSlice(results.Cards)
	s.snapshot.Results = results
}

func (s *Store) ClearQuery() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.QueryRevision++
}

func (s *Store) SetForm(form shelf.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Form = form
	s.snapshot.FormRevision++
}

func (s *Store) SetFormError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.FormError = msg
}

// SetShelf replaces the list region. Error and loaded states also update the
// failure counter and LastUpdated; the loading placeholder leaves them alone.
func (s *Store) SetShelf(list shelf.ListView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list.Cards = cloneSlice(list.Cards)
	s.snapshot.Shelf = list
	switch list.State {
	case shelf.RegionError:
		s.snapshot.ConsecutiveFailures++
		s.snapshot.LastUpdated = time.Now()
	case shelf.RegionEmpty, shelf.RegionItems:
		s.snapshot.ConsecutiveFailures = 0
		s.snapshot.LastUpdated = time.Now()
	}
}

func (s *Store) Alert(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alertSeq++
	s.snapshot.Alerts = append(s.snapshot.Alerts, Alert{Seq: s.alertSeq, Message: msg, At: time.Now()})
	if n := len(s.snapshot.Alerts); n > maxAlerts {
		s.snapshot.Alerts = append([]Alert(nil), s.snapshot.Alerts[n-maxAlerts:]...)
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Results.Cards = cloneSlice(s.snapshot.Results.Cards)
	snap.Shelf.Cards = cloneSlice(s.snapshot.Shelf.Cards)
	snap.Alerts = cloneSlice(s.snapshot.Alerts)
	return snap
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
