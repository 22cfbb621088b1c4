package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/shelf"
	"github.com/five82/shelf/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewSearch View = iota
	ViewForm
	ViewShelf
	ViewActivity
)

var viewOrder = []View{ViewSearch, ViewForm, ViewShelf, ViewActivity}

// Title returns the label shown in the command bar.
func (v View) Title() string {
	switch v {
	case ViewForm:
		return "Add Book"
	case ViewShelf:
		return "My Books"
	case ViewActivity:
		return "Activity"
	default:
		return "Search"
	}
}

// Actions is the controller surface the UI drives. *shelf.Controller
// implements it.
type Actions interface {
	Search(ctx context.Context, query string) error
	Select(book catalog.Book) shelf.Form
	Save(ctx context.Context, form shelf.Form) error
	List(ctx context.Context) error
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64, confirm shelf.ConfirmFunc) error
}

var _ Actions = (*shelf.Controller)(nil)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Actions     Actions
	Store       *state.Store
	LogPath     string
	APIURL      string
	ThemeName   string
	ListOnStart bool
	PrefsPath   string
	Tick        time.Duration
	Logger      *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	actions     Actions
	store       *state.Store
	logPath     string
	apiURL      string
	prefsPath   string
	listOnStart bool
	tick        time.Duration
	log         *zap.Logger
	keys        keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Search state
	queryInput   textinput.Model
	queryFocused bool
	queryRev     uint64
	resultRow    int

	// Form state
	formInputs   [formFieldCount]textinput.Model
	formSource   [formFieldCount]fieldSource
	formFocusIdx int
	formRev      uint64

	// Shelf state
	shelfRow int

	// Alert line
	alertSeen uint64
	alert     string
	alertAt   time.Time

	// Activity state
	activityViewport viewport.Model
	activity         activityState

	showHelp bool
	modal    Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m := Model{
		ctx:         ctx,
		actions:     opts.Actions,
		store:       opts.Store,
		logPath:     opts.LogPath,
		apiURL:      opts.APIURL,
		prefsPath:   prefsPath,
		listOnStart: opts.ListOnStart,
		tick:        tick,
		log:         log.Named("ui"),
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewSearch,
		activity:    activityState{follow: true},
	}
	m.initQueryInput()
	m.initFormInputs()
	m.focusQuery()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tickCmd(m.tick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.listOnStart {
		cmds = append(cmds, m.listCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeInputs()
		m.updateActivityViewport()
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.log.Debug("action finished with error", zap.String("action", msg.action), zap.Error(msg.err))
		}
		if m.store == nil {
			return m, nil
		}
		return m, fetchSnapshotCmd(m.store)

	case activityMsg:
		m.handleActivity(msg)
		return m, nil
	}

	// Cursor blink and other input internals go to whichever field is focused.
	return m.updateFocusedInput(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		return m.setView(m.nextView(1))
	case key.Matches(msg, m.keys.ShiftTab):
		return m.setView(m.nextView(-1))
	}

	if m.typing() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.ViewSearch):
		return m.setView(ViewSearch)
	case key.Matches(msg, m.keys.ViewForm):
		return m.setView(ViewForm)
	case key.Matches(msg, m.keys.ViewShelf):
		return m.setView(ViewShelf)
	case key.Matches(msg, m.keys.ViewActivity):
		return m.setView(ViewActivity)
	}

	switch m.currentView {
	case ViewSearch:
		return m.handleResultsKey(msg)
	case ViewShelf:
		return m.handleShelfKey(msg)
	case ViewActivity:
		return m.handleActivityKey(msg)
	}
	return m, nil
}

// typing reports whether a text input owns the keyboard.
func (m Model) typing() bool {
	return m.currentView == ViewForm || (m.currentView == ViewSearch && m.queryFocused)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.currentView == ViewForm {
		return m.handleFormKey(msg)
	}
	return m.handleQueryKey(msg)
}

func (m Model) nextView(step int) View {
	idx := 0
	for i, v := range viewOrder {
		if v == m.currentView {
			idx = i
			break
		}
	}
	return viewOrder[(idx+step+len(viewOrder))%len(viewOrder)]
}

// setView switches views. Entering My Books always fetches the list fresh.
func (m Model) setView(v View) (tea.Model, tea.Cmd) {
	m.currentView = v
	m.blurAll()

	switch v {
	case ViewSearch:
		if len(m.snapshot.Results.Cards) == 0 {
			return m, m.focusQuery()
		}
		return m, nil
	case ViewForm:
		return m, m.focusFormField(m.formFocusIdx)
	case ViewShelf:
		return m, m.listCmd()
	case ViewActivity:
		m.activity.lastRefresh = time.Now()
		return m, m.refreshActivity()
	}
	return m, nil
}

func (m *Model) blurAll() {
	m.queryFocused = false
	m.queryInput.Blur()
	for i := range m.formInputs {
		m.formInputs[i].Blur()
	}
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.currentView == ViewForm:
		m.formInputs[m.formFocusIdx], cmd = m.formInputs[m.formFocusIdx].Update(msg)
	case m.currentView == ViewSearch && m.queryFocused:
		m.queryInput, cmd = m.queryInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	current := prefs.Load(m.prefsPath)
	current.Theme = m.theme.Name
	if err := prefs.Save(m.prefsPath, current); err != nil {
		m.log.Warn("save prefs failed", zap.Error(err))
	}
}

// handleTick re-reads the store, expires the alert and follows the activity log.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.tick)}

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.alert != "" && now.Sub(m.alertAt) > AlertTTL {
		m.alert = ""
	}
	if m.currentView == ViewActivity && m.activity.follow && now.Sub(m.activity.lastRefresh) >= ActivityRefreshEvery {
		m.activity.lastRefresh = now
		if cmd := m.refreshActivity(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// applySnapshot copies store state into the model. Query and form inputs are
// only overwritten when the controller asked for it.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.lastUpdated = time.Now()

	if snap.QueryRevision != m.queryRev {
		m.queryRev = snap.QueryRevision
		m.queryInput.SetValue("")
		m.resultRow = 0
	}
	if snap.FormRevision != m.formRev {
		m.formRev = snap.FormRevision
		m.setFormInputs(snap.Form)
	}
	if latest, ok := snap.LatestAlert(); ok && latest.Seq > m.alertSeen {
		m.alertSeen = latest.Seq
		m.alert = latest.Message
		m.alertAt = latest.At
	}

	m.resultRow = clampRow(m.resultRow, len(snap.Results.Cards))
	m.shelfRow = clampRow(m.shelfRow, len(snap.Shelf.Cards))
}

func clampRow(row, count int) int {
	if row >= count {
		row = count - 1
	}
	if row < 0 {
		row = 0
	}
	return row
}

// moveRow applies a navigation key to row and reports whether it matched.
func (m Model) moveRow(msg tea.KeyMsg, row, count int) (int, bool) {
	switch {
	case key.Matches(msg, m.keys.Down):
		return clampRow(row+1, count), true
	case key.Matches(msg, m.keys.Up):
		return clampRow(row-1, count), true
	case key.Matches(msg, m.keys.Top):
		return 0, true
	case key.Matches(msg, m.keys.Bottom):
		return clampRow(count-1, count), true
	}
	return row, false
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type actionDoneMsg struct {
	action string
	err    error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// actionCmd runs fn off the UI goroutine. The controller renders the outcome
// into the store; the returned message only triggers a re-read.
func actionCmd(ctx context.Context, action string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(ctx)}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	if m.actions == nil {
		return nil
	}
	actions := m.actions
	return actionCmd(m.ctx, "search", func(ctx context.Context) error {
		return actions.Search(ctx, query)
	})
}

func (m Model) saveCmd(form shelf.Form) tea.Cmd {
	if m.actions == nil {
		return nil
	}
	actions := m.actions
	return actionCmd(m.ctx, "save", func(ctx context.Context) error {
		return actions.Save(ctx, form)
	})
}

func (m Model) listCmd() tea.Cmd {
	if m.actions == nil {
		return nil
	}
	actions := m.actions
	return actionCmd(m.ctx, "list", func(ctx context.Context) error {
		return actions.List(ctx)
	})
}

func (m Model) markReadCmd(id int64) tea.Cmd {
	if m.actions == nil {
		return nil
	}
	actions := m.actions
	return actionCmd(m.ctx, "mark read", func(ctx context.Context) error {
		return actions.MarkRead(ctx, id)
	})
}

// deleteCmd hands the user's answer to the controller as its confirmation.
func (m Model) deleteCmd(id int64, confirmed bool) tea.Cmd {
	if m.actions == nil {
		return nil
	}
	actions := m.actions
	return actionCmd(m.ctx, "delete", func(ctx context.Context) error {
		return actions.Delete(ctx, id, func(string) bool { return confirmed })
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
