// Package session implements the picker state machine: it owns the query,
// the ranked candidates, the selection and the termination state.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"fuzz/internal/domain"
	"fuzz/internal/logic"
)

// DefaultWindow is the number of visible rows when none is configured
const DefaultWindow = 10

// Options configures a Session
type Options struct {
	Window int // visible window size, DefaultWindow when < 1
	// ResetOnEdit moves the selection back to the best match after every
	// query edit. When false the selection is only clamped.
	ResetOnEdit bool
	Logger      *log.Logger
}

// Session coordinates one interactive picker run
type Session struct {
	ranker      logic.Ranker
	query       []rune
	selection   int
	window      int
	resetOnEdit bool
	state       domain.SessionState
	logger      *log.Logger
}

// New creates a running session over texts, ranked for an empty query
func New(texts []string, opts Options) *Session {
	return NewWithRanker(logic.NewCandidateRanker(texts), opts)
}

// NewWithRanker creates a running session over an existing ranker
func NewWithRanker(ranker logic.Ranker, opts Options) *Session {
	window := opts.Window
	if window < 1 {
		window = DefaultWindow
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		ranker:      ranker,
		window:      window,
		resetOnEdit: opts.ResetOnEdit,
		state:       domain.StateRunning,
		logger:      logger,
	}
	s.ranker.Rerank("")
	return s
}

// Handle applies one logical event and reports whether anything changed.
// Events received after the session terminated are dropped.
func (s *Session) Handle(ev domain.Event) bool {
	if s.state.Terminal() {
		return false
	}
	s.logger.Debug("event", "type", ev.Type(), "query", string(s.query), "selection", s.selection)

	switch e := ev.(type) {
	case domain.AppendCharEvent:
		s.query = append(s.query, e.Char)
		s.requery()
		return true

	case domain.BackspaceEvent:
		if len(s.query) == 0 {
			return false
		}
		s.query = s.query[:len(s.query)-1]
		s.requery()
		return true

	case domain.MoveSelectionUpEvent:
		top := s.visible() - 1
		if top < 0 || s.selection >= top {
			return false
		}
		s.selection++
		return true

	case domain.MoveSelectionDownEvent:
		if s.selection == 0 {
			return false
		}
		s.selection--
		return true

	case domain.ConfirmEvent:
		s.state = domain.StateFinished
		return true

	case domain.AbortEvent:
		s.state = domain.StateAborted
		return true
	}

	return false
}

// Resize changes the visible window size and clamps the selection into it
func (s *Session) Resize(window int) {
	if s.state.Terminal() {
		return
	}
	s.window = max(window, 1)
	s.clamp()
}

// State returns the current lifecycle state
func (s *Session) State() domain.SessionState {
	return s.state
}

// Done reports whether the session reached a terminal state
func (s *Session) Done() bool {
	return s.state.Terminal()
}

// Query returns the current query text
func (s *Session) Query() string {
	return string(s.query)
}

// Selection returns the selected index into the visible window, or
// domain.NoSelection when there are no candidates
func (s *Session) Selection() int {
	if s.visible() == 0 {
		return domain.NoSelection
	}
	return s.selection
}

// Snapshot returns a render-ready copy of the session
func (s *Session) Snapshot() domain.Snapshot {
	visible := s.visible()
	return domain.Snapshot{
		Query:      string(s.query),
		Candidates: s.ranker.Top(visible),
		Total:      s.ranker.Len(),
		Selection:  s.Selection(),
		Window:     s.window,
		State:      s.state,
	}
}

// Result returns the selected candidate text. ok is false while the session
// is running, after an abort, or when there was nothing to select.
func (s *Session) Result() (text string, ok bool) {
	if s.state != domain.StateFinished || s.visible() == 0 {
		return "", false
	}
	return s.ranker.Top(s.selection + 1)[s.selection].Text, true
}

func (s *Session) requery() {
	s.ranker.Rerank(string(s.query))
	if s.resetOnEdit {
		s.selection = 0
	}
	s.clamp()
}

// clamp keeps the selection inside [0, visible-1]
func (s *Session) clamp() {
	last := s.visible() - 1
	if s.selection > last {
		s.selection = last
	}
	if s.selection < 0 {
		s.selection = 0
	}
}

func (s *Session) visible() int {
	return min(s.window, s.ranker.Len())
}
