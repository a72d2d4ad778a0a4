package domain

// Candidate represents one selectable input line
type Candidate struct {
	Text  string
	Score int // similarity to the current query, recomputed on every query change
}

// SessionState represents the lifecycle of a picker session
type SessionState int

const (
	StateRunning SessionState = iota
	StateFinished
	StateAborted
)

func (s SessionState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further events will be processed
func (s SessionState) Terminal() bool {
	return s == StateFinished || s == StateAborted
}

// NoSelection marks a Snapshot whose candidate list is empty
const NoSelection = -1

// Snapshot is a render-ready copy of the session state
type Snapshot struct {
	Query      string
	Candidates []Candidate // visible window of the ranked list, best match first
	Total      int         // size of the full ranked list
	Selection  int         // index into Candidates, NoSelection when empty
	Window     int         // configured visible window size
	State      SessionState
}

// HasSelection reports whether the snapshot points at a candidate
func (s Snapshot) HasSelection() bool {
	return s.Selection != NoSelection && s.Selection < len(s.Candidates)
}
