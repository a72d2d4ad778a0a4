package domain

// EventType represents the type of logical session event
type EventType string

// Event types
const (
	EventAppendChar        EventType = "AppendChar"
	EventBackspace         EventType = "Backspace"
	EventMoveSelectionUp   EventType = "MoveSelectionUp"
	EventMoveSelectionDown EventType = "MoveSelectionDown"
	EventConfirm           EventType = "Confirm"
	EventAbort             EventType = "Abort"
)

// Event is the interface for all logical session events
type Event interface {
	Type() EventType
}

// AppendCharEvent appends one scalar to the query
type AppendCharEvent struct {
	Char rune
}

func (e AppendCharEvent) Type() EventType { return EventAppendChar }

// BackspaceEvent removes the last scalar of the query
type BackspaceEvent struct{}

func (e BackspaceEvent) Type() EventType { return EventBackspace }

// MoveSelectionUpEvent moves the selection away from the best match
type MoveSelectionUpEvent struct{}

func (e MoveSelectionUpEvent) Type() EventType { return EventMoveSelectionUp }

// MoveSelectionDownEvent moves the selection toward the best match
type MoveSelectionDownEvent struct{}

func (e MoveSelectionDownEvent) Type() EventType { return EventMoveSelectionDown }

// ConfirmEvent finishes the session with the current selection
type ConfirmEvent struct{}

func (e ConfirmEvent) Type() EventType { return EventConfirm }

// AbortEvent cancels the session
type AbortEvent struct{}

func (e AbortEvent) Type() EventType { return EventAbort }
