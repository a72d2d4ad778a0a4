// Package input translates terminal key messages into logical session events.
package input

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"fuzz/internal/domain"
)

// Mapper is the only place raw keys are interpreted
type Mapper struct {
	keys KeyMap
	// legacy forwards unrecognised control keys as literal characters
	legacy bool
}

// NewMapper creates a mapper. With legacy set, keys that match no binding are
// appended to the query instead of being ignored.
func NewMapper(legacy bool) *Mapper {
	return &Mapper{
		keys:   DefaultKeyMap(),
		legacy: legacy,
	}
}

// KeyMap returns the bindings used by the mapper
func (m *Mapper) KeyMap() KeyMap {
	return m.keys
}

// Map returns the events for one key message. A pasted or multi-rune message
// yields one AppendChar per scalar; an ignored key yields none.
func (m *Mapper) Map(msg tea.KeyMsg) []domain.Event {
	switch {
	case key.Matches(msg, m.keys.Abort):
		return []domain.Event{domain.AbortEvent{}}
	case key.Matches(msg, m.keys.Confirm):
		return []domain.Event{domain.ConfirmEvent{}}
	case key.Matches(msg, m.keys.Backspace):
		return []domain.Event{domain.BackspaceEvent{}}
	case key.Matches(msg, m.keys.Up):
		return []domain.Event{domain.MoveSelectionUpEvent{}}
	case key.Matches(msg, m.keys.Down):
		return []domain.Event{domain.MoveSelectionDownEvent{}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []domain.Event{domain.AppendCharEvent{Char: ' '}}
	case tea.KeyRunes:
		if msg.Alt && !m.legacy {
			return nil
		}
		return appendRunes(msg.Runes)
	}

	// control codes map onto their KeyType value; everything else is negative
	if m.legacy && msg.Type >= 0 {
		return []domain.Event{domain.AppendCharEvent{Char: rune(msg.Type)}}
	}
	return nil
}

// EndOfInput returns the events for a key stream that has been closed
func (m *Mapper) EndOfInput() []domain.Event {
	return []domain.Event{domain.AbortEvent{}}
}

func appendRunes(runes []rune) []domain.Event {
	events := make([]domain.Event, 0, len(runes))
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			continue
		}
		events = append(events, domain.AppendCharEvent{Char: r})
	}
	return events
}
