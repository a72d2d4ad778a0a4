package views

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"fuzz/internal/domain"
)

const (
	selectedMarker = ">"
	ellipsis       = "…"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Snapshot   domain.Snapshot
	Width      int // 0 when the terminal size is not known yet
	Prompt     string
	ShowScores bool
	ShowHelp   bool
	HelpModel  help.Model
	KeyMap     help.KeyMap
}

// Renderer draws a snapshot. Output depends on the ViewState alone, so
// rendering the same state twice yields the same frame.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view: candidates bottom-up with the best match
// directly above the prompt, then the prompt and an optional help line.
func (r *Renderer) Render(state ViewState) string {
	snap := state.Snapshot
	var b strings.Builder

	for i := len(snap.Candidates) - 1; i >= 0; i-- {
		b.WriteString(r.renderCandidate(snap.Candidates[i], i == snap.Selection, state))
		b.WriteString("\n")
	}

	count := fmt.Sprintf("  %d/%d", len(snap.Candidates), snap.Total)
	b.WriteString(r.styles.Count.Render(count))
	b.WriteString("\n")

	b.WriteString(r.styles.Prompt.Render(state.Prompt))
	b.WriteString(r.styles.Query.Render(snap.Query))
	b.WriteString(r.styles.Cursor.Render(" "))

	if state.ShowHelp && state.KeyMap != nil {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	return b.String()
}

func (r *Renderer) renderCandidate(c domain.Candidate, selected bool, state ViewState) string {
	marker := " "
	if selected {
		marker = r.styles.Marker.Render(selectedMarker)
	}

	suffix := ""
	if state.ShowScores {
		suffix = r.styles.Score.Render(fmt.Sprintf(" (%d)", c.Score))
	}

	text := displayText(c.Text)
	if state.Width > 0 {
		// marker, separating space and suffix share the line with the text
		room := state.Width - 2 - lipgloss.Width(suffix)
		if room < 1 {
			room = 1
		}
		text = runewidth.Truncate(text, room, ellipsis)
	}

	if selected {
		text = r.styles.SelectionBg.Render(text)
	} else {
		text = r.styles.Candidate.Render(text)
	}
	return marker + " " + text + suffix
}

// displayText removes escape sequences and control characters that would
// move the cursor or break the row. Tabs become single spaces.
func displayText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case !unicode.IsPrint(r):
			return -1
		}
		return r
	}, s)
}
