package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"fuzz/internal/domain"
	"fuzz/internal/session"
	"fuzz/internal/ui/input"
	"fuzz/internal/ui/views"
)

// Options controls how a session is presented
type Options struct {
	Prompt     string
	Window     int // upper bound for visible rows
	ShowScores bool
	ShowHelp   bool
	Fullscreen bool
	LegacyKeys bool
	Logger     *log.Logger
}

// Terminal is the keyboard and screen a session is drawn on
type Terminal struct {
	In  io.Reader // nil reads keys from the controlling tty
	Out io.Writer // nil draws on stderr, leaving stdout for the result
}

// Model is the bubbletea model driving one session
type Model struct {
	session  *session.Session
	mapper   *input.Mapper
	renderer *views.Renderer
	help     help.Model
	opts     Options
	logger   *log.Logger

	width  int
	height int
}

// NewModel creates a model around a running session
func NewModel(sess *session.Session, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Window < 1 {
		opts.Window = session.DefaultWindow
	}
	return &Model{
		session:  sess,
		mapper:   input.NewMapper(opts.LegacyKeys),
		renderer: views.NewRenderer(),
		help:     help.New(),
		opts:     opts,
		logger:   logger,
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.session.Resize(m.windowFor(msg.Height))

	case tea.KeyMsg:
		return m, m.apply(m.mapper.Map(msg))

	case endOfInputMsg:
		m.logger.Debug("key stream closed")
		return m, m.apply(m.mapper.EndOfInput())
	}

	return m, nil
}

func (m *Model) apply(events []domain.Event) tea.Cmd {
	for _, ev := range events {
		if m.session.Done() {
			break
		}
		m.session.Handle(ev)
	}
	if m.session.Done() {
		m.logger.Debug("session ended", "state", m.session.State())
		return tea.Quit
	}
	return nil
}

// endOfInputMsg is sent once the key stream returns io.EOF
type endOfInputMsg struct{}

// eofReader reports the first io.EOF of the wrapped reader
type eofReader struct {
	r     io.Reader
	once  sync.Once
	onEOF func()
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if errors.Is(err, io.EOF) && e.onEOF != nil {
		e.once.Do(e.onEOF)
	}
	return n, err
}

// View renders the UI
func (m *Model) View() string {
	// the last frame is cleared so nothing is left behind on exit
	if m.session.Done() {
		return ""
	}
	return m.renderer.Render(views.ViewState{
		Snapshot:   m.session.Snapshot(),
		Width:      m.width,
		Prompt:     m.opts.Prompt,
		ShowScores: m.opts.ShowScores,
		ShowHelp:   m.opts.ShowHelp,
		HelpModel:  m.help,
		KeyMap:     m.mapper.KeyMap(),
	})
}

// windowFor returns how many rows fit above the prompt on a screen of the given height
func (m *Model) windowFor(height int) int {
	chrome := 2 // count line and prompt
	if m.opts.ShowHelp {
		chrome++
	}
	return min(m.opts.Window, max(height-chrome, 1))
}

// Run takes over the terminal until the session reaches a terminal state.
// The terminal is restored before Run returns on every path. A session that
// did not finish on its own is aborted.
func Run(ctx context.Context, sess *session.Session, term Terminal, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	var in *eofReader
	if term.In != nil {
		in = &eofReader{r: term.In}
		programOpts = append(programOpts, tea.WithInput(in))
	} else {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	out := term.Out
	if out == nil {
		out = os.Stderr
	}
	programOpts = append(programOpts, tea.WithOutput(out))
	if opts.Fullscreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	model := NewModel(sess, opts)
	program := tea.NewProgram(model, programOpts...)
	if in != nil {
		// keys already read are queued ahead of this message
		in.onEOF = func() { program.Send(endOfInputMsg{}) }
	}
	_, err := program.Run()

	if !sess.Done() {
		sess.Handle(domain.AbortEvent{})
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramKilled), errors.Is(err, tea.ErrInterrupted):
		model.logger.Info("session interrupted", "err", err)
		return nil
	default:
		return fmt.Errorf("terminal session failed: %w", err)
	}
}
