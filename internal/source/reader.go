// Package source reads candidate lines.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrInteractiveStdin is returned when stdin is a terminal instead of a pipe
var ErrInteractiveStdin = errors.New("no input: pipe candidate lines into stdin")

// ReadLines reads every line of r, trimming surrounding whitespace. Empty
// lines are kept as candidates. Neither the number nor the length of lines
// is limited.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSpace(line))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// ReadStdin reads candidates from f, refusing to block on an interactive terminal
func ReadStdin(f *os.File) ([]string, error) {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return nil, ErrInteractiveStdin
	}
	return ReadLines(f)
}
