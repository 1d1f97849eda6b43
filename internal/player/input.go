package player

import (
	"bufio"
	"io"
	"strings"
)

// Input is a line-oriented command source. The controller and human
// players read from the same Input so commands interleave in order.
type Input struct {
	scanner *bufio.Scanner
	line    int
}

// NewInput creates an Input reading from r.
func NewInput(r io.Reader) *Input {
	return &Input{scanner: bufio.NewScanner(r)}
}

// Next returns the whitespace-separated words of the next non-blank line.
// It returns false at end of input.
func (in *Input) Next() ([]string, bool) {
	for in.scanner.Scan() {
		in.line++
		if fields := strings.Fields(in.scanner.Text()); len(fields) > 0 {
			return fields, true
		}
	}
	return nil, false
}

// Line returns the 1-based number of the line last returned by Next.
func (in *Input) Line() int {
	return in.line
}

// Err returns the first non-EOF read error.
func (in *Input) Err() error {
	return in.scanner.Err()
}
