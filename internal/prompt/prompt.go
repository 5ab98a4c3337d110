// Package prompt implements the interactive graph-entry protocol: it asks
// for a vertex count, an edge count, then one "u v w" triple per edge, and
// re-asks whenever a line fails validation. The algorithmic packages only
// ever see the validated Graph it produces.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/minspan/core"
)

// ErrInputClosed reports that the input ended before the protocol completed.
var ErrInputClosed = errors.New("prompt: input closed before graph was complete")

// Session drives one interactive graph entry over an input/output pair.
// It holds no state beyond the scanner position and is not safe for
// concurrent use; the CLI creates one Session per run.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewSession wraps in and out into a Session.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

// ReadGraph runs the full protocol and returns the validated Graph.
//
// Every malformed entry (non-integer, out-of-range endpoint, self-loop,
// negative weight) is reported on the output and the same question is asked
// again; a bad line never reaches the Graph. The only terminal failures are
// I/O errors and ErrInputClosed.
func (s *Session) ReadGraph() (*core.Graph, error) {
	n, err := s.readCount("Number of vertices: ", 1)
	if err != nil {
		return nil, err
	}

	m, err := s.readCount("Number of edges: ", 0)
	if err != nil {
		return nil, err
	}

	g, err := core.New(n)
	if err != nil {
		// Unreachable: readCount already enforced n >= 1.
		return nil, err
	}

	// Collect exactly m accepted edges; rejected lines do not count.
	for i := 0; i < m; {
		u, v, w, readErr := s.readTriple(fmt.Sprintf("Edge %d (u v w): ", i+1))
		if readErr != nil {
			return nil, readErr
		}
		if addErr := g.AddEdge(u, v, w); addErr != nil {
			fmt.Fprintf(s.out, "invalid edge: %v\n", addErr)
			continue
		}
		i++
	}

	return g, nil
}

// readLine prints label and returns the next trimmed input line.
func (s *Session) readLine(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", ErrInputClosed
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// readCount asks until it gets an integer >= min.
func (s *Session) readCount(label string, min int) (int, error) {
	for {
		line, err := s.readLine(label)
		if err != nil {
			return 0, err
		}

		v, convErr := strconv.Atoi(line)
		if convErr != nil || v < min {
			fmt.Fprintf(s.out, "enter an integer >= %d\n", min)
			continue
		}

		return v, nil
	}
}

// readTriple asks until it gets three whitespace-separated integers.
// Range, loop and weight checks happen later, in core.Graph.AddEdge.
func (s *Session) readTriple(label string) (int, int, int64, error) {
	for {
		line, err := s.readLine(label)
		if err != nil {
			return 0, 0, 0, err
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			fmt.Fprintln(s.out, "enter three integers: u v w")
			continue
		}

		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		w, errW := strconv.ParseInt(fields[2], 10, 64)
		if errU != nil || errV != nil || errW != nil {
			fmt.Fprintln(s.out, "enter three integers: u v w")
			continue
		}

		return u, v, w, nil
	}
}
