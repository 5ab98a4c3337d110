package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minspan/core"
	"github.com/katalvlaran/minspan/internal/prompt"
)

// runSession feeds script through a Session and returns the graph plus the
// transcript written to the output side.
func runSession(t *testing.T, script string) (*core.Graph, string, error) {
	t.Helper()

	var out strings.Builder
	s := prompt.NewSession(strings.NewReader(script), &out)
	g, err := s.ReadGraph()

	return g, out.String(), err
}

// TestReadGraph_CleanScript verifies the happy path: counts then edges, no
// corrections needed.
func TestReadGraph_CleanScript(t *testing.T) {
	g, _, err := runSession(t, "4\n4\n0 1 1\n1 2 2\n2 3 3\n0 3 10\n")
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 0, To: 3, Weight: 10},
	}, g.Edges())
}

// TestReadGraph_RejectsAndReasks interleaves one bad line of every kind with
// the clean script; the resulting graph must be identical and every bad line
// must have produced a complaint.
func TestReadGraph_RejectsAndReasks(t *testing.T) {
	script := strings.Join([]string{
		"four",   // non-integer vertex count
		"0",      // below minimum
		"4",      // accepted
		"-1",     // negative edge count
		"4",      // accepted
		"0 1",    // too few fields
		"0 1 x",  // non-integer weight
		"0 0 5",  // self-loop
		"0 9 5",  // endpoint out of range
		"0 1 -2", // negative weight
		"0 1 1",  // accepted
		"1 2 2",  // accepted
		"2 3 3",  // accepted
		"0 3 10", // accepted
	}, "\n") + "\n"

	g, transcript, err := runSession(t, script)
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 0, To: 3, Weight: 10},
	}, g.Edges())

	// Each rejection class left its message in the transcript.
	assert.Contains(t, transcript, "enter an integer >= 1")
	assert.Contains(t, transcript, "enter an integer >= 0")
	assert.Contains(t, transcript, "enter three integers: u v w")
	assert.Contains(t, transcript, core.ErrSelfLoop.Error())
	assert.Contains(t, transcript, core.ErrVertexOutOfRange.Error())
	assert.Contains(t, transcript, core.ErrNegativeWeight.Error())
}

// TestReadGraph_ZeroEdges verifies that an edge count of zero is legal and
// asks no edge questions.
func TestReadGraph_ZeroEdges(t *testing.T) {
	g, transcript, err := runSession(t, "2\n0\n")
	require.NoError(t, err)

	assert.Equal(t, 2, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.NotContains(t, transcript, "Edge 1")
}

// TestReadGraph_InputClosed verifies the EOF failure modes at each protocol
// stage.
func TestReadGraph_InputClosed(t *testing.T) {
	for name, script := range map[string]string{
		"immediately":       "",
		"after vertices":    "4\n",
		"mid edge list":     "4\n2\n0 1 1\n",
		"after a rejection": "4\n1\n0 0 5\n",
	} {
		t.Run(name, func(t *testing.T) {
			g, _, err := runSession(t, script)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, prompt.ErrInputClosed)
		})
	}
}
