// Package ingest_test validates pattern compilation, line extraction,
// name interning, header skipping, and undirected doubling.
package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdraeger/networks/core"
	"github.com/mdraeger/networks/ingest"
)

func TestNewParser_BadPattern(t *testing.T) {
	_, err := ingest.NewParser(`(?P<from>[`)
	require.ErrorIs(t, err, ingest.ErrBadPattern)
}

func TestNewParser_MissingGroups(t *testing.T) {
	_, err := ingest.NewParser(`^(\w+)\s+(\w+)$`)
	require.ErrorIs(t, err, ingest.ErrMissingGroup)

	_, err = ingest.NewParser(`^(?P<from>\w+)$`)
	require.ErrorIs(t, err, ingest.ErrMissingGroup)
}

func TestParseLine_DefaultPattern(t *testing.T) {
	p, err := ingest.NewParser(ingest.DefaultPattern)
	require.NoError(t, err)
	names := ingest.NewNameTable()

	// A line in the shape the default pattern targets: two alnum names,
	// a decimal cost, trailing columns ignored.
	arc, err := p.ParseLine("nW0770230N0388068.nW0770230N0388073   000.0345 065 11 {DC}", names)
	require.NoError(t, err)
	require.Equal(t, core.NodeID(0), arc.From)
	require.Equal(t, core.NodeID(1), arc.To)
	require.InDelta(t, 0.0345, arc.Cost, 1e-12)
	require.Zero(t, arc.Capacity, "no cap group in the default pattern")
}

func TestParseLine_Mismatch(t *testing.T) {
	p, err := ingest.NewParser(`^(?P<from>\w+),(?P<to>\w+)$`)
	require.NoError(t, err)

	_, err = p.ParseLine("not a csv pair at all", ingest.NewNameTable())
	require.ErrorIs(t, err, ingest.ErrLineMismatch)
}

func TestNameTable_FirstSeenGetsNextID(t *testing.T) {
	names := ingest.NewNameTable()
	require.Equal(t, core.NodeID(0), names.Intern("C"))
	require.Equal(t, core.NodeID(1), names.Intern("A"))
	require.Equal(t, core.NodeID(0), names.Intern("C"), "re-interning keeps the id")
	require.Equal(t, core.NodeID(2), names.Intern("B"))
	require.Equal(t, 3, names.Len())

	id, ok := names.Lookup("A")
	require.True(t, ok)
	require.Equal(t, core.NodeID(1), id)

	_, ok = names.Lookup("missing")
	require.False(t, ok, "unknown name must be an explicit miss")

	name, ok := names.Name(2)
	require.True(t, ok)
	require.Equal(t, "B", name)

	_, ok = names.Name(3)
	require.False(t, ok, "the invalid sentinel has no name")
}

func TestReadArcs_SkipAndOrder(t *testing.T) {
	input := strings.Join([]string{
		"# header describing the file",
		"a,b,2.5",
		"b,c,1.5",
		"a,c,4.0",
	}, "\n")
	p, err := ingest.NewParser(`^(?P<from>\w+),(?P<to>\w+),(?P<cost>[\d.]+)$`)
	require.NoError(t, err)

	names := ingest.NewNameTable()
	arcs, err := ingest.ReadArcs(strings.NewReader(input), p, names, ingest.WithSkip(1))
	require.NoError(t, err)
	require.Len(t, arcs, 3)
	require.Equal(t, 3, names.Len())

	// a=0, b=1, c=2 in first-seen order.
	require.Equal(t, core.Arc{From: 0, To: 1, Cost: 2.5}, arcs[0])
	require.Equal(t, core.Arc{From: 1, To: 2, Cost: 1.5}, arcs[1])
	require.Equal(t, core.Arc{From: 0, To: 2, Cost: 4.0}, arcs[2])
}

func TestReadArcs_Undirected(t *testing.T) {
	p, err := ingest.NewParser(`^(?P<from>\w+) (?P<to>\w+) (?P<cost>[\d.]+) (?P<cap>[\d.]+)$`)
	require.NoError(t, err)

	names := ingest.NewNameTable()
	arcs, err := ingest.ReadArcs(strings.NewReader("x y 3.0 7.0"), p, names, ingest.WithUndirected())
	require.NoError(t, err)
	require.Len(t, arcs, 2)
	require.Equal(t, core.Arc{From: 0, To: 1, Cost: 3, Capacity: 7}, arcs[0])
	require.Equal(t, core.Arc{From: 1, To: 0, Cost: 3, Capacity: 7}, arcs[1])
}

func TestReadArcs_MismatchAborts(t *testing.T) {
	p, err := ingest.NewParser(`^(?P<from>\w+),(?P<to>\w+)$`)
	require.NoError(t, err)

	_, err = ingest.ReadArcs(strings.NewReader("a,b\ngarbage line\n"), p, ingest.NewNameTable())
	require.ErrorIs(t, err, ingest.ErrLineMismatch)
	require.Contains(t, err.Error(), "line 2")
}

func TestReadArcs_NegativeSkip(t *testing.T) {
	p, err := ingest.NewParser(`^(?P<from>\w+),(?P<to>\w+)$`)
	require.NoError(t, err)

	_, err = ingest.ReadArcs(strings.NewReader(""), p, ingest.NewNameTable(), ingest.WithSkip(-1))
	require.ErrorIs(t, err, ingest.ErrOptionViolation)
}
