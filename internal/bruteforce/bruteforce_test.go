package bruteforce_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurajamming/hamiltonpaths/grid"
	"github.com/aurajamming/hamiltonpaths/internal/bruteforce"
)

func TestCount_StraightLine(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("3 1\n2 0 3"))
	require.NoError(t, err)
	got := bruteforce.Count(g)
	require.EqualValues(t, 1, got.Int64(), "expected exactly one path")
}

func TestCount_SquareCycle(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("2 2\n0 0\n0 0"))
	require.NoError(t, err)
	got := bruteforce.Count(g)
	require.EqualValues(t, 1, got.Int64(), "a 2x2 grid has exactly one Hamiltonian cycle")
}

func TestCount_NoPathAroundObstacle(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("3 1\n2 1 3"))
	require.NoError(t, err)
	got := bruteforce.Count(g)
	require.Zero(t, got.Sign(), "expected zero paths through a deleted cell")
}

func TestCount_AllDeleted(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("1 1\n1"))
	require.NoError(t, err)
	got := bruteforce.Count(g)
	require.EqualValues(t, 1, got.Int64(), "an all-deleted grid has exactly one (empty) path system")
}
