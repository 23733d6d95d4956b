package configuration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkScenarios(t *testing.T) {
	cases := []struct {
		start string
		links [][2]int
		want  string
	}{
		{"1221", [][2]int{{2, 3}}, "1100"},
		{"120201", [][2]int{{1, 2}, {3, 5}}, "101000"},
		{"1002332", [][2]int{{0, 2}, {5, 6}}, "0012200"},
		{"12233", [][2]int{{2, 3}}, "12002"},
		{"0000", [][2]int{{1, 2}}, "0110"},
		{"0000", [][2]int{{0, 1}, {2, 3}}, "1122"},
		{"1221", [][2]int{{1, 2}}, "1001"},
		{"10220", [][2]int{{0, 1}, {3, 4}}, "01202"},
		{"1234432", [][2]int{{2, 3}, {5, 6}}, "1200200"},
		{"1202", [][2]int{{0, 1}}, "0001"},
	}

	for _, tc := range cases {
		t.Run(tc.start, func(t *testing.T) {
			cfg, err := Parse(tc.start)
			require.NoError(t, err)
			for _, l := range tc.links {
				cfg.Link(l[0], l[1])
			}
			require.Equal(t, tc.want, cfg.String())
		})
	}
}

func TestMaskScenario(t *testing.T) {
	cfg, err := Parse("01202")
	require.NoError(t, err)

	cfg.Link(0, 1)
	cfg.Mask(boolVec("10101"))
	require.Equal(t, "10202", cfg.String())

	cfg.Link(2, 3)
	cfg.Mask(boolVec("10011"))
	require.Equal(t, "10022", cfg.String())
}

func boolVec(digits string) []bool {
	out := make([]bool, len(digits))
	for i, d := range digits {
		out[i] = d == '1'
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	strs := []string{"1221", "120201", "1002332", "0000", "1202", "10022"}
	for _, s := range strs {
		cfg, err := Parse(s)
		require.NoError(t, err)
		require.Equal(t, s, cfg.String())
	}
}

func TestInvolution(t *testing.T) {
	cfg, err := Parse("1234432")
	require.NoError(t, err)
	cfg.Link(2, 3)
	cfg.Link(5, 6)

	for i := 0; i < cfg.Size(); i++ {
		p := cfg.Partner(i)
		if p == -1 {
			continue
		}
		require.Equal(t, i, cfg.Partner(p), "involution broken at %d", i)
	}
}

func TestLinkWouldCloseMatchesCloseCase(t *testing.T) {
	cfg, err := Parse("1221")
	require.NoError(t, err)

	wouldClose := cfg.LinkWouldClose(1, 2)
	cfg.Link(1, 2)
	closed := cfg.Partner(1) == -1 && cfg.Partner(2) == -1
	require.Equal(t, wouldClose, closed)
}

func TestMaskIdempotent(t *testing.T) {
	cfg, err := Parse("1221")
	require.NoError(t, err)
	keep := boolVec("1001")

	once := cfg.Clone()
	once.Mask(keep)

	twice := cfg.Clone()
	twice.Mask(keep)
	twice.Mask(keep)

	require.True(t, once.Equal(twice), "mask is not idempotent: once=%q twice=%q", once, twice)
}

func TestEqualAndHashAgree(t *testing.T) {
	a, err := Parse("1221")
	require.NoError(t, err)
	b, err := Parse("1221")
	require.NoError(t, err)
	c, err := Parse("1001")
	require.NoError(t, err)

	require.True(t, a.Equal(b), "expected equal configurations to compare equal")
	require.Equal(t, a.Hash(), b.Hash(), "equal configurations must hash equally")
	require.False(t, a.Equal(c), "expected distinct configurations to compare unequal")
}

func TestSelfPairSingleOccurrence(t *testing.T) {
	cfg := New([]int{1, 0, 0, 0})
	require.Equal(t, 0, cfg.Partner(0), "single occurrence should self-pair")
}

func TestThirdOccurrenceIgnoredWithoutDebugAssertions(t *testing.T) {
	old := DebugAssertions
	DebugAssertions = false
	defer func() { DebugAssertions = old }()

	cfg := New([]int{1, 1, 1})
	require.Equal(t, 1, cfg.Partner(0), "first two occurrences should pair")
	require.Equal(t, 0, cfg.Partner(1))
	require.Equal(t, -1, cfg.Partner(2), "third occurrence should stay NoPartner when assertions are off")
}

func TestThirdOccurrencePanicsWithDebugAssertions(t *testing.T) {
	old := DebugAssertions
	DebugAssertions = true
	defer func() { DebugAssertions = old }()

	require.Panics(t, func() { New([]int{1, 1, 1}) }, "expected panic on third occurrence under DebugAssertions")
}

func TestLinkNoOpOnExistingSelfPair(t *testing.T) {
	cfg := New([]int{1, 0, 0, 0})
	require.Equal(t, 0, cfg.Partner(0))
	cfg.Link(0, 0)
	require.Equal(t, 0, cfg.Partner(0), "link(a,a) on an existing self-pair must be idempotent")
}

func TestWideMirrorsFixedForSameInputs(t *testing.T) {
	labels := []int{1, 2, 2, 0, 3, 3, 1}
	wide := make([]int, len(labels))
	copy(wide, labels)
	for len(wide) <= FixedCapacity {
		wide = append(wide, 0)
	}

	fixed := New(labels)
	big := New(wide)

	_, ok := fixed.(*Fixed)
	require.True(t, ok, "expected Fixed for width %d", len(labels))
	_, ok = big.(*Wide)
	require.True(t, ok, "expected Wide for width %d", len(wide))

	for i := range labels {
		require.Equal(t, fixed.Partner(i), big.Partner(i), "column %d", i)
	}
}
