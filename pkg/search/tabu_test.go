package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Tabu aging: with keep_tenure=2, forbid_tenure=2, after three
// AcceptNeighbor calls, only entries stamped within the last two cycles
// remain in each list (spec §8 scenario 6).
func TestTabuAging(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(0, 5, "v")
	ts := NewTabuSearch([]*IntVar{v}, v, false, 1, 2, 2, 1.0)
	ts.EnterSearch(s)

	ts.keep = []tabuEntry{{v: v, value: 0, stamp: 0}}
	ts.forbid = []tabuEntry{{v: v, value: 5, stamp: 0}}

	ts.AcceptNeighbor(s) // stamp_ 0 -> 1
	ts.keep = append(ts.keep, tabuEntry{v: v, value: 1, stamp: 1})
	ts.forbid = append(ts.forbid, tabuEntry{v: v, value: 4, stamp: 1})

	ts.AcceptNeighbor(s) // stamp_ 1 -> 2
	ts.keep = append(ts.keep, tabuEntry{v: v, value: 2, stamp: 2})
	ts.forbid = append(ts.forbid, tabuEntry{v: v, value: 3, stamp: 2})

	ts.AcceptNeighbor(s) // ages with stamp_==2 before incrementing to 3: drops the stamp-0 entries

	// Entry stamped 0 (age 2 at aging time, >= tenure) must have been dropped.
	for _, e := range ts.keep {
		require.NotEqual(t, int64(0), e.stamp)
	}
	for _, e := range ts.forbid {
		require.NotEqual(t, int64(0), e.stamp)
	}
	require.Len(t, ts.keep, 2)
	require.Len(t, ts.forbid, 2)
}

func TestTabuSearchEnterSearchResets(t *testing.T) {
	s := NewSolver(DefaultConfig(), nil)
	v := s.MakeIntVar(0, 5, "v")
	ts := NewTabuSearch([]*IntVar{v}, v, true, 1, 2, 2, 0.5)
	ts.keep = []tabuEntry{{v: v, value: 1, stamp: 5}}
	ts.stamp = 7
	ts.EnterSearch(s)
	require.Nil(t, ts.keep)
	require.Equal(t, int64(0), ts.stamp)
	require.False(t, ts.haveBest)
}
