// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsBeforeRun(t *testing.T) {
	e := newRefEngine(t)
	_, err := e.Results()
	require.ErrorIs(t, err, ErrNoAssignment)
}

func TestResultsOrdering(t *testing.T) {
	e := newRefEngine(t)
	require.NoError(t, e.Run())

	results, err := e.Results()
	require.NoError(t, err)
	require.Len(t, results, len(refGroups))

	names := make([]string, len(results))
	for i, gr := range results {
		names[i] = gr.Group
	}
	assert.True(t, sort.StringsAreSorted(names), "groups must be ordered by name: %v", names)

	for _, gr := range results {
		for i := 1; i < len(gr.Buyers); i++ {
			assert.GreaterOrEqual(t, gr.Buyers[i-1].Score, gr.Buyers[i].Score,
				"scores within %s must be non-increasing", gr.Group)
		}
	}
}

func TestResultsScores(t *testing.T) {
	e := newRefEngine(t)
	require.NoError(t, e.Run())

	results, err := e.Results()
	require.NoError(t, err)

	want := []GroupResult{
		{Group: "N0", Buyers: []ScoreEntry{{"H5", 161}, {"H11", 154}, {"H2", 128}, {"H4", 122}}},
		{Group: "N1", Buyers: []ScoreEntry{{"H9", 23}, {"H8", 21}, {"H7", 20}, {"H1", 18}}},
		{Group: "N2", Buyers: []ScoreEntry{{"H6", 128}, {"H3", 120}, {"H10", 86}, {"H0", 83}}},
	}
	assert.Equal(t, want, results)
}

func TestResultsReadOnly(t *testing.T) {
	e := newRefEngine(t)
	require.NoError(t, e.Run())

	first, err := e.Results()
	require.NoError(t, err)

	// Mutating a projection must not leak back into the engine.
	first[0].Buyers[0] = ScoreEntry{"bogus", -1}

	second, err := e.Results()
	require.NoError(t, err)
	assert.Equal(t, ScoreEntry{"H5", 161}, second[0].Buyers[0])
}
