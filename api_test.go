// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorDot(t *testing.T) {
	cases := []struct {
		name string
		a, b Vector
		want int
	}{
		{name: "Zero", a: Vector{}, b: Vector{1, 2, 3}, want: 0},
		{name: "Unit", a: Vector{1, 1, 1}, b: Vector{4, 5, 6}, want: 15},
		{name: "Reference", a: Vector{3, 9, 2}, b: Vector{7, 7, 10}, want: 104},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Dot(c.b))
			assert.Equal(t, c.want, c.b.Dot(c.a), "dot product must be commutative")
		})
	}
}

func TestBuyerValue(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.RegisterGroup(NewGroup("N0", Vector{7, 7, 10})))
	require.NoError(t, e.RegisterGroup(NewGroup("N1", Vector{2, 1, 1})))

	b := NewBuyer("H0", Vector{3, 9, 2}, []string{"N1", "N0"})
	require.NoError(t, e.RegisterBuyer(b))

	// 104 against N0, 17 against N1.
	s0, ok := b.Score("N0")
	require.True(t, ok)
	assert.Equal(t, 104, s0)
	s1, ok := b.Score("N1")
	require.True(t, ok)
	assert.Equal(t, 17, s1)
	assert.Equal(t, 121, b.Value())

	_, ok = b.Score("N2")
	assert.False(t, ok, "score must exist only for listed preferences")
}

func TestGroupScoreboardOrder(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.RegisterGroup(NewGroup("N0", Vector{1, 1, 1})))

	require.NoError(t, e.RegisterBuyer(NewBuyer("H0", Vector{1, 2, 3}, []string{"N0"})))
	require.NoError(t, e.RegisterBuyer(NewBuyer("H1", Vector{9, 9, 9}, []string{"N0"})))
	require.NoError(t, e.RegisterBuyer(NewBuyer("H2", Vector{0, 0, 1}, []string{"N0"})))

	g := e.groups["N0"]
	want := []ScoreEntry{{"H0", 6}, {"H1", 27}, {"H2", 1}}
	assert.Equal(t, want, g.Scoreboard(), "scoreboard keeps registration order")

	// Scoreboard returns a copy; mutating it must not reach the group.
	board := g.Scoreboard()
	board[0].Score = -1
	assert.Equal(t, want, g.Scoreboard())
}
