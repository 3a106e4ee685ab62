// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefmatch assigns a fixed population of buyers to a fixed set
// of equal-capacity groups, using per-pair compatibility scores and each
// buyer's ranked preference list.
package prefmatch

import "errors"

// Errors reported by the engine. All of them are precondition
// violations: nothing is retried internally, and a failed run never
// leaves a partial assignment behind.
var (
	ErrDuplicateKey     = errors.New("prefmatch: duplicate key")
	ErrUnknownGroup     = errors.New("prefmatch: unknown group reference")
	ErrNoGroups         = errors.New("prefmatch: no groups registered")
	ErrCapacityMismatch = errors.New("prefmatch: buyer count not divisible by group count")
	ErrOutOfPreferences = errors.New("prefmatch: preference list exhausted")
	ErrNoAssignment     = errors.New("prefmatch: no completed assignment")
)

// VectorLen is the number of components in an attribute vector.
const VectorLen = 3

// Vector is a fixed-length attribute vector. The components are
// conventionally efficiency, water and resilience, in that order; the
// engine only ever combines two vectors through Dot.
type Vector [VectorLen]int

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) int {
	s := 0
	for i := 0; i < VectorLen; i++ {
		s += v[i] * o[i]
	}
	return s
}

// ScoreEntry records one buyer's score against one group.
type ScoreEntry struct {
	Buyer string
	Score int
}

// Group is a capacity-bounded allocation target.
type Group struct {
	Name  string
	Attrs Vector

	scoreboard []ScoreEntry
}

// NewGroup returns a group with the given unique name and attributes.
func NewGroup(name string, attrs Vector) *Group {
	return &Group{Name: name, Attrs: attrs}
}

// Scoreboard returns the scores of every buyer that listed the group as
// a preference, in buyer registration order.
func (g *Group) Scoreboard() []ScoreEntry {
	entries := make([]ScoreEntry, len(g.scoreboard))
	copy(entries, g.scoreboard)
	return entries
}

// Buyer is an entity to be assigned to exactly one group. Prefs lists
// group names in strict descending priority and must not contain
// duplicates.
type Buyer struct {
	Name  string
	Attrs Vector
	Prefs []string

	scores map[string]int
}

// NewBuyer returns a buyer with the given unique name, attributes and
// ranked preference list.
func NewBuyer(name string, attrs Vector, prefs []string) *Buyer {
	return &Buyer{
		Name:   name,
		Attrs:  attrs,
		Prefs:  prefs,
		scores: make(map[string]int, len(prefs)),
	}
}

// Score returns the buyer's cached score for the named group. It is
// populated during registration, once per preferred group.
func (b *Buyer) Score(group string) (int, bool) {
	score, ok := b.scores[group]
	return score, ok
}

// Value returns the sum of the buyer's scores across all of its listed
// preferences.
func (b *Buyer) Value() int {
	v := 0
	for _, name := range b.Prefs {
		v += b.scores[name]
	}
	return v
}
