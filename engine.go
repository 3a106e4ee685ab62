// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

import (
	"fmt"
	"log/slog"
	"sort"
)

// Engine owns the group and buyer registries and runs the round-based
// allocation. It is not safe for concurrent use: registrations and runs
// must not overlap, and a run must not be started while another is in
// progress on the same engine.
type Engine struct {
	// Logger, when set, receives one Debug record per allocation round.
	Logger *slog.Logger

	groups     map[string]*Group
	buyers     map[string]*Buyer
	buyerOrder []string

	assignments map[string][]*Buyer
	complete    bool
}

// NewEngine returns an engine with empty registries.
func NewEngine() *Engine {
	return &Engine{
		groups: make(map[string]*Group),
		buyers: make(map[string]*Buyer),
	}
}

// RegisterGroup adds g to the group registry. Registering a second
// group with the same name fails with ErrDuplicateKey.
func (e *Engine) RegisterGroup(g *Group) error {
	if _, ok := e.groups[g.Name]; ok {
		return fmt.Errorf("%w: group %q", ErrDuplicateKey, g.Name)
	}
	e.groups[g.Name] = g
	return nil
}

// RegisterBuyer adds b to the buyer registry and scores it against
// every group in its preference list, appending each score to that
// group's scoreboard. Every preference must name a registered group;
// otherwise the call fails with ErrUnknownGroup and the registries are
// left untouched.
func (e *Engine) RegisterBuyer(b *Buyer) error {
	if _, ok := e.buyers[b.Name]; ok {
		return fmt.Errorf("%w: buyer %q", ErrDuplicateKey, b.Name)
	}
	for _, name := range b.Prefs {
		if _, ok := e.groups[name]; !ok {
			return fmt.Errorf("%w: %q (buyer %q)", ErrUnknownGroup, name, b.Name)
		}
	}

	e.buyers[b.Name] = b
	e.buyerOrder = append(e.buyerOrder, b.Name)

	for _, name := range b.Prefs {
		g := e.groups[name]
		score := b.Attrs.Dot(g.Attrs)
		b.scores[name] = score
		g.scoreboard = append(g.scoreboard, ScoreEntry{Buyer: b.Name, Score: score})
	}
	return nil
}

// BuyersPerGroup returns the uniform per-group capacity. It fails with
// ErrNoGroups when no group is registered and with ErrCapacityMismatch
// when the buyer count does not divide evenly. The check is re-evaluated
// on every call since the registries may still be growing.
func (e *Engine) BuyersPerGroup() (int, error) {
	if len(e.groups) == 0 {
		return 0, ErrNoGroups
	}
	if len(e.buyers)%len(e.groups) != 0 {
		return 0, fmt.Errorf("%w: %d buyers across %d groups",
			ErrCapacityMismatch, len(e.buyers), len(e.groups))
	}
	return len(e.buyers) / len(e.groups), nil
}

// buyersByValue returns every buyer name ordered ascending by value,
// ties broken by registration order.
func (e *Engine) buyersByValue() []string {
	names := make([]string, len(e.buyerOrder))
	copy(names, e.buyerOrder)
	sort.SliceStable(names, func(i, j int) bool {
		return e.buyers[names[i]].Value() < e.buyers[names[j]].Value()
	})
	return names
}

// rankedScoreboards returns each group's scoreboard ordered descending
// by score, ties broken by registration order.
func (e *Engine) rankedScoreboards() map[string][]ScoreEntry {
	ranked := make(map[string][]ScoreEntry, len(e.groups))
	for name, g := range e.groups {
		entries := make([]ScoreEntry, len(g.scoreboard))
		copy(entries, g.scoreboard)
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Score > entries[j].Score
		})
		ranked[name] = entries
	}
	return ranked
}

// eligibleSlice collects the best-scoring buyers still in remaining, up
// to limit of them, walking ranked in descending-score order.
func eligibleSlice(ranked []ScoreEntry, remaining map[string]bool, limit int) map[string]bool {
	slice := make(map[string]bool, limit)
	if limit <= 0 {
		return slice
	}
	for _, entry := range ranked {
		if remaining[entry.Buyer] {
			slice[entry.Buyer] = true
			if len(slice) >= limit {
				break
			}
		}
	}
	return slice
}

// Run discards any prior assignment and executes the allocation from
// the current registry state.
//
// Buyers are considered in rounds, strongest overall value first, all
// sharing one preference depth pointer. A buyer is assigned to the
// group at its current preference depth when it belongs to that group's
// eligible slice (the top-scoring still-unassigned buyers up to the
// group's free capacity). The pointer advances only when an entire
// round makes no assignment. Assignments are final within a run.
//
// If the pointer moves past the end of some unplaced buyer's preference
// list, Run fails with ErrOutOfPreferences and no assignment is kept.
func (e *Engine) Run() error {
	e.complete = false
	e.assignments = nil

	per, err := e.BuyersPerGroup()
	if err != nil {
		return err
	}

	e.assignments = make(map[string][]*Buyer, len(e.groups))

	order := e.buyersByValue()
	ranked := e.rankedScoreboards()

	remaining := make(map[string]bool, len(order))
	for _, name := range order {
		remaining[name] = true
	}

	depth := 0
	for round := 0; len(remaining) > 0; round++ {
		assigned := 0
		for i := len(order) - 1; i >= 0; i-- {
			name := order[i]
			if !remaining[name] {
				continue
			}
			b := e.buyers[name]
			if depth >= len(b.Prefs) {
				e.assignments = nil
				return fmt.Errorf("%w: buyer %q unplaced at depth %d",
					ErrOutOfPreferences, name, depth)
			}
			gname := b.Prefs[depth]
			free := per - len(e.assignments[gname])
			slice := eligibleSlice(ranked[gname], remaining, free)
			if slice[name] && len(e.assignments[gname]) < per {
				e.assignments[gname] = append(e.assignments[gname], b)
				delete(remaining, name)
				assigned++
			}
		}
		if e.Logger != nil {
			e.Logger.Debug("allocation round",
				"round", round,
				"depth", depth,
				"assigned", assigned,
				"remaining", len(remaining))
		}
		if assigned == 0 {
			depth++
		}
	}

	e.complete = true
	return nil
}
