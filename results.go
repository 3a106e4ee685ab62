// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

import "sort"

// GroupResult is one group's slice of a completed assignment.
type GroupResult struct {
	Group string
	// Buyers is ordered descending by the buyer's score for this
	// group, ties broken by assignment order.
	Buyers []ScoreEntry
}

// Results projects the last completed assignment: groups ordered by
// name, buyers within a group ordered descending by their score for
// that specific group. It does not mutate engine state. Results fails
// with ErrNoAssignment when no run has completed since the registries
// were created or since the last failed run.
func (e *Engine) Results() ([]GroupResult, error) {
	if !e.complete {
		return nil, ErrNoAssignment
	}

	names := make([]string, 0, len(e.groups))
	for name := range e.groups {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]GroupResult, 0, len(names))
	for _, name := range names {
		assigned := e.assignments[name]
		entries := make([]ScoreEntry, len(assigned))
		for i, b := range assigned {
			score, _ := b.Score(name)
			entries[i] = ScoreEntry{Buyer: b.Name, Score: score}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Score > entries[j].Score
		})
		results = append(results, GroupResult{Group: name, Buyers: entries})
	}
	return results, nil
}
