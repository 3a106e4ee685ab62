// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package housing applies prefmatch to the home buyer / neighborhood
// text format: "N" lines declare neighborhoods, "H" lines declare home
// buyers with a ranked neighborhood preference list.
package housing

import "github.com/someonegg/prefmatch"

// Line prefixes of the input format.
const (
	NeighborhoodPrefix = "N "
	BuyerPrefix        = "H "
)

// NeighborhoodRecord is one parsed "N <name> E:<n> W:<n> R:<n>" line.
type NeighborhoodRecord struct {
	Name       string `validate:"required"`
	Efficiency int    `validate:"gte=0"`
	Water      int    `validate:"gte=0"`
	Resilience int    `validate:"gte=0"`
}

// Attrs returns the record's attribute vector in EWR order.
func (r NeighborhoodRecord) Attrs() prefmatch.Vector {
	return prefmatch.Vector{r.Efficiency, r.Water, r.Resilience}
}

// BuyerRecord is one parsed "H <name> E:<n> W:<n> R:<n> <g1>>..><gk>"
// line.
type BuyerRecord struct {
	Name        string   `validate:"required"`
	Efficiency  int      `validate:"gte=0"`
	Water       int      `validate:"gte=0"`
	Resilience  int      `validate:"gte=0"`
	Preferences []string `validate:"required,min=1,unique,dive,required"`
}

// Attrs returns the record's attribute vector in EWR order.
func (r BuyerRecord) Attrs() prefmatch.Vector {
	return prefmatch.Vector{r.Efficiency, r.Water, r.Resilience}
}
