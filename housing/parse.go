// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package housing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/someonegg/prefmatch"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var attrLabels = [prefmatch.VectorLen]string{"E", "W", "R"}

// Parse reads the text format from r and returns an engine with every
// neighborhood and home buyer registered. Neighborhood lines must come
// before the buyer lines that reference them. Lines that start with
// neither prefix are skipped. Errors carry the offending line number.
func Parse(r io.Reader) (*prefmatch.Engine, error) {
	engine := prefmatch.NewEngine()

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, NeighborhoodPrefix):
			rec, err := ParseNeighborhood(line)
			if err == nil {
				err = engine.RegisterGroup(prefmatch.NewGroup(rec.Name, rec.Attrs()))
			}
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
		case strings.HasPrefix(line, BuyerPrefix):
			rec, err := ParseBuyer(line)
			if err == nil {
				err = engine.RegisterBuyer(prefmatch.NewBuyer(rec.Name, rec.Attrs(), rec.Preferences))
			}
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return engine, nil
}

// ParseNeighborhood parses one "N" line.
func ParseNeighborhood(line string) (NeighborhoodRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return NeighborhoodRecord{},
			fmt.Errorf(`invalid neighborhood line (want "N <name> E:<n> W:<n> R:<n>"): %q`, line)
	}
	attrs, err := parseAttrs(fields[2:5])
	if err != nil {
		return NeighborhoodRecord{}, fmt.Errorf("neighborhood %s: %w", fields[1], err)
	}
	rec := NeighborhoodRecord{
		Name:       fields[1],
		Efficiency: attrs[0],
		Water:      attrs[1],
		Resilience: attrs[2],
	}
	if err := validate.Struct(rec); err != nil {
		return NeighborhoodRecord{}, fmt.Errorf("invalid neighborhood %s: %w", rec.Name, err)
	}
	return rec, nil
}

// ParseBuyer parses one "H" line.
func ParseBuyer(line string) (BuyerRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return BuyerRecord{},
			fmt.Errorf(`invalid buyer line (want "H <name> E:<n> W:<n> R:<n> <prefs>"): %q`, line)
	}
	attrs, err := parseAttrs(fields[2:5])
	if err != nil {
		return BuyerRecord{}, fmt.Errorf("buyer %s: %w", fields[1], err)
	}
	rec := BuyerRecord{
		Name:        fields[1],
		Efficiency:  attrs[0],
		Water:       attrs[1],
		Resilience:  attrs[2],
		Preferences: strings.Split(fields[5], ">"),
	}
	if err := validate.Struct(rec); err != nil {
		return BuyerRecord{}, fmt.Errorf("invalid buyer %s: %w", rec.Name, err)
	}
	return rec, nil
}

func parseAttrs(fields []string) (prefmatch.Vector, error) {
	var attrs prefmatch.Vector
	for i, field := range fields {
		label, val, ok := strings.Cut(field, ":")
		if !ok || label != attrLabels[i] {
			return attrs, fmt.Errorf("want %s:<n>, got %q", attrLabels[i], field)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return attrs, fmt.Errorf("bad %s value %q", attrLabels[i], val)
		}
		attrs[i] = n
	}
	return attrs, nil
}
