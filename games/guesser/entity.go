/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import "math"

// Entity is one possible answer to the game.
type Entity struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Number int                `json:"number,omitempty"`
	Types  []string           `json:"types"`
	Stats  map[string]float64 `json:"stats"`
}

// DisplayName falls back to the identifier when no name was loaded.
func (e *Entity) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}

	return e.ID
}

// statRange returns the smallest and largest stat, and false when the entity
// has no stats.
func (e *Entity) statRange() (lo, hi float64, ok bool) {
	if len(e.Stats) == 0 {
		return 0, 0, false
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range e.Stats {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi, true
}
