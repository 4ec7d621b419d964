/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"cmp"
	"slices"
	"time"
)

// CategoryUsage is how many questions a category has used of its quota.
// Quota is zero for unbounded categories.
type CategoryUsage struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Quota    int      `json:"quota"`
}

// RankedEntity is one line of the candidate analysis.
type RankedEntity struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	Confidence float64  `json:"confidence"`
}

// Snapshot is an informational view of a session; nothing reads it back.
type Snapshot struct {
	State        string          `json:"state"`
	Questions    int             `json:"questions"`
	MaxQuestions int             `json:"max_questions"`
	Categories   []CategoryUsage `json:"categories"`
	TotalGain    float64         `json:"total_gain"`
	AverageGain  float64         `json:"average_gain"`
	StartedAt    time.Time       `json:"started_at,omitzero"`
	Duration     time.Duration   `json:"duration"`
	Answers      []Answer        `json:"answers"`
	Top          []RankedEntity  `json:"top"`
}

// Snapshot reports usage statistics and the current top n candidates.
func (s *Session) Snapshot(n int) Snapshot {
	snap := Snapshot{
		State:        s.state.String(),
		Questions:    s.belief.Len(),
		MaxQuestions: s.engine.cfg.MaxQuestions,
		TotalGain:    s.totalGain,
		AverageGain:  s.averageGain(),
		StartedAt:    s.startedAt,
		Answers:      s.belief.Answers(),
	}

	switch {
	case s.startedAt.IsZero():
	case s.finishedAt.IsZero():
		snap.Duration = s.engine.now().Sub(s.startedAt)
	default:
		snap.Duration = s.finishedAt.Sub(s.startedAt)
	}

	for _, c := range QuotaCategories {
		quota, _ := s.belief.Quota(c)
		snap.Categories = append(snap.Categories, CategoryUsage{
			Category: c,
			Count:    s.belief.Count(c),
			Quota:    quota,
		})
	}

	candidates := s.engine.ranker.RankedCandidates(s.belief)
	if n >= 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	for _, c := range candidates {
		snap.Top = append(snap.Top, RankedEntity{
			ID:         c.Entity.ID,
			Name:       c.Entity.DisplayName(),
			Types:      c.Entity.Types,
			Confidence: c.Confidence,
		})
	}

	return snap
}

// TraitPriorities lists up to n unasked traits by descending priority along
// with their current diversity score.
func (s *Session) TraitPriorities(n int) []TraitScore {
	traits := make([]Trait, 0, s.engine.catalog.Len())
	for _, t := range s.engine.catalog.traits {
		if !s.belief.Asked(t.Key) {
			traits = append(traits, t)
		}
	}

	slices.SortStableFunc(traits, func(a, b Trait) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	if n >= 0 && len(traits) > n {
		traits = traits[:n]
	}

	out := make([]TraitScore, 0, len(traits))
	for _, t := range traits {
		out = append(out, TraitScore{
			Key:       t.Key,
			Category:  t.Category,
			Priority:  t.Priority,
			Diversity: s.engine.selector.DiversityScore(s.belief, t),
		})
	}

	return out
}
