/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInformationGain(t *testing.T) {
	e := threeEntities(t)
	s := e.Selector()
	candidates := e.Ranker().RankedCandidates(e.NewBelief())

	// two of three equally likely candidates share the trait
	want := math.Log2(3) - 2.0/3.0
	assert.InDelta(t, want, s.InformationGain("type_fire", candidates), 1e-12)
	assert.InDelta(t, want, s.InformationGain("is_legendary", candidates), 1e-12)

	assert.Zero(t, s.InformationGain("unknown_trait", candidates), "no entity has it")
	assert.Zero(t, s.InformationGain("type_fire", candidates[:1]))
	assert.Zero(t, s.InformationGain("type_fire", nil))

	both := []Candidate{candidates[0], candidates[2]}
	assert.Zero(t, s.InformationGain("type_fire", both), "a and c both have fire")
}

func TestDiversityScore(t *testing.T) {
	e, err := NewEngine([]Entity{{ID: "x"}}, nil, DefaultCatalog(), DefaultConfig(), WithJitter(NoJitter{}))
	require.NoError(t, err)
	s := e.Selector()
	catalog := e.Catalog()

	b := e.NewBelief()

	t.Run("type trait early in the game", func(t *testing.T) {
		assert.InDelta(t, 7.5*1.25, s.DiversityScore(b, catalog.Trait("type_fire")), 1e-12)
	})

	t.Run("opening bonus for high priority broad trait", func(t *testing.T) {
		assert.InDelta(t, 10*1.3*1.25, s.DiversityScore(b, catalog.Trait("starter_pokemon")), 1e-12)
	})

	t.Run("opening bonus without stage bonus", func(t *testing.T) {
		assert.InDelta(t, 9.5*1.3, s.DiversityScore(b, catalog.Trait("final_evolution")), 1e-12)
	})

	t.Run("unlisted trait", func(t *testing.T) {
		assert.InDelta(t, 1.0, s.DiversityScore(b, catalog.Trait("not_in_catalog")), 1e-12)
	})

	t.Run("penalty after one use", func(t *testing.T) {
		b := e.NewBelief()
		require.NoError(t, b.RecordAnswer("type_water", 1))

		ratio := 1.0 / 3.0
		penalty := math.Min(math.Exp(-3*ratio), math.Pow(0.2, 4*ratio))
		assert.InDelta(t, 7.5*penalty*1.25, s.DiversityScore(b, catalog.Trait("type_fire")), 1e-12)
	})

	t.Run("exhausted category", func(t *testing.T) {
		b := e.NewBelief()
		require.NoError(t, b.RecordAnswer("color_red", 1))
		require.NoError(t, b.RecordAnswer("color_blue", 1))

		assert.Equal(t, 0.001, s.DiversityScore(b, catalog.Trait("color_green")))
	})
}

func TestDiversityScoreLateGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxQuestions = 10
	e, err := NewEngine([]Entity{{ID: "x"}}, nil, DefaultCatalog(), cfg, WithJitter(NoJitter{}))
	require.NoError(t, err)

	b := e.NewBelief()
	for i := 0; i < 8; i++ {
		require.NoError(t, b.RecordAnswer(fmt.Sprintf("filler_%d", i), 0.5))
	}

	catalog := e.Catalog()
	assert.InDelta(t, 2.8*1.15, e.Selector().DiversityScore(b, catalog.Trait("high_attack")), 1e-12)
	assert.InDelta(t, 4.8*1.15, e.Selector().DiversityScore(b, catalog.Trait("size_large")), 1e-12)
	assert.InDelta(t, 7.5, e.Selector().DiversityScore(b, catalog.Trait("type_fire")), 1e-12)
}

func TestSelectNextPrefersHigherDiversity(t *testing.T) {
	e := threeEntities(t)

	sel := e.Selector().SelectNext(e.NewBelief())

	require.False(t, sel.Done())
	assert.Equal(t, "is_legendary", sel.Trait.Key)
	assert.Equal(t, 3, sel.Candidates)
	assert.InDelta(t, sel.Gain*sel.Diversity, sel.Score, 1e-12)
}

func TestSelectNextFirstSeenWinsTies(t *testing.T) {
	entities := []Entity{{ID: "a"}, {ID: "b"}}
	matrix := NewMatrix(map[string]map[string]bool{
		"first":  {"a": true},
		"second": {"b": true},
	})
	catalog, err := NewCatalog([]Trait{{Key: "first"}, {Key: "second"}})
	require.NoError(t, err)

	e, err := NewEngine(entities, matrix, catalog, DefaultConfig(), WithJitter(NoJitter{}))
	require.NoError(t, err)

	sel := e.Selector().SelectNext(e.NewBelief())
	assert.Equal(t, "first", sel.Trait.Key)
}

func TestSelectNextStops(t *testing.T) {
	t.Run("single entity", func(t *testing.T) {
		e, err := NewEngine([]Entity{{ID: "only"}}, nil, DefaultCatalog(), DefaultConfig(), WithJitter(NoJitter{}))
		require.NoError(t, err)

		sel := e.Selector().SelectNext(e.NewBelief())
		assert.Equal(t, StopFewCandidates, sel.Stop)
	})

	t.Run("indistinguishable entities", func(t *testing.T) {
		matrix := NewMatrix(map[string]map[string]bool{"type_fire": {"a": true, "b": true}})
		e, err := NewEngine([]Entity{{ID: "a"}, {ID: "b"}}, matrix, DefaultCatalog(), DefaultConfig(), WithJitter(NoJitter{}))
		require.NoError(t, err)

		sel := e.Selector().SelectNext(e.NewBelief())
		assert.Equal(t, StopNoInformativeTrait, sel.Stop)
		assert.Equal(t, 2, sel.Candidates)
	})

	t.Run("everything asked", func(t *testing.T) {
		e := threeEntities(t)
		b := e.NewBelief()
		require.NoError(t, b.RecordAnswer("type_fire", 0.5))
		require.NoError(t, b.RecordAnswer("is_legendary", 0.5))

		sel := e.Selector().SelectNext(b)
		assert.Equal(t, StopNoInformativeTrait, sel.Stop)
	})
}

func TestSelectNextExcludesExhaustedCategories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Quotas[CategoryType] = 1

	e := fourTyped(t, cfg)
	b := e.NewBelief()

	sel := e.Selector().SelectNext(b)
	require.False(t, sel.Done())
	require.Equal(t, CategoryType, sel.Trait.Category)
	require.NoError(t, b.RecordAnswer(sel.Trait.Key, 0.5))

	for !sel.Done() {
		sel = e.Selector().SelectNext(b)
		if sel.Done() {
			break
		}
		assert.NotEqual(t, CategoryType, sel.Trait.Category, "picked %s after the type quota was used", sel.Trait.Key)
		require.NoError(t, b.RecordAnswer(sel.Trait.Key, 0.5))
	}
	assert.Equal(t, 1, b.Count(CategoryType))
}

// fourTyped has both type and habitat traits that all split the entities.
func fourTyped(t *testing.T, cfg Config) *Engine {
	t.Helper()

	entities := []Entity{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	matrix := NewMatrix(map[string]map[string]bool{
		"type_fire":      {"a": true},
		"type_water":     {"b": true},
		"type_grass":     {"c": true},
		"habitat_cave":   {"a": true, "b": true},
		"habitat_forest": {"c": true, "a": true},
	})
	catalog, err := NewCatalog([]Trait{
		{Key: "type_fire", Category: CategoryType, Priority: 7.5},
		{Key: "type_water", Category: CategoryType, Priority: 7.5},
		{Key: "type_grass", Category: CategoryType, Priority: 7.5},
		{Key: "habitat_cave", Category: CategoryHabitat, Priority: 3.5},
		{Key: "habitat_forest", Category: CategoryHabitat, Priority: 3.4},
	})
	require.NoError(t, err)

	e, err := NewEngine(entities, matrix, catalog, cfg, WithJitter(NoJitter{}))
	require.NoError(t, err)

	return e
}
