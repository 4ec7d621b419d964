/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// truthful answers every question with certainty, as the target would.
func truthful(e *Engine, target string) AnswererFunc {
	return func(_ context.Context, q Question) (float64, error) {
		if e.matrix.Has(q.Trait, target) {
			return 1, nil
		}

		return 0, nil
	}
}

func TestSessionLifecycle(t *testing.T) {
	e := threeEntities(t)
	s := e.NewSession()

	assert.Equal(t, StateIdle, s.State())
	_, err := s.Guess()
	require.ErrorIs(t, err, ErrInvalidState)
	require.ErrorIs(t, s.Answer(1), ErrInvalidState)

	sel := s.Next()
	require.False(t, sel.Done())
	assert.Equal(t, StateAsking, s.State())

	q, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, Question{Number: 1, Max: 25, Trait: "is_legendary", Text: "Does it have the trait: is_legendary?"}, q)

	again := s.Next()
	assert.Equal(t, sel, again, "a pending question is not reselected")

	require.ErrorIs(t, s.Answer(2), ErrInvalidInput)
	_, stillPending := s.Pending()
	assert.True(t, stillPending)

	require.NoError(t, s.Answer(1))
	_, ok = s.Pending()
	assert.False(t, ok)
	require.ErrorIs(t, s.Answer(1), ErrInvalidState)

	for !s.Next().Done() {
		require.NoError(t, s.Answer(0))
	}
	assert.Equal(t, StateGuessing, s.State())

	res, err := s.Guess()
	require.NoError(t, err)
	assert.Equal(t, StateDone, s.State())
	assert.Equal(t, "b", res.EntityID)
	assert.Equal(t, "B", res.Name)

	cached, err := s.Guess()
	require.NoError(t, err)
	assert.Equal(t, res, cached)
	assert.True(t, s.Next().Done())
}

func TestSessionRunFindsEveryTarget(t *testing.T) {
	e := fourDistinct(t, DefaultConfig())

	for _, target := range []string{"a", "b", "c", "d"} {
		t.Run(target, func(t *testing.T) {
			s := e.NewSession()

			res, err := s.Run(context.Background(), truthful(e, target))
			require.NoError(t, err)

			assert.Equal(t, target, res.EntityID)
			assert.Equal(t, StateDone, s.State())
			assert.GreaterOrEqual(t, res.Confidence, 0.05)
			assert.LessOrEqual(t, res.Confidence, 0.95)
			assert.NotEqual(t, StopNone, res.Stop)
		})
	}
}

func TestSessionStopsAtMaxQuestions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxQuestions = 1
	e := fourDistinct(t, cfg)

	s := e.NewSession()
	res, err := s.Run(context.Background(), AnswererFunc(func(context.Context, Question) (float64, error) {
		return 0.5, nil
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Questions)
	assert.Equal(t, StopMaxQuestions, res.Stop)
}

func TestSessionRunWithoutAnyQuestion(t *testing.T) {
	e, err := NewEngine([]Entity{{ID: "only"}}, nil, DefaultCatalog(), DefaultConfig(), WithJitter(NoJitter{}))
	require.NoError(t, err)

	res, err := e.NewSession().Run(context.Background(), AnswererFunc(func(context.Context, Question) (float64, error) {
		t.Fatal("no question should be asked")
		return 0, nil
	}))
	require.NoError(t, err)

	assert.Equal(t, "only", res.EntityID)
	assert.Equal(t, 0.1, res.Confidence)
	assert.Equal(t, StopFewCandidates, res.Stop)
}

func TestSessionRunErrors(t *testing.T) {
	e := fourDistinct(t, DefaultConfig())

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.NewSession().Run(ctx, truthful(e, "a"))
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("answerer fails", func(t *testing.T) {
		boom := errors.New("player left")
		_, err := e.NewSession().Run(context.Background(), AnswererFunc(func(context.Context, Question) (float64, error) {
			return 0, boom
		}))
		require.ErrorIs(t, err, boom)
	})

	t.Run("answer out of range", func(t *testing.T) {
		s := e.NewSession()
		_, err := s.Run(context.Background(), AnswererFunc(func(context.Context, Question) (float64, error) {
			return 3, nil
		}))
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, StateAsking, s.State())
	})
}

func TestSessionNeverExceedsQuotas(t *testing.T) {
	entities := make([]Entity, 0, 12)
	rows := map[string]map[string]bool{}
	catalog := DefaultCatalog()
	traits := catalog.Traits()

	// every entity gets a distinct spread of catalog traits
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		entities = append(entities, Entity{ID: id})
		for j, tr := range traits {
			if (i+j)%3 == 0 || (i*j)%5 == 1 {
				if rows[tr.Key] == nil {
					rows[tr.Key] = map[string]bool{}
				}
				rows[tr.Key][id] = true
			}
		}
	}

	e, err := NewEngine(entities, NewMatrix(rows), catalog, DefaultConfig(), WithJitter(NewSeededJitter(3)))
	require.NoError(t, err)

	for _, target := range []string{"a", "f", "l"} {
		s := e.NewSession()
		for {
			sel := s.Next()
			if sel.Done() {
				break
			}
			assert.False(t, s.Belief().IsCategoryExhausted(sel.Trait.Category),
				"selected %s from an exhausted category", sel.Trait.Key)

			answer := 0.25
			if e.matrix.Has(sel.Trait.Key, target) {
				answer = 0.75
			}
			require.NoError(t, s.Answer(answer))

			for _, c := range QuotaCategories {
				quota, _ := s.Belief().Quota(c)
				assert.LessOrEqual(t, s.Belief().Count(c), quota)
			}
		}

		res, err := s.Guess()
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Questions, DefaultMaxQuestions)
		assert.GreaterOrEqual(t, res.Confidence, 0.05)
		assert.LessOrEqual(t, res.Confidence, 0.95)
	}
}

func TestSnapshot(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := func() time.Time { return now }

	e := threeEntities(t, withClock(clock))
	s := e.NewSession()

	snap := s.Snapshot(10)
	assert.Equal(t, "idle", snap.State)
	assert.Zero(t, snap.Duration)
	assert.Len(t, snap.Top, 3)

	require.False(t, s.Next().Done())
	require.NoError(t, s.Answer(1))
	now = now.Add(90 * time.Second)

	snap = s.Snapshot(1)
	assert.Equal(t, "asking", snap.State)
	assert.Equal(t, 1, snap.Questions)
	assert.Equal(t, 25, snap.MaxQuestions)
	assert.Equal(t, 90*time.Second, snap.Duration)
	assert.Greater(t, snap.TotalGain, 0.0)
	assert.Equal(t, snap.TotalGain, snap.AverageGain)
	require.Len(t, snap.Top, 1)
	assert.Equal(t, []Answer{{Trait: "is_legendary", Confidence: 1}}, snap.Answers)

	require.Len(t, snap.Categories, len(QuotaCategories))
	assert.Equal(t, CategoryUsage{Category: CategoryType, Count: 0, Quota: 3}, snap.Categories[0])
}

func TestTraitPriorities(t *testing.T) {
	e, err := NewEngine([]Entity{{ID: "x"}}, nil, DefaultCatalog(), DefaultConfig(), WithJitter(NoJitter{}))
	require.NoError(t, err)

	s := e.NewSession()
	got := s.TraitPriorities(3)

	require.Len(t, got, 3)
	assert.Equal(t, "starter_pokemon", got[0].Key)
	assert.Equal(t, "final_evolution", got[1].Key)
	assert.Equal(t, "is_legendary", got[2].Key)
	assert.InDelta(t, 10*1.3*1.25, got[0].Diversity, 1e-12)
}
