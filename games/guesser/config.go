/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"fmt"
	"math"
)

const (
	DefaultMaxQuestions      = 25
	DefaultTieEpsilon        = 0.003
	DefaultEarlyGameFraction = 0.3
	DefaultLateGameFraction  = 0.7
)

// Config holds the tunables of a game. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	MaxQuestions      int
	Quotas            map[Category]int
	TieEpsilon        float64
	EarlyGameFraction float64
	LateGameFraction  float64
}

func DefaultQuotas() map[Category]int {
	return map[Category]int{
		CategoryType:     3,
		CategoryHabitat:  2,
		CategoryColor:    2,
		CategoryStat:     4,
		CategoryPhysical: 3,
	}
}

func DefaultConfig() Config {
	return Config{
		MaxQuestions:      DefaultMaxQuestions,
		Quotas:            DefaultQuotas(),
		TieEpsilon:        DefaultTieEpsilon,
		EarlyGameFraction: DefaultEarlyGameFraction,
		LateGameFraction:  DefaultLateGameFraction,
	}
}

func (c Config) Validate() error {
	if c.MaxQuestions < 1 {
		return fmt.Errorf("%w: max questions must be positive, got %d", ErrInvalidConfig, c.MaxQuestions)
	}

	for category, quota := range c.Quotas {
		if !category.Quotable() {
			return fmt.Errorf("%w: category %q does not take a quota", ErrInvalidConfig, category)
		}
		if quota < 0 {
			return fmt.Errorf("%w: quota for %q must not be negative, got %d", ErrInvalidConfig, category, quota)
		}
	}

	if !(c.TieEpsilon > 0) || math.IsInf(c.TieEpsilon, 0) {
		return fmt.Errorf("%w: tie epsilon must be positive, got %v", ErrInvalidConfig, c.TieEpsilon)
	}

	if !inUnit(c.EarlyGameFraction) || !inUnit(c.LateGameFraction) {
		return fmt.Errorf("%w: game stage fractions must lie in [0,1], got %v and %v",
			ErrInvalidConfig, c.EarlyGameFraction, c.LateGameFraction)
	}
	if c.EarlyGameFraction > c.LateGameFraction {
		return fmt.Errorf("%w: early game fraction %v exceeds late game fraction %v",
			ErrInvalidConfig, c.EarlyGameFraction, c.LateGameFraction)
	}

	return nil
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
