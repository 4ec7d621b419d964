/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"fmt"
	"strings"
)

// Category groups traits that share a fairness quota.
type Category string

const (
	CategoryType     Category = "type"
	CategoryHabitat  Category = "habitat"
	CategoryColor    Category = "color"
	CategoryStat     Category = "stat"
	CategoryPhysical Category = "physical"
	CategoryOther    Category = "other"
)

// QuotaCategories lists the categories tracked by the belief state, in
// display order.
var QuotaCategories = []Category{
	CategoryType,
	CategoryHabitat,
	CategoryColor,
	CategoryStat,
	CategoryPhysical,
}

func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryType, CategoryHabitat, CategoryColor, CategoryStat, CategoryPhysical, CategoryOther:
		return c, nil
	case "":
		return CategoryOther, nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidData, s)
	}
}

// Quotable reports whether questions in the category are counted against a
// quota.
func (c Category) Quotable() bool {
	switch c {
	case CategoryType, CategoryHabitat, CategoryColor, CategoryStat, CategoryPhysical:
		return true
	}
	return false
}

// Trait is a single yes/no question about the hidden entity.
type Trait struct {
	Key         string   `yaml:"key" json:"key"`
	Category    Category `yaml:"category" json:"category"`
	Priority    float64  `yaml:"priority" json:"priority"`
	Reliability float64  `yaml:"reliability" json:"reliability"`
	Question    string   `yaml:"question" json:"question"`

	// Broad marks traits that sort entities into large families (legendary,
	// starter, ...) and are favoured early in a game.
	Broad bool `yaml:"broad,omitempty" json:"broad,omitempty"`
}

const (
	defaultPriority    = 1.0
	defaultReliability = 1.0
)

// Catalog is the immutable, ordered set of askable traits. Iteration order is
// the order the traits were supplied in and decides ties during selection.
type Catalog struct {
	traits []Trait
	index  map[string]int
}

// NewCatalog rejects empty or duplicate keys. Zero weights are read as
// absent and become 1.0; an empty question gets a generic text.
func NewCatalog(traits []Trait) (*Catalog, error) {
	c := &Catalog{
		traits: make([]Trait, 0, len(traits)),
		index:  make(map[string]int, len(traits)),
	}

	for _, t := range traits {
		t.Key = strings.TrimSpace(t.Key)
		if t.Key == "" {
			return nil, fmt.Errorf("%w: trait with empty key", ErrInvalidData)
		}
		if _, dup := c.index[t.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate trait %q", ErrInvalidData, t.Key)
		}

		category, err := ParseCategory(string(t.Category))
		if err != nil {
			return nil, fmt.Errorf("trait %q: %w", t.Key, err)
		}
		t.Category = category

		if t.Priority == 0 {
			t.Priority = defaultPriority
		}
		if t.Reliability == 0 {
			t.Reliability = defaultReliability
		}
		if t.Priority < 0 || t.Reliability < 0 {
			return nil, fmt.Errorf("%w: trait %q has a negative weight", ErrInvalidData, t.Key)
		}
		if t.Question == "" {
			t.Question = fallbackQuestion(t.Key)
		}

		c.index[t.Key] = len(c.traits)
		c.traits = append(c.traits, t)
	}

	return c, nil
}

// Traits returns a copy of the catalog in iteration order.
func (c *Catalog) Traits() []Trait {
	out := make([]Trait, len(c.traits))
	copy(out, c.traits)

	return out
}

func (c *Catalog) Len() int {
	return len(c.traits)
}

func (c *Catalog) Lookup(key string) (Trait, bool) {
	i, ok := c.index[key]
	if !ok {
		return Trait{}, false
	}

	return c.traits[i], true
}

// Trait returns the definition for key, or a definition built from the
// documented defaults when the key is not catalogued.
func (c *Catalog) Trait(key string) Trait {
	if t, ok := c.Lookup(key); ok {
		return t
	}

	return Trait{
		Key:         key,
		Category:    CategoryOther,
		Priority:    defaultPriority,
		Reliability: defaultReliability,
		Question:    fallbackQuestion(key),
	}
}

func (c *Catalog) Category(key string) Category {
	return c.Trait(key).Category
}

func (c *Catalog) Priority(key string) float64 {
	return c.Trait(key).Priority
}

func (c *Catalog) Reliability(key string) float64 {
	return c.Trait(key).Reliability
}

func (c *Catalog) QuestionText(key string) string {
	return c.Trait(key).Question
}

func fallbackQuestion(key string) string {
	return fmt.Sprintf("Does it have the trait: %s?", key)
}
