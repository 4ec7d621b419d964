/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadEntities decodes a JSON array of entities. Identifiers are lower-cased
// and must be unique.
func LoadEntities(r io.Reader) ([]Entity, error) {
	var entities []Entity
	if err := json.NewDecoder(r).Decode(&entities); err != nil {
		return nil, fmt.Errorf("%w: decoding entities: %v", ErrInvalidData, err)
	}

	seen := make(map[string]bool, len(entities))
	for i := range entities {
		e := &entities[i]

		e.ID = strings.ToLower(strings.TrimSpace(e.ID))
		if e.ID == "" {
			e.ID = strings.ToLower(strings.TrimSpace(e.Name))
		}
		if e.ID == "" {
			return nil, fmt.Errorf("%w: entity %d has no id or name", ErrInvalidData, i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: duplicate entity %q", ErrInvalidData, e.ID)
		}
		seen[e.ID] = true

		for j, t := range e.Types {
			e.Types[j] = strings.ToLower(strings.TrimSpace(t))
		}
	}

	return entities, nil
}

type matrixFile struct {
	Entities []string          `json:"entities"`
	Traits   map[string][]bool `json:"traits"`
}

// LoadMatrix decodes the columnar matrix format, where every trait holds one
// boolean per entry of the entities list.
func LoadMatrix(r io.Reader) (*Matrix, error) {
	var f matrixFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decoding trait matrix: %v", ErrInvalidData, err)
	}

	rows := make(map[string]map[string]bool, len(f.Traits))
	for trait, values := range f.Traits {
		if len(values) != len(f.Entities) {
			return nil, fmt.Errorf("%w: trait %q has %d values for %d entities",
				ErrInvalidData, trait, len(values), len(f.Entities))
		}

		row := make(map[string]bool)
		for i, v := range values {
			if v {
				row[strings.ToLower(f.Entities[i])] = true
			}
		}
		rows[trait] = row
	}

	return NewMatrix(rows), nil
}

type catalogFile struct {
	Traits []catalogEntry `yaml:"traits"`
}

type catalogEntry struct {
	Key         string  `yaml:"key"`
	Category    string  `yaml:"category"`
	Priority    float64 `yaml:"priority"`
	Reliability float64 `yaml:"reliability"`
	Question    string  `yaml:"question"`
	Broad       bool    `yaml:"broad"`
}

// LoadCatalog decodes a YAML trait catalog. Absent or zero weights become
// 1.0, an absent category becomes other.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decoding catalog: %v", ErrInvalidData, err)
	}

	traits := make([]Trait, 0, len(f.Traits))
	for _, entry := range f.Traits {
		category, err := ParseCategory(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("trait %q: %w", entry.Key, err)
		}

		traits = append(traits, Trait{
			Key:         entry.Key,
			Category:    category,
			Priority:    entry.Priority,
			Reliability: entry.Reliability,
			Question:    entry.Question,
			Broad:       entry.Broad,
		})
	}

	return NewCatalog(traits)
}
