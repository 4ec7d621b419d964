/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

// Matrix is the sparse ground-truth relation trait -> entity -> bool. Absent
// traits and absent entities read as false.
type Matrix struct {
	rows map[string]map[string]bool
}

// NewMatrix copies rows so later changes by the caller are not observed.
func NewMatrix(rows map[string]map[string]bool) *Matrix {
	m := &Matrix{rows: make(map[string]map[string]bool, len(rows))}

	for trait, row := range rows {
		r := make(map[string]bool, len(row))
		for entity, v := range row {
			if v {
				r[entity] = true
			}
		}
		m.rows[trait] = r
	}

	return m
}

func (m *Matrix) Has(trait, entityID string) bool {
	if m == nil {
		return false
	}

	return m.rows[trait][entityID]
}

// Covers reports whether the matrix has a row for trait at all.
func (m *Matrix) Covers(trait string) bool {
	if m == nil {
		return false
	}
	_, ok := m.rows[trait]

	return ok
}

func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}
