// SPDX-License-Identifier: MIT
// File: labels.go
// Role: label canonicalization (raw label -> dense label).
// Determinism:
//   - Dense labels are assigned 0,1,2,... in ascending raw-label order.
// Concurrency:
//   - A LabelMap is immutable after BuildLabelMap returns; share it freely.

package core

import (
	"fmt"

	"github.com/tidwall/btree"
)

const methodBuildLabelMap = "BuildLabelMap"

// LabelMap is the dense remap table produced by one canonicalization pass.
// It is built for one graph and may be reused, unmodified, for others via
// WithLabelMap.
type LabelMap struct {
	dense []Label // raw -> dense; NoLabel where the raw value was never seen
	raw   []Label // dense -> raw, ascending
}

// BuildLabelMap scans the vertex records once, collects the distinct raw
// labels in ascending order and assigns them dense labels 0..k-1.
// Edge records are not read.
//
// Errors:
//   - ErrNilRecords: recs == nil.
//   - ErrNegativeLabel: a raw label < 0 (the table is indexed by raw value).
//
// Complexity: O(V log k) time, O(maxRaw + k) space.
func BuildLabelMap(recs *Records) (*LabelMap, error) {
	if recs == nil {
		return nil, fmt.Errorf("%s: %w", methodBuildLabelMap, ErrNilRecords)
	}

	// Ordered set: duplicates collapse, Scan yields ascending raw values.
	var distinct btree.Set[Label]
	for _, vr := range recs.Vertices {
		if vr.Label < 0 {
			return nil, fmt.Errorf("%s: vertex %d label %d: %w",
				methodBuildLabelMap, vr.ID, vr.Label, ErrNegativeLabel)
		}
		distinct.Insert(vr.Label)
	}

	m := &LabelMap{raw: make([]Label, 0, distinct.Len())}
	distinct.Scan(func(l Label) bool {
		m.raw = append(m.raw, l)
		return true
	})
	if len(m.raw) == 0 {
		return m, nil
	}

	m.dense = make([]Label, int(m.raw[len(m.raw)-1])+1)
	for i := range m.dense {
		m.dense[i] = NoLabel
	}
	for d, l := range m.raw {
		m.dense[l] = Label(d)
	}

	return m, nil
}

// Dense returns the dense label for a raw label, or NoLabel if the raw
// value was not seen when the map was built.
func (m *LabelMap) Dense(raw Label) Label {
	if raw < 0 || int(raw) >= len(m.dense) {
		return NoLabel
	}
	return m.dense[raw]
}

// Raw returns the raw label that was assigned the given dense label.
func (m *LabelMap) Raw(dense Label) (Label, bool) {
	if dense < 0 || int(dense) >= len(m.raw) {
		return NoLabel, false
	}
	return m.raw[dense], true
}

// Len returns the number of distinct raw labels (= number of dense labels).
func (m *LabelMap) Len() int { return len(m.raw) }

// MaxRaw returns the largest raw label in the map, or NoLabel if empty.
func (m *LabelMap) MaxRaw() Label {
	if len(m.raw) == 0 {
		return NoLabel
	}
	return m.raw[len(m.raw)-1]
}
