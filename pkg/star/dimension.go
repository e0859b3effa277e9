// pkg/star/dimension.go

// Package star assembles the dimensional model: deduplicated dimension tables
// with surrogate keys and fact tables that reference them. Surrogate id
// assignment is an ordering-sensitive side effect, so builders must be fed
// canonical records in input-row order. Each dimension is single-writer by
// construction; nothing here is safe for concurrent use.
package star

// Dimension assigns surrogate ids to normalized natural keys in strict
// first-seen order, starting at 1. An id, once assigned, is permanent; keys
// are expected to be pre-normalized by the field validators.
type Dimension struct {
	ids    map[string]int64
	nextID int64
}

// NewDimension creates an empty dimension.
func NewDimension() *Dimension {
	return &Dimension{
		ids:    make(map[string]int64),
		nextID: 1,
	}
}

// Resolve returns the surrogate id for key, assigning the next id on first
// sight. The bool reports whether the key was newly added, so callers can
// append the matching dimension entry exactly once.
func (d *Dimension) Resolve(key string) (int64, bool) {
	if id, ok := d.ids[key]; ok {
		return id, false
	}

	id := d.nextID
	d.ids[key] = id
	d.nextID++
	return id, true
}

// Len returns the number of distinct keys seen so far.
func (d *Dimension) Len() int {
	return len(d.ids)
}
