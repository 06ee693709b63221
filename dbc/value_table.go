package dbc

import (
	"math"
	"slices"

	"github.com/markovejnovic/libdbc/internal/textbuf"
)

// ValueTable is a named mapping from numeric codes to descriptions, as
// declared by a VAL_TABLE_ statement.
//
// Keys are exact float64 values compared for equality: 1.5 and 1 are
// distinct keys, as are -1 and 1.
type ValueTable struct {
	name    textbuf.Buffer
	entries map[float64]string
}

// NewValueTable creates an empty value table. Tables that belong to a
// Database should be created with Database.AddValueTable instead.
func NewValueTable(name string) *ValueTable {
	vt := &ValueTable{entries: make(map[float64]string)}
	vt.name.Set(name)
	return vt
}

// Name returns the table name.
func (vt *ValueTable) Name() string { return vt.name.String() }

// Insert maps key to desc. It returns false and leaves the table unchanged
// if key is already present, NaN or infinite.
func (vt *ValueTable) Insert(key float64, desc string) bool {
	if math.IsNaN(key) || math.IsInf(key, 0) {
		return false
	}
	if _, exists := vt.entries[key]; exists {
		return false
	}
	vt.entries[key] = desc
	return true
}

// Get returns the description for key.
func (vt *ValueTable) Get(key float64) (string, bool) {
	desc, ok := vt.entries[key]
	return desc, ok
}

// Size returns the number of entries.
func (vt *ValueTable) Size() int { return len(vt.entries) }

// Keys returns all keys in ascending order.
func (vt *ValueTable) Keys() []float64 {
	keys := make([]float64, 0, len(vt.entries))
	for k := range vt.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Release frees the table and all of its entries.
func (vt *ValueTable) Release() {
	vt.name.Release()
	clear(vt.entries)
}
