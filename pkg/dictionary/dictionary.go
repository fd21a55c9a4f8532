// Package dictionary defines the polymorphism wrapper external harnesses
// program against, mirroring the MultidimensionalKeyDictionary base class
// named in the original source (original_source/bptree.h, JumpTree.h):
// a dictionary is anything that can be bulk-constructed, searched,
// mutated by key, and introspected for height and diagnostics, without
// the caller knowing which concrete ordered structure backs it.
package dictionary

import (
	"io"

	"github.com/marcusj6/JumpSearchTree/pkg/bptree"
)

// Dictionary is implemented by pkg/jumptree.JumpTree. pkg/bench.Harness
// is written generically against this interface rather than against the
// concrete type, so a future second implementation could be benchmarked
// with the same harness.
type Dictionary interface {
	// Construct bulk-loads from an unordered collection of records,
	// sorting by key ascending before building.
	Construct(records []bptree.Record)
	// Search returns the stored value for key, or bptree.NotFound.
	Search(key int32) int32
	// InsertKey upserts (key, value).
	InsertKey(key, value int32)
	// DeleteKey removes key if present; a no-op otherwise.
	DeleteKey(key int32)
	// TreeHeight reports -1 for an empty dictionary, otherwise the
	// depth of the leaves.
	TreeHeight() int
	// Name returns a human-readable identifier for the implementation.
	Name() string
	// Print writes a debug dump to w.
	Print(w io.Writer)
	// LastOpRebuilt reports whether the most recent InsertKey/DeleteKey
	// call triggered a full rebuild.
	LastOpRebuilt() bool
	// Size reports the number of stored items.
	Size() int
	// AverageNodeSize reports the mean occupancy across all nodes,
	// 0 for an empty dictionary.
	AverageNodeSize() float64
}
