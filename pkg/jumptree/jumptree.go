// Package jumptree implements the height-bounded policy layer on top of
// pkg/bptree: it holds the user's height target k, widens or narrows the
// branching factor b around threshold crossings, and invokes an online
// rebuild to keep the tree's height at most k. It also exposes the thin
// dictionary façade external harnesses drive (spec.md §4.4, §4.5).
package jumptree

import (
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/marcusj6/JumpSearchTree/pkg/bptree"
)

// DefaultK is the default height target.
const DefaultK = 5

// DefaultB is the default initial branching factor.
const DefaultB = 4

// JumpTree wraps a *bptree.Tree with the threshold-triggered rebuild
// policy described in spec.md §4.4. It is not safe for concurrent use
// (spec.md §5: single-threaded, no internal locking).
type JumpTree struct {
	tree        *bptree.Tree
	k           int
	lastRebuilt bool
}

// New creates a JumpTree with height target k and initial branching
// factor b. k < 0 is clamped to 0; b < 4 is clamped to 4 (spec.md §3,
// "JumpTree wrapper").
func New(k, b int) *JumpTree {
	if k < 0 {
		k = 0
	}
	return &JumpTree{k: k, tree: bptree.New(b)}
}

// insertionThreshold is 2·⌊b/2⌋^k (spec.md §4.4).
func insertionThreshold(b, k int) int {
	return 2 * intPow(b/2, k)
}

// deletionThreshold is 2·⌊(b−4)/2⌋^k, only meaningful for b > 4
// (spec.md §4.4).
func deletionThreshold(b, k int) int {
	return 2 * intPow((b-4)/2, k)
}

func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// Insert upserts (key, value), widening b and online-rebuilding first if
// the insert would cross the insertion threshold for the current b.
// Reports whether a rebuild occurred.
func (jt *JumpTree) Insert(key, value int32) bool {
	b := jt.tree.MaxChildren()
	rebuilt := false
	if jt.tree.Size()+1 >= insertionThreshold(b, jt.k) {
		jt.tree = bptree.RebuildOnline(jt.tree, b+2)
		rebuilt = true
	}
	jt.tree.Insert(key, value)
	jt.lastRebuilt = rebuilt
	return rebuilt
}

// Delete removes key if present, narrowing b and online-rebuilding first
// if the delete would cross the deletion threshold for the current b.
// Reports whether a rebuild occurred.
func (jt *JumpTree) Delete(key int32) bool {
	b := jt.tree.MaxChildren()
	rebuilt := false
	if b > 4 && jt.tree.Size()-1 <= deletionThreshold(b, jt.k) {
		jt.tree = bptree.RebuildOnline(jt.tree, b-2)
		rebuilt = true
	}
	jt.tree.Delete(key)
	jt.lastRebuilt = rebuilt
	return rebuilt
}

// offlineB computes the branching factor that keeps a bulk-loaded tree
// of n items at height <= k (spec.md §4.4): b = 2·(⌊(n/2)^(1/k)⌋ + 2).
// k == 0 demands height 0, which the source formula's 1/k exponent
// cannot express (division by zero); a single root leaf must then simply
// be large enough to hold every item, so b is set to n directly (never
// below 4).
func offlineB(n, k int) int {
	if k == 0 {
		if n < 4 {
			return 4
		}
		return n
	}
	root := math.Pow(float64(n/2), 1/float64(k))
	return 2 * (int(root) + 2)
}

// Construct bulk-loads records, sorting by key ascending first (spec.md
// §4.5), then offline-rebuilding with a b sized to hold height <= k.
func (jt *JumpTree) Construct(records []bptree.Record) {
	sorted := append([]bptree.Record(nil), records...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	jt.tree = bptree.BuildOffline(sorted, offlineB(len(sorted), jt.k))
	jt.lastRebuilt = false
}

// Search returns the stored value for key, or bptree.NotFound.
func (jt *JumpTree) Search(key int32) int32 { return jt.tree.Find(key) }

// InsertKey upserts (key, value), discarding the rebuild-occurred flag
// (use Insert directly to observe it). Satisfies dictionary.Dictionary.
func (jt *JumpTree) InsertKey(key, value int32) { jt.Insert(key, value) }

// DeleteKey removes key if present, discarding the rebuild-occurred flag
// (use Delete directly to observe it). Satisfies dictionary.Dictionary.
func (jt *JumpTree) DeleteKey(key int32) { jt.Delete(key) }

// TreeHeight reports -1 for an empty tree, otherwise the leaf depth.
func (jt *JumpTree) TreeHeight() int { return jt.tree.Height() }

// Name returns "JumpTree <k>", matching the original source's GetName().
func (jt *JumpTree) Name() string {
	return "JumpTree " + strconv.Itoa(jt.k)
}

// Print writes the debug dump described by spec.md §6.
func (jt *JumpTree) Print(w io.Writer) { jt.tree.Print(w) }

// LastOpRebuilt reports whether the most recent Insert/Delete call
// triggered a rebuild.
func (jt *JumpTree) LastOpRebuilt() bool { return jt.lastRebuilt }

// Size reports the number of stored items. Satisfies dictionary.Dictionary.
func (jt *JumpTree) Size() int { return jt.tree.Size() }

// AverageNodeSize reports the mean occupancy across all nodes. Satisfies
// dictionary.Dictionary.
func (jt *JumpTree) AverageNodeSize() float64 { return jt.tree.AverageNodeSize() }

// Tree exposes the underlying fixed-b core directly, for callers (such as
// tests) that need C2 hooks the thin façade above does not surface, such
// as Walk and MaxChildren.
func (jt *JumpTree) Tree() *bptree.Tree { return jt.tree }

// K reports the height target this JumpTree was constructed with.
func (jt *JumpTree) K() int { return jt.k }
