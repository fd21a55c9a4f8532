package bptree

// pack builds a brand-new tree of branching factor b in a single
// left-to-right pass over source, which must yield records in strictly
// ascending key order and signal exhaustion with ok == false. It is the
// shared right-spine packing core behind both BuildOffline and
// RebuildOnline (spec.md §4.3): every node produced along the way is
// filled to exactly ⌈b/2⌉ occupancy except the trailing right spine,
// which is allowed to finish underfull.
//
// rs[j] tracks, for the spine node at depth j, the position the next
// key or child lands at: rs[0] is the fill count of the current leaf,
// rs[j>0] is the index within the depth-j spine node of the child
// currently being descended into. Whenever a spine node splits, the
// slots that moved to its new right sibling shift the next depth down's
// position back by ⌈b/2⌉ (the split node's retained size) — the
// same correction applies whether the split happened because the root
// just grew or because an ordinary spine node filled up.
func pack(b int, source func() (Record, bool)) *Tree {
	b = clampOrder(b)
	t := &Tree{maxChildren: b, height: 0, numLeaves: 1}
	t.root = NewLeaf(b)
	t.min = t.root

	spine := []*Node{t.root} // spine[j]: the current spine node at depth j
	rs := []int{0}           // rs[0..height]

	for {
		rec, ok := source()
		if !ok {
			break
		}

		if spine[t.height].NumChildren() == b {
			oldHeight := t.height
			newRoot := NewInternal(b)
			newRoot.children = append(newRoot.children, t.root)
			t.height++
			t.root = newRoot
			t.splitChild(newRoot, 0)

			spine = append(spine, newRoot)
			rs = append(rs, 1)
			rs[oldHeight] -= (b + 1) / 2
			spine[oldHeight] = newRoot.children[1]
		}

		for j := t.height; j >= 1; j-- {
			node := spine[j]
			if node.children[rs[j]].NumChildren() == b {
				t.splitChild(node, rs[j])
				rs[j]++
				rs[j-1] -= (b + 1) / 2
			}
			spine[j-1] = node.children[rs[j]]
		}

		leaf := spine[0]
		if len(leaf.values) > 0 {
			leaf.keys = append(leaf.keys, leaf.values[len(leaf.values)-1].Key)
		}
		leaf.values = append(leaf.values, rec)
		rs[0]++
		t.numItems++
	}

	if t.numItems == 0 {
		return New(b)
	}
	return t
}

// BuildOffline constructs a fresh tree of branching factor b from sorted,
// an externally sorted-ascending slice of records (spec.md §4.3,
// "Offline"). Callers choosing b to hold a height budget should use the
// formula in spec.md §4.4 (`2·(⌊(N/2)^(1/k)⌋ + 2)`); BuildOffline itself
// is agnostic to how b was chosen.
func BuildOffline(sorted []Record, b int) *Tree {
	i := 0
	return pack(b, func() (Record, bool) {
		if i >= len(sorted) {
			return Record{}, false
		}
		r := sorted[i]
		i++
		return r, true
	})
}

// RebuildOnline constructs a fresh tree of branching factor b from old's
// existing leaf chain, walked via Min/next (spec.md §4.3, "Online"). old
// is left untouched; the caller is responsible for discarding it and
// adopting the returned tree (spec.md §5: rebuilds construct a disjoint
// new tree before the old one is released).
func RebuildOnline(old *Tree, b int) *Tree {
	leaf := old.min
	cell := 0
	return pack(b, func() (Record, bool) {
		for leaf != nil && cell >= len(leaf.values) {
			leaf = leaf.next
			cell = 0
		}
		if leaf == nil {
			return Record{}, false
		}
		r := leaf.values[cell]
		cell++
		return r, true
	})
}
