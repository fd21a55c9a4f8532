package bptree

import (
	"fmt"
	"io"
	"strings"
)

// NodeView is a read-only snapshot of a single node, handed to a Walk
// callback. It exists so pretty-printers (pkg/prettyprint) never need to
// import the unexported leaf/internal fields directly.
type NodeView struct {
	ID          string
	Leaf        bool
	NumChildren int
	Keys        []int32
	Values      []Record // leaf only
	ChildIDs    []string // internal only
	NextID      string   // leaf only, "" if no next
	PreviousID  string   // leaf only, "" if no previous
}

func view(n *Node) NodeView {
	v := NodeView{
		ID:          n.ID.String(),
		Leaf:        n.leaf,
		NumChildren: n.NumChildren(),
		Keys:        n.keys,
	}
	if n.leaf {
		v.Values = n.values
		if n.next != nil {
			v.NextID = n.next.ID.String()
		}
		if n.previous != nil {
			v.PreviousID = n.previous.ID.String()
		}
	} else {
		for _, c := range n.children {
			v.ChildIDs = append(v.ChildIDs, c.ID.String())
		}
	}
	return v
}

// Walk visits every node of the tree in preorder, handing each one to fn
// as a NodeView. This is the only traversal hook the core exposes;
// formatting and column layout are external collaborators' concern
// (spec.md §1).
func (t *Tree) Walk(fn func(NodeView)) {
	if t.root == nil {
		return
	}
	walk(t.root, fn)
}

func walk(n *Node, fn func(NodeView)) {
	fn(view(n))
	if !n.leaf {
		for _, c := range n.children {
			walk(c, fn)
		}
	}
}

// Print writes the debug dump mandated by spec.md §6: a header block
// (Height, Max Children, Min, Number of items, Number of leaves)
// followed by a preorder node dump. An empty tree prints a single
// "Empty" node block.
func (t *Tree) Print(w io.Writer) {
	min := "0"
	if t.min != nil {
		min = t.min.ID.String()
	}
	fmt.Fprintf(w, "==========================\n")
	fmt.Fprintf(w, "Height: %d\nMax Children: %d\nMin: %s\nNumber of items: %d\nNumber of leaves: %d\n",
		t.height, t.maxChildren, min, t.numItems, t.numLeaves)
	if t.root == nil {
		printNodeBlock(w, nil)
	} else {
		t.Walk(func(v NodeView) { printNodeBlock(w, &v) })
	}
	fmt.Fprintf(w, "==========================\n")
}

func printNodeBlock(w io.Writer, v *NodeView) {
	fmt.Fprintf(w, "\n--------------------------\n")
	if v == nil {
		fmt.Fprintf(w, "Empty\n--------------------------\n")
		return
	}
	fmt.Fprintf(w, "ID: %s\nNumber of children: %d\nKeys: ", v.ID, v.NumChildren)
	keyStrs := make([]string, len(v.Keys))
	for i, k := range v.Keys {
		keyStrs[i] = fmt.Sprintf("%d", k)
	}
	fmt.Fprintf(w, "%s", strings.Join(keyStrs, ", "))

	if v.Leaf {
		fmt.Fprintf(w, "\nValues: ")
		cellStrs := make([]string, len(v.Values))
		for i, rec := range v.Values {
			cellStrs[i] = fmt.Sprintf("%d:%d", rec.Key, rec.Value)
		}
		fmt.Fprintf(w, "%s", strings.Join(cellStrs, ", "))
		next, prev := v.NextID, v.PreviousID
		if next == "" {
			next = "0"
		}
		if prev == "" {
			prev = "0"
		}
		fmt.Fprintf(w, "\nIs leaf? YES\nNext: %s\nPrevious: %s\n", next, prev)
	} else {
		fmt.Fprintf(w, "\nChildren: %s", strings.Join(v.ChildIDs, ", "))
		fmt.Fprintf(w, "\nIs leaf? NO\nNext: 0\nPrevious: 0\n")
	}
	fmt.Fprintf(w, "--------------------------\n")
}
