// Package prettyprint renders a *bptree.Tree for human consumption: the
// exact debug-dump format spec.md §6 mandates, plus an aligned-column
// rendering for terminal use. Neither cmd/jumptree's print command nor
// the interactive shell calls this package; both write tree.Print.
package prettyprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/marcusj6/JumpSearchTree/pkg/bptree"
)

// Dump writes the exact debug-dump format spec.md §6 mandates. This is a
// thin alias over (*bptree.Tree).Print — the core already implements the
// mandated format directly, since the format is itself a protocol the
// original source's harness parses, not merely cosmetic.
func Dump(w io.Writer, tree *bptree.Tree) {
	tree.Print(w)
}

// Columns renders each leaf's key:value cells as aligned, Unicode-safe
// columns, one leaf row per line, preceded by a one-line tree summary.
func Columns(w io.Writer, tree *bptree.Tree) {
	fmt.Fprintf(w, "height=%d size=%d leaves=%d avg-node-size=%.2f\n",
		tree.Height(), tree.Size(), tree.NumLeaves(), tree.AverageNodeSize())

	var rows []string
	tree.Walk(func(v bptree.NodeView) {
		if !v.Leaf {
			return
		}
		var cells []string
		for _, rec := range v.Values {
			cells = append(cells, fmt.Sprintf("%d:%d", rec.Key, rec.Value))
		}
		rows = append(rows, strings.Join(cells, " "))
	})

	width := 0
	for _, row := range rows {
		if rowWidth := runewidth.StringWidth(row); rowWidth > width {
			width = rowWidth
		}
	}

	for i, row := range rows {
		padding := strings.Repeat(" ", width-runewidth.StringWidth(row))
		fmt.Fprintf(w, "leaf[%d] %s%s\n", i, row, padding)
	}
}
