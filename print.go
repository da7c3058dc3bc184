package wordhierarchy

import (
	"fmt"
	"io"
	"strings"
)

// Dump returns an indented listing of the tree, one node per line. The
// node Dump is called on is not listed; its children are indented by one
// space, their children by two, and so on. A trailing "-" marks a node
// that has children but is not itself a word.
func Dump(w *Word, order Order) string {
	var sb strings.Builder
	Fprint(&sb, w, order)
	return sb.String()
}

// Fprint writes the listing produced by Dump to out.
func Fprint(out io.Writer, w *Word, order Order) error {
	var err error
	w.Walk(order, func(depth int, _ string, node *Word) WalkResult {
		if depth == 0 {
			return Continue
		}
		marker := ""
		if node.Len() > 0 && !node.terminal {
			marker = "-"
		}
		_, err = fmt.Fprintf(out, "%s%s %s\n", strings.Repeat(" ", depth), node.label, marker)
		if err != nil {
			return Stop
		}
		return Continue
	})
	return err
}
