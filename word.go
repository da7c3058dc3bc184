package wordhierarchy

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Word is a node of the radix trie. The root has an empty label; every other
// node holds the characters consumed on the edge from its parent.
type Word struct {
	label    string
	terminal bool
	children map[rune]*Word
	order    []rune // first rune of each child, in insertion order
}

// Shape tells the renderer how a node is emitted.
type Shape int

const (
	// Leaf has no children.
	Leaf Shape = iota

	// Chain has exactly one child and is not itself a word.
	Chain

	// Optional has exactly one child and is itself a word.
	Optional

	// Branch has two or more children.
	Branch
)

func (s Shape) String() string {
	switch s {
	case Leaf:
		return "leaf"
	case Chain:
		return "chain"
	case Optional:
		return "optional"
	case Branch:
		return "branch"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Order decides the sequence in which siblings are visited. A nil Order
// keeps insertion order.
type Order func(a, b *Word) int

var (
	// Sorted orders siblings by ascending label.
	Sorted Order = func(a, b *Word) int {
		return strings.Compare(a.label, b.label)
	}

	// Natural keeps the order in which the children were created. The
	// result depends on the order the words were added.
	Natural Order
)

// WalkFn is called for every node visited by Walk. Depth is 0 for the node
// Walk was called on, and prefix is the concatenation of all labels from
// there down to w.
type WalkFn = func(depth int, prefix string, w *Word) WalkResult

// WalkResult is returned by a WalkFn to indicate whether the walk should
// descend below the current node or stop altogether.
type WalkResult = int

const (
	// Continue descends into the children of the current node
	Continue WalkResult = iota

	// Skip will skip all words below the current node
	Skip

	// Stop will immediately stop walking
	Stop
)

// Stats summarizes the size of a tree.
type Stats struct {
	Words    int
	Nodes    int
	Edges    int
	MaxDepth int
	Runes    int // total runes over all labels
}

func newWord(label string, terminal bool) *Word {
	return &Word{
		label:    label,
		terminal: terminal,
		children: make(map[rune]*Word),
	}
}

// Label returns the characters on the edge leading to w.
func (w *Word) Label() string {
	return w.label
}

// Terminal reports whether the path from the root to w is one of the words.
func (w *Word) Terminal() bool {
	return w.terminal
}

// Len returns the number of children.
func (w *Word) Len() int {
	return len(w.children)
}

// Shape classifies w for rendering.
func (w *Word) Shape() Shape {
	switch {
	case len(w.children) == 0:
		return Leaf
	case len(w.children) > 1:
		return Branch
	case w.terminal:
		return Optional
	default:
		return Chain
	}
}

// Children returns the children of w arranged by order. The returned slice
// is a copy; the tree itself is never reordered.
func (w *Word) Children(order Order) []*Word {
	kids := make([]*Word, 0, len(w.order))
	for _, ch := range w.order {
		kids = append(kids, w.children[ch])
	}
	if order != nil {
		slices.SortFunc(kids, func(a, b *Word) int {
			return order(a, b)
		})
	}
	return kids
}

// Child returns the child whose label starts with ch, or nil.
func (w *Word) Child(ch rune) *Word {
	return w.children[ch]
}

func (w *Word) only() *Word {
	return w.children[w.order[0]]
}

func (w *Word) addChild(child *Word) {
	ch, _ := utf8.DecodeRuneInString(child.label)
	if _, ok := w.children[ch]; !ok {
		w.order = append(w.order, ch)
	}
	w.children[ch] = child
}

// Walk visits w and everything below it in pre-order, siblings arranged by
// order.
func (w *Word) Walk(order Order, fn WalkFn) {
	w.walk(0, "", order, fn)
}

func (w *Word) walk(depth int, prefix string, order Order, fn WalkFn) WalkResult {
	prefix += w.label

	switch fn(depth, prefix, w) {
	case Stop:
		return Stop
	case Skip:
		return Continue
	}

	for _, child := range w.Children(order) {
		if child.walk(depth+1, prefix, order, fn) == Stop {
			return Stop
		}
	}
	return Continue
}

// Words returns every word stored below w.
func (w *Word) Words(order Order) []string {
	var words []string
	w.Walk(order, func(_ int, prefix string, node *Word) WalkResult {
		if node.terminal {
			words = append(words, prefix)
		}
		return Continue
	})
	return words
}

// NumWords returns the number of words stored below w.
func (w *Word) NumWords() int {
	return w.Stats().Words
}

// NumNodes returns the number of nodes, including w itself.
func (w *Word) NumNodes() int {
	return w.Stats().Nodes
}

// Stats walks the tree once and reports its size.
func (w *Word) Stats() Stats {
	var stats Stats
	w.Walk(Natural, func(depth int, _ string, node *Word) WalkResult {
		stats.Nodes++
		stats.Runes += utf8.RuneCountInString(node.label)
		if node.terminal {
			stats.Words++
		}
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		return Continue
	})
	stats.Edges = stats.Nodes - 1
	return stats
}

// Contains reports whether word was added to the tree rooted at w.
func (w *Word) Contains(word string) bool {
	node := w
	for word != "" {
		ch, _ := utf8.DecodeRuneInString(word)
		child, ok := node.children[ch]
		if !ok || !strings.HasPrefix(word, child.label) {
			return false
		}
		word = word[len(child.label):]
		node = child
	}
	return node != w && node.terminal
}

// Verify reports whether candidate holds exactly the words of the tree,
// ignoring duplicates. It compares word sets, not regex matches, so a
// single extra or missing word makes it fail.
func (w *Word) Verify(candidate []string) bool {
	want := make(map[string]struct{}, len(candidate))
	for _, word := range candidate {
		want[word] = struct{}{}
	}

	got := make(map[string]struct{}, len(want))
	for _, word := range w.Words(Natural) {
		got[word] = struct{}{}
	}

	return maps.Equal(want, got)
}

// String returns the sorted debug listing of the tree.
func (w *Word) String() string {
	return Dump(w, Sorted)
}
