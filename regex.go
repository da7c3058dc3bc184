package wordhierarchy

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// never matches anything, used for trees without words
const emptyPattern = `[^\x00-\x{10FFFF}]`

// fragment is a piece of rendered pattern. An atomic fragment can take a
// quantifier without being grouped first.
type fragment struct {
	text   string
	atomic bool
}

func (f fragment) optional() string {
	if f.atomic {
		return f.text + "?"
	}
	return "(?:" + f.text + ")?"
}

// Regex renders the tree rooted at w as a pattern matching exactly its
// words. The pattern is not anchored. Siblings are emitted in the sequence
// given by order, so only Sorted gives a result independent of the order
// the words were added in.
func Regex(w *Word, order Order) string {
	return render(w, order).text
}

// RegexSorted is Regex with Sorted ordering.
func RegexSorted(w *Word) string {
	return Regex(w, Sorted)
}

// Compile renders the tree and compiles the pattern. A tree without words
// compiles to a pattern that never matches.
func Compile(w *Word, order Order) (*regexp.Regexp, error) {
	pattern := Regex(w, order)
	if pattern == "" {
		pattern = emptyPattern
	}
	return regexp.Compile(pattern)
}

// Anchored wraps pattern so that it only matches whole strings.
func Anchored(pattern string) string {
	return "^(?:" + pattern + ")$"
}

func render(w *Word, order Order) fragment {
	label := regexp.QuoteMeta(w.label)

	switch w.Shape() {
	case Leaf:
		return fragment{
			text:   label,
			atomic: utf8.RuneCountInString(w.label) == 1,
		}

	case Chain:
		child := render(w.only(), order)
		if label == "" {
			return child
		}
		return fragment{text: label + child.text}

	case Optional:
		child := render(w.only(), order)
		return fragment{text: label + child.optional()}

	case Branch:
		kids := w.Children(order)

		// the root has no surrounding context, so its alternatives are
		// emitted bare and never folded into a class.
		if w.label == "" && !w.terminal {
			return fragment{text: alternatives(kids, order)}
		}

		var combined string
		if isClass(kids) {
			combined = class(kids)
		} else {
			combined = "(?:" + alternatives(kids, order) + ")"
		}
		if w.terminal {
			combined += "?"
		}
		return fragment{text: label + combined}
	}

	panic(fmt.Sprintf("wordhierarchy: unknown shape %v", w.Shape()))
}

func alternatives(kids []*Word, order Order) string {
	parts := make([]string, len(kids))
	for i, kid := range kids {
		parts[i] = render(kid, order).text
	}
	return strings.Join(parts, "|")
}

// isClass reports whether all siblings are single-character leaves.
func isClass(kids []*Word) bool {
	for _, kid := range kids {
		if kid.Len() > 0 || utf8.RuneCountInString(kid.label) != 1 {
			return false
		}
	}
	return true
}

func class(kids []*Word) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, kid := range kids {
		ch, _ := utf8.DecodeRuneInString(kid.label)
		switch ch {
		case '\\', '[', ']', '^', '-':
			sb.WriteByte('\\')
		}
		sb.WriteRune(ch)
	}
	sb.WriteByte(']')
	return sb.String()
}
