package wordhierarchy

import (
	"errors"
	"fmt"
	"log"
	"unicode/utf8"
)

var (
	// ErrEmptyWord is returned when adding the empty string.
	ErrEmptyWord = errors.New("wordhierarchy: empty word")

	// ErrInvalidWord is returned for words that are not valid UTF-8.
	ErrInvalidWord = errors.New("wordhierarchy: word is not valid UTF-8")

	// ErrFinished is returned when adding to a builder whose tree was
	// already handed out.
	ErrFinished = errors.New("wordhierarchy: builder is finished")
)

// Builder constructs a radix trie one word at a time. Words may be added in
// any order and may repeat; the resulting tree is the same either way.
type Builder struct {
	root     *Word
	numAdded int
	finished bool
	logger   *log.Logger
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		root: newWord("", false),
	}
}

// Build creates the tree for words in one call.
func Build(words []string) (*Word, error) {
	b := NewBuilder()
	for i, word := range words {
		if err := b.Add(word); err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
	}
	return b.Tree(), nil
}

// MustBuild is like Build but panics if a word cannot be added.
func MustBuild(words ...string) *Word {
	root, err := Build(words)
	if err != nil {
		panic(err)
	}
	return root
}

// SetLogger makes the builder log every insertion step. Pass nil to turn
// tracing off.
func (b *Builder) SetLogger(logger *log.Logger) {
	b.logger = logger
}

// NumAdded returns the number of distinct words added.
func (b *Builder) NumAdded() int {
	return b.numAdded
}

// Add inserts a word into the tree. Adding a word twice has no effect.
func (b *Builder) Add(word string) error {
	switch {
	case b.finished:
		return ErrFinished
	case word == "":
		return ErrEmptyWord
	case !utf8.ValidString(word):
		return fmt.Errorf("%q: %w", word, ErrInvalidWord)
	}

	if b.insert(b.root, word) {
		b.numAdded++
	}
	return nil
}

// AddAll adds each of words, stopping at the first error.
func (b *Builder) AddAll(words ...string) error {
	for _, word := range words {
		if err := b.Add(word); err != nil {
			return err
		}
	}
	return nil
}

// Tree finishes the builder and returns the root. The tree must not be
// modified afterwards, so further calls to Add fail.
func (b *Builder) Tree() *Word {
	b.finished = true
	return b.root
}

// insert adds rest below node and reports whether a new word was recorded.
func (b *Builder) insert(node *Word, rest string) bool {
	for {
		ch, _ := utf8.DecodeRuneInString(rest)
		child, ok := node.children[ch]
		if !ok {
			b.tracef("insert %q below %q", rest, node.label)
			node.addChild(newWord(rest, true))
			return true
		}

		n := commonPrefix(child.label, rest)
		if n < len(child.label) {
			// the word diverges inside the child's label: replace the child
			// with a node for the shared part and hang both tails below it.
			b.tracef("split %q at %q for %q", child.label, child.label[:n], rest)
			tail := &Word{
				label:    child.label[n:],
				terminal: child.terminal,
				children: child.children,
				order:    child.order,
			}
			mid := newWord(child.label[:n], n == len(rest))
			mid.addChild(tail)
			if n < len(rest) {
				mid.addChild(newWord(rest[n:], true))
			}
			node.children[ch] = mid
			return true
		}

		rest = rest[n:]
		if rest == "" {
			added := !child.terminal
			child.terminal = true
			b.tracef("mark %q terminal (new=%v)", child.label, added)
			return added
		}

		b.tracef("descend into %q with %q", child.label, rest)
		node = child
	}
}

func (b *Builder) tracef(format string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}

// commonPrefix returns the length in bytes of the longest common prefix of
// a and b, cut at a rune boundary.
func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) {
		ra, size := utf8.DecodeRuneInString(a[n:])
		rb, _ := utf8.DecodeRuneInString(b[n:])
		if ra != rb {
			break
		}
		n += size
	}
	return n
}
