// Package permute enumerates every ordering of a list of words.
package permute

// Permutations yields all n! orderings of a list using Heap's algorithm.
// It is lazy: only the current ordering and the algorithm state are kept.
type Permutations struct {
	items   []string
	current []string
	stack   []int
	i       int
	started bool
}

// New creates the sequence of orderings of items. The slice is copied.
func New(items []string) *Permutations {
	p := &Permutations{
		items: append([]string(nil), items...),
	}
	p.Reset()
	return p
}

// Reset rewinds the sequence to before the first ordering.
func (p *Permutations) Reset() {
	p.current = append(p.current[:0], p.items...)
	p.stack = make([]int, len(p.items))
	p.i = 0
	p.started = false
}

// Next advances to the next ordering. It returns false once every ordering
// has been produced.
func (p *Permutations) Next() bool {
	if !p.started {
		p.started = true
		return true
	}

	for p.i < len(p.current) {
		if p.stack[p.i] < p.i {
			if p.i%2 == 0 {
				p.current[0], p.current[p.i] = p.current[p.i], p.current[0]
			} else {
				j := p.stack[p.i]
				p.current[j], p.current[p.i] = p.current[p.i], p.current[j]
			}
			p.stack[p.i]++
			p.i = 0
			return true
		}
		p.stack[p.i] = 0
		p.i++
	}
	return false
}

// Value returns a copy of the current ordering.
func (p *Permutations) Value() []string {
	return append([]string(nil), p.current...)
}

// Count returns the number of orderings, n!.
func (p *Permutations) Count() int {
	count := 1
	for i := 2; i <= len(p.items); i++ {
		count *= i
	}
	return count
}
