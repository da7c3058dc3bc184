package wordhierarchy_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/milden6/wordhierarchy"
	"github.com/milden6/wordhierarchy/internal/permute"
)

func TestDump(t *testing.T) {
	cases := []struct {
		Words string
		Dump  string
	}{
		{"aabcd aabce", " aabc -\n  d \n  e \n"},
		{"3112 3122 3132 31425 31", " 31 \n  12 \n  22 \n  32 \n  425 \n"},
		{"3112 3122 3132 31425", " 31 -\n  12 \n  22 \n  32 \n  425 \n"},
		{"Euere Eueres Euerem", " Euere \n  m \n  s \n"},
		{"b a", " a \n b \n"},
		{"", ""},
	}

	for _, c := range cases {
		root := build(t, c.Words)
		if diff := cmp.Diff(c.Dump, wordhierarchy.Dump(root, wordhierarchy.Sorted)); diff != "" {
			t.Errorf("Dump(%q) mismatch (-want +got):\n%s", c.Words, diff)
		}
	}
}

func TestDumpNatural(t *testing.T) {
	root := build(t, "b a")
	if got := wordhierarchy.Dump(root, wordhierarchy.Natural); got != " b \n a \n" {
		t.Errorf("Dump returned %q", got)
	}
}

func TestWordString(t *testing.T) {
	root := build(t, "aabce aabcd")
	if got := root.String(); got != " aabc -\n  d \n  e \n" {
		t.Errorf("String returned %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFprintError(t *testing.T) {
	root := build(t, "abc abd")
	if err := wordhierarchy.Fprint(failingWriter{}, root, wordhierarchy.Sorted); err == nil {
		t.Errorf("expected the write error to be returned")
	}
}

// Rebuilds the tree for every ordering of the words. Set
// WORDHIERARCHY_EXHAUSTIVE to run it; it takes a while.
func TestDumpAllOrderings(t *testing.T) {
	if testing.Short() || os.Getenv("WORDHIERARCHY_EXHAUSTIVE") == "" {
		t.Skip("set WORDHIERARCHY_EXHAUSTIVE to run")
	}

	words := strings.Fields("Ihnen Ihr Ihre Ihrem Ihren Ihrer Ihrerseits Ihres Ihresgleichen")
	want := wordhierarchy.Dump(wordhierarchy.MustBuild(words...), wordhierarchy.Sorted)

	p := permute.New(words)
	for p.Next() {
		root := wordhierarchy.MustBuild(p.Value()...)
		if got := wordhierarchy.Dump(root, wordhierarchy.Sorted); got != want {
			t.Fatalf("order %v gives\n%s\nexpected\n%s", p.Value(), got, want)
		}
		if !root.Verify(words) {
			t.Fatalf("order %v lost words", p.Value())
		}
	}
}
