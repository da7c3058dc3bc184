package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"

	"github.com/milden6/wordhierarchy"
	"github.com/milden6/wordhierarchy/wordlist"
)

var (
	appVersion = "???"
)

func init() {
	pp.ColoringEnabled = false
}

func readWords(in io.Reader, files []string, opts []wordlist.Option) ([]string, error) {
	if len(files) == 0 {
		return wordlist.Read(in, opts...)
	}

	var words []string
	for _, filename := range files {
		list, err := wordlist.Load(filename, opts...)
		if err != nil {
			return nil, err
		}
		words = append(words, list...)
	}
	return words, nil
}

// check makes sure the tree and the compiled pattern agree with the input.
func check(root *wordhierarchy.Word, order wordhierarchy.Order, words []string) error {
	if !root.Verify(words) {
		return fmt.Errorf("tree holds %d words, input has a different set", root.NumWords())
	}

	re, err := wordhierarchy.Compile(root, order)
	if err != nil {
		return err
	}
	for _, word := range words {
		if !re.MatchString(word) {
			return fmt.Errorf("pattern does not match %q", word)
		}
	}
	if re.MatchString("") {
		return fmt.Errorf("pattern matches the empty string")
	}
	return nil
}

func run(in io.Reader, out io.Writer, errOut io.Writer, args []string) int {
	var (
		logger      = log.New(errOut, "", 0x0)
		flags       = flag.NewFlagSet(args[0], flag.ContinueOnError)
		sorted      bool
		anchor      bool
		tree        bool
		stats       bool
		verify      bool
		latin1      bool
		nfc         bool
		fields      bool
		verbose     bool
		showVersion bool
	)
	flags.SetOutput(errOut)
	flags.BoolVar(&sorted, "sorted", true, "Emit siblings in sorted order")
	flags.BoolVar(&anchor, "anchor", false, "Anchor the pattern to match whole strings only")
	flags.BoolVar(&tree, "tree", false, "Print the trie instead of the pattern")
	flags.BoolVar(&stats, "stats", false, "Print trie statistics to stderr")
	flags.BoolVar(&verify, "verify", false, "Check the trie and pattern against the input")
	flags.BoolVar(&latin1, "latin1", false, "Input is ISO-8859-1 encoded")
	flags.BoolVar(&nfc, "nfc", false, "Normalize words to NFC")
	flags.BoolVar(&fields, "fields", false, "Split lines on white space")
	flags.BoolVar(&verbose, "verbose", false, "Verbose mode")
	flags.BoolVar(&showVersion, "v", false, "Show version")
	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintln(out, appVersion)
		return 0
	}

	var opts []wordlist.Option
	if latin1 {
		opts = append(opts, wordlist.Latin1())
	}
	if nfc {
		opts = append(opts, wordlist.NFC())
	}
	if fields {
		opts = append(opts, wordlist.Fields())
	}

	words, err := readWords(in, flags.Args(), opts)
	if err != nil {
		logger.Printf("Can't read words: %s", err)
		return 1
	}

	builder := wordhierarchy.NewBuilder()
	if verbose {
		builder.SetLogger(logger)
	}
	if err := builder.AddAll(words...); err != nil {
		logger.Printf("Can't build tree: %s", err)
		return 1
	}
	root := builder.Tree()

	order := wordhierarchy.Natural
	if sorted {
		order = wordhierarchy.Sorted
	}

	if stats {
		pp.Fprintln(errOut, root.Stats())
	}
	if verify {
		if err := check(root, order, words); err != nil {
			logger.Printf("Verification failed: %s", err)
			return 1
		}
		if verbose {
			logger.Printf("verified %d words", root.NumWords())
		}
	}

	if tree {
		if err := wordhierarchy.Fprint(out, root, order); err != nil {
			logger.Printf("Can't write tree: %s", err)
			return 1
		}
		return 0
	}

	pattern := wordhierarchy.Regex(root, order)
	if anchor {
		pattern = wordhierarchy.Anchored(pattern)
	}
	fmt.Fprintln(out, pattern)
	return 0
}

func main() {
	var w io.Writer
	if isatty.IsTerminal(os.Stdout.Fd()) {
		w = os.Stdout
	} else {
		w = bufio.NewWriter(os.Stdout)
	}

	code := run(os.Stdin, w, os.Stderr, os.Args)
	if bw, ok := w.(*bufio.Writer); ok {
		bw.Flush()
	}
	os.Exit(code)
}
