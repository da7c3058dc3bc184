// Package wordlist reads word lists from disk or from a stream.
//
// A list holds one word per line. Blank lines and lines starting with '#'
// are ignored, and surrounding white space is trimmed. Duplicates are kept;
// the trie builder collapses them.
package wordlist

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/exp/mmap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

type options struct {
	latin1 bool
	nfc    bool
	fields bool
}

// Option changes how a list is decoded.
type Option func(*options)

// Latin1 decodes the input as ISO-8859-1 instead of UTF-8.
func Latin1() Option {
	return func(o *options) { o.latin1 = true }
}

// NFC normalizes every word to Unicode normalization form C, so that a
// precomposed and a decomposed spelling are the same word.
func NFC() Option {
	return func(o *options) { o.nfc = true }
}

// Fields splits every line on white space, so a line may hold several
// words.
func Fields() Option {
	return func(o *options) { o.fields = true }
}

// Load reads the word list in filename. The file is memory mapped.
func Load(filename string, opts ...Option) ([]string, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(io.NewSectionReader(f, 0, int64(f.Len())), opts...)
}

// Read reads a word list from r.
func Read(r io.Reader, opts ...Option) ([]string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.latin1 {
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lineWords := []string{line}
		if o.fields {
			lineWords = strings.Fields(line)
		}

		for _, word := range lineWords {
			if o.nfc {
				word = norm.NFC.String(word)
			}
			words = append(words, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
