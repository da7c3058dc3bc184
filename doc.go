/*
Package wordhierarchy turns a closed list of words into a single regular
expression that matches exactly those words.

The words are first compressed into a radix trie: common prefixes are
shared, and an edge carries as many characters as possible. The trie is
then written out as a pattern, choosing at each node between a literal run,
a character class, an optional suffix, or a non-capturing alternation.

	root, err := wordhierarchy.Build([]string{"Euere", "Eueres", "Euerem"})
	...
	wordhierarchy.RegexSorted(root) // Euere[ms]?

The pattern is not anchored; wrap it with Anchored for whole-string
matching. With the Sorted order the output depends only on the set of words.
With Natural it follows the order the words were added in.

The output is not a minimal expression. Siblings directly below the root
are never folded into a character class. Only common prefixes are shared,
never common suffixes or middles. Single characters mixed with longer
siblings stay in one alternation rather than becoming a class inside a
group.

Dump prints the trie for inspection, and Word.Verify checks a tree against
a reference word set.
*/
package wordhierarchy
