package dialect

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upper is a locale-independent uppercaser. strings.ToUpper follows the
// default Go case tables, which is fine for ASCII keywords but subtly
// wrong once a dialect's keyword table (via LoadYAML) contains non-ASCII
// entries or an embedder's identifiers exercise non-ASCII case folding
// (e.g. the Turkish dotless-i). cases.Upper(language.Und) folds case
// without assuming any particular locale.
var upper = cases.Upper(language.Und)

// Keywords is a sorted, immutable table of uppercase reserved/non-reserved
// words. Lookup resolves an arbitrarily-cased candidate word to its
// canonical uppercase tag via binary search.
type Keywords struct {
	sorted []string
}

// NewKeywords builds a Keywords table from an unsorted, possibly
// duplicate-containing list of words (any case). Entries are uppercased,
// deduplicated and sorted once at construction time.
func NewKeywords(words ...string) *Keywords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[upper.String(w)] = struct{}{}
	}
	sorted := make([]string, 0, len(set))
	for w := range set {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)
	return &Keywords{sorted: sorted}
}

// Extend returns a new Keywords table containing k's words plus extra.
func (k *Keywords) Extend(extra ...string) *Keywords {
	all := append(append([]string{}, k.sorted...), extra...)
	return NewKeywords(all...)
}

// Lookup resolves word (any case) to its uppercase keyword tag. ok is
// false if the uppercased word is not in the table.
func (k *Keywords) Lookup(word string) (tag string, ok bool) {
	u := upper.String(word)
	i := sort.SearchStrings(k.sorted, u)
	if i < len(k.sorted) && k.sorted[i] == u {
		return u, true
	}
	return "", false
}

// Words returns the sorted uppercase word list. The caller must not
// mutate the returned slice.
func (k *Keywords) Words() []string {
	return k.sorted
}
