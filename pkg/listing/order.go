package listing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func newNameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// sortEntries puts folders before files and orders names within each group.
// Names the collator considers equal are ordered byte-wise, so the order is total.
func sortEntries(entries []Entry, collator *collate.Collator) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.kind != b.kind {
			return a.kind == Folder
		}
		if c := collator.CompareString(a.name, b.name); c != 0 {
			return c < 0
		}
		return a.name < b.name
	})
}
