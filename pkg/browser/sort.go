package browser

import (
	"cmp"
	"slices"

	"github.com/filetug/dirtug/pkg/listing"
)

// sortOrder is the column the rows are ordered by.
// The zero value keeps the listing order: folders first, then names.
type sortOrder struct {
	column     int
	descending bool
}

// next moves to the following column, ascending.
func (o sortOrder) next() sortOrder {
	return sortOrder{column: (o.column + 1) % columnCount}
}

func (o sortOrder) reversed() sortOrder {
	o.descending = !o.descending
	return o
}

func (o sortOrder) String() string {
	if o.descending {
		return columnTitles[o.column] + " ▼"
	}
	return columnTitles[o.column] + " ▲"
}

// sortedEntries returns the entries of l in the given order.
// Entries that compare equal keep their listing order.
func sortedEntries(l listing.Listing, order sortOrder) []listing.Entry {
	entries := l.Entries()
	if order.column == nameColIndex {
		if order.descending {
			slices.Reverse(entries)
		}
		return entries
	}
	compare := entryComparers[order.column]
	slices.SortStableFunc(entries, func(a, b listing.Entry) int {
		if order.descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return entries
}

var entryComparers = map[int]func(a, b listing.Entry) int{
	sizeColIndex:     compareSize,
	typeColIndex:     compareType,
	modifiedColIndex: compareModified,
}

// compareSize puts folders before files, folders by item count
// (unknown counts first) and files by byte size.
func compareSize(a, b listing.Entry) int {
	if a.Kind() != b.Kind() {
		if a.IsFolder() {
			return -1
		}
		return 1
	}
	if a.IsFolder() {
		return cmp.Compare(a.ItemCount(), b.ItemCount())
	}
	return cmp.Compare(a.Size(), b.Size())
}

func compareType(a, b listing.Entry) int {
	return cmp.Compare(a.Kind().String(), b.Kind().String())
}

func compareModified(a, b listing.Entry) int {
	return a.ModTime().Compare(b.ModTime())
}
