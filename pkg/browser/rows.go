package browser

import (
	"github.com/filetug/dirtug/pkg/listing"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ tview.TableContent = (*listingRows)(nil)

const (
	nameColIndex = iota
	sizeColIndex
	typeColIndex
	modifiedColIndex
	columnCount
)

var columnTitles = [columnCount]string{"Name", "Size", "Type", "Modified"}

// listingRows exposes a listing as read-only table content.
// Row 0 is the header, marked with the sort order.
type listingRows struct {
	tview.TableContentReadOnly
	listing listing.Listing
	order   sortOrder
	entries []listing.Entry
}

func newListingRows(l listing.Listing, order sortOrder) *listingRows {
	return &listingRows{listing: l, order: order, entries: sortedEntries(l, order)}
}

func (r *listingRows) GetRowCount() int {
	if len(r.entries) == 0 {
		return 2
	}
	return len(r.entries) + 1
}

func (r *listingRows) GetColumnCount() int {
	return columnCount
}

func (r *listingRows) GetCell(row, col int) *tview.TableCell {
	if col < 0 || col >= columnCount || row < 0 {
		return nil
	}
	if row == 0 {
		title := columnTitles[col]
		if col == r.order.column {
			title = r.order.String()
		}
		return tview.NewTableCell(title).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold).
			SetTextColor(tcell.ColorLightGray)
	}
	entry, ok := r.entryAt(row)
	if !ok {
		if row == 1 && len(r.entries) == 0 && col == nameColIndex {
			cell := tview.NewTableCell("[::i]No entries[::-]")
			cell.SetTextColor(tcell.ColorGray)
			return cell
		}
		return nil
	}

	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		if entry.IsFolder() {
			cell = tview.NewTableCell(dirEmoji + tview.Escape(entry.Name())).SetTextColor(folderColor)
		} else {
			cell = tview.NewTableCell(fileEmoji + tview.Escape(entry.Name())).SetTextColor(GetColorByFileExt(entry.Name()))
		}
		cell.SetExpansion(1)
	case sizeColIndex:
		cell = tview.NewTableCell(entry.SizeDisplay()).SetAlign(tview.AlignRight)
	case typeColIndex:
		cell = tview.NewTableCell(entry.Kind().String())
	case modifiedColIndex:
		cell = tview.NewTableCell(entry.ModifiedDisplay())
	}
	return cell.SetReference(entry)
}

// entryAt maps a table row to a listing entry.
func (r *listingRows) entryAt(row int) (listing.Entry, bool) {
	i := row - 1
	if i < 0 || i >= len(r.entries) {
		return listing.Entry{}, false
	}
	return r.entries[i], true
}

// rowOf returns the table row showing the named entry, or 0.
func (r *listingRows) rowOf(name string) int {
	for i, entry := range r.entries {
		if entry.Name() == name {
			return i + 1
		}
	}
	return 0
}
