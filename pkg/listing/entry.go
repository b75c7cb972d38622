package listing

import (
	"strconv"
	"time"

	"github.com/filetug/dirtug/pkg/fsutils"
)

// Kind tells folders from files.
type Kind int

const (
	File Kind = iota
	Folder
)

func (k Kind) String() string {
	if k == Folder {
		return "Folder"
	}
	return "File"
}

// unknownItemCount marks a folder whose children were not counted.
const unknownItemCount = -1

// Entry is one display-ready row of a Listing. It is immutable.
type Entry struct {
	name      string
	kind      Kind
	size      int64
	itemCount int
	modTime   time.Time
}

func newFileEntry(name string, size int64, modTime time.Time) Entry {
	return Entry{name: name, kind: File, size: size, itemCount: unknownItemCount, modTime: modTime}
}

func newFolderEntry(name string, itemCount int, modTime time.Time) Entry {
	return Entry{name: name, kind: Folder, itemCount: itemCount, modTime: modTime}
}

func (e Entry) Name() string       { return e.name }
func (e Entry) Kind() Kind         { return e.kind }
func (e Entry) IsFolder() bool     { return e.kind == Folder }
func (e Entry) Size() int64        { return e.size }
func (e Entry) ModTime() time.Time { return e.modTime }

// ItemCount is the number of visible children of a folder,
// or -1 for files and for folders that could not be counted.
func (e Entry) ItemCount() int { return e.itemCount }

// SizeDisplay is the byte size of a file, e.g. "1.5 kB",
// or the visible child count of a folder, e.g. "3 items".
func (e Entry) SizeDisplay() string {
	if e.kind == File {
		size := e.size
		if size < 0 {
			size = 0
		}
		return fsutils.FormatSize(uint64(size))
	}
	if e.itemCount == unknownItemCount {
		return "? items"
	}
	return strconv.Itoa(e.itemCount) + " items"
}

// ModifiedDisplay is the modification time as DD-MM-YYYY HH:MM in UTC.
func (e Entry) ModifiedDisplay() string {
	return fsutils.FormatTimestamp(e.modTime)
}
