package listing

// Listing is the ordered, point-in-time content of one directory.
// Folders come first. A Listing is never modified, a new one replaces it.
type Listing struct {
	path       string
	showHidden bool
	entries    []Entry
}

// Path is the directory the listing was produced for.
func (l Listing) Path() string { return l.path }

// ShowHidden reports whether hidden entries were included.
func (l Listing) ShowHidden() bool { return l.showHidden }

func (l Listing) Len() int { return len(l.entries) }

func (l Listing) At(i int) Entry { return l.entries[i] }

// Entries returns a copy of the ordered entries.
func (l Listing) Entries() []Entry {
	if l.entries == nil {
		return nil
	}
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Find looks up an entry by exact name.
func (l Listing) Find(name string) (Entry, bool) {
	for _, e := range l.entries {
		if e.name == name {
			return e, true
		}
	}
	return Entry{}, false
}
