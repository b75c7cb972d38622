package navigation

import (
	"path/filepath"

	"github.com/filetug/dirtug/pkg/listing"
)

// State is the browsing position: an absolute directory and the hidden-entries flag.
// Transitions return a new State and leave the receiver untouched.
type State struct {
	location   string
	showHidden bool
}

func NewState(location string, showHidden bool) State {
	return State{location: location, showHidden: showHidden}
}

func (s State) Location() string { return s.location }

func (s State) ShowHidden() bool { return s.showHidden }

// Child points to the named entry inside the current location.
func (s State) Child(name string) State {
	s.location = filepath.Join(s.location, name)
	return s
}

// Parent points one level up. It returns false at a filesystem root.
func (s State) Parent() (State, bool) {
	parent := filepath.Dir(s.location)
	if parent == s.location {
		return s, false
	}
	s.location = parent
	return s, true
}

func (s State) Toggled() State {
	s.showHidden = !s.showHidden
	return s
}

// NeedsListing reports whether l was produced for a different location or
// hidden-entries flag than s.
func (s State) NeedsListing(l listing.Listing) bool {
	return l.Path() != s.location || l.ShowHidden() != s.showHidden
}
