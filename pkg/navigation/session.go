// Package navigation keeps track of the directory being browsed and
// produces a fresh listing on every transition.
package navigation

import (
	"context"
	"path/filepath"

	"github.com/filetug/dirtug/pkg/listing"
	"github.com/rs/zerolog"
)

// Lister produces the listing of a directory.
type Lister interface {
	List(ctx context.Context, dirPath string, showHidden bool) (listing.Listing, error)
}

// Snapshot is what a presentation layer gets to show.
type Snapshot struct {
	Location string
	Listing  listing.Listing
}

// Activation is the outcome of Session.Activate. OpenPath is set when a file
// was activated and should be handed to an opener; navigation did not change.
type Activation struct {
	Snapshot
	OpenPath string
}

type sessionOptions struct {
	showHidden bool
	logger     zerolog.Logger
}

type SessionOption func(o *sessionOptions)

func WithShowHidden(v bool) SessionOption {
	return func(o *sessionOptions) {
		o.showHidden = v
	}
}

func WithLogger(logger zerolog.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}

var (
	filepathAbs          = filepath.Abs
	filepathEvalSymlinks = filepath.EvalSymlinks
)

// Session owns the navigation State and the listing produced for it.
// It is not safe for concurrent use.
type Session struct {
	lister  Lister
	state   State
	current listing.Listing
	log     zerolog.Logger
}

// NewSession canonicalizes startDir and lists it.
func NewSession(ctx context.Context, lister Lister, startDir string, o ...SessionOption) (*Session, error) {
	opts := sessionOptions{logger: zerolog.Nop()}
	for _, opt := range o {
		opt(&opts)
	}
	location, err := canonicalize(startDir)
	if err != nil {
		return nil, err
	}
	s := &Session{
		lister: lister,
		log:    opts.logger,
	}
	if err = s.commit(ctx, NewState(location, opts.showHidden)); err != nil {
		return nil, err
	}
	return s, nil
}

func canonicalize(dir string) (string, error) {
	abs, err := filepathAbs(dir)
	if err != nil {
		return "", &listing.FilesystemError{Path: dir, Err: err}
	}
	resolved, err := filepathEvalSymlinks(abs)
	if err != nil {
		return "", &listing.FilesystemError{Path: abs, Err: err}
	}
	return resolved, nil
}

// commit lists next and makes it current only if listing succeeded.
func (s *Session) commit(ctx context.Context, next State) error {
	l, err := s.lister.List(ctx, next.Location(), next.ShowHidden())
	if err != nil {
		return err
	}
	s.state = next
	s.current = l
	return nil
}

func (s *Session) State() State { return s.state }

// Snapshot returns the current location and its listing.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{Location: s.state.Location(), Listing: s.current}
}

// Enter moves into the named folder of the current listing.
func (s *Session) Enter(ctx context.Context, name string) (Snapshot, error) {
	entry, found := s.current.Find(name)
	if !found {
		return s.reject("enter", name, ErrNoSuchEntry)
	}
	if !entry.IsFolder() {
		return s.reject("enter", name, ErrNotFolder)
	}
	if err := s.commit(ctx, s.state.Child(name)); err != nil {
		return s.reject("enter", name, err)
	}
	s.log.Debug().Str("location", s.state.Location()).Msg("entered folder")
	return s.Snapshot(), nil
}

// GoUp moves to the parent directory.
func (s *Session) GoUp(ctx context.Context) (Snapshot, error) {
	parent, ok := s.state.Parent()
	if !ok {
		return s.reject("go up", "", ErrAtRoot)
	}
	if err := s.commit(ctx, parent); err != nil {
		s.log.Warn().Err(err).Str("location", parent.Location()).Msg("failed to go up")
		return s.Snapshot(), err
	}
	s.log.Debug().Str("location", s.state.Location()).Msg("went up")
	return s.Snapshot(), nil
}

// ToggleHidden flips hidden-entry visibility and re-lists the current location.
func (s *Session) ToggleHidden(ctx context.Context) (Snapshot, error) {
	if err := s.commit(ctx, s.state.Toggled()); err != nil {
		s.log.Warn().Err(err).Str("location", s.state.Location()).Msg("failed to toggle hidden entries")
		return s.Snapshot(), err
	}
	s.log.Debug().Bool("showHidden", s.state.ShowHidden()).Msg("toggled hidden entries")
	return s.Snapshot(), nil
}

// Refresh lists the current location again.
func (s *Session) Refresh(ctx context.Context) (Snapshot, error) {
	if err := s.commit(ctx, s.state); err != nil {
		s.log.Warn().Err(err).Str("location", s.state.Location()).Msg("failed to refresh")
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

// Activate enters a folder, or for a file returns its path in OpenPath
// without changing the location.
func (s *Session) Activate(ctx context.Context, name string) (Activation, error) {
	entry, found := s.current.Find(name)
	if !found {
		snapshot, err := s.reject("activate", name, ErrNoSuchEntry)
		return Activation{Snapshot: snapshot}, err
	}
	if entry.IsFolder() {
		snapshot, err := s.Enter(ctx, name)
		return Activation{Snapshot: snapshot}, err
	}
	openPath := filepath.Join(s.state.Location(), name)
	s.log.Debug().Str("path", openPath).Msg("open file requested")
	return Activation{Snapshot: s.Snapshot(), OpenPath: openPath}, nil
}

func (s *Session) reject(op, name string, err error) (Snapshot, error) {
	navErr := &NavigationError{Op: op, Location: s.state.Location(), Name: name, Err: err}
	s.log.Warn().Err(navErr).Msg("navigation rejected")
	return s.Snapshot(), navErr
}
