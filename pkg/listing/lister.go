// Package listing turns the children of a directory into display-ready rows.
package listing

import (
	"context"
	"path/filepath"

	"github.com/filetug/dirtug/pkg/files"
	"github.com/filetug/dirtug/pkg/fsutils"
	"github.com/rs/zerolog"
)

type options struct {
	folderCountLimit int
	logger           zerolog.Logger
}

type Option func(o *options)

// WithFolderCountLimit caps the number of folders per listing whose children
// are counted. Folders past the cap show "? items". Zero means no cap.
func WithFolderCountLimit(n int) Option {
	return func(o *options) {
		o.folderCountLimit = n
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Lister produces listings from a files.Store.
type Lister struct {
	store files.Store
	o     options
}

func NewLister(store files.Store, o ...Option) *Lister {
	l := &Lister{
		store: store,
		o: options{
			logger: zerolog.Nop(),
		},
	}
	for _, opt := range o {
		opt(&l.o)
	}
	return l
}

// List enumerates the immediate children of dirPath.
//
// Hidden entries (names starting with ".") are left out unless showHidden is set,
// both from the listing and from folder item counts. Children whose metadata can
// not be read are skipped. Only a failure to enumerate dirPath itself is an error,
// reported as *FilesystemError.
func (l *Lister) List(ctx context.Context, dirPath string, showHidden bool) (Listing, error) {
	children, err := l.store.ReadDir(ctx, dirPath)
	if err != nil {
		return Listing{}, &FilesystemError{Path: dirPath, Err: err}
	}
	entries := make([]Entry, 0, len(children))
	counted := 0
	for _, child := range children {
		name := child.Name()
		if !showHidden && fsutils.IsHiddenName(name) {
			continue
		}
		kind, info, ok := l.classify(ctx, dirPath, child)
		if !ok {
			continue
		}
		if kind == File {
			entries = append(entries, newFileEntry(name, info.Size(), info.ModTime()))
			continue
		}
		itemCount := unknownItemCount
		if l.o.folderCountLimit <= 0 || counted < l.o.folderCountLimit {
			counted++
			if itemCount, err = l.countVisibleChildren(ctx, filepath.Join(dirPath, name), showHidden); err != nil {
				l.o.logger.Debug().Err(err).Str("dir", dirPath).Str("name", name).Msg("failed to count folder items")
			}
		}
		entries = append(entries, newFolderEntry(name, itemCount, info.ModTime()))
	}
	sortEntries(entries, newNameCollator())
	l.o.logger.Debug().Str("dir", dirPath).Bool("showHidden", showHidden).Int("entries", len(entries)).Msg("listed directory")
	return Listing{path: dirPath, showHidden: showHidden, entries: entries}, nil
}
