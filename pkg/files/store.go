package files

import (
	"context"
	"os"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

// Store gives read-only access to a tree of directories.
type Store interface {
	// RootTitle names the tree, e.g. the host for the local filesystem.
	RootTitle() string

	// ReadDir returns the immediate children of the named directory.
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)

	// Stat returns info about the named entry, following symlinks.
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}
