package listing

import (
	"context"
	"os"
	"path/filepath"

	"github.com/filetug/dirtug/pkg/fsutils"
)

// classify reads the metadata of a child of dirPath.
// Symlinks are classified by their target. ok is false when the metadata
// can not be read or the entry is neither a folder nor a regular file.
func (l *Lister) classify(ctx context.Context, dirPath string, child os.DirEntry) (kind Kind, info os.FileInfo, ok bool) {
	name := child.Name()
	info, err := child.Info()
	if err != nil || info == nil {
		l.o.logger.Debug().Err(err).Str("dir", dirPath).Str("name", name).Msg("skipping entry without metadata")
		return File, nil, false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		if info, err = l.store.Stat(ctx, filepath.Join(dirPath, name)); err != nil {
			l.o.logger.Debug().Err(err).Str("dir", dirPath).Str("name", name).Msg("skipping unresolvable symlink")
			return File, nil, false
		}
	}
	switch {
	case info.IsDir():
		return Folder, info, true
	case info.Mode().IsRegular():
		return File, info, true
	default:
		l.o.logger.Debug().Str("dir", dirPath).Str("name", name).Stringer("mode", info.Mode()).Msg("skipping special file")
		return File, nil, false
	}
}

// countVisibleChildren counts the children of dirPath that pass the hidden
// filter and classify as a folder or a file.
func (l *Lister) countVisibleChildren(ctx context.Context, dirPath string, showHidden bool) (int, error) {
	children, err := l.store.ReadDir(ctx, dirPath)
	if err != nil {
		return unknownItemCount, err
	}
	count := 0
	for _, child := range children {
		if !showHidden && fsutils.IsHiddenName(child.Name()) {
			continue
		}
		if _, _, ok := l.classify(ctx, dirPath, child); ok {
			count++
		}
	}
	return count, nil
}
