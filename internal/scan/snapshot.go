package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"
)

type FileInfo struct {
	ModTime time.Time
	Size    int64
}

// Snapshot maps slash-relative file paths to their last observed state. It is
// rebuilt in full on every polling round and never persisted.
type Snapshot map[string]FileInfo

// Scan walks root and records every non-ignored file. Files that vanish or
// become unreadable between enumeration and stat are skipped without error.
func Scan(ctx context.Context, root string, ignore *IgnoreList) (Snapshot, error) {
	snap := make(Snapshot)

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// path disappeared or is unreadable, skip it
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && ignore.ShouldIgnore(relPath) {
				return fs.SkipDir
			}
			return nil
		}

		if ignore.ShouldIgnore(relPath) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// raced with a delete, skip
			return nil
		}

		snap[relPath] = FileInfo{
			ModTime: info.ModTime(),
			Size:    info.Size(),
		}
		return nil
	}

	if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, err
	}
	return snap, nil
}
