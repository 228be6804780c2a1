package certexpiry

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/function61/gokit/logex"
)

const DefaultSuffix = ".crt"

// visits files whose name ends in Suffix, depth-first in lexical order.
// iterative: call stack depth does not depend on tree depth.
//
// symlinks to directories are not followed (they could form cycles), symlinks to
// files are visited like regular files.
type Walker struct {
	Suffix string
	// called when a subdirectory can't be listed. nil => the walk stops with the error,
	// returning nil from the handler skips the subdirectory.
	OnUnreadableDir func(err *TraversalError) error
	logl            *logex.Leveled
}

func NewWalker(suffix string, logger *log.Logger) *Walker {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	return &Walker{
		Suffix: suffix,
		logl:   logex.Levels(logger),
	}
}

type walkItem struct {
	path  string
	isDir bool
}

func (w *Walker) Walk(ctx context.Context, root string, visit func(path string) error) error {
	rootEntries, err := os.ReadDir(root)
	if err != nil {
		return &TraversalError{Path: root, Err: err}
	}

	stack := []walkItem{}
	stack = w.pushEntries(stack, root, rootEntries)

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !item.isDir {
			if err := visit(item.path); err != nil {
				return err
			}

			continue
		}

		entries, err := os.ReadDir(item.path)
		if err != nil {
			travErr := &TraversalError{Path: item.path, Err: err}

			if w.OnUnreadableDir == nil {
				return travErr
			}

			if err := w.OnUnreadableDir(travErr); err != nil {
				return err
			}

			continue
		}

		stack = w.pushEntries(stack, item.path, entries)
	}

	return nil
}

// pushes in reverse so that popping yields the entries in directory order
func (w *Walker) pushEntries(stack []walkItem, dir string, entries []os.DirEntry) []walkItem {
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		path := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()

		if entry.Type()&os.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				w.logl.Debug.Printf("not following symlinked directory %s", path)
				continue
			}
		}

		switch {
		case isDir:
			stack = append(stack, walkItem{path: path, isDir: true})
		case strings.HasSuffix(entry.Name(), w.Suffix):
			stack = append(stack, walkItem{path: path})
		default:
			w.logl.Debug.Printf("skipping %s", path)
		}
	}

	return stack
}
