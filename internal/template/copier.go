package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Copier copies template subtrees verbatim into a project.
type Copier interface {
	// CopyTree copies every file under src (a slash-separated path in the
	// template filesystem) to dst below projectRoot and returns the
	// project-relative paths written, in walk order.
	CopyTree(ctx context.Context, projectRoot, src, dst string) ([]string, error)

	// Files lists the files under src without touching the disk.
	Files(src string) ([]string, error)
}

// copier is the concrete implementation of Copier.
type copier struct {
	fsys     fs.FS
	dirPerm  fs.FileMode
	filePerm fs.FileMode
}

// NewCopier creates a Copier backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewCopier(fsys fs.FS) Copier {
	return &copier{fsys: fsys, dirPerm: 0o755, filePerm: 0o644}
}

// CopyTree walks src and writes each file under projectRoot/dst. Context
// cancellation is checked before every file.
func (c *copier) CopyTree(ctx context.Context, projectRoot, src, dst string) ([]string, error) {
	projectRoot = filepath.Clean(projectRoot)

	if _, err := fs.Stat(c.fsys, src); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, src)
	}

	var written []string
	err := fs.WalkDir(c.fsys, src, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel := path.Join(dst, strings.TrimPrefix(strings.TrimPrefix(p, src), "/"))
		if err := ValidateDestination(projectRoot, rel); err != nil {
			return err
		}

		data, err := fs.ReadFile(c.fsys, p)
		if err != nil {
			return fmt.Errorf("copy read %q: %w", p, err)
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(destPath), c.dirPerm); err != nil {
			return fmt.Errorf("copy mkdir %q: %w", filepath.Dir(destPath), err)
		}
		if err := os.WriteFile(destPath, data, c.filePerm); err != nil {
			return fmt.Errorf("copy write %q: %w", destPath, err)
		}

		written = append(written, rel)
		return nil
	})
	if err != nil {
		return written, err
	}
	return written, nil
}

// Files returns the sorted source paths of all files under src.
func (c *copier) Files(src string) ([]string, error) {
	var list []string
	err := fs.WalkDir(c.fsys, src, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			list = append(list, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, src)
	}
	return list, nil
}

// Exists reports whether name (file or directory) is present in fsys.
func Exists(fsys fs.FS, name string) bool {
	_, err := fs.Stat(fsys, name)
	return err == nil
}

// ValidateDestination ensures a project-relative path does not escape
// projectRoot.
func ValidateDestination(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}
	return nil
}
