// Package fsutil provides the file safety primitives used when rewriting a
// target file in place: metadata-carrying reads, modification detection,
// atomic writes and sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrNilFileInfo is returned when a nil FileInfo is passed.
	ErrNilFileInfo = errors.New("nil FileInfo")

	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// FileInfo captures the state of a file when it was read.
type FileInfo struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64

	// Hash is the SHA-256 of the content that was read.
	Hash [32]byte
}

// ReadFile reads a whole file and returns its content with the metadata
// needed to detect a later external change.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}

	return content, &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// ReadText reads a file whose bytes are used verbatim, such as a block of
// replacement content.
func ReadText(ctx context.Context, path string) (string, error) {
	content, _, err := ReadFile(ctx, path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// classify maps os errors onto the package sentinels.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

// CheckModified reports whether the file changed since info was captured.
// Size and mtime are compared first; if they match the content is re-hashed.
// A deleted file counts as modified.
func CheckModified(ctx context.Context, info *FileInfo) (bool, error) {
	changed, stat, err := quickCheck(ctx, info)
	if err != nil || changed || stat == nil {
		return changed, err
	}

	content, err := os.ReadFile(info.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", info.Path, err)
	}
	return sha256.Sum256(content) != info.Hash, nil
}

// CheckModifiedQuick compares only size and mtime.
func CheckModifiedQuick(ctx context.Context, info *FileInfo) (bool, error) {
	changed, _, err := quickCheck(ctx, info)
	return changed, err
}

func quickCheck(ctx context.Context, info *FileInfo) (bool, os.FileInfo, error) {
	if info == nil {
		return false, nil, ErrNilFileInfo
	}
	if err := ctx.Err(); err != nil {
		return false, nil, fmt.Errorf("check modified: %w", err)
	}

	stat, err := os.Stat(info.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil, nil
		}
		return false, nil, fmt.Errorf("stat %s: %w", info.Path, err)
	}

	if !stat.ModTime().Equal(info.ModTime) || stat.Size() != info.Size {
		return true, stat, nil
	}
	return false, stat, nil
}
