package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"interiorquote/internal/domain/entities"
)

// DefaultLocalPublicBase is the URL prefix the HTTP server mounts the local
// artifact directory under.
const DefaultLocalPublicBase = "/files"

var ErrInvalidObjectName = errors.New("invalid object name")

// LocalStore keeps artifacts on the local filesystem.
type LocalStore struct {
	dir        string
	publicBase string
}

var _ Store = (*LocalStore)(nil)

func NewLocalStore(dir, publicBase string) (*LocalStore, error) {
	if dir == "" {
		return nil, errors.New("local artifact dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	if publicBase == "" {
		publicBase = DefaultLocalPublicBase
	}
	return &LocalStore{dir: dir, publicBase: publicBase}, nil
}

// Dir is the root directory of the store.
func (s *LocalStore) Dir() string { return s.dir }

// Save fails if objectName already exists.
func (s *LocalStore) Save(_ context.Context, objectName string, content []byte, contentType string) (entities.Artifact, error) {
	path, err := s.pathFor(objectName)
	if err != nil {
		return entities.Artifact{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return entities.Artifact{}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return entities.Artifact{}, err
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return entities.Artifact{}, err
	}
	if err := f.Close(); err != nil {
		return entities.Artifact{}, err
	}

	return entities.Artifact{
		URL:        joinURL(s.publicBase, objectName),
		ObjectName: objectName,
		MimeType:   contentType,
		SizeBytes:  int64(len(content)),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (s *LocalStore) DeleteOlderThan(_ context.Context, prefix string, cutoff time.Time) (int, error) {
	root, err := s.pathFor(prefix)
	if err != nil {
		return 0, err
	}

	deleted := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	return deleted, err
}

func (s *LocalStore) pathFor(objectName string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(objectName))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidObjectName
	}
	return filepath.Join(s.dir, clean), nil
}
