package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BlobStore persists uploaded documents on the local filesystem,
// partitioned by workspace and upload date:
//
//	{root}/{workspace_id}/{YYYYMMDD}/{uuid}_{filename}
type BlobStore struct {
	root   string
	logger *slog.Logger
}

func NewBlobStore(root string, logger *slog.Logger) (*BlobStore, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage root %s: %w", root, err)
	}
	return &BlobStore{root: root, logger: logger}, nil
}

// Save writes the stream to a fresh partitioned path and returns the path
// relative to the storage root. The leading uuid keeps concurrent uploads of
// identically named files from colliding.
func (s *BlobStore) Save(workspaceID uuid.UUID, filename string, r io.Reader) (string, int64, error) {
	rel := filepath.Join(
		workspaceID.String(),
		time.Now().UTC().Format("20060102"),
		fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename)),
	)
	abs := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", 0, fmt.Errorf("creating partition dir: %w", err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", 0, fmt.Errorf("creating blob %s: %w", rel, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(abs)
		return "", 0, fmt.Errorf("writing blob %s: %w", rel, err)
	}

	s.logger.Debug("storage.blob.saved", "path", rel, "size", n)
	return rel, n, nil
}

// Remove deletes a previously saved blob. Missing files are not an error.
func (s *BlobStore) Remove(rel string) error {
	err := os.Remove(filepath.Join(s.root, rel))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing blob %s: %w", rel, err)
	}
	return nil
}

// Abs resolves a stored relative path to its absolute location on disk.
func (s *BlobStore) Abs(rel string) string {
	return filepath.Join(s.root, rel)
}
