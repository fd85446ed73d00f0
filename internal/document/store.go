package document

import (
	"fmt"
	"os"
	"path/filepath"
)

const newFileMode os.FileMode = 0o644

// FileStore persists documents at a fixed path.
type FileStore struct {
	Path string
}

// NewFileStore returns a store bound to path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Save writes doc through a temporary file in the same directory and renames
// it into place, so a failed write never truncates an existing document.
func (s *FileStore) Save(doc []byte) error {
	if s.Path == "" {
		return fmt.Errorf("save: no file path configured")
	}
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".pixelcanvas-*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", s.Path, err)
	}
	name := tmp.Name()
	if err := tmp.Chmod(s.mode()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return fmt.Errorf("save %s: %w", s.Path, err)
	}
	if _, err := tmp.Write(doc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return fmt.Errorf("save %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("save %s: closing file: %w", s.Path, err)
	}
	if err := os.Rename(name, s.Path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("save %s: %w", s.Path, err)
	}
	return nil
}

// mode keeps the permissions of an existing document. New documents get
// newFileMode rather than CreateTemp's owner-only 0600.
func (s *FileStore) mode() os.FileMode {
	if fi, err := os.Stat(s.Path); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return newFileMode
}

// Load reads the document at Path.
func (s *FileStore) Load() ([]byte, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("load: no file path configured")
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Path, err)
	}
	return data, nil
}

// String returns the path, for user-facing messages.
func (s *FileStore) String() string { return s.Path }
