package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ether/richnote-go/lib/exception"
)

// Extension is reserved for this application's documents. Names are stored
// without it; every path operation appends it when absent.
const Extension = ".rnote"

// FileStore keeps document files under a single user-data root. All I/O is
// synchronous; the model treats it as instantaneous.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data root %s: %w", root, err)
	}
	return &FileStore{root: root}, nil
}

func (f *FileStore) Root() string {
	return f.root
}

func (f *FileStore) path(name string) string {
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return filepath.Join(f.root, name)
}

func (f *FileStore) Exists(name string) bool {
	_, err := os.Stat(f.path(name))
	return err == nil
}

func (f *FileStore) Read(name string) (string, error) {
	raw, err := os.ReadFile(f.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", exception.NewDocumentNotFoundError(name)
		}
		return "", fmt.Errorf("error reading document %s: %w", name, err)
	}
	return string(raw), nil
}

func (f *FileStore) Write(name string, content string) error {
	if err := os.WriteFile(f.path(name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("error writing document %s: %w", name, err)
	}
	return nil
}

// Rename appends the reserved extension when absent and refuses to
// overwrite: an existing target is a NameConflict and the source file stays
// untouched.
func (f *FileStore) Rename(oldName string, newName string) error {
	if !f.Exists(oldName) {
		return exception.NewDocumentNotFoundError(oldName)
	}
	if f.Exists(newName) {
		return exception.NewNameConflictError(newName)
	}
	if err := os.Rename(f.path(oldName), f.path(newName)); err != nil {
		return fmt.Errorf("error renaming document %s: %w", oldName, err)
	}
	return nil
}

func (f *FileStore) Remove(name string) error {
	if err := os.Remove(f.path(name)); err != nil {
		if os.IsNotExist(err) {
			return exception.NewDocumentNotFoundError(name)
		}
		return fmt.Errorf("error removing document %s: %w", name, err)
	}
	return nil
}
