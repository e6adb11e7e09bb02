package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local is a directory-backed object store.
type Local struct {
	root    string
	baseURL string
}

var ErrObjectExists = errors.New("object already exists")

// NewLocal creates the root directory if needed and returns the store.
func NewLocal(root, baseURL string) (*Local, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("creating object store root: %w", err)
	}

	return &Local{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// List returns the objects in a folder. A folder that does not exist yet
// lists as empty.
func (l *Local) List(folder string) ([]Object, error) {
	entries, err := os.ReadDir(filepath.Join(l.root, filepath.FromSlash(folder)))
	if errors.Is(err, os.ErrNotExist) {
		return []Object{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", folder, err)
	}

	objects := make([]Object, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, Object{Name: entry.Name(), Size: info.Size()})
	}

	return objects, nil
}

// Upload writes the object. An existing path is never overwritten. The
// content type is accepted for contract compatibility; the filesystem has
// nowhere to keep it.
func (l *Local) Upload(path string, data []byte, _ string) error {
	target := filepath.Join(l.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("creating folder for %q: %w", path, err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", ErrObjectExists, path)
	}
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return f.Close()
}

// Download returns the object's bytes.
func (l *Local) Download(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("downloading %q: %w", path, err)
	}

	return data, nil
}

// PublicURL returns the address the object is served under.
func (l *Local) PublicURL(path string) string {
	return l.baseURL + "/" + strings.TrimLeft(path, "/")
}
