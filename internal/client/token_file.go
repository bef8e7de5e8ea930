package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const tokenFileMode = 0o600

type fileTokenStore struct {
	path string
}

// NewFileTokenStore returns a [TokenStore] backed by the file at path. The
// parent directory is created on the first Save.
func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

func (f *fileTokenStore) Load() (string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}

// Save writes token to a temporary file in the same directory and renames it
// over the old one, so the stored file always has tokenFileMode.
func (f *fileTokenStore) Save(token string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("create token file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = tmp.Chmod(tokenFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("set token file mode: %w", err)
	}
	if _, err = tmp.WriteString(token + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write token file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}

	return nil
}

func (f *fileTokenStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}

	return nil
}
