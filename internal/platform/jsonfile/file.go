package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/phrazzld/recruitbook/internal/storage"
	"github.com/phrazzld/recruitbook/internal/store"
)

// readDocument reads path and checks it against s.
// An absent file yields an error wrapping store.ErrNotFound.
func readDocument(path string, s schema) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := s.validate(data); err != nil {
		return nil, storage.NewDataLoadingError(path, err)
	}
	return data, nil
}

// writeDocument writes v as indented JSON. The file is replaced atomically and
// missing parent directories are created.
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// archiveDocument renames path to <path>.<timestamp>.bak and returns the new
// name. An absent file is not an error and yields "".
func archiveDocument(path string, now time.Time) (string, error) {
	archived := fmt.Sprintf("%s.%s.bak", path, now.UTC().Format("20060102T150405"))
	err := os.Rename(path, archived)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	return archived, nil
}
