package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	rates "github.com/malusev998/tariff-rates"
)

// writeFile writes path through a temporary file in the same directory that
// is renamed into place only once write succeeded and the data is synced.
func writeFile(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", rates.ErrIO, err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return fmt.Errorf("%w: writing %s: %w", rates.ErrIO, path, err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", rates.ErrIO, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", rates.ErrIO, err)
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", rates.ErrIO, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", rates.ErrIO, err)
	}

	return nil
}

func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", rates.ErrIO, err)
	}

	return nil
}

func outputPath(config FileConfig, req rates.RunRequest, extension string) string {
	dir := config.Dir

	if dir == "" {
		dir = "."
	}

	return filepath.Join(dir, rates.OutputName(req)+extension)
}
