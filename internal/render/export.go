package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeFileAtomic streams src into a temporary file next to path and renames
// it into place, so path holds either the previous content or the complete
// new image. The temporary file is removed on every failure.
func writeFileAtomic(path string, src io.WriterTo) (err error) {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: output directory: %w", ErrRender, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: output parent %s is not a directory", ErrRender, dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temporary file: %w", ErrRender, err)
	}
	tmpName := tmp.Name()
	closed := false

	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = tmp.Close()
		}
		_ = os.Remove(tmpName)
	}()

	bw := bufio.NewWriter(tmp)
	if _, err = src.WriteTo(bw); err != nil {
		return fmt.Errorf("%w: encode image: %w", ErrRender, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: write image: %w", ErrRender, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync image: %w", ErrRender, err)
	}

	closed = true
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close image: %w", ErrRender, err)
	}

	// CreateTemp opens with 0600.
	if err = os.Chmod(tmpName, outputFileMode); err != nil {
		return fmt.Errorf("%w: set permissions: %w", ErrRender, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: move image into place: %w", ErrRender, err)
	}

	return nil
}
