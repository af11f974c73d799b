package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// filePerm is the mode of written images.
const filePerm = 0o644

// Save encodes img to path in the format selected by FormatFromPath.
//
// The image is written to a temporary file in the destination directory
// and renamed over path only after a successful encode and close. On any
// error the temporary file is removed, so path is either untouched or
// holds the complete image.
func Save(path string, img image.Image) (err error) {
	path = filepath.Clean(path)
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("image: create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err = Encode(w, img, FormatFromPath(path)); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("image: write file: %w", err)
	}
	if err = f.Chmod(filePerm); err != nil {
		return fmt.Errorf("image: chmod file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("image: rename file: %w", err)
	}
	return nil
}

// Load decodes the image at path, auto-detecting the format.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	return img, format, nil
}
