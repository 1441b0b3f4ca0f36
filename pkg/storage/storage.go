package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Storage is a local-disk blob store. Paths are relative (e.g.
// "products/abc.jpg"); URL maps a stored path to its public form.
type Storage struct {
	BaseDir string
	BaseURL string
}

func New(baseDir, baseURL string) *Storage {
	return &Storage{BaseDir: baseDir, BaseURL: baseURL}
}

func (s *Storage) URL(path string) string {
	if path == "" {
		return ""
	}
	return s.BaseURL + "/" + path
}

// SaveImage decodes the upload, re-encodes it as JPEG under a random name
// and writes a 300px-wide thumbnail next to it. Returns the stored path.
func (s *Storage) SaveImage(file *multipart.FileHeader, dir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	name := uuid.New().String() + ".jpg"
	relPath := filepath.Join(dir, name)
	fullPath := filepath.Join(s.BaseDir, relPath)
	thumbPath := filepath.Join(s.BaseDir, dir, "thumb", name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(thumbPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, fullPath); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// Delete removes a stored path and its thumbnail if present. Deleting a
// nonexistent path is not an error.
func (s *Storage) Delete(path string) error {
	if path == "" {
		return nil
	}
	full := filepath.Join(s.BaseDir, path)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	thumb := filepath.Join(filepath.Dir(full), "thumb", filepath.Base(full))
	if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
