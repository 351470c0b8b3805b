package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"igosint/pkg/config"
	"igosint/pkg/errors"
)

// DefaultImageExtension is used when the image format cannot be detected
const DefaultImageExtension = "jpg"

// Manager writes run artifacts below the configured output directories.
// Directories are created on first write.
type Manager struct {
	imagesDir  string
	reportsDir string
	written    []string
	mu         sync.Mutex
}

// NewManager creates a storage manager for the given output layout
func NewManager(output config.OutputConfig) *Manager {
	return &Manager{
		imagesDir:  output.ImagesPath(),
		reportsDir: output.ReportsPath(),
	}
}

// ImagesDir returns the directory profile images are written to
func (m *Manager) ImagesDir() string {
	return m.imagesDir
}

// ReportsDir returns the directory reports are written to
func (m *Manager) ReportsDir() string {
	return m.reportsDir
}

// ImageExtension detects the image format of data and returns its file
// extension without the leading dot. Non-image or unknown content yields
// DefaultImageExtension.
func ImageExtension(data []byte) string {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return DefaultImageExtension
	}

	ext := strings.TrimPrefix(mtype.Extension(), ".")
	if ext == "" {
		return DefaultImageExtension
	}
	return ext
}

// ImagePath returns the destination of username's profile image
func (m *Manager) ImagePath(username, ext string) string {
	return filepath.Join(m.imagesDir, fmt.Sprintf("%s_profile.%s", username, ext))
}

// SaveImage stores a downloaded profile image as {username}_profile.{ext}
// and returns its path
func (m *Manager) SaveImage(username string, data []byte) (string, error) {
	if err := ensureDir(m.imagesDir); err != nil {
		return "", err
	}

	path := m.ImagePath(username, ImageExtension(data))
	if err := m.writeAtomic(path, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return path, nil
}

// SaveReport stores a rendered report under the reports directory and
// returns its path
func (m *Manager) SaveReport(filename string, data []byte) (string, error) {
	if err := ensureDir(m.reportsDir); err != nil {
		return "", err
	}

	path := filepath.Join(m.reportsDir, filename)
	if err := m.writeAtomic(path, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return path, nil
}

// Written returns the paths written by this manager, in write order
func (m *Manager) Written() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.written))
	copy(out, m.written)
	return out
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New(errors.ErrorTypeFilesystem, fmt.Sprintf("failed to create directory %s", dir), err)
	}
	return nil
}

// writeAtomic writes to a temporary file next to path and renames it into
// place, so readers never observe a partial file
func (m *Manager) writeAtomic(path string, r io.Reader) error {
	tempFile := path + ".tmp"
	out, err := os.Create(tempFile)
	if err != nil {
		return errors.New(errors.ErrorTypeFilesystem, "failed to create temporary file", err)
	}

	_, err = io.Copy(out, r)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return errors.New(errors.ErrorTypeFilesystem, "failed to write file data", err)
	}

	if closeErr != nil {
		os.Remove(tempFile)
		return errors.New(errors.ErrorTypeFilesystem, "failed to close file", closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return errors.New(errors.ErrorTypeFilesystem, "failed to rename temporary file", err)
	}

	m.mu.Lock()
	m.written = append(m.written, path)
	m.mu.Unlock()

	return nil
}
