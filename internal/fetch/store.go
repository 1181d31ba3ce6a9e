package fetch

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/ytget/img-fetcher/internal/platform"
)

// Store defaults
const (
	DefaultFileName    = "downloaded_image.jpg"
	DefaultJPEGQuality = 100
	MinJPEGQuality     = 1
	MaxJPEGQuality     = 100
	tempFilePattern    = ".downloading-*.tmp"
)

// Store persists a decoded image to a single location
type Store interface {
	// Path returns the location Save writes to
	Path() string
	// Save writes img, replacing any previous content, and returns the byte size written
	Save(img image.Image) (int64, error)
}

// FileStore writes JPEG files to dir/name, overwriting on every Save
type FileStore struct {
	dir     string
	name    string
	quality int
}

// NewFileStore creates a JPEG file store. An empty name falls back to
// DefaultFileName and quality is clamped to the JPEG range.
func NewFileStore(dir, name string, quality int) *FileStore {
	if name == "" {
		name = DefaultFileName
	}
	return &FileStore{
		dir:     dir,
		name:    name,
		quality: ClampJPEGQuality(quality),
	}
}

// ClampJPEGQuality limits q to [MinJPEGQuality, MaxJPEGQuality]
func ClampJPEGQuality(q int) int {
	if q < MinJPEGQuality {
		return MinJPEGQuality
	}
	if q > MaxJPEGQuality {
		return MaxJPEGQuality
	}
	return q
}

// Path returns the fixed output path
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.name)
}

// Quality returns the JPEG quality used by Save
func (s *FileStore) Quality() int {
	return s.quality
}

// Save encodes img as JPEG into a temp file next to the target and renames it
// over the target, so a failed save never leaves a truncated file behind
func (s *FileStore) Save(img image.Image) (int64, error) {
	if img == nil {
		return 0, fmt.Errorf("no image to save")
	}

	if err := platform.CreateDirectoryIfNotExists(s.dir); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, tempFilePattern)
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(s.quality)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return 0, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return 0, fmt.Errorf("failed to flush file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("failed to replace %s: %w", s.Path(), err)
	}

	info, err := os.Stat(s.Path())
	if err != nil {
		return 0, fmt.Errorf("failed to stat saved file: %w", err)
	}

	if err := platform.NotifyMediaScanner(s.Path()); err != nil {
		log.Printf("Media scan of %s failed: %v", s.Path(), err)
	}
	return info.Size(), nil
}
