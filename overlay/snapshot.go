package overlay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gocv.io/x/gocv"
)

// Snapshot defaults
const (
	DefaultSnapshotDir = "drawings"
	DefaultSnapshotExt = "png"
)

// snapshotLayout renders e.g. "Mon_Oct_19_14:03:07_2026"
const snapshotLayout = "Mon_Jan_02_15:04:05_2006"

// ErrWriteFailed is returned when OpenCV refuses to encode or write the image
var ErrWriteFailed = errors.New("image write failed")

// SnapshotName returns the file name for a snapshot taken at t
func SnapshotName(t time.Time, ext string) string {
	return fmt.Sprintf("drawing_%s.%s", t.Format(snapshotLayout), ext)
}

// Snapshotter writes canvases to timestamped image files
type Snapshotter struct {
	dir string
	ext string
}

// NewSnapshotter creates a snapshotter writing into dir with the given image extension
func NewSnapshotter(dir, ext string) *Snapshotter {
	if dir == "" {
		dir = DefaultSnapshotDir
	}
	if ext == "" {
		ext = DefaultSnapshotExt
	}
	return &Snapshotter{dir: dir, ext: ext}
}

// Dir returns the output directory
func (s *Snapshotter) Dir() string {
	return s.dir
}

// Save writes img to the output directory, creating it first if needed, and returns the path
func (s *Snapshotter) Save(img gocv.Mat, now time.Time) (string, error) {
	if img.Empty() {
		return "", fmt.Errorf("nothing to save: empty image")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, SnapshotName(now, s.ext))
	if !gocv.IMWrite(path, img) {
		return "", fmt.Errorf("%w: %s", ErrWriteFailed, path)
	}

	debugMsg("SNAPSHOT", fmt.Sprintf("Saved %dx%d canvas to %s", img.Cols(), img.Rows(), path))
	return path, nil
}
