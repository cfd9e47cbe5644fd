// Package debug provides snapshot capture of rendered frames.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/watchcore/internal/engine/texture"
)

// Snapshots writes timestamped PNG files into a directory.
type Snapshots struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewSnapshots creates a snapshot writer. An empty outputDir writes to the
// working directory.
func NewSnapshots(outputDir, prefix string) *Snapshots {
	return &Snapshots{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Filename returns the path the next snapshot will be written to.
func (s *Snapshots) Filename() string {
	name := fmt.Sprintf("%s_%s.png", s.prefix, s.now().Format("2006-01-02_15-04-05"))
	return filepath.Join(s.outputDir, name)
}

// SaveFrame writes a GL read back, whose rows start at the bottom, as an
// upright PNG.
func (s *Snapshots) SaveFrame(pixels *image.RGBA) (string, error) {
	return s.Save(texture.FlipVertical(pixels))
}

// Save writes img and returns its path.
func (s *Snapshots) Save(img image.Image) (string, error) {
	path := s.Filename()
	if err := WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}
