// Package filesink provides a file-based snapshot sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/rasterpaint/pkg/ports"
)

// Sink saves every history snapshot as a PNG under baseDir/snapshots.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	codec   ports.Codec
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, codec ports.Codec) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		codec:   codec,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveSnapshot writes snapshot-NNNN-<revision>.png.
func (s *Sink) SaveSnapshot(seq int, revision string, img image.Image) error {
	dir := filepath.Join(s.baseDir, "snapshots")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.codec.Encode(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode snapshot %d: %w", seq, err)
	}
	path := filepath.Join(dir, SnapshotName(seq, revision))
	return s.fs.WriteFile(path, data)
}

// SnapshotName returns the file name used for a snapshot.
func SnapshotName(seq int, revision string) string {
	if revision == "" {
		return fmt.Sprintf("snapshot-%04d.png", seq)
	}
	return fmt.Sprintf("snapshot-%04d-%s.png", seq, revision)
}

// Ensure Sink implements ports.SnapshotSink
var _ ports.SnapshotSink = (*Sink)(nil)
