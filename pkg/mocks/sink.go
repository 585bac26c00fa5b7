package mocks

import (
	"image"
	"sync"

	"github.com/user/rasterpaint/pkg/ports"
)

// SnapshotSink is a mock implementation of ports.SnapshotSink that keeps
// every delivered snapshot in memory.
type SnapshotSink struct {
	mu sync.Mutex

	enabled bool

	Revisions []string
	Images    map[int]image.Image
	SaveErr   error
}

// NewSnapshotSink creates a new mock SnapshotSink.
func NewSnapshotSink(enabled bool) *SnapshotSink {
	return &SnapshotSink{
		enabled: enabled,
		Images:  make(map[int]image.Image),
	}
}

func (m *SnapshotSink) Enabled() bool {
	return m.enabled
}

func (m *SnapshotSink) SaveSnapshot(seq int, revision string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Revisions = append(m.Revisions, revision)
	m.Images[seq] = img
	return nil
}

var _ ports.SnapshotSink = (*SnapshotSink)(nil)
