package ports

import (
	"image"
)

// SnapshotSink receives every recorded history snapshot for debugging.
type SnapshotSink interface {
	// Enabled returns true if snapshots should be delivered.
	Enabled() bool

	// SaveSnapshot stores the snapshot with the given sequence number.
	SaveSnapshot(seq int, revision string, img image.Image) error
}
