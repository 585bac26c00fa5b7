// Package history keeps bounded undo/redo stacks of full-surface snapshots.
package history

import (
	"github.com/google/uuid"

	"github.com/user/rasterpaint/pkg/raster"
)

// DefaultLimit is the number of undo entries kept when no limit is given.
const DefaultLimit = 20

// Snapshot is a deep copy of the surface captured after a mutation.
type Snapshot struct {
	Revision uuid.UUID
	Surface  *raster.Surface
}

// Manager holds the undo and redo stacks. The top of the undo stack is always
// the content currently displayed.
type Manager struct {
	limit int
	undo  []Snapshot
	redo  []Snapshot
}

// New creates a Manager that keeps at most limit undo entries.
// A limit below 1 selects DefaultLimit.
func New(limit int) *Manager {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Manager{limit: limit}
}

// Record pushes a copy of s, clears the redo stack and evicts the oldest
// entry when the limit is exceeded.
func (m *Manager) Record(s *raster.Surface) Snapshot {
	snap := Snapshot{Revision: uuid.New(), Surface: s.Clone()}
	m.undo = append(m.undo, snap)
	m.redo = nil
	if len(m.undo) > m.limit {
		copy(m.undo, m.undo[len(m.undo)-m.limit:])
		clear(m.undo[m.limit:])
		m.undo = m.undo[:m.limit]
	}
	return snap
}

// Undo moves the current state to the redo stack and returns a copy of the
// state below it. It never moves past the oldest entry.
func (m *Manager) Undo() (*raster.Surface, bool) {
	if len(m.undo) <= 1 {
		return nil, false
	}
	top := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, top)
	return m.undo[len(m.undo)-1].Surface.Clone(), true
}

// Redo re-applies the most recently undone state and returns a copy of it.
func (m *Manager) Redo() (*raster.Surface, bool) {
	if len(m.redo) == 0 {
		return nil, false
	}
	snap := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, snap)
	return snap.Surface.Clone(), true
}

// Current returns the snapshot of the displayed state.
func (m *Manager) Current() (Snapshot, bool) {
	if len(m.undo) == 0 {
		return Snapshot{}, false
	}
	return m.undo[len(m.undo)-1], true
}

// CanUndo reports whether Undo would change the state.
func (m *Manager) CanUndo() bool { return len(m.undo) > 1 }

// CanRedo reports whether Redo would change the state.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoLen returns the number of entries on the undo stack.
func (m *Manager) UndoLen() int { return len(m.undo) }

// RedoLen returns the number of entries on the redo stack.
func (m *Manager) RedoLen() int { return len(m.redo) }

// Limit returns the maximum number of undo entries.
func (m *Manager) Limit() int { return m.limit }
