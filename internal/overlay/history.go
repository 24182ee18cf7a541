package overlay

import "image"

// DefaultHistoryDepth is the number of raster snapshots retained before the
// oldest entries are evicted.
const DefaultHistoryDepth = 50

// History is a bounded linear undo/redo stack of full raster snapshots.
// Entries form a single sequence; capturing after an undo discards the
// redoable tail, and exceeding capacity evicts from the oldest end.
type History struct {
	entries []*image.RGBA
	cursor  int
	depth   int
}

func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{cursor: -1, depth: depth}
}

// Capture appends a snapshot as the new current entry, truncating anything
// beyond the cursor first.
func (h *History) Capture(snap *image.RGBA) {
	h.entries = append(h.entries[:h.cursor+1], snap)
	h.cursor = len(h.entries) - 1
	if over := len(h.entries) - h.depth; over > 0 {
		h.entries = h.entries[:copy(h.entries, h.entries[over:])]
		h.cursor -= over
	}
}

func (h *History) CanUndo() bool {
	return h.cursor > 0
}

func (h *History) CanRedo() bool {
	return h.cursor >= 0 && h.cursor < len(h.entries)-1
}

// Undo steps the cursor back and returns the snapshot to repaint from. It
// reports false when already at the oldest entry.
func (h *History) Undo() (*image.RGBA, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps the cursor forward and returns the snapshot to repaint from. It
// reports false when already at the newest entry.
func (h *History) Redo() (*image.RGBA, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *History) Len() int {
	return len(h.entries)
}

// Reset drops every entry. Called on geometry sync so that no snapshot with
// stale dimensions can ever be restored.
func (h *History) Reset() {
	h.entries = nil
	h.cursor = -1
}
