package termgrid

import (
	"sync"

	"github.com/google/uuid"
)

// HyperlinkID is the opaque handle a Cell stores to reference a Hyperlink
// interned in a HyperlinkTable. The zero value means "no hyperlink".
type HyperlinkID string

// Hyperlink associates an interned id with the URI it points at (OSC 8).
// Cells reference a Hyperlink by id; they do not own the URI.
type Hyperlink struct {
	ID  HyperlinkID
	URI string
}

// HyperlinkTable interns hyperlinks so that many cells covered by the same
// OSC 8 span share one id instead of each carrying a copy of the URI. It is
// instance-scoped (one per Screen), never global, and must outlive every
// cell that references one of its ids.
type HyperlinkTable struct {
	mu    sync.RWMutex
	byKey map[string]HyperlinkID
	links map[HyperlinkID]*Hyperlink
}

// NewHyperlinkTable creates an empty interning table.
func NewHyperlinkTable() *HyperlinkTable {
	return &HyperlinkTable{
		byKey: make(map[string]HyperlinkID),
		links: make(map[HyperlinkID]*Hyperlink),
	}
}

// Intern registers a hyperlink and returns the handle to store in cells.
// explicitID is the optional "id=" parameter from an OSC 8 sequence; when
// empty, repeated calls with the same URI return the same handle, mirroring
// how terminals treat an un-tagged OSC 8 span by URI alone. When non-empty,
// dedup keys on the explicit id so callers can deliberately split or merge
// spans that share a URI.
func (t *HyperlinkTable) Intern(uri string, explicitID string) HyperlinkID {
	key := explicitID
	if key == "" {
		key = "uri:" + uri
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.byKey[key]; ok {
		return id
	}

	id := HyperlinkID(uuid.New().String())
	t.byKey[key] = id
	t.links[id] = &Hyperlink{ID: id, URI: uri}
	return id
}

// Lookup resolves a handle back to its Hyperlink. Returns false if id is the
// zero value or was never interned in this table.
func (t *HyperlinkTable) Lookup(id HyperlinkID) (*Hyperlink, bool) {
	if id == "" {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	link, ok := t.links[id]
	return link, ok
}

// Len returns the number of distinct hyperlinks currently interned.
func (t *HyperlinkTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.links)
}
