package termgrid

import "testing"

func TestImageStoreStore(t *testing.T) {
	s := NewImageStore()

	data := make([]byte, 100)
	id := s.Store(10, 10, data)

	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}
	if s.UsedMemory() != 100 {
		t.Errorf("expected 100 bytes used, got %d", s.UsedMemory())
	}
}

func TestImageStoreDeduplication(t *testing.T) {
	s := NewImageStore()

	data := []byte("test image data")
	id1 := s.Store(10, 10, data)
	id2 := s.Store(10, 10, data) // identical content

	if id1 != id2 {
		t.Errorf("expected same id for duplicate content, got %d and %d", id1, id2)
	}
	if s.UsedMemory() != int64(len(data)) {
		t.Errorf("expected no double-counted memory, got %d", s.UsedMemory())
	}
}

func TestImageStoreDistinctContentGetsDistinctIDs(t *testing.T) {
	s := NewImageStore()

	id1 := s.Store(10, 10, []byte("aaaa"))
	id2 := s.Store(10, 10, []byte("bbbb"))

	if id1 == id2 {
		t.Error("expected distinct ids for distinct content")
	}
}

func TestImageStoreGet(t *testing.T) {
	s := NewImageStore()

	data := make([]byte, 50)
	id := s.Store(5, 5, data)

	img, ok := s.Get(id)
	if !ok {
		t.Fatal("expected stored image to be found")
	}
	if img.Width != 5 || img.Height != 5 {
		t.Errorf("expected 5x5, got %dx%d", img.Width, img.Height)
	}
}

func TestImageStoreGetMissing(t *testing.T) {
	s := NewImageStore()
	if _, ok := s.Get(999); ok {
		t.Error("expected miss for an id never stored")
	}
}

func TestImageStoreClear(t *testing.T) {
	s := NewImageStore()
	s.Store(10, 10, make([]byte, 100))

	s.Clear()

	if s.UsedMemory() != 0 {
		t.Errorf("expected 0 bytes after clear, got %d", s.UsedMemory())
	}
	if _, ok := s.Get(1); ok {
		t.Error("expected no images reachable after clear")
	}
}

func TestImageStorePrunesOverBudget(t *testing.T) {
	s := NewImageStore()
	s.SetMaxMemory(150)

	data1 := make([]byte, 100)
	id1 := s.Store(10, 10, data1)

	data2 := make([]byte, 100)
	data2[0] = 1 // distinct content, avoids dedup
	s.Store(10, 10, data2)

	if s.UsedMemory() > 150 {
		t.Errorf("expected pruning to bring usage back under budget, got %d", s.UsedMemory())
	}
	if _, ok := s.Get(id1); ok {
		t.Error("expected the least-recently-accessed image to be the one pruned")
	}
}

func TestImageStoreSetMaxMemoryPrunesImmediately(t *testing.T) {
	s := NewImageStore()
	s.Store(10, 10, make([]byte, 100))
	s.Store(10, 10, []byte{1})

	s.SetMaxMemory(1)

	if s.UsedMemory() > 1 {
		t.Errorf("expected immediate prune to respect the new budget, got %d", s.UsedMemory())
	}
}

func TestCellImageFragment(t *testing.T) {
	var cell Cell

	if cell.HasImage() {
		t.Error("new cell should not have an image")
	}

	cell.SetImageFragment(&ImageFragment{ImageID: 1, OffsetX: 2, OffsetY: 3})

	if !cell.HasImage() {
		t.Error("cell should have an image after SetImageFragment")
	}
	if cell.Empty() {
		t.Error("a cell carrying only an image fragment is not content-empty")
	}

	frag := cell.ImageFragment()
	if frag == nil || frag.ImageID != 1 || frag.OffsetX != 2 || frag.OffsetY != 3 {
		t.Errorf("unexpected fragment %+v", frag)
	}

	cell.Reset()
	if cell.HasImage() {
		t.Error("cell should not have an image after Reset")
	}
}

func TestCellSetImageFragmentNilClears(t *testing.T) {
	var cell Cell
	cell.SetImageFragment(&ImageFragment{ImageID: 1})
	cell.SetImageFragment(nil)

	if cell.HasImage() {
		t.Error("expected SetImageFragment(nil) to clear the fragment")
	}
	if cell.extra != nil {
		t.Error("expected extras to compact away once the fragment is the last non-default attribute cleared")
	}
}

func TestWideCellLeadImageFragmentSurvivesTail(t *testing.T) {
	g := NewGrid(3, 11)
	screen := NewScreen(g)

	id := screen.Images().Store(2, 1, make([]byte, 8))
	lead := g.At(0, 0)
	lead.Write(GraphicsAttributes{}, '中', 2, "")
	lead.SetImageFragment(&ImageFragment{ImageID: id})
	tail := g.At(0, 1)
	tail.MakeWideTail(GraphicsAttributes{})

	if !g.At(0, 0).HasImage() {
		t.Error("expected the lead cell's image fragment to survive writing the tail")
	}
	if g.At(0, 1).HasImage() {
		t.Error("a wide cell's tail carries no image fragment of its own")
	}
}
