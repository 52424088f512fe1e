package termgrid

import (
	"crypto/sha256"
	"sort"
	"sync"
	"time"
)

// ImageID identifies one stored, rasterised image within an ImageStore.
type ImageID uint64

// ImageData stores decoded RGBA pixel data and bookkeeping for LRU eviction.
// Reassembling fragments into a displayed image is a renderer concern; this
// core only keeps the bytes alive and deduplicated.
type ImageData struct {
	ID         ImageID
	Width      uint32
	Height     uint32
	Data       []byte // RGBA pixel data
	Hash       [32]byte
	CreatedAt  time.Time
	AccessedAt time.Time
}

// ImageFragment is the lightweight, shared reference a Cell's extras block
// carries: which image, and which tile of it this cell displays. OffsetX/Y
// are in cell units within the source image, not pixels, so a fragment
// reference survives independent of any one renderer's tiling scheme.
type ImageFragment struct {
	ImageID ImageID
	OffsetX uint32
	OffsetY uint32
}

// ImageStore holds rasterised images shared by reference across many cells'
// ImageFragment entries. It is instance-scoped (one per Screen) and must
// outlive every cell that references one of its ids, per the shared-resource
// contract in the governing concurrency model.
type ImageStore struct {
	mu sync.RWMutex

	images   map[ImageID]*ImageData
	hashToID map[[32]byte]ImageID
	nextID   ImageID

	maxMemory  int64
	usedMemory int64
}

// NewImageStore creates a store with a 320MB default memory budget.
func NewImageStore() *ImageStore {
	return &ImageStore{
		images:    make(map[ImageID]*ImageData),
		hashToID:  make(map[[32]byte]ImageID),
		maxMemory: 320 * 1024 * 1024,
	}
}

// SetMaxMemory sets the memory budget in bytes. A lower budget than the
// current usage triggers an immediate prune.
func (s *ImageStore) SetMaxMemory(bytes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxMemory = bytes
	s.pruneLocked()
}

// Store adds image data and returns its id. An identical image (same content
// hash) is deduplicated and returns the existing id instead of storing a copy.
func (s *ImageStore) Store(width, height uint32, data []byte) ImageID {
	hash := sha256.Sum256(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existingID, ok := s.hashToID[hash]; ok {
		if img, ok := s.images[existingID]; ok {
			img.AccessedAt = time.Now()
			return existingID
		}
	}

	s.nextID++
	id := s.nextID
	now := time.Now()
	img := &ImageData{
		ID:         id,
		Width:      width,
		Height:     height,
		Data:       data,
		Hash:       hash,
		CreatedAt:  now,
		AccessedAt: now,
	}

	s.images[id] = img
	s.hashToID[hash] = id
	s.usedMemory += int64(len(data))

	if s.usedMemory > s.maxMemory {
		s.pruneLocked()
	}

	return id
}

// Get returns the image data for id, marking it as recently accessed.
// Returns false if no such image is stored (it may have been pruned).
func (s *ImageStore) Get(id ImageID) (*ImageData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, ok := s.images[id]
	if !ok {
		return nil, false
	}
	img.AccessedAt = time.Now()
	return img, true
}

// Clear removes every stored image.
func (s *ImageStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = make(map[ImageID]*ImageData)
	s.hashToID = make(map[[32]byte]ImageID)
	s.usedMemory = 0
}

// UsedMemory returns current memory usage in bytes.
func (s *ImageStore) UsedMemory() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usedMemory
}

// pruneLocked evicts least-recently-accessed images until usedMemory is back
// under budget. Must be called with s.mu held for writing.
func (s *ImageStore) pruneLocked() {
	if s.usedMemory <= s.maxMemory {
		return
	}

	candidates := make([]*ImageData, 0, len(s.images))
	for _, img := range s.images {
		candidates = append(candidates, img)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].AccessedAt.Before(candidates[j].AccessedAt)
	})

	for _, img := range candidates {
		if s.usedMemory <= s.maxMemory {
			break
		}
		delete(s.hashToID, img.Hash)
		delete(s.images, img.ID)
		s.usedMemory -= int64(len(img.Data))
	}
}
