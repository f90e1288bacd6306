package codec

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// HandleScheme prefixes every playback handle issued by a registry.
const HandleScheme = "blob:voice-notes/"

// Handle is a process-local reference to an audio payload. It stays valid until released.
type Handle string

// Blob is what a handle resolves to.
type Blob struct {
	RecordID int64
	Data     []byte
	MimeType string
}

// HandleRegistry tracks ephemeral playback handles.
//
// Ownership: whoever calls Materialize releases the handle; the record store
// releases every handle of a record it deletes or clears.
type HandleRegistry struct {
	mu       sync.RWMutex
	blobs    map[Handle]Blob
	byRecord map[int64]map[Handle]struct{}
}

// NewHandleRegistry creates an empty registry.
func NewHandleRegistry() *HandleRegistry {
	return &HandleRegistry{
		blobs:    make(map[Handle]Blob),
		byRecord: make(map[int64]map[Handle]struct{}),
	}
}

// Materialize issues a fresh handle for the payload of record id.
// The payload is referenced, not copied; callers must not mutate it afterwards.
func (r *HandleRegistry) Materialize(id int64, data []byte, mimeType string) Handle {
	h := Handle(HandleScheme + uuid.New().String())

	r.mu.Lock()
	defer r.mu.Unlock()

	r.blobs[h] = Blob{RecordID: id, Data: data, MimeType: mimeType}
	set, ok := r.byRecord[id]
	if !ok {
		set = make(map[Handle]struct{})
		r.byRecord[id] = set
	}
	set[h] = struct{}{}
	return h
}

// Release invalidates h. It reports whether the handle was live.
func (r *HandleRegistry) Release(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.releaseLocked(h)
}

// ReleaseRecord invalidates every handle issued for record id and returns how many were live.
func (r *HandleRegistry) ReleaseRecord(id int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.byRecord[id]
	n := 0
	for h := range set {
		if r.releaseLocked(h) {
			n++
		}
	}
	return n
}

// ReleaseAll invalidates every live handle.
func (r *HandleRegistry) ReleaseAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.blobs)
	r.blobs = make(map[Handle]Blob)
	r.byRecord = make(map[int64]map[Handle]struct{})
	return n
}

// Resolve returns the payload behind h.
func (r *HandleRegistry) Resolve(h Handle) (Blob, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.blobs[h]
	return b, ok
}

// Len returns the number of live handles.
func (r *HandleRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blobs)
}

// ParseHandle accepts either a full handle or its bare id part (as used in URL paths).
func ParseHandle(s string) Handle {
	if strings.HasPrefix(s, HandleScheme) {
		return Handle(s)
	}
	return Handle(HandleScheme + s)
}

// ID returns the handle without its scheme, suitable for URL paths.
func (h Handle) ID() string {
	return strings.TrimPrefix(string(h), HandleScheme)
}

func (r *HandleRegistry) releaseLocked(h Handle) bool {
	b, ok := r.blobs[h]
	if !ok {
		return false
	}
	delete(r.blobs, h)
	if set, ok := r.byRecord[b.RecordID]; ok {
		delete(set, h)
		if len(set) == 0 {
			delete(r.byRecord, b.RecordID)
		}
	}
	return true
}
