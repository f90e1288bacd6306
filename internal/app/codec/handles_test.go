package codec

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRegistry_MaterializeResolveRelease(t *testing.T) {
	r := NewHandleRegistry()
	payload := []byte{1, 2, 3}

	h := r.Materialize(7, payload, "audio/webm")
	assert.True(t, strings.HasPrefix(string(h), HandleScheme))
	assert.Equal(t, 1, r.Len())

	blob, ok := r.Resolve(h)
	require.True(t, ok)
	assert.Equal(t, int64(7), blob.RecordID)
	assert.Equal(t, payload, blob.Data)
	assert.Equal(t, "audio/webm", blob.MimeType)

	assert.True(t, r.Release(h))
	assert.False(t, r.Release(h), "second release is a no-op")
	_, ok = r.Resolve(h)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestHandleRegistry_FreshHandlePerMaterialize(t *testing.T) {
	r := NewHandleRegistry()
	h1 := r.Materialize(1, []byte("a"), "audio/wav")
	h2 := r.Materialize(1, []byte("a"), "audio/wav")

	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, r.Len())

	// releasing one keeps the other valid
	r.Release(h1)
	_, ok := r.Resolve(h2)
	assert.True(t, ok)
}

func TestHandleRegistry_ReleaseRecord(t *testing.T) {
	r := NewHandleRegistry()
	r.Materialize(1, []byte("a"), "audio/wav")
	r.Materialize(1, []byte("a"), "audio/wav")
	keep := r.Materialize(2, []byte("b"), "audio/wav")

	assert.Equal(t, 2, r.ReleaseRecord(1))
	assert.Equal(t, 0, r.ReleaseRecord(1))
	assert.Equal(t, 1, r.Len())

	_, ok := r.Resolve(keep)
	assert.True(t, ok)
}

func TestHandleRegistry_ReleaseAll(t *testing.T) {
	r := NewHandleRegistry()
	for i := int64(0); i < 5; i++ {
		r.Materialize(i, []byte{byte(i)}, "audio/ogg")
	}
	assert.Equal(t, 5, r.ReleaseAll())
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.ReleaseRecord(3))
}

func TestHandleRegistry_Concurrent(t *testing.T) {
	r := NewHandleRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			h := r.Materialize(id, []byte("x"), "audio/webm")
			r.Resolve(h)
			r.Release(h)
		}(int64(i))
	}
	wg.Wait()
	assert.Equal(t, 0, r.Len())
}

func TestParseHandle(t *testing.T) {
	r := NewHandleRegistry()
	h := r.Materialize(1, nil, "audio/webm")

	assert.Equal(t, h, ParseHandle(h.ID()))
	assert.Equal(t, h, ParseHandle(string(h)))
}
