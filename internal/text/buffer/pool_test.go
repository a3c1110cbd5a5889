package buffer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/twine/internal/text/codec"
)

func TestPoolGet(t *testing.T) {
	pool := NewPool()

	for _, enc := range []codec.Encoding{codec.UTF8, codec.UTF16, codec.ASCII} {
		b := pool.Get(enc)
		require.NotNil(t, b)
		assert.Equal(t, enc, b.Encoding())
		assert.Equal(t, 0, b.Len())
		assert.False(t, b.HasMaxCapacity(), "pooled buffer should be unbounded")
	}
}

func TestPoolPutAndGet(t *testing.T) {
	pool := NewPool()

	// Get a buffer, fill it, put it back
	b1 := pool.Get(codec.UTF8)
	require.NoError(t, b1.AppendString("test"))
	pool.Put(b1)

	// Get another buffer - might be the same one (reused)
	b2 := pool.Get(codec.UTF8)
	assert.Equal(t, 0, b2.Len(), "reused buffer should be empty")
}

func TestPoolPutRejected(t *testing.T) {
	pool := NewPool()

	// None of these may panic or end up in the pool.
	pool.Put(nil)
	pool.Put(NewFixed(codec.UTF8, make([]byte, 8)))

	released := New(codec.UTF8)
	require.NoError(t, released.Release())
	pool.Put(released)

	pool.Put(NewWithCapacity(codec.UTF8, maxPooledCapacity+1))

	b := pool.Get(codec.UTF8)
	assert.False(t, b.IsFixed())
	assert.False(t, b.IsReleased())
	assert.LessOrEqual(t, b.Cap(), maxPooledCapacity)
}

func TestPoolInvalidEncoding(t *testing.T) {
	pool := NewPool()
	b := pool.Get(codec.Encoding(9))
	require.NotNil(t, b)
	pool.Put(b)
}

func TestPoolConcurrent(t *testing.T) {
	pool := NewPool()

	var wg sync.WaitGroup
	iterations := 1000

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range iterations {
				b := pool.Get(codec.UTF16)
				if !assert.NoError(t, b.AppendFormat("%d", j)) {
					return
				}
				pool.Put(b)
			}
		}()
	}

	wg.Wait()
}
