package buffer

import (
	"sync"

	"github.com/dshills/twine/internal/text/codec"
)

// maxPooledCapacity bounds the storage a pooled buffer may keep.
const maxPooledCapacity = 64 * 1024

// Pool recycles scratch buffers, one sync.Pool per encoding.
// Pool is safe for concurrent use.
type Pool struct {
	pools [3]sync.Pool
}

// DefaultPool is the pool used by AppendFormat.
var DefaultPool = NewPool()

// NewPool creates an empty buffer pool.
func NewPool() *Pool {
	p := &Pool{}
	for i := range p.pools {
		enc := codec.Encoding(i)
		p.pools[i].New = func() any {
			return New(enc, WithGrowth(GrowthDouble))
		}
	}
	return p
}

// Get returns an empty, unbounded buffer in enc. Scratch buffers grow by
// doubling.
func (p *Pool) Get(enc codec.Encoding) *Buffer {
	if !enc.Valid() {
		return New(enc, WithGrowth(GrowthDouble))
	}
	b := p.pools[enc].Get().(*Buffer)
	b.reset(enc)
	return b
}

// Put returns a buffer to the pool. The buffer should not be used after
// calling this method. Fixed, released and oversized buffers are dropped.
func (p *Pool) Put(b *Buffer) {
	if b == nil || b.fixed || b.released || !b.enc.Valid() {
		return
	}
	if len(b.data) > maxPooledCapacity {
		return
	}
	b.length = 0
	p.pools[b.enc].Put(b)
}
