package image

import "sync"

// Pool is a thread-safe pool for reusing ImageBuf instances.
//
// Pool groups buffers by their dimensions and format. Filters that work in
// place take a snapshot from the pool, read neighbors from it while writing
// the original, and hand it back when done.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*ImageBuf
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of buffers of one shape.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new image buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*ImageBuf),
		maxSize: maxPerBucket,
	}
}

// take pops a pooled buffer or allocates a fresh one. Pooled buffers keep
// whatever pixels they held when returned.
func (p *Pool) take(width, height int, format Format) (*ImageBuf, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		return buf, nil
	}
	p.mu.Unlock()

	return NewImageBuf(width, height, format)
}

// Snapshot returns a pooled copy of src. The copy's stride may differ
// from src's. Return it with Put.
func (p *Pool) Snapshot(src *ImageBuf) (*ImageBuf, error) {
	buf, err := p.take(src.width, src.height, src.format)
	if err != nil {
		return nil, err
	}
	if err := buf.CopyFrom(src); err != nil {
		p.Put(buf)
		return nil, err
	}
	return buf, nil
}

// Put returns an image buffer to the pool for reuse.
// If buf is nil or the pool bucket is at max capacity, the buffer is discarded.
func (p *Pool) Put(buf *ImageBuf) {
	if buf == nil {
		return
	}

	key := poolKey{
		width:  buf.width,
		height: buf.height,
		format: buf.format,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// Default returns the package-level pool.
func Default() *Pool {
	return defaultPool
}
