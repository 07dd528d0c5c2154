package image

import "sync"

// Pool is a thread-safe pool of scratch pixel buffers.
//
// Pool groups buffers by length so that the row bands of a partition,
// which repeat from one filter pass to the next, are reused instead of
// reallocated.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a scratch pool retaining at most maxPerBucket buffers of
// each length. A maxPerBucket of 0 or less means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of exactly n bytes. The caller owns the
// buffer until it is handed back with Put.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n)
}

// Put returns buf to the pool. The caller must not use buf afterwards.
// Empty buffers and buffers beyond the bucket limit are dropped.
func (p *Pool) Put(buf []byte) {
	if len(buf) == 0 {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf[:n:n])
}

// defaultPool is the package-level scratch pool.
var defaultPool = NewPool(16)

// GetScratch returns a zeroed n-byte buffer from the default pool.
func GetScratch(n int) []byte {
	return defaultPool.Get(n)
}

// PutScratch returns a buffer obtained from GetScratch.
func PutScratch(buf []byte) {
	defaultPool.Put(buf)
}
