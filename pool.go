package gesture

import "math/bits"

// defaultPoolBucketCap bounds how many released samples each capacity bucket
// keeps for reuse.
const defaultPoolBucketCap = 16

// samplePool manages reusable MotionSamples keyed by power-of-two pointer
// capacity. After warmup, acquire/release are zero-alloc for samples without
// coalesced history. Each bucket holds at most bucketCap samples; extra
// releases are left to the garbage collector.
type samplePool struct {
	buckets   map[int][]*MotionSample
	bucketCap int
}

func newSamplePool(bucketCap int) *samplePool {
	if bucketCap <= 0 {
		bucketCap = defaultPoolBucketCap
	}
	return &samplePool{bucketCap: bucketCap}
}

// acquire returns an empty sample whose Pointers slice can hold at least n
// pointers without reallocating.
func (p *samplePool) acquire(n int) *MotionSample {
	key := poolKey(n)
	if stack := p.buckets[key]; len(stack) > 0 {
		s := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		p.buckets[key] = stack[:len(stack)-1]
		return s
	}
	return &MotionSample{Pointers: make([]Pointer, 0, key)}
}

// acquireCopy returns a pooled deep copy of src.
func (p *samplePool) acquireCopy(src *MotionSample) *MotionSample {
	s := p.acquire(len(src.Pointers))
	src.copyInto(s)
	return s
}

// release returns s to the pool. The caller must not use s afterwards.
func (p *samplePool) release(s *MotionSample) {
	if s == nil {
		return
	}
	key := poolKey(cap(s.Pointers))
	if cap(s.Pointers) != key {
		// Grew past its bucket through append; not worth keeping.
		return
	}
	if p.buckets == nil {
		p.buckets = make(map[int][]*MotionSample)
	}
	if len(p.buckets[key]) >= p.bucketCap {
		return
	}
	*s = MotionSample{Pointers: s.Pointers[:0], History: s.History[:0]}
	p.buckets[key] = append(p.buckets[key], s)
}

// size returns the number of idle samples held across all buckets.
func (p *samplePool) size() int {
	n := 0
	for _, stack := range p.buckets {
		n += len(stack)
	}
	return n
}

// poolKey rounds n up to the next power of two (minimum 1).
func poolKey(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
