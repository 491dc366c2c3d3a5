package audio

import "sync"

// BufferPool recycles fixed-size sample frames.
type BufferPool interface {
	BufferSize() int

	Get() []int16

	Put(p []int16)
}

type framePool struct {
	bufferSize int
	pool       sync.Pool
}

func newFramePool(size int) *framePool {
	return &framePool{
		bufferSize: size,

		pool: sync.Pool{New: func() interface{} {
			return make([]int16, size)
		}},
	}
}

func (p *framePool) BufferSize() int {
	return p.bufferSize
}

func (p *framePool) Get() []int16 {
	return p.pool.Get().([]int16)[:p.bufferSize]
}

func (p *framePool) Put(b []int16) {
	if cap(b) < p.bufferSize {
		return
	}
	p.pool.Put(b[:p.bufferSize])
}
