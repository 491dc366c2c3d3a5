package audio

import (
	"io"
	"sync"
	"time"
)

// Buffer is a bounded frame FIFO between a decoding goroutine and a
// blocking stream write. Once full, WriteBlocking waits for the reader;
// once empty, ReadFrame waits for the writer.
type Buffer struct {
	src Reader

	mu     sync.Mutex
	cond   *sync.Cond
	frames [][]int16
	ridx   int
	widx   int
	size   int

	samplesRead int

	eof    bool
	closed bool
}

// NewBuffer buffers up to maxFrames frames read from src.
func NewBuffer(src Reader, maxFrames int) *Buffer {
	b := &Buffer{
		src:    src,
		frames: make([][]int16, maxFrames),
	}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *Buffer) SampleRate() int {
	return b.src.SampleRate()
}

func (b *Buffer) Channels() int {
	return b.src.Channels()
}

func (b *Buffer) FrameSize() int {
	return b.src.FrameSize()
}

func (b *Buffer) Ptime() time.Duration {
	return b.src.Ptime()
}

func (b *Buffer) Alloc() []int16 {
	return b.src.Alloc()
}

func (b *Buffer) Release(p []int16) {
	b.src.Release(p)
}

// Elapsed is the total duration of the frames read so far.
func (b *Buffer) Elapsed() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	rate := b.src.SampleRate() * b.src.Channels()
	return time.Duration(b.samplesRead) * (time.Second / time.Duration(rate))
}

// Write queues a frame without blocking. Returns io.ErrShortBuffer
// when the buffer is full.
func (b *Buffer) Write(p []int16) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case b.closed:
		return io.ErrClosedPipe
	case b.eof:
		return io.EOF
	case b.size == len(b.frames):
		return io.ErrShortBuffer
	}
	b.put(p)
	return nil
}

// WriteBlocking queues a frame, waiting for a free slot when the
// buffer is full.
func (b *Buffer) WriteBlocking(p []int16) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.size == len(b.frames) && !b.closed && !b.eof {
		b.cond.Wait()
	}
	switch {
	case b.closed:
		return io.ErrClosedPipe
	case b.eof:
		return io.EOF
	}
	b.put(p)
	return nil
}

// put requires b.mu held.
func (b *Buffer) put(p []int16) {
	b.frames[b.widx%len(b.frames)] = p
	b.widx++
	b.size++
	b.cond.Broadcast()
}

// WriteFinal marks the end of the stream. Queued frames remain
// readable; ReadFrame reports io.EOF after the last one.
func (b *Buffer) WriteFinal() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return io.ErrClosedPipe
	}
	b.eof = true
	b.cond.Broadcast()
	return nil
}

// ReadFrame returns the next queued frame, waiting for the writer when
// the buffer is empty.
func (b *Buffer) ReadFrame() ([]int16, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.size == 0 && !b.closed && !b.eof {
		b.cond.Wait()
	}
	if b.closed {
		return nil, io.ErrClosedPipe
	}
	if b.size == 0 {
		return nil, io.EOF
	}

	i := b.ridx % len(b.frames)
	p := b.frames[i]
	b.frames[i] = nil
	b.ridx++
	b.size--
	b.samplesRead += len(p)
	b.cond.Broadcast()
	return p, nil
}

// Close drops queued frames and unblocks both sides.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return io.ErrClosedPipe
	}
	b.closed = true
	for i, p := range b.frames {
		if p != nil {
			b.src.Release(p)
			b.frames[i] = nil
		}
	}
	b.cond.Broadcast()
	return nil
}
