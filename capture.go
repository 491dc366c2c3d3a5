package simplepa

import (
	"os"
	"time"
	"unsafe"
)

// Capture is a capture stream: one connection to the server through
// which samples of type T are read from a source. The zero value is
// closed; use NewCapture.
type Capture[T Sample] struct {
	s stream
}

// NewCapture opens a capture stream on the default server and source.
// name identifies the application and the stream to the server.
func NewCapture[T Sample](name string, spec SampleSpec) (*Capture[T], error) {
	return NewCaptureConfig[T](name, spec, DefaultConfig())
}

// NewCaptureConfig opens a capture stream on the server and source
// selected by cfg.
func NewCaptureConfig[T Sample](name string, spec SampleSpec, cfg Config) (*Capture[T], error) {
	s, err := open(name, dirRecord, formatOf[T](), spec, cfg)
	if err != nil {
		return nil, err
	}
	return &Capture[T]{s: s}, nil
}

// Read blocks until it has filled samples completely. On error the
// stream stays open. After Close it returns os.ErrClosed.
func (c *Capture[T]) Read(samples []T) error {
	if c.s.closed() {
		return os.ErrClosed
	}
	if len(samples) == 0 {
		return nil
	}
	n := uintptr(len(samples) * formatOf[T]().Size())
	return c.s.read(unsafe.Pointer(&samples[0]), n)
}

// Flush discards samples captured but not yet read.
func (c *Capture[T]) Flush() error {
	return c.s.flush()
}

// Latency reports the time a sample arriving at the device now needs
// to reach Read.
func (c *Capture[T]) Latency() (time.Duration, error) {
	return c.s.latency()
}

// Close releases the native connection. Only the first call has an
// effect. It always returns nil; release failures are not actionable
// by the caller.
func (c *Capture[T]) Close() error {
	c.s.free(false)
	return nil
}
