package simplepa

import (
	"os"
	"time"
	"unsafe"
)

// Playback is a playback stream: one connection to the server through
// which samples of type T are written to a sink. The zero value is
// closed; use NewPlayback.
type Playback[T Sample] struct {
	s stream
}

// NewPlayback opens a playback stream on the default server and sink.
// name identifies the application and the stream to the server.
func NewPlayback[T Sample](name string, spec SampleSpec) (*Playback[T], error) {
	return NewPlaybackConfig[T](name, spec, DefaultConfig())
}

// NewPlaybackConfig opens a playback stream on the server and sink
// selected by cfg.
func NewPlaybackConfig[T Sample](name string, spec SampleSpec, cfg Config) (*Playback[T], error) {
	s, err := open(name, dirPlayback, formatOf[T](), spec, cfg)
	if err != nil {
		return nil, err
	}
	return &Playback[T]{s: s}, nil
}

// Write transfers samples to the server in one blocking call. It
// returns once the server has accepted the data, not once it has been
// played. On error the stream stays open; the caller may retry, Flush
// or Close. After Close it returns os.ErrClosed.
func (p *Playback[T]) Write(samples []T) error {
	if p.s.closed() {
		return os.ErrClosed
	}
	if len(samples) == 0 {
		return nil
	}
	n := uintptr(len(samples) * formatOf[T]().Size())
	return p.s.write(unsafe.Pointer(&samples[0]), n)
}

// Drain blocks until everything written so far has been played out.
// The stream stays usable afterwards.
func (p *Playback[T]) Drain() error {
	return p.s.drain()
}

// Flush discards samples the server has buffered but not yet played.
func (p *Playback[T]) Flush() error {
	return p.s.flush()
}

// Latency reports the time a sample written now needs to reach the
// device.
func (p *Playback[T]) Latency() (time.Duration, error) {
	return p.s.latency()
}

// Close drains pending samples and releases the native connection.
// Only the first call has an effect. It always returns nil; release
// failures are not actionable by the caller.
func (p *Playback[T]) Close() error {
	p.s.free(true)
	return nil
}
