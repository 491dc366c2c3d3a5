package simplepa

/*
#cgo pkg-config: libpulse-simple
#include <stdlib.h>
#include <pulse/simple.h>
#include <pulse/error.h>
*/
import "C"

import (
	"fmt"
	"os"
	"time"
	"unsafe"
)

// Error is a native PulseAudio error code. The message is resolved
// through pa_strerror.
type Error int

func (e Error) Error() string {
	if p := C.pa_strerror(C.int(e)); p != nil {
		return C.GoString(p)
	}
	return fmt.Sprintf("pulseaudio error %d", int(e))
}

type direction int

// Values mirror pa_stream_direction_t.
const (
	dirPlayback direction = 1
	dirRecord   direction = 2
)

// stream owns one pa_simple connection. The handle is non-nil from open
// until free and is released exactly once.
type stream struct {
	simple *C.pa_simple
}

// open connects to the server. name is used as both the application
// name and the stream name.
func open(name string, dir direction, format Format, spec SampleSpec, cfg Config) (stream, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var cserver, cdevice *C.char
	if cfg.Server != "" {
		cserver = C.CString(cfg.Server)
		defer C.free(unsafe.Pointer(cserver))
	}
	if cfg.Device != "" {
		cdevice = C.CString(cfg.Device)
		defer C.free(unsafe.Pointer(cdevice))
	}

	ss := C.pa_sample_spec{
		format:   C.pa_sample_format_t(format),
		rate:     C.uint32_t(spec.Rate),
		channels: C.uint8_t(spec.Channels),
	}

	var cerr C.int
	s := C.pa_simple_new(cserver, cname, C.pa_stream_direction_t(dir), cdevice, cname, &ss, nil, nil, &cerr)
	if s == nil {
		return stream{}, Error(cerr)
	}
	return stream{simple: s}, nil
}

func (s *stream) closed() bool {
	return s.simple == nil
}

func (s *stream) write(p unsafe.Pointer, n uintptr) error {
	if s.simple == nil {
		return os.ErrClosed
	}
	var cerr C.int
	if C.pa_simple_write(s.simple, p, C.size_t(n), &cerr) < 0 {
		return Error(cerr)
	}
	return nil
}

func (s *stream) read(p unsafe.Pointer, n uintptr) error {
	if s.simple == nil {
		return os.ErrClosed
	}
	var cerr C.int
	if C.pa_simple_read(s.simple, p, C.size_t(n), &cerr) < 0 {
		return Error(cerr)
	}
	return nil
}

func (s *stream) drain() error {
	if s.simple == nil {
		return os.ErrClosed
	}
	var cerr C.int
	if C.pa_simple_drain(s.simple, &cerr) < 0 {
		return Error(cerr)
	}
	return nil
}

func (s *stream) flush() error {
	if s.simple == nil {
		return os.ErrClosed
	}
	var cerr C.int
	if C.pa_simple_flush(s.simple, &cerr) < 0 {
		return Error(cerr)
	}
	return nil
}

func (s *stream) latency() (time.Duration, error) {
	if s.simple == nil {
		return 0, os.ErrClosed
	}
	var cerr C.int
	usec := C.pa_simple_get_latency(s.simple, &cerr)
	if cerr != 0 {
		return 0, Error(cerr)
	}
	return time.Duration(usec) * time.Microsecond, nil
}

// free releases the connection. Only the first call has an effect.
// Drain and release failures are not reported; the caller cannot act
// on them.
func (s *stream) free(drainFirst bool) {
	if s.simple == nil {
		return
	}
	if drainFirst {
		C.pa_simple_drain(s.simple, nil)
	}
	C.pa_simple_free(s.simple)
	s.simple = nil
}
