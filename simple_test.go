package simplepa

import (
	"errors"
	"os"
	"testing"
)

func TestErrorMessageNotEmpty(t *testing.T) {
	// Codes 0..31 cover the pa_error_code_t range with headroom; codes
	// the native lookup does not know must still resolve to something.
	for code := 0; code < 32; code++ {
		if Error(code).Error() == "" {
			t.Errorf("Error(%d) has empty message", code)
		}
	}
	for _, code := range []int{-1, 1 << 20} {
		if Error(code).Error() == "" {
			t.Errorf("Error(%d) has empty message", code)
		}
	}
}

func TestClosedPlaybackRejectsOperations(t *testing.T) {
	var p Playback[int16]
	if err := p.Write(make([]int16, 16)); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Write on closed stream = %v, want os.ErrClosed", err)
	}
	if err := p.Drain(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Drain on closed stream = %v, want os.ErrClosed", err)
	}
	if err := p.Flush(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Flush on closed stream = %v, want os.ErrClosed", err)
	}
	if _, err := p.Latency(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Latency on closed stream = %v, want os.ErrClosed", err)
	}
	// Close on an already-closed stream is a no-op.
	if err := p.Close(); err != nil {
		t.Errorf("Close on closed stream = %v", err)
	}
}

func TestClosedCaptureRejectsOperations(t *testing.T) {
	var c Capture[int16]
	if err := c.Read(make([]int16, 16)); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Read on closed stream = %v, want os.ErrClosed", err)
	}
	if err := c.Flush(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Flush on closed stream = %v, want os.ErrClosed", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on closed stream = %v", err)
	}
}

func TestOpenUnreachableServer(t *testing.T) {
	cfg := Config{Server: "unix:/nonexistent/pulse.sock"}
	_, err := NewPlaybackConfig[int16]("simple-pa.test", SampleSpec{Rate: 44100, Channels: 2}, cfg)
	if err == nil {
		t.Fatal("open against unreachable server succeeded")
	}
	var perr Error
	if !errors.As(err, &perr) {
		t.Fatalf("open error is %T, want Error", err)
	}
	if err.Error() == "" {
		t.Error("open error has empty message")
	}
}

func TestOpenInvalidSpec(t *testing.T) {
	// A zero rate is rejected by the native library before any server
	// round-trip, so no handle may exist afterwards.
	_, err := NewPlayback[int16]("simple-pa.test", SampleSpec{})
	if err == nil {
		t.Fatal("open with zero sample spec succeeded")
	}
	if err.Error() == "" {
		t.Error("open error has empty message")
	}
}
