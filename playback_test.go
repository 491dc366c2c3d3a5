package simplepa

import (
	"errors"
	"os"
	"testing"
)

// newTestPlayback connects to the local server, skipping the test when
// none is reachable.
func newTestPlayback(t *testing.T) *Playback[int16] {
	t.Helper()
	p, err := NewPlayback[int16]("simple-pa.test", SampleSpec{Rate: 44100, Channels: 2})
	if err != nil {
		t.Skipf("no pulseaudio server: %v", err)
	}
	return p
}

func TestPlaybackWriteDrain(t *testing.T) {
	p := newTestPlayback(t)
	defer p.Close()

	// One second of silence.
	if err := p.Write(make([]int16, 44100*2)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := p.Drain(); err != nil {
		t.Fatalf("Drain: %v", err)
	}
}

func TestPlaybackEmptyWrite(t *testing.T) {
	p := newTestPlayback(t)
	defer p.Close()

	if err := p.Write(nil); err != nil {
		t.Fatalf("Write(nil): %v", err)
	}
}

func TestPlaybackLatency(t *testing.T) {
	p := newTestPlayback(t)
	defer p.Close()

	if err := p.Write(make([]int16, 4410)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if lat, err := p.Latency(); err != nil {
		t.Fatalf("Latency: %v", err)
	} else if lat < 0 {
		t.Fatalf("Latency = %v", lat)
	}
}

func TestPlaybackCloseThenUse(t *testing.T) {
	p := newTestPlayback(t)
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := p.Write(make([]int16, 16)); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("Write after Close = %v, want os.ErrClosed", err)
	}
	if err := p.Drain(); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("Drain after Close = %v, want os.ErrClosed", err)
	}
}

func TestPlaybackFloat32(t *testing.T) {
	p, err := NewPlayback[float32]("simple-pa.test", SampleSpec{Rate: 48000, Channels: 1})
	if err != nil {
		t.Skipf("no pulseaudio server: %v", err)
	}
	defer p.Close()

	if err := p.Write(make([]float32, 4800)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := p.Drain(); err != nil {
		t.Fatalf("Drain: %v", err)
	}
}
