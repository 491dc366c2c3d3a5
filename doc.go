// Package simplepa wraps libpulse-simple, the synchronous PulseAudio
// client API. A stream is a single connection to the audio server over
// which interleaved PCM frames are written (playback) or read (capture)
// with plain blocking calls.
//
// Playback and capture are distinct types with disjoint operation sets,
// so a stream cannot be used in the wrong direction. The sample type
// parameter (uint8, int16, int32 or float32) selects the native sample
// format at compile time.
//
// A stream is owned by one goroutine; concurrent calls on the same
// stream require external synchronization. Close releases the native
// connection exactly once and is safe to call more than once.
//
// The PulseAudio client library must be available at build and run time
// (pkg-config: libpulse-simple).
package simplepa
