package audio

import (
	"io"
	"time"
)

// 16bit PCM frame reader.
type Reader interface {
	io.Closer

	// Clock speed in hertz. (i.e. 44100 for 44.1Khz)
	SampleRate() int

	// Number of interleaved channels.
	Channels() int

	// Number of 16bit integers per frame.
	FrameSize() int

	// Frame duration.
	Ptime() time.Duration

	// Release a frame to allow it to be recycled.
	Release(p []int16)

	// Alloc a new frame.
	Alloc() []int16

	// ReadFrame reads the next frame. The final frame may be shorter
	// than FrameSize.
	ReadFrame() ([]int16, error)
}
