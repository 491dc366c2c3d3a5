package audio

import (
	"errors"
	"time"
)

// Frame duration in milliseconds. The stream accepts writes of any
// size; frames are just a convenient transfer unit.
const (
	Ptime10 = 10
	Ptime20 = 20
	Ptime30 = 30
)

var (
	ErrPCMNot16Bit   = errors.New("PCM is not 16-bit")
	ErrUnknownFormat = errors.New("unknown audio file format")
)

func ptimeDuration(ptime int) time.Duration {
	return time.Duration(ptime) * time.Millisecond
}

// frameSamples is the number of 16bit values in one frame.
func frameSamples(sampleRate, channels, ptime int) int {
	return sampleRate * ptime / 1000 * channels
}
