// Command tone plays two seconds of a 440Hz sine wave on the default
// PulseAudio sink.
package main

import (
	"fmt"
	"math"

	simplepa "github.com/prodbysky/simple-pa"
)

const (
	sampleRate = 48000
	channels   = 2
	frequency  = 440.0
	seconds    = 2
)

func main() {
	stream, err := simplepa.NewPlayback[float32]("simple-pa tone", simplepa.SampleSpec{
		Rate:     sampleRate,
		Channels: channels,
	})
	if err != nil {
		panic(err)
	}
	defer stream.Close()

	// 100ms per write.
	frame := make([]float32, sampleRate/10*channels)
	n := 0
	for written := 0; written < sampleRate*seconds; written += len(frame) / channels {
		for i := 0; i < len(frame); i += channels {
			// 50% volume.
			v := float32(math.Sin(2*math.Pi*frequency*float64(n)/sampleRate)) * 0.5
			for c := 0; c < channels; c++ {
				frame[i+c] = v
			}
			n++
		}
		if err := stream.Write(frame); err != nil {
			panic(err)
		}
	}

	if err := stream.Drain(); err != nil {
		panic(err)
	}
	fmt.Println("done")
}
