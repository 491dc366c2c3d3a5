// Command playback plays a WAV, MP3 or Ogg Vorbis file on the default
// PulseAudio sink.
package main

import (
	"fmt"
	"io"
	"os"

	simplepa "github.com/prodbysky/simple-pa"
	"github.com/prodbysky/simple-pa/example/audio"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: playback <file.wav|file.mp3|file.ogg>")
		os.Exit(1)
	}

	reader, err := audio.OpenFile(os.Args[1], audio.Ptime20)
	if err != nil {
		panic(err)
	}
	defer reader.Close()

	fmt.Printf("%s: %d Hz, %d channels\n", os.Args[1], reader.SampleRate(), reader.Channels())

	stream, err := simplepa.NewPlayback[int16]("simple-pa playback", simplepa.SampleSpec{
		Rate:     uint32(reader.SampleRate()),
		Channels: uint8(reader.Channels()),
	})
	if err != nil {
		panic(err)
	}
	defer stream.Close()

	// Decode ahead of the blocking stream writes.
	buffer := audio.NewBuffer(reader, 50)
	go func() {
		for {
			frame, err := reader.ReadFrame()
			if len(frame) > 0 {
				if werr := buffer.WriteBlocking(frame); werr != nil {
					return
				}
			}
			if err != nil {
				_ = buffer.WriteFinal()
				return
			}
		}
	}()

	for {
		frame, err := buffer.ReadFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		if err := stream.Write(frame); err != nil {
			panic(err)
		}
		buffer.Release(frame)
	}

	if lat, err := stream.Latency(); err == nil {
		fmt.Printf("draining, latency %v\n", lat)
	}
	if err := stream.Drain(); err != nil {
		panic(err)
	}
	fmt.Printf("played %v\n", buffer.Elapsed())
}
