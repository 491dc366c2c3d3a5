// Command record captures from the default PulseAudio source into a
// WAV file, stopping after one and a half seconds of trailing silence.
package main

import (
	"fmt"
	"os"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	vad "github.com/pidato/vad-go"
	simplepa "github.com/prodbysky/simple-pa"
)

const (
	sampleRate = 16000
	ptime      = 20 * time.Millisecond
	frameSize  = 320 // 20ms of 16KHz mono
	maxSilence = 1500 * time.Millisecond
	maxLength  = 30 * time.Second
)

func main() {
	out := "recording.wav"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	stream, err := simplepa.NewCapture[int16]("simple-pa record", simplepa.SampleSpec{
		Rate:     sampleRate,
		Channels: 1,
	})
	if err != nil {
		panic(err)
	}
	defer stream.Close()

	f, err := os.Create(out)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	v := vad.New()
	v.SetSampleRate(sampleRate)
	v.SetMode(vad.Aggressive)
	defer v.Close()

	fmt.Println("recording, stop speaking to finish...")

	frame := make([]int16, frameSize)
	intBuf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, frameSize),
		SourceBitDepth: 16,
	}

	var recorded, silence time.Duration
	spoke := false
	for recorded < maxLength {
		if err := stream.Read(frame); err != nil {
			panic(err)
		}
		recorded += ptime

		switch v.Process(frame) {
		case vad.Active:
			spoke = true
			silence = 0
		case vad.NonActive:
			silence += ptime
		}
		if spoke && silence >= maxSilence {
			break
		}

		for i, s := range frame {
			intBuf.Data[i] = int(s)
		}
		if err := enc.Write(intBuf); err != nil {
			panic(err)
		}
	}

	if err := enc.Close(); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %v to %s\n", recorded, out)
}
