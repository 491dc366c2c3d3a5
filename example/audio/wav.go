package audio

import (
	"io"
	"os"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

type wavReader struct {
	f    *os.File
	dec  *wav.Decoder
	pool BufferPool

	channels int
	ptime    int

	intBuf *gaudio.IntBuffer
	eof    bool
}

// OpenWavFile reads 16bit PCM frames from a WAV file.
func OpenWavFile(path string, ptime int) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "wav: open")
	}

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		_ = f.Close()
		return nil, errors.Errorf("wav: %s is not a valid wav file", path)
	}
	if dec.BitDepth != 16 {
		_ = f.Close()
		return nil, ErrPCMNot16Bit
	}

	size := frameSamples(int(dec.SampleRate), int(dec.NumChans), ptime)
	return &wavReader{
		f:        f,
		dec:      dec,
		pool:     newFramePool(size),
		channels: int(dec.NumChans),
		ptime:    ptime,
		intBuf: &gaudio.IntBuffer{
			Format: &gaudio.Format{
				NumChannels: int(dec.NumChans),
				SampleRate:  int(dec.SampleRate),
			},
			Data:           make([]int, size),
			SourceBitDepth: 16,
		},
	}, nil
}

func (r *wavReader) SampleRate() int {
	return int(r.dec.SampleRate)
}

func (r *wavReader) Channels() int {
	return r.channels
}

func (r *wavReader) FrameSize() int {
	return r.pool.BufferSize()
}

func (r *wavReader) Ptime() time.Duration {
	return ptimeDuration(r.ptime)
}

func (r *wavReader) Alloc() []int16 {
	return r.pool.Get()
}

func (r *wavReader) Release(p []int16) {
	r.pool.Put(p)
}

func (r *wavReader) ReadFrame() ([]int16, error) {
	if r.eof {
		return nil, io.EOF
	}
	n, err := r.dec.PCMBuffer(r.intBuf)
	if err != nil {
		return nil, errors.Wrap(err, "wav: read pcm")
	}
	if n == 0 {
		r.eof = true
		return nil, io.EOF
	}

	frame := r.pool.Get()[:n]
	for i := 0; i < n; i++ {
		frame[i] = int16(r.intBuf.Data[i])
	}
	return frame, nil
}

func (r *wavReader) Close() error {
	return r.f.Close()
}
