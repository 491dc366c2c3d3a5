package audio

import (
	"io"
	"os"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/pkg/errors"
)

// go-mp3 always yields 16bit little-endian stereo.
const mp3Channels = 2

type mp3Reader struct {
	f    *os.File
	dec  *mp3.Decoder
	pool BufferPool

	ptime int
	buf   []byte
	eof   bool
}

// OpenMP3File reads 16bit PCM frames from an MP3 file.
func OpenMP3File(path string, ptime int) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "mp3: open")
	}

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "mp3: decode")
	}

	size := frameSamples(dec.SampleRate(), mp3Channels, ptime)
	return &mp3Reader{
		f:     f,
		dec:   dec,
		pool:  newFramePool(size),
		ptime: ptime,
		buf:   make([]byte, size*2),
	}, nil
}

func (r *mp3Reader) SampleRate() int {
	return r.dec.SampleRate()
}

func (r *mp3Reader) Channels() int {
	return mp3Channels
}

func (r *mp3Reader) FrameSize() int {
	return r.pool.BufferSize()
}

func (r *mp3Reader) Ptime() time.Duration {
	return ptimeDuration(r.ptime)
}

func (r *mp3Reader) Alloc() []int16 {
	return r.pool.Get()
}

func (r *mp3Reader) Release(p []int16) {
	r.pool.Put(p)
}

func (r *mp3Reader) ReadFrame() ([]int16, error) {
	if r.eof {
		return nil, io.EOF
	}
	n, err := io.ReadFull(r.dec, r.buf)
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		r.eof = true
		if n == 0 {
			return nil, io.EOF
		}
	default:
		return nil, errors.Wrap(err, "mp3: read pcm")
	}

	samples := n / 2
	frame := r.pool.Get()[:samples]
	for i := 0; i < samples; i++ {
		frame[i] = int16(uint16(r.buf[2*i]) | uint16(r.buf[2*i+1])<<8)
	}
	return frame, nil
}

func (r *mp3Reader) Close() error {
	return r.f.Close()
}
