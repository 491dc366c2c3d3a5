package audio

import (
	"io"
	"os"
	"time"

	"github.com/jfreymuth/oggvorbis"
	"github.com/pkg/errors"
)

type vorbisReader struct {
	f    *os.File
	dec  *oggvorbis.Reader
	pool BufferPool

	ptime int
	fbuf  []float32
	eof   bool
}

// OpenVorbisFile reads 16bit PCM frames from an Ogg Vorbis file.
func OpenVorbisFile(path string, ptime int) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "vorbis: open")
	}

	dec, err := oggvorbis.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "vorbis: decode")
	}

	size := frameSamples(dec.SampleRate(), dec.Channels(), ptime)
	return &vorbisReader{
		f:     f,
		dec:   dec,
		pool:  newFramePool(size),
		ptime: ptime,
		fbuf:  make([]float32, size),
	}, nil
}

func (r *vorbisReader) SampleRate() int {
	return r.dec.SampleRate()
}

func (r *vorbisReader) Channels() int {
	return r.dec.Channels()
}

func (r *vorbisReader) FrameSize() int {
	return r.pool.BufferSize()
}

func (r *vorbisReader) Ptime() time.Duration {
	return ptimeDuration(r.ptime)
}

func (r *vorbisReader) Alloc() []int16 {
	return r.pool.Get()
}

func (r *vorbisReader) Release(p []int16) {
	r.pool.Put(p)
}

func (r *vorbisReader) ReadFrame() ([]int16, error) {
	if r.eof {
		return nil, io.EOF
	}
	n, err := r.dec.Read(r.fbuf)
	if n == 0 {
		if err == nil || err == io.EOF {
			r.eof = true
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "vorbis: read")
	}

	frame := r.pool.Get()[:n]
	for i := 0; i < n; i++ {
		frame[i] = float32ToInt16(r.fbuf[i])
	}
	return frame, nil
}

func (r *vorbisReader) Close() error {
	return r.f.Close()
}

// float32ToInt16 clamps and scales a [-1,1] sample.
func float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
