package audio

import (
	"path/filepath"
	"strings"
)

// OpenFile picks a decoder by file extension.
func OpenFile(path string, ptime int) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return OpenWavFile(path, ptime)
	case ".mp3":
		return OpenMP3File(path, ptime)
	case ".ogg", ".oga":
		return OpenVorbisFile(path, ptime)
	}
	return nil, ErrUnknownFormat
}
