package simplepa

import "unsafe"

// Sample is the set of element types the native library transfers
// directly. Exactly one native format tag corresponds to each type on a
// given architecture.
type Sample interface {
	uint8 | int16 | int32 | float32
}

// Format identifies a native sample format. The values mirror
// pa_sample_format_t.
type Format int32

const (
	FormatInvalid   Format = -1
	FormatU8        Format = 0
	FormatS16LE     Format = 3
	FormatS16BE     Format = 4
	FormatFloat32LE Format = 5
	FormatFloat32BE Format = 6
	FormatS32LE     Format = 7
	FormatS32BE     Format = 8
)

func (f Format) String() string {
	switch f {
	case FormatU8:
		return "u8"
	case FormatS16LE:
		return "s16le"
	case FormatS16BE:
		return "s16be"
	case FormatFloat32LE:
		return "float32le"
	case FormatFloat32BE:
		return "float32be"
	case FormatS32LE:
		return "s32le"
	case FormatS32BE:
		return "s32be"
	}
	return "invalid"
}

// Size is the width of one sample in bytes.
func (f Format) Size() int {
	switch f {
	case FormatU8:
		return 1
	case FormatS16LE, FormatS16BE:
		return 2
	case FormatFloat32LE, FormatFloat32BE, FormatS32LE, FormatS32BE:
		return 4
	}
	return 0
}

// bigEndian reports whether the host stores multi-byte samples
// most-significant byte first.
var bigEndian = func() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 0
}()

// formatOf maps a sample element type to the native format tag for the
// host byte order.
func formatOf[T Sample]() Format {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return FormatU8
	case int16:
		if bigEndian {
			return FormatS16BE
		}
		return FormatS16LE
	case int32:
		if bigEndian {
			return FormatS32BE
		}
		return FormatS32LE
	case float32:
		if bigEndian {
			return FormatFloat32BE
		}
		return FormatFloat32LE
	}
	return FormatInvalid
}
