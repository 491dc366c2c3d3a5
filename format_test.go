package simplepa

import "testing"

func TestFormatOf(t *testing.T) {
	tests := []struct {
		name   string
		got    Format
		le, be Format
	}{
		{"uint8", formatOf[uint8](), FormatU8, FormatU8},
		{"int16", formatOf[int16](), FormatS16LE, FormatS16BE},
		{"int32", formatOf[int32](), FormatS32LE, FormatS32BE},
		{"float32", formatOf[float32](), FormatFloat32LE, FormatFloat32BE},
	}
	for _, tt := range tests {
		want := tt.le
		if bigEndian {
			want = tt.be
		}
		if tt.got != want {
			t.Errorf("formatOf[%s] = %v, want %v", tt.name, tt.got, want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		f    Format
		want int
	}{
		{FormatU8, 1},
		{FormatS16LE, 2},
		{FormatS16BE, 2},
		{FormatFloat32LE, 4},
		{FormatFloat32BE, 4},
		{FormatS32LE, 4},
		{FormatS32BE, 4},
		{FormatInvalid, 0},
	}
	for _, tt := range tests {
		if got := tt.f.Size(); got != tt.want {
			t.Errorf("%v.Size() = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	formats := []Format{
		FormatU8, FormatS16LE, FormatS16BE,
		FormatFloat32LE, FormatFloat32BE, FormatS32LE, FormatS32BE,
	}
	for _, f := range formats {
		if f.String() == "invalid" {
			t.Errorf("Format(%d).String() = invalid", int32(f))
		}
	}
	if FormatInvalid.String() != "invalid" {
		t.Errorf("FormatInvalid.String() = %q", FormatInvalid.String())
	}
}
