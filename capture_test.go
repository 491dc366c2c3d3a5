package simplepa

import "testing"

func TestCaptureOpenClose(t *testing.T) {
	c, err := NewCapture[int16]("simple-pa.test", SampleSpec{Rate: 16000, Channels: 1})
	if err != nil {
		t.Skipf("no pulseaudio server: %v", err)
	}
	if err := c.Flush(); err != nil {
		t.Errorf("Flush: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestCaptureEmptyRead(t *testing.T) {
	c, err := NewCapture[int16]("simple-pa.test", SampleSpec{Rate: 16000, Channels: 1})
	if err != nil {
		t.Skipf("no pulseaudio server: %v", err)
	}
	defer c.Close()

	if err := c.Read(nil); err != nil {
		t.Fatalf("Read(nil): %v", err)
	}
}
