package simplepa

// SampleSpec describes the PCM layout of a stream. The values are not
// checked locally; an unsupported combination is reported by the native
// library as a connection-open failure.
type SampleSpec struct {
	// Rate is the sample rate in Hz.
	Rate uint32
	// Channels is the number of interleaved channels.
	Channels uint8
}

// Config selects the server and device a stream connects to.
type Config struct {
	// Server address. Empty connects to the default server.
	Server string
	// Device is the sink (playback) or source (capture) name. Empty
	// lets the server choose.
	Device string
}

// DefaultConfig connects to the default server and device.
func DefaultConfig() Config {
	return Config{}
}
