package bitbuster

// MaxOffset is the largest back-reference distance BitBuster can encode.
const MaxOffset = 2047

// DefaultMaxInput is the ceiling used when CompressOptions/DecompressOptions
// leave MaxInput at zero.
const DefaultMaxInput = 524288

// minMatch is 3, not 2: the wire format codes length-2 as a standard
// Elias-gamma value, which cannot represent 0.
const minMatch = 3

// CompressOptions configures Compress.
type CompressOptions struct {
	// MaxInput overrides DefaultMaxInput; zero means use the default.
	MaxInput int
}

// DecompressOptions configures Decompress.
type DecompressOptions struct {
	// MaxInput overrides DefaultMaxInput; zero means use the default. It
	// bounds the length header read from the stream, guarding against a
	// corrupt or hostile header claiming an enormous output.
	MaxInput int
}

func (o *CompressOptions) maxInput() int {
	if o == nil || o.MaxInput <= 0 {
		return DefaultMaxInput
	}
	return o.MaxInput
}

func (o *DecompressOptions) maxInput() int {
	if o == nil || o.MaxInput <= 0 {
		return DefaultMaxInput
	}
	return o.MaxInput
}
