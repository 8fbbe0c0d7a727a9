package dan3

import "io"

// MaxInput is the declared maximum input size for DAN3 (implementations
// may adjust it; this is the default).
const MaxInput = 524288

// CompressOptions configures Compress.
type CompressOptions struct {
	// Verbose, if set, receives a line of diagnostic text describing the
	// chosen subset and total bit count. It has no effect on the emitted
	// stream.
	Verbose io.Writer
}

// DecompressOptions configures Decompress. DAN3 has no decode-side
// tunables: the subset is read from the stream's unary preamble.
type DecompressOptions struct{}
