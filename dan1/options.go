package dan1

import "io"

// MaxInput is the declared maximum input size for DAN1 (implementations
// may adjust it; this is the default).
const MaxInput = 262144

// CompressOptions configures Compress.
type CompressOptions struct {
	// RLE enables RAW literal blocks in the optimal parse. Off by default:
	// without it the parser only ever chooses single-byte literals and
	// back-reference matches, never the 16-zero-bit RAW escape.
	RLE bool

	// Verbose, if set, receives a line of diagnostic text describing the
	// chosen encoding (total bits, RAW-block count). It has no effect on
	// the emitted stream.
	Verbose io.Writer
}

// DecompressOptions configures Decompress. DAN1 has no decode-side
// tunables; RAW blocks and the END marker are always recognized.
type DecompressOptions struct{}
