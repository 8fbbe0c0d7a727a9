package mdkrle

// MaxInput is unbounded for MDK-RLE; kept as a named constant anyway so
// the codec still satisfies the shared Codec capability used by the test
// harness (MaxInput() int).
const MaxInput = 1<<31 - 1

// CompressOptions configures Compress. MDK-RLE has no tunables of its own;
// this exists for API symmetry with the other codecs and future-proofing.
type CompressOptions struct{}

// DecompressOptions configures Decompress. MDK-RLE has no tunables of its
// own.
type DecompressOptions struct{}
