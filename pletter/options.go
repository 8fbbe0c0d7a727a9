package pletter

// MaxInput is the declared maximum input size for Pletter.
const MaxInput = 65536

// CompressOptions configures Compress. Pletter has no tunables of its own:
// the offset-subset q is chosen automatically by exhaustive trial over
// q in 1..6 (q=7 is decodable but never produced by the encoder).
type CompressOptions struct{}

// DecompressOptions configures Decompress.
type DecompressOptions struct {
	// Dsk2Rom assumes q=2 and a distinct EOF sentinel (131072) instead of
	// reading q from the stream header, for the dsk2rom container variant.
	Dsk2Rom bool
}
