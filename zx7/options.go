package zx7

// MaxInput is unbounded by the format itself; ZX7 is limited only by the
// offset field's reach and available memory, so this is a generous ceiling
// rather than a format constant.
const MaxInput = 1<<31 - 1

// CompressOptions configures Compress. ZX7 has no tunables of its own.
type CompressOptions struct{}

// DecompressOptions configures Decompress. ZX7 has no decode-side tunables.
type DecompressOptions struct{}
