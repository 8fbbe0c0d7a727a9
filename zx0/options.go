package zx0

import "io"

// MaxOffset is the largest back-reference distance ZX0 can encode: the
// offset-MSB field is capped below the value that would collide with the
// end-marker sentinel (see eofSentinel in zx0.go).
const MaxOffset = 32640

// quickMaxOffset restricts the search window to ZX7's reach, trading ratio
// for a much smaller match-finder fan-out on large inputs.
const quickMaxOffset = 2176

// MaxInput is unbounded by the format itself.
const MaxInput = 1<<31 - 1

// CompressOptions configures Compress.
type CompressOptions struct {
	// Classic disables the inverted interlaced Elias-gamma coding of the
	// new-offset MSB field, matching the original zx0's "classic" mode
	// (compatible with the very first release of the format).
	Classic bool
	// Quick caps the search window to ZX7's MaxOffset, trading ratio for
	// compression speed on large inputs.
	Quick bool
	// Skip forces the DP to seed its first Skip bytes as plain literal
	// steps, without trying match candidates against them. Used when the
	// caller knows a leading run (e.g. a fixed loader stub) never repeats
	// later in the input and match-search effort there is wasted.
	Skip int
	// Backwards parses and encodes src back-to-front, so a decompressor
	// reading it back-to-front reconstructs the original order — the mode
	// self-decompressing loaders that unpack from high memory down to low
	// memory rely on. It flips the interlaced Elias-gamma continuation-tag
	// convention on every field, matching the original zx0's backwards
	// mode; a byte-slice API has no memory direction of its own, so this
	// is realized by compressing the reversed input and reversing the
	// decoded output back, rather than by writing into a caller-supplied
	// buffer from the end.
	Backwards bool
	// Verbose, if set, receives one diagnostic line describing the encode.
	Verbose io.Writer
}

// DecompressOptions configures Decompress. Classic and Backwards must match
// whatever the stream was encoded with; Decompress cannot infer either from
// the bytes alone.
type DecompressOptions struct {
	Classic   bool
	Backwards bool
}
