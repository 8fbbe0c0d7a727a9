package retropack

// Codec is the common capability every format in this repository exposes.
// It exists solely so the internal test harness can run the universal
// properties (round trip, termination, size bound) against every codec
// uniformly; callers that know which format they want should import that
// codec's subpackage directly instead of going through this interface.
type Codec interface {
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte) ([]byte, error)
	Name() string
	MaxInput() int
}

var registry []Codec

// Register adds a codec to the shared registry. Called from each codec
// subpackage's init() via a thin adapter in that package's _test.go, so the
// root package itself never imports the codec packages — only their
// errors.go files import retropack (for the shared sentinel aliases), never
// the reverse, so no import cycle exists.
func Register(c Codec) {
	registry = append(registry, c)
}

// Registered returns the codecs registered so far, in registration order.
func Registered() []Codec {
	out := make([]Codec, len(registry))
	copy(out, registry)
	return out
}
