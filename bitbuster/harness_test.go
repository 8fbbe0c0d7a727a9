package bitbuster

import "github.com/oldbytes/retropack"

type codecAdapter struct{}

func (codecAdapter) Compress(src []byte) ([]byte, error)   { return Compress(src, nil) }
func (codecAdapter) Decompress(src []byte) ([]byte, error) { return Decompress(src, nil) }
func (codecAdapter) Name() string                          { return "bitbuster" }
func (codecAdapter) MaxInput() int                         { return DefaultMaxInput }

func init() {
	retropack.Register(codecAdapter{})
}
