package zx7

import "github.com/oldbytes/retropack"

type codecAdapter struct{}

func (codecAdapter) Compress(src []byte) ([]byte, error)   { return Compress(src, nil) }
func (codecAdapter) Decompress(src []byte) ([]byte, error) { return Decompress(src, nil) }
func (codecAdapter) Name() string                          { return "zx7" }
func (codecAdapter) MaxInput() int                         { return MaxInput }

func init() {
	retropack.Register(codecAdapter{})
}
