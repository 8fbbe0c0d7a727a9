/*
Package mdkrle implements MDK-RLE compression and decompression.

Format: control byte C. 0x00-0x7F: RAW packet, length = C+1 payload bytes
follow. 0x80-0xFE: RLE packet, length = (C&0x7F)+1, next byte is the
repeated value. 0xFF: end of stream. Runs of 3 or more identical bytes are
flushed as RLE packets (at most 127 bytes each); everything else
accumulates into RAW packets (at most 128 bytes each).

# Examples

Round-trip:

	enc, err := mdkrle.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := mdkrle.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Empty input encodes to the single end-marker byte:

	enc, _ := mdkrle.Compress(nil, nil)
	// enc == []byte{0xFF}
*/
package mdkrle
