/*
Package lzf implements a simplified, end-marker variant of LZF
compression: byte-aligned LZ77 with a literal control byte and two match
tiers.

Format: end marker 0xFF terminates the stream. Control byte B with
control = B>>5: control 0 is a literal run of (B&0x1F)+1 bytes; control
1..6 is a short match of length control+2 (3..8) whose offset's low byte
follows; control 7 is a long match whose length-9 byte and offset low byte
follow, with the offset's high 5 bits always carried in B&0x1F.
MaxOffset is 7936, so the offset high byte never reaches the 0x1F that
would collide with the end marker.

Empty input compresses to an empty byte slice (no end marker is written
when there was never a stream to terminate).

# Examples

Round-trip:

	enc, err := lzf.Compress(data, nil)
	dec, err := lzf.Decompress(enc, nil)
	// dec equals data
*/
package lzf
