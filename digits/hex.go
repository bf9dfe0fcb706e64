// Package digits implements the innermost digit-emission primitives:
// fixed-width lowercase hex encoding, backward decimal, octal and hex
// writers, and width-checked decimal conversion into fixed buffers.
//
// The forward codecs follow the utf8.EncodeRune shape: write at the
// start of the slice, return the count, let the caller rechunk. The
// backward writers take an end index and return the new start index.
// Neither family checks bounds. This is the hottest layer, and the
// call sites know the total length in advance.
package digits

// hexDigits maps a nibble to its lowercase hex character.
var hexDigits = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// HexByte writes v as exactly two hex characters and returns 2.
func HexByte(b []byte, v uint8) int {
	b[0] = hexDigits[v>>4]
	b[1] = hexDigits[v&0xf]
	return 2
}

// HexWord writes v as exactly four hex characters and returns 4.
func HexWord(b []byte, v uint16) int {
	n := HexByte(b, uint8(v>>8))
	n += HexByte(b[n:], uint8(v))
	return n
}

// HexWordPunct writes v as two hex byte pairs separated by punct and
// returns 5.
func HexWordPunct(b []byte, v uint16, punct byte) int {
	n := HexByte(b, uint8(v>>8))
	b[n] = punct
	n++
	n += HexByte(b[n:], uint8(v))
	return n
}

// HexWordNpad writes v in hex without leading zeros and returns the
// count, 1 to 4. Zero still writes a single '0'.
func HexWordNpad(b []byte, v uint16) int {
	n := 0
	if v >= 0x1000 {
		b[n] = hexDigits[v>>12]
		n++
	}
	if v >= 0x0100 {
		b[n] = hexDigits[v>>8&0xf]
		n++
	}
	if v >= 0x0010 {
		b[n] = hexDigits[v>>4&0xf]
		n++
	}
	b[n] = hexDigits[v&0xf]
	return n + 1
}

// HexDword writes v as exactly eight hex characters and returns 8.
func HexDword(b []byte, v uint32) int {
	n := HexWord(b, uint16(v>>16))
	n += HexWord(b[n:], uint16(v))
	return n
}

// HexDwordPunct writes v as four hex byte pairs separated by punct and
// returns 11.
func HexDwordPunct(b []byte, v uint32, punct byte) int {
	n := HexWordPunct(b, uint16(v>>16), punct)
	b[n] = punct
	n++
	n += HexWordPunct(b[n:], uint16(v), punct)
	return n
}

// HexQword writes v as exactly sixteen hex characters and returns 16.
func HexQword(b []byte, v uint64) int {
	n := HexDword(b, uint32(v>>32))
	n += HexDword(b[n:], uint32(v))
	return n
}

// HexQwordPunct writes v as eight hex byte pairs separated by punct
// and returns 23.
func HexQwordPunct(b []byte, v uint64, punct byte) int {
	n := HexDwordPunct(b, uint32(v>>32), punct)
	b[n] = punct
	n++
	n += HexDwordPunct(b[n:], uint32(v), punct)
	return n
}

// HexBytes writes 2*len(src) hex characters of src into b, most
// significant nibble of each byte first, and returns the count.
func HexBytes(b []byte, src []byte) int {
	n := 0
	for _, v := range src {
		b[n] = hexDigits[v>>4]
		b[n+1] = hexDigits[v&0xf]
		n += 2
	}
	return n
}

// HexBytesPunct writes src as hex byte pairs separated by punct,
// 3*len(src)-1 characters total, and returns the count. Empty src
// writes nothing.
func HexBytesPunct(b []byte, src []byte, punct byte) int {
	if len(src) == 0 {
		return 0
	}
	n := HexByte(b, src[0])
	for _, v := range src[1:] {
		b[n] = punct
		n++
		n += HexByte(b[n:], v)
	}
	return n
}
