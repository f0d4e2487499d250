// Package varint implements the self-describing variable-length unsigned
// integer encoding used for coordinates in .lin path files.
//
// The count of leading one bits k in the first byte tells how many
// continuation bytes follow. The remaining low (8-k) bits of the first byte
// are the most significant payload bits and each continuation byte is
// appended big-endian, the way UTF-8 announces its sequence length.
package varint

import (
	"errors"
	"io"
	"math/bits"
)

// MaxLen is the longest encoding: a 0xFF lead byte and eight continuation bytes.
const MaxLen = 9

var (
	// ErrUnexpectedEOS is returned when the stream ends in the middle of a value.
	ErrUnexpectedEOS = errors.New("varint: unexpected end of stream")
	// ErrOverflow is returned when a value does not fit in 64 bits.
	ErrOverflow = errors.New("varint: value overflows uint64")
)

// Decode reads one value from r and reports how many bytes it consumed.
// An empty stream yields io.EOF with n == 0 so callers can tell a clean end
// from a truncated value.
func Decode(r io.ByteReader) (v uint64, n int, err error) {
	lead, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, 0, io.EOF
		}
		return 0, 0, err
	}
	n = 1
	k := bits.LeadingZeros8(^lead)
	v = uint64(lead & byte(0xFF>>k)) // k == 8 shifts the mask down to zero
	for i := 0; i < k; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, n, ErrUnexpectedEOS
			}
			return 0, n, err
		}
		n++
		if v>>56 != 0 {
			return 0, n, ErrOverflow
		}
		v = v<<8 | uint64(b)
	}
	return v, n, nil
}

// DecodeBytes decodes the value at the start of b.
func DecodeBytes(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrUnexpectedEOS
	}
	r := byteSlice(b)
	v, n, err := Decode(&r)
	if errors.Is(err, io.EOF) {
		err = ErrUnexpectedEOS
	}
	return v, n, err
}

// Len returns the number of bytes Encode uses for v.
func Len(v uint64) int {
	// With k continuation bytes the lead byte keeps 7-k payload bits.
	for k := 0; k < MaxLen-1; k++ {
		if bits.Len64(v) <= 8*k+7-k {
			return k + 1
		}
	}
	return MaxLen
}

// Append appends the shortest encoding of v to dst.
func Append(dst []byte, v uint64) []byte {
	k := Len(v) - 1
	lead := byte(0xFF << (8 - k)) // k == 0 shifts everything out
	if k < 8 {
		lead |= byte(v >> (8 * k))
	}
	dst = append(dst, lead)
	for i := k - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// Encode returns the shortest encoding of v.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, Len(v)), v)
}

type byteSlice []byte

func (b *byteSlice) ReadByte() (byte, error) {
	if len(*b) == 0 {
		return 0, io.EOF
	}
	c := (*b)[0]
	*b = (*b)[1:]
	return c, nil
}
