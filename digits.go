package digits

import (
	"encoding/binary"

	"github.com/calebcase/digits/twos"
)

// Digit is the machine word digit arrays are built from.
type Digit uint64

// Digit width. Fixed at build time and shared by every consumer of digit
// arrays.
const (
	SizeInBytes = 8
	SizeInBits  = 64
)

// ForByteSize returns the minimum number of digits whose combined byte
// capacity is at least n bytes. ForByteSize(0) is 0. n must be
// non-negative.
func ForByteSize(n int) int {
	return (n + SizeInBytes - 1) / SizeInBytes
}

// ForBitSize returns the minimum number of digits whose combined bit
// capacity is at least n bits. ForBitSize(0) is 0. n must be non-negative.
func ForBitSize(n int) int {
	return (n + SizeInBits - 1) / SizeInBits
}

// FromBytes fills dst with the two's complement value of src and returns
// the number of digits the value needs in canonical form.
//
// src is least significant byte first and may be any length, including
// empty for zero. Bytes above src are sign extended through all of dst, so
// on success every digit of dst is defined even when n is smaller than
// len(dst); callers are expected to shrink their storage to n afterward.
//
// Redundant sign extension bytes in src are dropped before sizing, so src
// may be longer than dst holds as long as its canonical form fits. When it
// does not fit, FromBytes fails rather than truncate significant magnitude,
// and dst contents are unspecified.
func FromBytes(dst []Digit, src []byte) (n int, err error) {
	defer Error.WrapP(&err)

	src = twos.Canonical(src)

	n = ForByteSize(len(src))
	if n > len(dst) {
		return 0, Error.New("insufficient capacity: need %d digits, have %d", n, len(dst))
	}

	var ext Digit
	if len(src) > 0 {
		ext = twos.SignExtValue[Digit](src[len(src)-1])
	}

	for i := range dst {
		lo := i * SizeInBytes

		switch {
		case lo+SizeInBytes <= len(src):
			dst[i] = Digit(binary.LittleEndian.Uint64(src[lo:]))
		case lo < len(src):
			d := ext
			for j := len(src) - 1; j >= lo; j-- {
				d = d<<8 | Digit(src[j])
			}
			dst[i] = d
		default:
			dst[i] = ext
		}
	}

	return n, nil
}

// AppendBytes appends the byte form of src to dst, least significant byte
// first, and returns the extended slice.
func AppendBytes(dst []byte, src []Digit) []byte {
	for _, d := range src {
		dst = binary.LittleEndian.AppendUint64(dst, uint64(d))
	}

	return dst
}

// Bytes returns the byte form of src, least significant byte first.
func Bytes(src []Digit) []byte {
	return AppendBytes(make([]byte, 0, len(src)*SizeInBytes), src)
}

// Canonical returns the shortest prefix of d holding the same two's
// complement value. The result aliases d. The most significant digit is
// dropped only while it is pure sign extension of the digit below it. The
// canonical form of zero is the empty array.
func Canonical(d []Digit) []Digit {
	n := len(d)

	for n > 1 && d[n-1] == twos.SignExtValue[Digit](byte(d[n-2]>>(SizeInBits-8))) {
		n--
	}

	if n == 1 && d[0] == 0 {
		n = 0
	}

	return d[:n]
}
