// Package twos operates on two's complement byte sequences in least
// significant byte first order.
package twos

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// SignExtValue returns the fill pattern for widening a two's complement
// value whose current most significant byte is msb: zero bits when the sign
// bit is clear, all one bits when it is set. The all ones pattern reads as
// -1 for a signed T and as the maximum value for an unsigned T; the bits are
// the same either way.
func SignExtValue[T constraints.Integer](msb byte) T {
	if msb >= 0x80 {
		return ^T(0)
	}

	return 0
}

// Canonical returns the shortest prefix of src encoding the same two's
// complement value and sign. The result aliases src. The most significant
// byte is dropped only while it equals the sign extension fill implied by
// the byte below it, so a byte whose sign bit disagrees with its neighbor is
// always kept. The canonical form of zero is the empty sequence.
func Canonical(src []byte) []byte {
	n := len(src)

	for n > 1 && src[n-1] == SignExtValue[byte](src[n-2]) {
		n--
	}

	if n == 1 && src[0] == 0 {
		n = 0
	}

	return src[:n]
}

// IsCanonical reports whether src carries no redundant sign extension
// bytes.
func IsCanonical(src []byte) bool {
	return len(Canonical(src)) == len(src)
}

// BigInt interprets src as a two's complement value and returns it as a
// big.Int. This is the boundary to math/big consumers; big.Int itself has
// no two's complement form.
func BigInt(src []byte) *big.Int {
	be := make([]byte, len(src))
	for i, b := range src {
		be[len(src)-1-i] = b
	}

	i := new(big.Int).SetBytes(be)
	if len(src) > 0 && src[len(src)-1] >= 0x80 {
		i.Sub(i, new(big.Int).Lsh(big.NewInt(1), uint(len(src))*8))
	}

	return i
}
