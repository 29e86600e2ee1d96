// Package digits converts between two's complement byte sequences and the
// fixed width digit arrays backing arbitrary precision integers.
//
// # Representation
//
// A digit is an unsigned machine word of SizeInBytes bytes. A digit array is
// little endian at both levels: index 0 is the least significant digit, and
// each digit is itself stored least significant byte first. Flattened, a
// digit array therefore reads as one two's complement byte sequence in least
// significant byte first order. The sign of the value is the high bit of the
// most significant byte. Zero is the empty array.
//
// Every public entry point in this module uses least significant byte first
// ordering. Consumers that want the human reading order (most significant
// first) must reverse at their own boundary; nothing here does so
// internally.
//
// # Canonical form
//
// A byte sequence is canonical when removing its most significant byte would
// change the value or the sign. Concretely, the most significant byte may be
// removed only while it equals the sign extension fill implied by the byte
// below it (0x00 when that byte's high bit is clear, 0xff when set):
//
//	{0x00, 0x00, 0x00}             -> {}           zero
//	{0x7f, 0x00, 0x00, 0x00}       -> {0x7f}       127
//	{0xff, 0xff, 0xff, 0xff}       -> {0xff}       -1
//	{0xff, 0xff, 0x7f}             -> unchanged    8388607
//
// Arithmetic built on digit arrays assumes they are minimal and correctly
// signed, so FromBytes reports the canonical digit count and callers are
// expected to shrink their storage to it.
package digits
