// Package word provides the fixed-width unsigned word used by RC5:
// width constants, the P/Q magic constants, little-endian conversion and
// the wrapping arithmetic the cipher is built from.
//
// Every helper is generic over Word and is instantiated at compile time,
// so the width-dependent masks and constants fold to immediates.
package word

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Word is the set of word types RC5 is defined for: 16, 32 and 64 bits.
type Word interface {
	constraints.Unsigned
	~uint16 | ~uint32 | ~uint64
}

// ErrLength is returned when a byte sequence does not match the word size.
var ErrLength = errors.New("length mismatch")

// Magic constants at 64 bits: Odd((e-2)*2^64) and Odd((phi-1)*2^64).
// Narrower widths keep the top bits and force the low bit on.
const (
	p64 = 0xb7e151628aed2a6b
	q64 = 0x9e3779b97f4a7c15
)

// Bits returns the bit width of W.
func Bits[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w)) * 8
}

// Bytes returns the byte width of W.
func Bytes[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w))
}

// P returns the first magic constant (from e) at the width of W.
func P[W Word]() W {
	return W(uint64(p64)>>(64-Bits[W]())) | 1
}

// Q returns the second magic constant (from the golden ratio) at the width of W.
func Q[W Word]() W {
	return W(uint64(q64)>>(64-Bits[W]())) | 1
}

// PutLE writes v into dst in little-endian order.
// It panics if dst is shorter than Bytes[W]().
func PutLE[W Word](dst []byte, v W) {
	n := Bytes[W]()
	_ = dst[n-1] // bounds check hint
	for i := 0; i < n; i++ {
		dst[i] = byte(Shr(v, W(8*i)))
	}
}

// AppendLE appends the little-endian encoding of v to dst.
func AppendLE[W Word](dst []byte, v W) []byte {
	n := Bytes[W]()
	for i := 0; i < n; i++ {
		dst = append(dst, byte(Shr(v, W(8*i))))
	}
	return dst
}

// LoadLE reads a little-endian word from the first Bytes[W]() bytes of src.
// It panics if src is too short; use FromLE for checked decoding.
func LoadLE[W Word](src []byte) W {
	n := Bytes[W]()
	_ = src[n-1]
	var v W
	for i := n - 1; i >= 0; i-- {
		v = Or(Shl(v, 8), W(src[i]))
	}
	return v
}

// FromLE decodes a little-endian word. src must be exactly Bytes[W]() long.
func FromLE[W Word](src []byte) (W, error) {
	if len(src) != Bytes[W]() {
		return 0, fmt.Errorf("word: decode %d bytes into %d-bit word: %w", len(src), Bits[W](), ErrLength)
	}
	return LoadLE[W](src), nil
}

// Add returns a + b modulo 2^Bits.
func Add[W Word](a, b W) W { return a + b }

// Sub returns a - b modulo 2^Bits.
func Sub[W Word](a, b W) W { return a - b }

// And returns the bitwise AND of a and b.
func And[W Word](a, b W) W { return a & b }

// Or returns the bitwise OR of a and b.
func Or[W Word](a, b W) W { return a | b }

// Xor returns the bitwise XOR of a and b.
func Xor[W Word](a, b W) W { return a ^ b }

// Shl shifts v left by n, with n taken modulo the bit width.
func Shl[W Word](v, n W) W {
	return v << (n & mask[W]())
}

// Shr shifts v right (logically) by n, with n taken modulo the bit width.
func Shr[W Word](v, n W) W {
	return v >> (n & mask[W]())
}

// RotateLeft rotates v left by n mod Bits[W]() bits.
func RotateLeft[W Word](v, n W) W {
	m := mask[W]()
	n &= m
	return v<<n | v>>((W(Bits[W]())-n)&m)
}

// RotateRight rotates v right by n mod Bits[W]() bits.
func RotateRight[W Word](v, n W) W {
	m := mask[W]()
	n &= m
	return v>>n | v<<((W(Bits[W]())-n)&m)
}

func mask[W Word]() W { return W(Bits[W]() - 1) }
