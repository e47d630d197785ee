// Package rc5 implements the RC5 block cipher (Rivest, 1994) for 16, 32
// and 64-bit words and any round count in [0, MaxRounds].
//
// A Schedule is expanded once per key and is never modified afterwards,
// so it may be used from any number of goroutines at once.
package rc5

import (
	"fmt"

	"golang.org/x/exp/slices"

	"rc5-cipher/internal/word"
)

// maxKeyWords is the key-word buffer capacity: MaxKeyLen bytes
// packed into the narrowest (16-bit) word.
const maxKeyWords = (MaxKeyLen + 1) / 2

// Schedule is an expanded RC5 key: 2*(r+1) round sub-keys.
type Schedule[W word.Word] struct {
	s []W
}

// Schedule16, Schedule32 and Schedule64 name the three standard widths.
type (
	Schedule16 = Schedule[uint16]
	Schedule32 = Schedule[uint32]
	Schedule64 = Schedule[uint64]
)

// ExpandKey derives the key schedule for key with the given round count.
// The key may be empty; keys over MaxKeyLen bytes are rejected.
func ExpandKey[W word.Word](key []byte, rounds int) (*Schedule[W], error) {
	if err := CheckParams(word.Bits[W](), rounds); err != nil {
		return nil, fmt.Errorf("expand key: %w", err)
	}
	if len(key) > MaxKeyLen {
		return nil, fmt.Errorf("expand key: %d bytes, max %d: %w", len(key), MaxKeyLen, ErrKeyTooLong)
	}

	// Load the key into c words, least significant byte first.
	u := word.Bytes[W]()
	c := (len(key) + u - 1) / u
	if c < 1 {
		c = 1
	}
	var l [maxKeyWords]W
	for i := len(key) - 1; i >= 0; i-- {
		l[i/u] = word.Add(word.Shl(l[i/u], 8), W(key[i]))
	}

	t := 2 * (rounds + 1)
	s := make([]W, t)
	s[0] = word.P[W]()
	q := word.Q[W]()
	for i := 1; i < t; i++ {
		s[i] = word.Add(s[i-1], q)
	}

	n := 3 * t
	if c > n {
		n = c
	}
	var a, b W
	i, j := 0, 0
	for k := 0; k < n; k++ {
		a = word.RotateLeft(word.Add(s[i], word.Add(a, b)), 3)
		s[i] = a
		b = word.RotateLeft(word.Add(l[j], word.Add(a, b)), word.Add(a, b))
		l[j] = b
		i = (i + 1) % t
		j = (j + 1) % c
	}

	return &Schedule[W]{s: s}, nil
}

// Rounds returns the round count r.
func (s *Schedule[W]) Rounds() int { return len(s.s)/2 - 1 }

// Len returns the number of sub-keys, 2*(r+1).
func (s *Schedule[W]) Len() int { return len(s.s) }

// Words returns a copy of the sub-keys.
func (s *Schedule[W]) Words() []W { return slices.Clone(s.s) }

// Equal reports whether two schedules hold the same sub-keys.
func (s *Schedule[W]) Equal(o *Schedule[W]) bool { return slices.Equal(s.s, o.s) }

// BlockSize returns the block length in bytes: two words.
func (s *Schedule[W]) BlockSize() int { return 2 * word.Bytes[W]() }
