package rc5

import (
	"errors"
	"fmt"
)

var (
	// ErrBlockSize is returned when a block is not exactly two words long.
	ErrBlockSize = errors.New("rc5: block length mismatch")

	// ErrRounds is returned for a round count outside [0, MaxRounds].
	ErrRounds = errors.New("rc5: unsupported round count")

	// ErrKeyTooLong is returned for keys longer than MaxKeyLen bytes.
	ErrKeyTooLong = errors.New("rc5: key too long")

	// ErrWordSize is returned for a word width other than 16, 32 or 64 bits.
	ErrWordSize = errors.New("rc5: unsupported word size")
)

const (
	// MaxKeyLen is the longest secret key accepted by ExpandKey, in bytes.
	MaxKeyLen = 255

	// MaxRounds is the largest round count accepted by ExpandKey.
	MaxRounds = 255
)

// CheckParams validates a word width (in bits) and round count without
// building a schedule.
func CheckParams(wordBits, rounds int) error {
	switch wordBits {
	case 16, 32, 64:
	default:
		return fmt.Errorf("%d-bit words: %w", wordBits, ErrWordSize)
	}
	if rounds < 0 || rounds > MaxRounds {
		return fmt.Errorf("%d rounds: %w", rounds, ErrRounds)
	}
	return nil
}
