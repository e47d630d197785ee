package rc5

import (
	"crypto/cipher"

	"rc5-cipher/internal/word"
)

type blockCipher[W word.Word] struct {
	s *Schedule[W]
}

// NewCipher expands key and returns it as a cipher.Block.
// Encrypt and Decrypt panic if src or dst is shorter than one block,
// as the crypto/cipher contract requires.
func NewCipher[W word.Word](key []byte, rounds int) (cipher.Block, error) {
	s, err := ExpandKey[W](key, rounds)
	if err != nil {
		return nil, err
	}
	return s.Block(), nil
}

// Block wraps the schedule as a cipher.Block.
func (s *Schedule[W]) Block() cipher.Block { return &blockCipher[W]{s: s} }

func (c *blockCipher[W]) BlockSize() int { return c.s.BlockSize() }

func (c *blockCipher[W]) Encrypt(dst, src []byte) {
	c.check(dst, src)
	c.s.encryptBlock(dst, src)
}

func (c *blockCipher[W]) Decrypt(dst, src []byte) {
	c.check(dst, src)
	c.s.decryptBlock(dst, src)
}

func (c *blockCipher[W]) check(dst, src []byte) {
	n := c.s.BlockSize()
	if len(src) < n {
		panic("rc5: input not full block")
	}
	if len(dst) < n {
		panic("rc5: output not full block")
	}
}
