package rc5

import (
	"fmt"

	"rc5-cipher/internal/word"
)

// EncryptWords runs the forward transform on the block (a, b).
func (s *Schedule[W]) EncryptWords(a, b W) (W, W) {
	k := s.s
	a = word.Add(a, k[0])
	b = word.Add(b, k[1])
	for i := 2; i < len(k); i += 2 {
		a = word.Add(word.RotateLeft(word.Xor(a, b), b), k[i])
		b = word.Add(word.RotateLeft(word.Xor(b, a), a), k[i+1])
	}
	return a, b
}

// DecryptWords inverts EncryptWords.
func (s *Schedule[W]) DecryptWords(a, b W) (W, W) {
	k := s.s
	for i := len(k) - 2; i >= 2; i -= 2 {
		b = word.Xor(word.RotateRight(word.Sub(b, k[i+1]), a), a)
		a = word.Xor(word.RotateRight(word.Sub(a, k[i]), b), b)
	}
	return word.Sub(a, k[0]), word.Sub(b, k[1])
}

// Encode encrypts one plaintext block and returns the ciphertext.
// The block must be exactly BlockSize() bytes.
func (s *Schedule[W]) Encode(plaintext []byte) ([]byte, error) {
	a, b, err := s.splitBlock("encode", plaintext)
	if err != nil {
		return nil, err
	}
	a, b = s.EncryptWords(a, b)
	return joinBlock(a, b), nil
}

// Decode decrypts one ciphertext block and returns the plaintext.
// The block must be exactly BlockSize() bytes.
func (s *Schedule[W]) Decode(ciphertext []byte) ([]byte, error) {
	a, b, err := s.splitBlock("decode", ciphertext)
	if err != nil {
		return nil, err
	}
	a, b = s.DecryptWords(a, b)
	return joinBlock(a, b), nil
}

// splitBlock decodes a block into its two little-endian words.
func (s *Schedule[W]) splitBlock(op string, block []byte) (W, W, error) {
	n := word.Bytes[W]()
	if len(block) != 2*n {
		return 0, 0, fmt.Errorf("%s %d bytes, want %d: %w", op, len(block), 2*n, ErrBlockSize)
	}
	a, err := word.FromLE[W](block[:n])
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	b, err := word.FromLE[W](block[n:])
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return a, b, nil
}

func joinBlock[W word.Word](a, b W) []byte {
	out := make([]byte, 0, 2*word.Bytes[W]())
	out = word.AppendLE(out, a)
	return word.AppendLE(out, b)
}

// encryptBlock and decryptBlock assume len(src) and len(dst) >= BlockSize().
func (s *Schedule[W]) encryptBlock(dst, src []byte) {
	n := word.Bytes[W]()
	a, b := s.EncryptWords(word.LoadLE[W](src), word.LoadLE[W](src[n:]))
	word.PutLE(dst, a)
	word.PutLE(dst[n:], b)
}

func (s *Schedule[W]) decryptBlock(dst, src []byte) {
	n := word.Bytes[W]()
	a, b := s.DecryptWords(word.LoadLE[W](src), word.LoadLE[W](src[n:]))
	word.PutLE(dst, a)
	word.PutLE(dst[n:], b)
}
