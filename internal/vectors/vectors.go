// Package vectors loads and checks RC5 known-answer vectors.
package vectors

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rc5-cipher/internal/rc5"
)

var (
	// ErrMismatch is returned by Check when the cipher output differs from the vector.
	ErrMismatch = errors.New("vectors: output mismatch")

	// ErrFormat is returned for vector files with an unknown extension.
	ErrFormat = errors.New("vectors: unknown file format")
)

// Load reads a .json, .yaml or .yml vector file. Every vector is
// validated; unnamed vectors are named after their position.
func Load(path string) ([]Vector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vectors: read %s: %w", path, err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &f)
	default:
		return nil, fmt.Errorf("%s: %q: %w", path, ext, ErrFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("vectors: parse %s: %w", path, err)
	}

	for i := range f.Vectors {
		v := &f.Vectors[i]
		if v.Name == "" {
			v.Name = fmt.Sprintf("%s#%d", filepath.Base(path), i)
		}
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("vectors: %s: %w", path, err)
		}
	}
	return f.Vectors, nil
}

// Validate checks the parameters and hex fields of v.
func (v *Vector) Validate() error {
	if err := rc5.CheckParams(v.WordBits, v.Rounds); err != nil {
		return fmt.Errorf("%s: %w", v.Name, err)
	}
	for _, field := range []struct{ name, val string }{
		{"key", v.Key},
		{"plaintext", v.Plaintext},
		{"ciphertext", v.Ciphertext},
	} {
		if _, err := decodeHex(field.val); err != nil {
			return fmt.Errorf("%s: %s: %w", v.Name, field.name, err)
		}
	}
	return nil
}

// ScheduleID identifies the schedule a vector needs. Vectors with equal
// IDs can share one expanded schedule. It fails if the key is not valid hex.
func (v *Vector) ScheduleID() (string, error) {
	key, err := decodeHex(v.Key)
	if err != nil {
		return "", fmt.Errorf("%s: key: %w", v.Name, err)
	}
	return fmt.Sprintf("%d/%d/%x", v.WordBits, v.Rounds, key), nil
}

// Expand builds the schedule for v at the vector's word width.
func Expand(v Vector) (Transformer, error) {
	key, err := decodeHex(v.Key)
	if err != nil {
		return nil, fmt.Errorf("%s: key: %w", v.Name, err)
	}
	var t Transformer
	switch v.WordBits {
	case 16:
		t, err = rc5.ExpandKey[uint16](key, v.Rounds)
	case 32:
		t, err = rc5.ExpandKey[uint32](key, v.Rounds)
	case 64:
		t, err = rc5.ExpandKey[uint64](key, v.Rounds)
	default:
		err = fmt.Errorf("%d-bit words: %w", v.WordBits, rc5.ErrWordSize)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Name, err)
	}
	return t, nil
}

// Check encodes the vector's plaintext and decodes its ciphertext with t.
// It returns the produced ciphertext; err wraps ErrMismatch when either
// direction disagrees with the vector.
func Check(v Vector, t Transformer) ([]byte, error) {
	pt, err := decodeHex(v.Plaintext)
	if err != nil {
		return nil, fmt.Errorf("%s: plaintext: %w", v.Name, err)
	}
	ct, err := decodeHex(v.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%s: ciphertext: %w", v.Name, err)
	}

	got, err := t.Encode(pt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Name, err)
	}
	if !bytes.Equal(got, ct) {
		return got, fmt.Errorf("%s: encode gave %x, want %x: %w", v.Name, got, ct, ErrMismatch)
	}

	back, err := t.Decode(ct)
	if err != nil {
		return got, fmt.Errorf("%s: %w", v.Name, err)
	}
	if !bytes.Equal(back, pt) {
		return got, fmt.Errorf("%s: decode gave %x, want %x: %w", v.Name, back, pt, ErrMismatch)
	}
	return got, nil
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.Join(strings.Fields(s), ""))
}
