// cmd/rc5block — encrypt or decrypt a single RC5 block
//
// Usage:
//
//	go run ./cmd/rc5block -key 000102030405060708090a0b0c0d0e0f -in 0011223344556677
//	go run ./cmd/rc5block -w 64 -r 16 -decrypt -key 00 -in <32 hex digits>
//
// Key and block are hex; whitespace is ignored. The block must be exactly
// two words long (4, 8 or 16 bytes for 16, 32 or 64-bit words).
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"rc5-cipher/internal/config"
	"rc5-cipher/internal/rc5"
	"rc5-cipher/internal/word"
)

func parseHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

func transform[W word.Word](key, in []byte, rounds int, decrypt bool) ([]byte, error) {
	s, err := rc5.ExpandKey[W](key, rounds)
	if err != nil {
		return nil, err
	}
	if decrypt {
		return s.Decode(in)
	}
	return s.Encode(in)
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file (word_bits, rounds)")
	keyHex := flag.String("key", "", "Secret key, hex (may be empty)")
	inHex := flag.String("in", "", "Input block, hex")
	decrypt := flag.Bool("decrypt", false, "Decrypt instead of encrypt")
	wordBits := flag.Int("w", 0, "Word size in bits: 16, 32 or 64 (default: 32)")
	rounds := flag.Int("r", -1, "Round count 0-255 (default: 12)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		WordBits: *wordBits,
		Rounds:   *rounds,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	key, err := parseHex("key", *keyHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	in, err := parseHex("in", *inHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var out []byte
	switch cfg.WordBits {
	case 16:
		out, err = transform[uint16](key, in, *cfg.Rounds, *decrypt)
	case 32:
		out, err = transform[uint32](key, in, *cfg.Rounds, *decrypt)
	case 64:
		out, err = transform[uint64](key, in, *cfg.Rounds, *decrypt)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(out))
}
