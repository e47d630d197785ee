package vectors

// Vector is one known-answer test case. Byte fields are hex strings;
// whitespace inside them is ignored, so "00 11 22" and "001122" match.
type Vector struct {
	Name       string `json:"name" yaml:"name"`
	WordBits   int    `json:"word_bits" yaml:"word_bits"`
	Rounds     int    `json:"rounds" yaml:"rounds"`
	Key        string `json:"key" yaml:"key"`
	Plaintext  string `json:"plaintext" yaml:"plaintext"`
	Ciphertext string `json:"ciphertext" yaml:"ciphertext"`
}

// File is the on-disk layout of a vector file.
type File struct {
	Vectors []Vector `json:"vectors" yaml:"vectors"`
}

// Transformer is a single-block cipher at some fixed word width.
// *rc5.Schedule[W] satisfies it for every W.
type Transformer interface {
	BlockSize() int
	Encode(plaintext []byte) ([]byte, error)
	Decode(ciphertext []byte) ([]byte, error)
}
