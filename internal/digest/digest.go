// Package digest produces 512-bit hex digests suitable as analysis input.
package digest

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"slices"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm is returned for an algorithm name not in Algorithms.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// Supported algorithm names.
const (
	SHA512     = "sha512"
	SHA3_512   = "sha3-512"
	BLAKE2b512 = "blake2b-512"
)

// Default is the algorithm used when none is configured.
const Default = SHA512

var algorithms = []string{SHA512, SHA3_512, BLAKE2b512}

// Algorithms returns the supported algorithm names.
func Algorithms() []string {
	return slices.Clone(algorithms)
}

// Valid reports whether algo names a supported algorithm.
func Valid(algo string) bool {
	return slices.Contains(algorithms, algo)
}

// Sum returns the lowercase hex digest of data under algo.
func Sum(algo string, data []byte) (string, error) {
	var sum [64]byte
	switch algo {
	case SHA512:
		sum = sha512.Sum512(data)
	case SHA3_512:
		sum = sha3.Sum512(data)
	case BLAKE2b512:
		sum = blake2b.Sum512(data)
	default:
		return "", fmt.Errorf("%w %q (supported: %v)", ErrUnknownAlgorithm, algo, algorithms)
	}
	return hex.EncodeToString(sum[:]), nil
}

// SumReader reads r to EOF and returns its digest under algo.
func SumReader(algo string, r io.Reader) (string, error) {
	if !Valid(algo) {
		return Sum(algo, nil)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return Sum(algo, data)
}
