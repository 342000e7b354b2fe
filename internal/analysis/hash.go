package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// HashLen is the number of hex characters in a hash (a SHA-512 digest).
const HashLen = 128

// ErrInvalidHash indicates input that is not exactly 128 lowercase hex characters.
var ErrInvalidHash = errors.New("invalid hash")

// Hash is a validated 128-character lowercase hexadecimal string.
// The zero value is not valid; obtain one from ParseHash.
type Hash string

// ParseHash validates s and returns it as a Hash. Surrounding whitespace is
// ignored. Anything else that is not [0-9a-f] is rejected.
func ParseHash(s string) (Hash, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidHash)
	}
	if len(s) != HashLen {
		return "", fmt.Errorf("%w: want %d characters, got %d", ErrInvalidHash, HashLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		if hexValue(s[i]) < 0 {
			return "", fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidHash, s[i], i)
		}
	}
	return Hash(s), nil
}

// String returns the hash text.
func (h Hash) String() string { return string(h) }

// Short returns the first and last 8 characters joined by an ellipsis.
func (h Hash) Short() string {
	if len(h) < 16 {
		return string(h)
	}
	return string(h[:8]) + "…" + string(h[len(h)-8:])
}

// digit returns the value of the hex character at position i.
func (h Hash) digit(i int) int {
	return hexValue(h[i])
}

// hexValue returns 0–15 for a lowercase hex digit, or -1.
func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}
