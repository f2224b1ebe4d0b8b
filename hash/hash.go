package hash

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// Hash is the contract every digest algorithm satisfies. Implementations
// exist for SHA1, SHA256, BLAKE3, etc. Feeding the same bytes as one chunk
// or as many smaller chunks must produce the same Digest.
type Hash interface {

	// Update feeds bytes into the algorithm state. Empty input is valid.
	Update(p []byte)

	// Digest returns the digest of all bytes fed so far. It does not alter
	// the state, so further Update calls extend the same input.
	Digest() Digest

	// Reset returns the state to that of a new instance
	Reset()

	// Algorithm returns the registered name of the algorithm
	Algorithm() string

	// Size returns the digest length in bytes
	Size() int

	// New returns a fresh, empty instance of the same algorithm
	New() Hash
}

// Digest is the finalized output of a Hash
type Digest []byte

// Hex returns the digest as a lowercase hexadecimal string
func (d Digest) Hex() string {
	return hex.EncodeToString(d)
}

// Upper returns the digest as an uppercase hexadecimal string
func (d Digest) Upper() string {
	return strings.ToUpper(d.Hex())
}

// String implements fmt.Stringer
func (d Digest) String() string {
	return d.Hex()
}

// Equal reports whether both digests hold the same bytes
func (d Digest) Equal(other Digest) bool {
	return bytes.Equal(d, other)
}

// ParseDigest decodes a hexadecimal digest in either case
func ParseDigest(s string) (Digest, error) {
	b, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return nil, err
	}
	return Digest(b), nil
}

// Sum resets h, feeds it data and returns the digest
func Sum(h Hash, data []byte) Digest {
	h.Reset()
	h.Update(data)
	return h.Digest()
}

// MarshalText encodes the digest as lowercase hexadecimal
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.Hex()), nil
}

// UnmarshalText decodes a hexadecimal digest
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
