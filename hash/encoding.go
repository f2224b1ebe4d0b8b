package hash

import (
	"fmt"

	"github.com/multiformats/go-multihash"
	"github.com/opencontainers/go-digest"
)

var ociAlgorithms = map[string]digest.Algorithm{
	SHA256: digest.SHA256,
	SHA384: digest.SHA384,
	SHA512: digest.SHA512,
}

var multihashCodes = map[string]uint64{
	MD5:        multihash.MD5,
	SHA1:       multihash.SHA1,
	SHA256:     multihash.SHA2_256,
	SHA512:     multihash.SHA2_512,
	SHA3_256:   multihash.SHA3_256,
	SHA3_512:   multihash.SHA3_512,
	BLAKE2b256: multihash.BLAKE2B_MIN + 31,
	BLAKE2b512: multihash.BLAKE2B_MAX,
	BLAKE3:     multihash.BLAKE3,
}

// OCI returns the digest in the "<algorithm>:<hex>" form used by OCI
// registries. Only the algorithms OCI defines are accepted.
func (d Digest) OCI(algorithm string) (digest.Digest, error) {
	alg, ok := ociAlgorithms[algorithm]
	if !ok {
		return "", fmt.Errorf("algorithm %s has no OCI digest form", algorithm)
	}
	return digest.NewDigestFromBytes(alg, d), nil
}

// Multihash returns the digest as a base58 encoded multihash
func (d Digest) Multihash(algorithm string) (string, error) {
	code, ok := multihashCodes[algorithm]
	if !ok {
		return "", fmt.Errorf("algorithm %s has no multihash code", algorithm)
	}
	mh, err := multihash.Encode(d, code)
	if err != nil {
		return "", err
	}
	return multihash.Multihash(mh).B58String(), nil
}

// Encode renders the digest as "hex", "oci" or "multihash"
func (d Digest) Encode(algorithm, format string) (string, error) {
	switch format {
	case "", "hex":
		return d.Hex(), nil
	case "oci":
		dgst, err := d.OCI(algorithm)
		if err != nil {
			return "", err
		}
		return dgst.String(), nil
	case "multihash":
		return d.Multihash(algorithm)
	default:
		return "", fmt.Errorf("unknown digest format: %s", format)
	}
}
