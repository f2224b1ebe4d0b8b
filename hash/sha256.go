package hash

import (
	cryptoSha256 "crypto/sha256"
	stdhash "hash"
	"os"

	minioSha256 "github.com/minio/sha256-simd"
)

// SHA256Implementation names the package currently backing "sha256"
var SHA256Implementation = "crypto/sha256"

var newSHA256 = cryptoSha256.New

func init() {
	// CHKSUM_HASHING=minio selects the SIMD implementation. Anything else
	// keeps the standard library, which already uses SHA extensions where
	// the CPU has them.
	if os.Getenv("CHKSUM_HASHING") == "minio" {
		useMinioSHA256()
	}
}

func useMinioSHA256() {
	newSHA256 = func() stdhash.Hash { return minioSha256.New() }
	SHA256Implementation = "github.com/minio/sha256-simd"
}
