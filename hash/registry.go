package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	stdhash "hash"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Names of the built-in algorithms
const (
	MD5        = "md5"
	SHA1       = "sha1"
	SHA224     = "sha224"
	SHA256     = "sha256"
	SHA384     = "sha384"
	SHA512     = "sha512"
	SHA3_256   = "sha3-256"
	SHA3_512   = "sha3-512"
	BLAKE2b256 = "blake2b-256"
	BLAKE2b512 = "blake2b-512"
	BLAKE3     = "blake3"
	XXH64      = "xxh64"
)

// UnknownAlgorithm is returned when a name is not in the registry
type UnknownAlgorithm string

func (e UnknownAlgorithm) Error() string {
	return fmt.Sprintf("unknown hash algorithm: %s", string(e))
}

var (
	registryMutex sync.RWMutex
	registry      = map[string]Factory{}
)

func init() {
	Register(MD5, md5.New)
	Register(SHA1, sha1.New)
	Register(SHA224, sha256.New224)
	Register(SHA256, func() stdhash.Hash { return newSHA256() })
	Register(SHA384, sha512.New384)
	Register(SHA512, sha512.New)
	Register(SHA3_256, sha3.New256)
	Register(SHA3_512, sha3.New512)
	Register(BLAKE2b256, func() stdhash.Hash { return mustBlake2b(blake2b.New256) })
	Register(BLAKE2b512, func() stdhash.Hash { return mustBlake2b(blake2b.New512) })
	Register(BLAKE3, func() stdhash.Hash { return blake3.New() })
	Register(XXH64, func() stdhash.Hash { return xxhash.New() })
}

// blake2b constructors only fail for keys longer than 64 bytes
func mustBlake2b(fn func(key []byte) (stdhash.Hash, error)) stdhash.Hash {
	h, err := fn(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// Register makes an algorithm available by name, replacing any previous
// registration with the same name
func Register(name string, factory Factory) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[name] = factory
}

// New returns a new instance of the named algorithm
func New(name string) (Hash, error) {
	registryMutex.RLock()
	factory, ok := registry[name]
	registryMutex.RUnlock()
	if !ok {
		return nil, UnknownAlgorithm(name)
	}
	return Wrap(name, factory), nil
}

// Must is like New but panics if the algorithm is unknown
func Must(name string) Hash {
	h, err := New(name)
	if err != nil {
		panic(err)
	}
	return h
}

// NewAll returns one new instance per name, in the same order
func NewAll(names ...string) ([]Hash, error) {
	result := make([]Hash, 0, len(names))
	for _, name := range names {
		h, err := New(name)
		if err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, nil
}

// Algorithms returns the sorted names of all registered algorithms
func Algorithms() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
