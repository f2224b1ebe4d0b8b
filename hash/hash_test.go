package hash

import (
	"testing"

	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"
)

func TestKnownVectors(t *testing.T) {

	// echo -n "abc" | shasum -a 256
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  -

	type test struct {
		algorithm string
		want      string
	}
	tests := []test{
		{MD5, "900150983cd24fb0d6963f7d28e17f72"},
		{SHA1, "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA224, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{SHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA384, "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{SHA512, "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{SHA3_256, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{BLAKE2b256, "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
		{BLAKE3, "6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85"},
		{XXH64, "44bc2cf5ad770999"},
	}
	for _, tc := range tests {
		t.Run(tc.algorithm, func(t *testing.T) {
			h, err := New(tc.algorithm)
			require.Nil(t, err)
			require.Equal(t, tc.algorithm, h.Algorithm())
			digest := Sum(h, []byte("abc"))
			require.Equal(t, tc.want, digest.Hex())
			require.Equal(t, h.Size(), len(digest))
		})
	}
}

func TestEmptyInput(t *testing.T) {
	h := Must(SHA256)
	require.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		h.Digest().Hex())

	// Empty chunks are no-ops
	h.Update(nil)
	h.Update([]byte{})
	require.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		h.Digest().Hex())
}

func TestStreamingTransparency(t *testing.T) {

	data := make([]byte, 10000)
	for i := range data {
		data[i] = byte(i * 31)
	}

	for _, name := range Algorithms() {
		whole := Sum(Must(name), data)

		for _, chunkSize := range []int{1, 7, 64, 1000, 4096, 9999} {
			h := Must(name)
			for i := 0; i < len(data); i += chunkSize {
				end := i + chunkSize
				if end > len(data) {
					end = len(data)
				}
				h.Update(data[i:end])
			}
			require.True(t, whole.Equal(h.Digest()),
				"%s differs with chunk size %d", name, chunkSize)
		}
	}
}

func TestDigestDoesNotFinalize(t *testing.T) {
	for _, name := range Algorithms() {
		h := Must(name)
		h.Update([]byte("ab"))
		partial := h.Digest()
		require.True(t, partial.Equal(h.Digest()), name)

		h.Update([]byte("c"))
		require.Equal(t, Sum(Must(name), []byte("abc")).Hex(), h.Digest().Hex(), name)
	}
}

func TestNewIsFresh(t *testing.T) {
	h := Must(SHA1)
	h.Update([]byte("1234"))
	fresh := h.New()
	require.Equal(t, SHA1, fresh.Algorithm())
	require.Equal(t, Sum(Must(SHA1), nil), fresh.Digest())
	require.Equal(t, "7110eda4d09e062aa5e4a390b0a572ac0d2c0220", h.Digest().Hex())
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := New("crc7")
	require.NotNil(t, err)
	_, ok := err.(UnknownAlgorithm)
	require.True(t, ok)
	require.Equal(t, "unknown hash algorithm: crc7", err.Error())

	_, err = NewAll(SHA1, "crc7")
	require.Equal(t, UnknownAlgorithm("crc7"), err)

	require.Panics(t, func() { Must("crc7") })
}

func TestAlgorithmsSorted(t *testing.T) {
	names := Algorithms()
	require.Contains(t, names, SHA256)
	require.Contains(t, names, BLAKE3)
	for i := 1; i < len(names); i++ {
		require.True(t, names[i-1] < names[i])
	}
}

func TestMinioSHA256(t *testing.T) {
	previous, previousName := newSHA256, SHA256Implementation
	defer func() { newSHA256, SHA256Implementation = previous, previousName }()

	useMinioSHA256()
	require.Equal(t, "github.com/minio/sha256-simd", SHA256Implementation)
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		Sum(Must(SHA256), []byte("abc")).Hex())
}

func TestParseDigest(t *testing.T) {
	d, err := ParseDigest(" A9993E364706816ABA3E25717850C26C9CD0D89D\n")
	require.Nil(t, err)
	require.True(t, d.Equal(Sum(Must(SHA1), []byte("abc"))))
	require.Equal(t, "A9993E364706816ABA3E25717850C26C9CD0D89D", d.Upper())

	_, err = ParseDigest("xyz")
	require.NotNil(t, err)
}

func TestEncodings(t *testing.T) {
	d := Sum(Must(SHA256), []byte("abc"))

	oci, err := d.OCI(SHA256)
	require.Nil(t, err)
	require.Equal(t, "sha256:ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", oci.String())
	require.Nil(t, oci.Validate())

	_, err = d.OCI(BLAKE3)
	require.NotNil(t, err)

	encoded, err := d.Multihash(SHA256)
	require.Nil(t, err)
	mh, err := multihash.FromB58String(encoded)
	require.Nil(t, err)
	decoded, err := multihash.Decode(mh)
	require.Nil(t, err)
	require.Equal(t, uint64(multihash.SHA2_256), decoded.Code)
	require.Equal(t, []byte(d), decoded.Digest)

	_, err = d.Multihash(XXH64)
	require.NotNil(t, err)

	s, err := d.Encode(SHA256, "oci")
	require.Nil(t, err)
	require.Equal(t, oci.String(), s)

	s, err = d.Encode(SHA256, "")
	require.Nil(t, err)
	require.Equal(t, d.Hex(), s)

	_, err = d.Encode(SHA256, "base64")
	require.NotNil(t, err)
}
