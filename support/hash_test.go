package support_test

import (
	"hash"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fluent/support"
)

func TestTextHashKnownDigests(t *testing.T) {
	tests := []struct {
		algorithm string
		want      string
	}{
		{"md5", "900150983cd24fb0d6963f7d28e17f72"},
		{"sha1", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"SHA256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha3-256", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	}
	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			got, err := support.Of("abc").Hash(tt.algorithm)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextHashDigestLengths(t *testing.T) {
	lengths := map[string]int{
		"md4":         32,
		"sha224":      56,
		"sha384":      96,
		"sha512":      128,
		"sha3-512":    128,
		"ripemd160":   40,
		"blake2b-256": 64,
		"blake2b-512": 128,
		"blake2s-256": 64,
	}
	for alg, n := range lengths {
		got, err := support.Of("abc").Hash(alg)
		require.NoError(t, err, alg)
		assert.Len(t, got, n, alg)
	}
}

func TestTextHashUnknownAlgorithm(t *testing.T) {
	_, err := support.Of("abc").Hash("rot13")
	assert.ErrorIs(t, err, support.ErrUnknownHashAlgorithm)
	assert.Contains(t, err.Error(), `"rot13"`)
}

func TestRegisterHashAlgorithm(t *testing.T) {
	crc := func() hash.Hash { return crc32.NewIEEE() }
	require.NoError(t, support.RegisterHashAlgorithm("CRC32-IEEE", crc))
	assert.Contains(t, support.HashAlgorithms(), "crc32-ieee")

	got, err := support.Of("abc").Hash("crc32-ieee")
	require.NoError(t, err)
	assert.Equal(t, "352441c2", got)

	assert.ErrorIs(t, support.RegisterHashAlgorithm("", crc), support.ErrEmptyAlgorithmName)
	assert.ErrorIs(t, support.RegisterHashAlgorithm("nil", nil), support.ErrNilHashFactory)
}

func TestHashAlgorithmsSorted(t *testing.T) {
	names := support.HashAlgorithms()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "sha256")
}
