package support

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// HashFactory constructs a fresh [hash.Hash] for one digest computation.
type HashFactory func() hash.Hash

// hashAlgorithms maps lower-case algorithm names to their constructors.
var hashAlgorithms = newRegistry(map[string]HashFactory{
	"md4":         md4.New,
	"md5":         md5.New,
	"sha1":        sha1.New,
	"sha224":      sha256.New224,
	"sha256":      sha256.New,
	"sha384":      sha512.New384,
	"sha512":      sha512.New,
	"sha3-224":    sha3.New224,
	"sha3-256":    sha3.New256,
	"sha3-384":    sha3.New384,
	"sha3-512":    sha3.New512,
	"ripemd160":   ripemd160.New,
	"blake2b-256": unkeyed(blake2b.New256),
	"blake2b-512": unkeyed(blake2b.New512),
	"blake2s-256": unkeyed(blake2s.New256),
})

// unkeyed adapts a keyed BLAKE2 constructor; with a nil key it cannot fail.
func unkeyed(fn func(key []byte) (hash.Hash, error)) HashFactory {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic(fmt.Sprintf("support: unkeyed BLAKE2 constructor failed: %v", err))
		}
		return h
	}
}

// RegisterHashAlgorithm makes fn available to [Text.Hash] under name
// (case-insensitive), replacing any existing registration.
// Safe to call from multiple goroutines.
func RegisterHashAlgorithm(name string, fn HashFactory) error {
	if name == "" {
		return ErrEmptyAlgorithmName
	}
	if fn == nil {
		return ErrNilHashFactory
	}
	hashAlgorithms.set(strings.ToLower(name), fn)
	return nil
}

// HashAlgorithms returns the registered algorithm names, sorted.
func HashAlgorithms() []string { return hashAlgorithms.names() }

// Hash returns the lower-case hex digest of t under the named algorithm,
// e.g. "sha256", "sha3-256" or "blake2b-512".
// Returns [ErrUnknownHashAlgorithm] for an unregistered name.
func (t Text) Hash(algorithm string) (string, error) {
	fn, ok := hashAlgorithms.get(strings.ToLower(algorithm))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, algorithm)
	}
	h := fn()
	h.Write([]byte(t.value))
	return hex.EncodeToString(h.Sum(nil)), nil
}
