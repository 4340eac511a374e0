package zenjson

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Hasher computes content ids for extracted blobs.
type Hasher interface {
	// Algorithm returns the algorithm written in front of the digest.
	Algorithm() HashAlgo

	// Hash returns the hex-encoded digest of data.
	Hash(data []byte) string
}

// ContentID returns "<algo>:<hex digest>" for data.
func ContentID(h Hasher, data []byte) string {
	return string(h.Algorithm()) + ":" + h.Hash(data)
}

// sha256Hasher implements SHA-256 hashing.
type sha256Hasher struct{}

// SHA256Hasher returns a SHA-256 hasher.
func SHA256Hasher() Hasher {
	return sha256Hasher{}
}

func (sha256Hasher) Algorithm() HashAlgo { return HashSHA256 }

func (sha256Hasher) Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// blake2bHasher implements BLAKE2b-256 hashing.
type blake2bHasher struct{}

// BLAKE2bHasher returns a BLAKE2b-256 hasher.
func BLAKE2bHasher() Hasher {
	return blake2bHasher{}
}

func (blake2bHasher) Algorithm() HashAlgo { return HashBLAKE2b }

func (blake2bHasher) Hash(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// blake3Hasher implements BLAKE3 hashing with a 32-byte output.
type blake3Hasher struct{}

// BLAKE3Hasher returns a BLAKE3 hasher.
func BLAKE3Hasher() Hasher {
	return blake3Hasher{}
}

func (blake3Hasher) Algorithm() HashAlgo { return HashBLAKE3 }

func (blake3Hasher) Hash(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// builtinHashers returns the hashers keyed by algorithm.
func builtinHashers() map[HashAlgo]Hasher {
	return map[HashAlgo]Hasher{
		HashSHA256:  SHA256Hasher(),
		HashBLAKE2b: BLAKE2bHasher(),
		HashBLAKE3:  BLAKE3Hasher(),
	}
}

// HasherFor returns the built-in hasher for algo.
func HasherFor(algo HashAlgo) (Hasher, bool) {
	h, ok := builtinHashers()[algo]
	return h, ok
}
