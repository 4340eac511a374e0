package zenjson

// HashAlgo identifies the digest used for blob content ids.
// Content ids are written as "<algo>:<hex digest>".
type HashAlgo string

const (
	// HashSHA256 uses SHA-256.
	HashSHA256 HashAlgo = "sha256"

	// HashBLAKE2b uses BLAKE2b-256.
	HashBLAKE2b HashAlgo = "blake2b"

	// HashBLAKE3 uses BLAKE3 with a 256-bit output.
	HashBLAKE3 HashAlgo = "blake3"
)

// EncryptAlgo identifies an Encryptor implementation.
type EncryptAlgo string

const (
	// EncryptAES uses AES-GCM symmetric encryption.
	EncryptAES EncryptAlgo = "aes"

	// EncryptChaCha20 uses XChaCha20-Poly1305 symmetric encryption.
	EncryptChaCha20 EncryptAlgo = "chacha20"

	// EncryptAge uses age X25519 recipients.
	EncryptAge EncryptAlgo = "age"
)

// Compression identifies the algorithm applied to inline byte payloads.
// It is written as a "<algo>:" prefix in front of the base64 payload.
type Compression string

const (
	// CompressNone writes bytes as plain base64 with no prefix.
	CompressNone Compression = ""

	// CompressZstd uses zstd.
	CompressZstd Compression = "zstd"

	// CompressLZ4 uses the LZ4 frame format.
	CompressLZ4 Compression = "lz4"

	// CompressSnappy uses snappy block encoding.
	CompressSnappy Compression = "snappy"
)

// validHashAlgos contains all valid hash algorithms.
var validHashAlgos = map[HashAlgo]bool{
	HashSHA256:  true,
	HashBLAKE2b: true,
	HashBLAKE3:  true,
}

// validEncryptAlgos contains all valid encryption algorithms.
var validEncryptAlgos = map[EncryptAlgo]bool{
	EncryptAES:      true,
	EncryptChaCha20: true,
	EncryptAge:      true,
}

// validCompressions contains all compression algorithms that carry a prefix.
var validCompressions = map[Compression]bool{
	CompressZstd:   true,
	CompressLZ4:    true,
	CompressSnappy: true,
}

// IsValidHashAlgo returns true if the algorithm is a known hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}

// IsValidEncryptAlgo returns true if the algorithm is a known encryption algorithm.
func IsValidEncryptAlgo(algo EncryptAlgo) bool {
	return validEncryptAlgos[algo]
}

// IsValidCompression returns true if c is a known compression algorithm.
// CompressNone is not reported as valid because it never appears as a prefix.
func IsValidCompression(c Compression) bool {
	return validCompressions[c]
}
