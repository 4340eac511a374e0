package zenjson

import (
	"strings"
	"testing"
)

func TestHashers(t *testing.T) {
	tests := []struct {
		name   string
		hasher Hasher
		algo   HashAlgo
		empty  string
	}{
		{
			name:   "sha256",
			hasher: SHA256Hasher(),
			algo:   HashSHA256,
			empty:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:   "blake2b",
			hasher: BLAKE2bHasher(),
			algo:   HashBLAKE2b,
			empty:  "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			name:   "blake3",
			hasher: BLAKE3Hasher(),
			algo:   HashBLAKE3,
			empty:  "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.hasher.Algorithm() != tt.algo {
				t.Errorf("Algorithm() = %q, want %q", tt.hasher.Algorithm(), tt.algo)
			}
			if got := tt.hasher.Hash(nil); got != tt.empty {
				t.Errorf("Hash(empty) = %q, want %q", got, tt.empty)
			}
		})
	}
}

func TestHasher_Deterministic(t *testing.T) {
	for algo, h := range builtinHashers() {
		t.Run(string(algo), func(t *testing.T) {
			data := []byte("hello")
			if h.Hash(data) != h.Hash(data) {
				t.Error("same input should produce same hash")
			}
			if h.Hash(data) == h.Hash([]byte("hellO")) {
				t.Error("different input should produce different hash")
			}
		})
	}
}

func TestContentID(t *testing.T) {
	id := ContentID(SHA256Hasher(), []byte("hello"))

	if !strings.HasPrefix(id, "sha256:") {
		t.Errorf("ContentID() = %q, want sha256: prefix", id)
	}
	if len(id) != len("sha256:")+64 {
		t.Errorf("ContentID() length = %d, want %d", len(id), len("sha256:")+64)
	}
}

func TestHasherFor(t *testing.T) {
	for _, algo := range []HashAlgo{HashSHA256, HashBLAKE2b, HashBLAKE3} {
		h, ok := HasherFor(algo)
		if !ok {
			t.Errorf("HasherFor(%q) not found", algo)
			continue
		}
		if h.Algorithm() != algo {
			t.Errorf("HasherFor(%q).Algorithm() = %q", algo, h.Algorithm())
		}
	}

	if _, ok := HasherFor("md5"); ok {
		t.Error("HasherFor(md5) should not be found")
	}
}
