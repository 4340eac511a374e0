package zenjson

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBytesType_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("zenjson "), 64)

	for _, c := range []Compression{CompressNone, CompressZstd, CompressLZ4, CompressSnappy} {
		name := string(c)
		if name == "" {
			name = "none"
		}
		t.Run(name, func(t *testing.T) {
			h := BytesType(WithCompression(c))

			payload, err := h.Encode(data, testEncodeContext())
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}

			s := payload.(string)
			if c == CompressNone && strings.Contains(s, ":") {
				t.Errorf("Encode() = %q, want no prefix", s)
			}
			if c != CompressNone && !strings.HasPrefix(s, string(c)+":") {
				t.Errorf("Encode() = %q, want %q prefix", s, c)
			}

			// Decoding reads the prefix regardless of the handler's own setting
			got, err := BytesType().Decode(payload, testDecodeContext())
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !bytes.Equal(got.([]byte), data) {
				t.Error("round-trip failed")
			}
		})
	}
}

func TestBytesType_Plain(t *testing.T) {
	payload, err := BytesType().Encode([]byte("hi"), testEncodeContext())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if payload != "aGk=" {
		t.Errorf("Encode() = %v, want aGk=", payload)
	}
}

func TestBytesType_InvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{"not a string", 42.0},
		{"bad base64", "!!!"},
		{"unknown prefix", "gzip:aGk="},
		{"corrupt zstd", "zstd:aGk="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BytesType().Decode(tt.payload, testDecodeContext())
			if !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("Decode(%v) error = %v, want ErrInvalidPayload", tt.payload, err)
			}
		})
	}
}

func TestBytesType_WithSanitize(t *testing.T) {
	ctx := context.Background()
	handlers := append(DefaultTypes(), BytesType(WithCompression(CompressSnappy)))
	sanitize, _ := NewSanitize(handlers...)
	restore, _ := NewRestore(handlers...)

	tree, err := sanitize(ctx, map[string]any{"raw": []byte{0, 1, 2, 255}}, nil)
	if err != nil {
		t.Fatalf("sanitize() error: %v", err)
	}

	pair := tree.(map[string]any)["raw"].([]any)
	if pair[0] != TypeBytes {
		t.Errorf("tag = %v, want %q", pair[0], TypeBytes)
	}

	got, err := restore(ctx, jsonRoundTrip(t, tree), nil)
	if err != nil {
		t.Fatalf("restore() error: %v", err)
	}
	if !bytes.Equal(got.(map[string]any)["raw"].([]byte), []byte{0, 1, 2, 255}) {
		t.Error("round-trip failed")
	}
}
