package testing

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dldc-packages/zenjson"
)

func TestTestKey(t *testing.T) {
	key := TestKey(t)
	if len(key) != 32 {
		t.Errorf("TestKey() length = %d, want 32", len(key))
	}
}

func TestTestEncryptor(t *testing.T) {
	for name, enc := range map[string]zenjson.Encryptor{
		"aes": TestEncryptor(t),
		"age": TestAgeEncryptor(t),
	} {
		t.Run(name, func(t *testing.T) {
			plaintext := []byte("test")
			ciphertext, err := enc.Encrypt(plaintext)
			if err != nil {
				t.Fatalf("Encrypt() error: %v", err)
			}

			decrypted, err := enc.Decrypt(ciphertext)
			if err != nil {
				t.Fatalf("Decrypt() error: %v", err)
			}

			if string(decrypted) != string(plaintext) {
				t.Errorf("round-trip failed")
			}
		})
	}
}

func TestSampleTree_Fresh(t *testing.T) {
	a := SampleTree()
	a["title"] = "changed"

	if SampleTree()["title"] != "report" {
		t.Error("SampleTree() should return a new value each call")
	}
}

func TestSampleTree_RoundTrip(t *testing.T) {
	ctx := context.Background()

	tree, err := zenjson.Sanitize(ctx, SampleTree(), nil)
	if err != nil {
		t.Fatalf("Sanitize() error: %v", err)
	}

	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	got, err := zenjson.Restore(ctx, decoded, nil)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	RequireEqual(t, SampleTree(), got)
}

func TestEventType(t *testing.T) {
	h := EventType()
	if h.Name() != "event" {
		t.Errorf("Name() = %q, want event", h.Name())
	}
	if !h.Check(SampleEvent(), &zenjson.CheckContext{}) {
		t.Error("EventType should claim Event values")
	}
}
