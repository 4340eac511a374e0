// Package testing provides test utilities for zenjson.
package testing

import (
	"math"
	"testing"
	"time"

	"filippo.io/age"
	"github.com/dldc-packages/zenjson"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestKey returns a valid 32-byte key for AES-256 and ChaCha20.
func TestKey(tb testing.TB) []byte {
	tb.Helper()
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncryptor returns an AES encryptor configured for testing.
func TestEncryptor(tb testing.TB) zenjson.Encryptor {
	tb.Helper()
	enc, err := zenjson.AES(TestKey(tb))
	if err != nil {
		tb.Fatalf("AES() error: %v", err)
	}
	return enc
}

// TestAgeEncryptor returns an age encryptor for a freshly generated identity.
func TestAgeEncryptor(tb testing.TB) zenjson.Encryptor {
	tb.Helper()
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		tb.Fatalf("GenerateX25519Identity() error: %v", err)
	}
	return zenjson.Age(identity)
}

// Event is a struct fixture for StructType.
type Event struct {
	Name     string    `json:"name"`
	At       time.Time `json:"at"`
	Attempts int       `json:"attempts"`
	Labels   []string  `json:"labels"`
}

// EventType returns the struct handler for Event.
func EventType() zenjson.Handler {
	return zenjson.StructType[Event]("event")
}

// SampleEvent returns an Event with every field set.
func SampleEvent() Event {
	return Event{
		Name:     "deploy",
		At:       time.Date(2021, 7, 20, 9, 30, 0, 0, time.UTC),
		Attempts: 3,
		Labels:   []string{"prod", "eu-west"},
	}
}

// SampleTree returns a value covering the default handlers. It avoids
// integers and integral floats, whose Go type differs between codecs.
func SampleTree() map[string]any {
	return map[string]any{
		"title":   "report",
		"enabled": true,
		"ratio":   1.5,
		"missing": nil,
		"created": time.Date(2021, 7, 20, 0, 0, 0, 0, time.UTC),
		"updated": time.Date(2024, 2, 29, 23, 59, 59, 250000000, time.UTC),
		"scores":  []any{math.NaN(), math.Inf(1), math.Inf(-1), 0.25},
		"gone":    zenjson.Undefined,
		"lookalikes": []any{
			[]any{"undefined", nil},
			[]any{"date", "2021-07-20T00:00:00.000Z"},
			[]any{"array", []any{"number", "NaN"}},
			[]any{"unknown", "left alone"},
		},
		"nested": map[string]any{
			"empty":  []any{},
			"record": map[string]any{},
			"deep":   []any{[]any{[]any{zenjson.Undefined}}},
		},
	}
}

// RequireEqual fails the test when got differs from want. NaN equals NaN.
func RequireEqual(tb testing.TB, want, got any) {
	tb.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		tb.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
