package zenjson

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// jsonRoundTrip passes v through encoding/json the way a transport would.
func jsonRoundTrip(t *testing.T, v any) any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	return out
}

func TestRoundTrip_DefaultDomain(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		value any
	}{
		{"string", "hello"},
		{"number", 3.25},
		{"bool", false},
		{"null", nil},
		{"undefined", Undefined},
		{"nan", math.NaN()},
		{"infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"date", time.Date(2021, 7, 20, 0, 0, 0, 0, time.UTC)},
		{"date with millis", time.Date(1970, 1, 1, 0, 0, 0, 999000000, time.UTC)},
		{"tag lookalike", []any{"undefined", nil}},
		{"nested lookalike", []any{"array", []any{"number", "NaN"}}},
		{"unknown tag", []any{"foo", 42.0}},
		{"empty list", []any{}},
		{"empty record", map[string]any{}},
		{"mixed", map[string]any{
			"a": []any{1.0, "two", true, nil, Undefined},
			"b": map[string]any{
				"when":  time.Date(2000, 2, 29, 12, 0, 0, 0, time.UTC),
				"ratio": math.NaN(),
				"pairs": []any{[]any{"date", "not a date"}, []any{"number", "Infinity"}},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Sanitize(ctx, tt.value, nil)
			if err != nil {
				t.Fatalf("Sanitize() error: %v", err)
			}

			got, err := Restore(ctx, jsonRoundTrip(t, tree), nil)
			if err != nil {
				t.Fatalf("Restore() error: %v", err)
			}

			if diff := cmp.Diff(tt.value, got, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip_WireFormat(t *testing.T) {
	tree, err := Sanitize(context.Background(), map[string]any{
		"u": Undefined,
		"n": math.NaN(),
		"a": []any{"undefined", nil},
	}, nil)
	if err != nil {
		t.Fatalf("Sanitize() error: %v", err)
	}

	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}

	want := `{"a":["array",["undefined",null]],"n":["number","NaN"],"u":["undefined",null]}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestRoundTrip_CustomHandlers(t *testing.T) {
	ctx := context.Background()
	handlers := append(DefaultTypes(), MapType(), DurationType())

	sanitize, err := NewSanitize(handlers...)
	if err != nil {
		t.Fatalf("NewSanitize() error: %v", err)
	}
	restore, err := NewRestore(handlers...)
	if err != nil {
		t.Fatalf("NewRestore() error: %v", err)
	}

	value := map[string]any{
		"timeout": 1500 * time.Millisecond,
		"byCode":  map[string]any{"a": []any{"map", "looks tagged"}},
	}

	tree, err := sanitize(ctx, value, nil)
	if err != nil {
		t.Fatalf("sanitize() error: %v", err)
	}
	got, err := restore(ctx, jsonRoundTrip(t, tree), nil)
	if err != nil {
		t.Fatalf("restore() error: %v", err)
	}

	if diff := cmp.Diff(value, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
