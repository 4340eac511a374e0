package zenjson

import (
	"testing"
)

// yamlTestCodec only differs from testCodec by content type.
type yamlTestCodec struct{ testCodec }

func (c *yamlTestCodec) ContentType() string { return "application/yaml" }

func TestUse_Caching(t *testing.T) {
	Reset() // Clear cache

	p1, err := Use(&testCodec{})
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	p2, err := Use(&testCodec{})
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if p1 != p2 {
		t.Error("Use() should return cached processor")
	}
}

func TestUse_DifferentCodecs(t *testing.T) {
	Reset()

	p1, _ := Use(&testCodec{})
	p2, _ := Use(&yamlTestCodec{})

	if p1 == p2 {
		t.Error("different content types should get different processors")
	}
	if p2.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want application/yaml", p2.ContentType())
	}
}

func TestUse_DefaultTypes(t *testing.T) {
	Reset()

	p, _ := Use(&testCodec{})
	if p.Types() != defaultTypes {
		t.Error("Use() should build processors with the default types")
	}
}

func TestReset(t *testing.T) {
	p1, _ := Use(&testCodec{})

	Reset()

	p2, _ := Use(&testCodec{})

	if p1 == p2 {
		t.Error("Reset() should clear cache, new processor expected")
	}
}
