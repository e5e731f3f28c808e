package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewIDParses(t *testing.T) {
	got, err := NewUUIDGenerator().NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	parsed, err := uuid.Parse(got)
	if err != nil {
		t.Fatalf("expected uuid, got %q: %v", got, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected version 4, got %d", parsed.Version())
	}
}

func TestSequenceGenerator_IsOrdered(t *testing.T) {
	gen := NewSequenceGenerator("draft")
	first, _ := gen.NewID()
	second, _ := gen.NewID()
	if first != "draft-1" || second != "draft-2" {
		t.Fatalf("unexpected ids: %s %s", first, second)
	}
}
