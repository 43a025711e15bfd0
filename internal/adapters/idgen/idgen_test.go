package idgen

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewIDIsUUIDv4(t *testing.T) {
	id := Generator{}.NewID()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("parse %q: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected v4, got %d", parsed.Version())
	}
	if other := (Generator{}).NewID(); other == id {
		t.Fatalf("expected distinct ids")
	}
}
