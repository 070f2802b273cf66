package id

import "testing"

func TestUUIDGenerator_Unique(t *testing.T) {
	t.Parallel()

	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		v, err := g.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if len(v) != 36 {
			t.Fatalf("unexpected uuid length %d: %s", len(v), v)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id %s", v)
		}
		seen[v] = struct{}{}
	}
}

func TestShort(t *testing.T) {
	t.Parallel()

	if got := Short(NewUUIDGenerator()); len(got) != 8 {
		t.Fatalf("expected 8 chars, got %q", got)
	}
	if Short(nil) != "" {
		t.Fatalf("nil generator should yield empty id")
	}
}
