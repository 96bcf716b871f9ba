package cache

import (
	"testing"
	"time"
)

func TestTTLCache_SetGet(t *testing.T) {
	c := New[int](time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Set("a", 42)
	v, ok := c.Get("a")
	if !ok || v != 42 {
		t.Fatalf("got %d ok=%v, want 42 true", v, ok)
	}
}

func TestTTLCache_Expiry(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	current := base
	now = func() time.Time { return current }
	defer func() { now = time.Now }()

	c := New[string](time.Minute)
	c.Set("k", "v")

	current = base.Add(30 * time.Second)
	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("fresh entry missing: %q ok=%v", v, ok)
	}

	current = base.Add(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expired entry still served")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not evicted, len=%d", c.Len())
	}
}

func TestTTLCache_SetResetsLifetime(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	current := base
	now = func() time.Time { return current }
	defer func() { now = time.Now }()

	c := New[int](time.Minute)
	c.Set("k", 1)
	current = base.Add(50 * time.Second)
	c.Set("k", 2)
	current = base.Add(100 * time.Second)
	if v, ok := c.Get("k"); !ok || v != 2 {
		t.Fatalf("refreshed entry lost: %d ok=%v", v, ok)
	}
}
