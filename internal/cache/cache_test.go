// ABOUTME: Tests for the in-memory analysis cache.
// ABOUTME: Verifies round trips, misses, and kind separation.
package cache

import (
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	if _, ok := c.Get("meal", "oatmeal"); ok {
		t.Error("expected miss on empty cache")
	}

	c.Put("meal", "oatmeal", `{"calories": 350}`)

	got, ok := c.Get("meal", "oatmeal")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got != `{"calories": 350}` {
		t.Errorf("Get = %q, want stored response", got)
	}
}

func TestCacheKindsAreSeparate(t *testing.T) {
	c, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	c.Put("meal", "jogging", `{"calories": 100}`)

	if _, ok := c.Get("workout", "jogging"); ok {
		t.Error("workout kind should not see meal entries")
	}
}

func TestCacheOverwrite(t *testing.T) {
	c, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	c.Put("meal", "toast", "first")
	c.Put("meal", "toast", "second")

	got, ok := c.Get("meal", "toast")
	if !ok || got != "second" {
		t.Errorf("Get = %q, %v; want second, true", got, ok)
	}
}
