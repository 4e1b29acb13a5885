package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New()
	c.Set("k", "v", time.Minute)

	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("Get(k) = %q, %v; want v, true", got, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestExpiry(t *testing.T) {
	c := New()
	c.Set("k", "v", -time.Second) // already expired

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestKeyIsStablePerInput(t *testing.T) {
	if Key("text", "hi") != Key("text", "hi") {
		t.Fatal("same input must produce the same key")
	}
	if Key("text", "hi") == Key("text", "kn") {
		t.Fatal("different language must produce a different key")
	}
}
