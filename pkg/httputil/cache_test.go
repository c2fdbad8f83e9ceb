package httputil

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}

	type entry struct {
		Body string `json:"body"`
	}

	if err := c.Set("github:user/repo", entry{Body: "MIT license text"}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	var got entry
	ok, err := c.Get("github:user/repo", &got)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !ok {
		t.Fatal("Get() should hit after Set()")
	}
	if got.Body != "MIT license text" {
		t.Errorf("Get() body = %q, want %q", got.Body, "MIT license text")
	}
}

func TestCacheMiss(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	var got string
	ok, err := c.Get("missing", &got)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok {
		t.Error("Get() should miss for unknown key")
	}
	if got != "" {
		t.Errorf("Get() should leave v unchanged on miss, got %q", got)
	}
}

func TestCacheExpired(t *testing.T) {
	dir := t.TempDir()
	c, _ := NewCache(dir, time.Minute)

	if err := c.Set("stale", "value"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	// Backdate the entry past its TTL.
	old := time.Now().Add(-2 * time.Minute)
	if err := os.Chtimes(c.keyPath("stale"), old, old); err != nil {
		t.Fatalf("Chtimes() error: %v", err)
	}

	var got string
	ok, err := c.Get("stale", &got)
	if ok {
		t.Error("Get() should not hit for expired entry")
	}
	if !errors.Is(err, ErrExpired) {
		t.Errorf("Get() error = %v, want ErrExpired", err)
	}
}

func TestCacheZeroTTLNeverExpires(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 0)

	if err := c.Set("forever", "value"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	old := time.Now().Add(-365 * 24 * time.Hour)
	_ = os.Chtimes(c.keyPath("forever"), old, old)

	var got string
	ok, err := c.Get("forever", &got)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !ok {
		t.Error("Get() should hit with TTL 0 regardless of age")
	}
}

func TestCacheOverwrite(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	_ = c.Set("key", "first")
	_ = c.Set("key", "second")

	var got string
	if ok, _ := c.Get("key", &got); !ok {
		t.Fatal("Get() should hit")
	}
	if got != "second" {
		t.Errorf("Get() = %q, want %q", got, "second")
	}
}

func TestCacheLongKeys(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	key := "raw:https://raw.githubusercontent.com/some-user/some-very-long-repository-name/master/LICENSE-APACHE"
	if err := c.Set(key, "apache text"); err != nil {
		t.Fatalf("Set() with long key error: %v", err)
	}

	var got string
	if ok, _ := c.Get(key, &got); !ok || got != "apache text" {
		t.Errorf("Get() = (%v, %q), want hit with %q", ok, got, "apache text")
	}
}
