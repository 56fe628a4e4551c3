package cache

import (
	"bytes"
	"context"
	"testing"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	key := Key("digraph tree {}", "svg")

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get before Set = ok:%v err:%v, want miss", ok, err)
	}

	want := []byte("<svg/>")
	if err := c.Set(ctx, key, want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get = ok:%v err:%v, want hit", ok, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}
}

func TestFileCacheOverwrite(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("first")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, "k", []byte("second")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, _ := c.Get(ctx, "k")
	if !ok || string(got) != "second" {
		t.Errorf("Get = %q/%v, want second", got, ok)
	}
}

func TestKey(t *testing.T) {
	a := Key("digraph tree {}", "svg")
	b := Key("digraph tree {}", "png")
	c := Key("digraph other {}", "svg")

	if a == b || a == c {
		t.Error("distinct inputs produced the same key")
	}
	if a != Key("digraph tree {}", "svg") {
		t.Error("Key is not deterministic")
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("data")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Errorf("Get = ok:%v err:%v, want miss always", ok, err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
