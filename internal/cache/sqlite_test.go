package cache

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = (_, %v, %v), want absent", ok, err)
	}

	if err := store.Set("a:k1", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set("a:k1", []byte("v2")); err != nil {
		t.Fatalf("Set replace: %v", err)
	}
	if err := store.Set("b:k1", []byte("other")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := store.Get("a:k1")
	if err != nil || !ok || string(got) != "v2" {
		t.Errorf("Get(a:k1) = (%q, %v, %v), want v2 (replaced)", got, ok, err)
	}

	keys, err := store.Keys("a:")
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "a:k1" {
		t.Errorf("Keys(a:) = %v, want [a:k1]", keys)
	}

	if err := store.Delete("a:k1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get("a:k1"); ok {
		t.Error("key present after Delete")
	}
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := store.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	store.Close()

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get("k")
	if err != nil || !ok || string(got) != "v" {
		t.Errorf("Get after reopen = (%q, %v, %v), want v", got, ok, err)
	}
}
