package persistence

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreSetGet(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if _, ok, err := store.Get(SaveKey); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(SaveKey, `{"version":1}`); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	got, ok, err := store.Get(SaveKey)
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if !ok || got != `{"version":1}` {
		t.Errorf("expected stored value back, got ok=%v value=%q", ok, got)
	}

	// overwrite replaces, no append
	if err := store.Set(SaveKey, `{"version":1,"state":{}}`); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}
	got, _, _ = store.Get(SaveKey)
	if got != `{"version":1,"state":{}}` {
		t.Errorf("expected overwritten value, got %q", got)
	}

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file in store dir, got %d", len(entries))
	}
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Errorf("expected key to be gone after delete")
	}

	// deleting an absent key is a no-op
	if err := store.Delete("k"); err != nil {
		t.Errorf("expected deleting absent key to succeed, got %v", err)
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "saves")

	if _, err := NewFileStore(dir); err != nil {
		t.Fatalf("failed to create nested store dir: %v", err)
	}
	if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
		t.Errorf("expected store directory to exist")
	}
}

func TestSnapshotVersionGate(t *testing.T) {
	raw, err := Encode(&Snapshot{
		State: StateSnapshot{Cookies: 12, TotalCookies: 30, ManualClicks: 4},
	})
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	snap, err := Decode(raw)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if snap.Version != SnapshotVersion {
		t.Errorf("expected version %d stamped, got %d", SnapshotVersion, snap.Version)
	}
	if snap.State.Cookies != 12 || snap.State.ManualClicks != 4 {
		t.Errorf("unexpected state after round trip: %+v", snap.State)
	}

	if _, err := Decode(`{"version":99}`); err == nil {
		t.Errorf("expected newer snapshot version to be rejected")
	}
	if _, err := Decode(`{broken`); err == nil {
		t.Errorf("expected invalid json to be rejected")
	}
}
