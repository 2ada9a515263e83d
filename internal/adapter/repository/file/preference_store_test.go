package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestPreferenceStore_MissingFile(t *testing.T) {
	store := NewPreferenceStore(filepath.Join(t.TempDir(), "preferences.json"))

	value, ok, err := store.Get(context.Background(), "ledger-dark-mode")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || value != "" {
		t.Errorf("missing file must read as empty, got %q (ok=%v)", value, ok)
	}
}

func TestPreferenceStore_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	store := NewPreferenceStore(path)
	ctx := context.Background()

	if err := store.Set(ctx, "ledger-dark-mode", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok, err := store.Get(ctx, "ledger-dark-mode")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "true" {
		t.Errorf("expected stored value, got %q (ok=%v)", value, ok)
	}

	// A fresh store reading the same file sees the persisted value.
	reopened := NewPreferenceStore(path)
	value, ok, err = reopened.Get(ctx, "ledger-dark-mode")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "true" {
		t.Errorf("value did not survive reopen, got %q (ok=%v)", value, ok)
	}
}

func TestPreferenceStore_Overwrite(t *testing.T) {
	store := NewPreferenceStore(filepath.Join(t.TempDir(), "preferences.json"))
	ctx := context.Background()

	if err := store.Set(ctx, "ledger-dark-mode", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Set(ctx, "ledger-dark-mode", "false"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, _, err := store.Get(ctx, "ledger-dark-mode")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "false" {
		t.Errorf("expected overwritten value, got %q", value)
	}
}

func TestPreferenceStore_KeysAreIndependent(t *testing.T) {
	store := NewPreferenceStore(filepath.Join(t.TempDir(), "preferences.json"))
	ctx := context.Background()

	if err := store.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Set(ctx, "b", "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok, _ := store.Get(ctx, "a")
	if !ok || value != "1" {
		t.Errorf("setting b clobbered a: %q (ok=%v)", value, ok)
	}
}

func TestPreferenceStore_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "prefs", "preferences.json")
	store := NewPreferenceStore(path)

	if err := store.Set(context.Background(), "ledger-dark-mode", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("preferences file not created: %v", err)
	}
}

func TestPreferenceStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewPreferenceStore(path)
	if _, _, err := store.Get(context.Background(), "ledger-dark-mode"); err == nil {
		t.Fatal("expected error for corrupt file, got nil")
	}
}
