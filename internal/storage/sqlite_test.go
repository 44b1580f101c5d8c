package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestUpsertWorld(t *testing.T) {
	store := openTestStore(t)

	// seeds above the int64 range must survive
	entry := WorldEntry{Name: "Old Yard", Seed: 18446744073709551615, Path: "/tmp/Old_Yard.save"}
	if err := store.UpsertWorld(entry); err != nil {
		t.Fatalf("UpsertWorld() failed: %v", err)
	}

	got, err := store.World("Old Yard")
	if err != nil {
		t.Fatalf("World() failed: %v", err)
	}
	if got.Seed != entry.Seed || got.Path != entry.Path || got.Tick != 0 {
		t.Errorf("World() = %+v", got)
	}

	entry.Tick = 1234.5
	entry.Actors = 3
	if err := store.UpsertWorld(entry); err != nil {
		t.Fatalf("UpsertWorld() failed: %v", err)
	}
	got, err = store.World("Old Yard")
	if err != nil {
		t.Fatalf("World() failed: %v", err)
	}
	if got.Tick != 1234.5 || got.Actors != 3 {
		t.Errorf("update not applied: %+v", got)
	}

	worlds, err := store.Worlds()
	if err != nil {
		t.Fatalf("Worlds() failed: %v", err)
	}
	if len(worlds) != 1 {
		t.Errorf("Expected 1 world, got %d", len(worlds))
	}
}

func TestWorldNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.World("nowhere"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteWorld("nowhere"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJournal(t *testing.T) {
	store := openTestStore(t)

	if err := store.AppendJournal("crypt", 10, []string{"You dug a pit"}); err != nil {
		t.Fatalf("AppendJournal() failed: %v", err)
	}
	if err := store.AppendJournal("crypt", 2010, []string{"You dug up the grave of Edith Marsh", "You read on gravestone: Edith Marsh. 200 — 255"}); err != nil {
		t.Fatalf("AppendJournal() failed: %v", err)
	}
	if err := store.AppendJournal("other", 5, []string{"elsewhere"}); err != nil {
		t.Fatalf("AppendJournal() failed: %v", err)
	}
	if err := store.AppendJournal("crypt", 6000, nil); err != nil {
		t.Fatalf("empty AppendJournal() failed: %v", err)
	}

	all, err := store.Journal("crypt", 0)
	if err != nil {
		t.Fatalf("Journal() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(all))
	}
	if all[0].Message != "You dug a pit" || all[2].Tick != 2010 {
		t.Errorf("entries out of order: %+v", all)
	}

	last, err := store.Journal("crypt", 2)
	if err != nil {
		t.Fatalf("Journal() failed: %v", err)
	}
	if len(last) != 2 || last[0].Message != "You dug up the grave of Edith Marsh" {
		t.Errorf("limited journal = %+v", last)
	}
}

func TestDeleteWorldDropsJournal(t *testing.T) {
	store := openTestStore(t)

	if err := store.UpsertWorld(WorldEntry{Name: "crypt", Seed: 1, Path: "crypt.save"}); err != nil {
		t.Fatalf("UpsertWorld() failed: %v", err)
	}
	if err := store.AppendJournal("crypt", 1, []string{"hello"}); err != nil {
		t.Fatalf("AppendJournal() failed: %v", err)
	}
	if err := store.DeleteWorld("crypt"); err != nil {
		t.Fatalf("DeleteWorld() failed: %v", err)
	}

	entries, err := store.Journal("crypt", 10)
	if err != nil {
		t.Fatalf("Journal() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("journal should be empty, got %d entries", len(entries))
	}
	if _, err := store.World("crypt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("world should be gone, got %v", err)
	}
}
