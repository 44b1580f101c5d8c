package savefile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, name, file string
	}{
		{"  Old Yard  ", "Old Yard", "Old_Yard.save"},
		{"a/b\\c\nd", "abcd", "abcd.save"},
		{"plain", "plain", "plain.save"},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.name {
			t.Errorf("SanitizeName(%q) = %q, expected %q", tt.in, got, tt.name)
		}
		if got := FileName(tt.in); got != tt.file {
			t.Errorf("FileName(%q) = %q, expected %q", tt.in, got, tt.file)
		}
	}
}

func TestParseSeed(t *testing.T) {
	if ParseSeed("12345") != 12345 {
		t.Error("numeric seeds should be used as is")
	}
	if ParseSeed("moss") != ParseSeed(" moss ") {
		t.Error("text seeds should ignore surrounding space")
	}
	if ParseSeed("moss") == ParseSeed("fern") {
		t.Error("different text seeds should differ")
	}
}

func TestCreateAndLoad(t *testing.T) {
	dir := t.TempDir()
	r := New(dir, "Old Yard", 77)
	if err := r.Create(); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := New(dir, "Old Yard", 1).Create(); !errors.Is(err, ErrFileExists) {
		t.Errorf("expected ErrFileExists, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Old_Yard.save"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if lines := strings.Split(string(data), "\n"); len(lines) != 4 || lines[0] != "Old Yard" || lines[1] != "77" {
		t.Errorf("unexpected record %q", data)
	}

	loaded, err := Find(dir, "Old Yard")
	if err != nil {
		t.Fatalf("Find() failed: %v", err)
	}
	if loaded.Name != "Old Yard" || loaded.Seed != 77 || loaded.Version != Version || loaded.Played() {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.Time.Unix() != r.Time.Unix() {
		t.Errorf("time = %v, expected %v", loaded.Time, r.Time)
	}
}

func TestDecodeRejectsIncomplete(t *testing.T) {
	tests := []string{
		"",
		"name\n42\n0.1.0",
		"name\n\n0.1.0\n1700000000",
		"name\nseed\n0.1.0\n1700000000",
		"name\n42\n0.1.0\nyesterday",
		"name\n42\n0.1.0\n1700000000\n-3\n{}",
	}
	for _, in := range tests {
		if _, err := Decode(strings.NewReader(in)); !errors.Is(err, ErrMalformed) {
			t.Errorf("Decode(%q) error = %v, expected ErrMalformed", in, err)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := New(dir, "Crypt", 9)
	if err := r.Create(); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	w, err := r.Open(game.DefaultRules(), game.Setup{Zombies: 2, SpawnRadius: 5})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	p := w.Player()
	if _, err := w.Submit(p.ID, game.Wield(core.Here)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	w.RunUntilIdle(100)
	if _, err := w.Submit(p.ID, game.Walk(core.Here)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	w.Tick()

	if err := r.Save(w); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(r.Path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !loaded.Played() || loaded.Tick != w.CurrentTick() {
		t.Fatalf("loaded = %+v", loaded)
	}
	restored, err := loaded.Open(game.DefaultRules(), game.Setup{})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if !reflect.DeepEqual(restored.State(), w.State()) {
		t.Errorf("restored state differs:\n%+v\n%+v", restored.State(), w.State())
	}
	if got := restored.Player().Wield; len(got) != 1 {
		t.Errorf("wielded items lost: %v", got)
	}
}

func TestListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	base := time.Unix(1_700_000_000, 0)
	for i, name := range []string{"first", "second", "third"} {
		r := New(dir, name, uint64(i))
		r.Time = base.Add(time.Duration(i) * time.Hour)
		if err := r.Create(); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "junk.save"), []byte("broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := List(dir)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	var names []string
	for _, r := range records {
		names = append(names, r.Name)
	}
	if !reflect.DeepEqual(names, []string{"third", "second", "first"}) {
		t.Errorf("names = %v", names)
	}

	if err := Delete(records[0].Path); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := Delete(records[0].Path); err != nil {
		t.Errorf("deleting a missing file should succeed: %v", err)
	}
	if records, _ := List(dir); len(records) != 2 {
		t.Errorf("expected 2 records after delete, got %d", len(records))
	}

	missing, err := List(filepath.Join(dir, "nope"))
	if err != nil || missing != nil {
		t.Errorf("List of a missing dir = %v, %v", missing, err)
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	r := New("", "Barrow", 31337)
	r.Time = time.Unix(1_700_000_123, 0)
	r.Tick = 12.5
	r.Actors = `{"actors":[],"next_id":1,"player":0}`

	var buf bytes.Buffer
	if err := WriteArchive(&buf, r); err != nil {
		t.Fatalf("WriteArchive() failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x28, 0xb5, 0x2f, 0xfd}) {
		t.Error("archive should start with the zstd magic number")
	}

	got, err := ReadArchive(&buf)
	if err != nil {
		t.Fatalf("ReadArchive() failed: %v", err)
	}
	got.Path = r.Path
	if !reflect.DeepEqual(got, r) {
		t.Errorf("archive round trip:\n%+v\n%+v", got, r)
	}
}
