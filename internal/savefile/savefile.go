// Package savefile reads and writes world save records.
//
// A record is a small line-oriented text file:
//
//	name
//	seed
//	version
//	unix timestamp
//	current tick
//	actors JSON
//
// The first four lines are mandatory. A record without the last two
// describes a world that was created but never played.
package savefile

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/gravedigger/internal/core"
	"github.com/vovakirdan/gravedigger/internal/game"
)

// Version is written into every record.
const Version = "0.1.0"

// Ext is the save file extension.
const Ext = ".save"

var (
	// ErrFileExists is returned by Create when the file is already there.
	ErrFileExists = errors.New("savefile: file exists")
	// ErrMalformed is returned for records that cannot be parsed.
	ErrMalformed = errors.New("savefile: malformed record")
)

// Record is one save file.
type Record struct {
	Path    string
	Name    string
	Seed    uint64
	Version string
	Time    time.Time
	Tick    float64
	// Actors is the JSON encoded actor list, empty for unplayed worlds.
	Actors string
}

type actorsPayload struct {
	Actors []game.ActorState `json:"actors"`
	NextID core.ActorID      `json:"next_id"`
	Player core.ActorID      `json:"player"`
}

// SanitizeName trims the name and strips characters that cannot appear in
// a record line or a file name.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	return strings.NewReplacer("\n", "", "\r", "", "/", "", "\\", "").Replace(name)
}

// FileName maps a world name to its file name.
func FileName(name string) string {
	return strings.ReplaceAll(SanitizeName(name), " ", "_") + Ext
}

// ParseSeed reads a numeric seed, or hashes any other text into one.
func ParseSeed(s string) uint64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}
	return core.HashString(s)
}

// New prepares a record for a new world in dir.
func New(dir, name string, seed uint64) *Record {
	name = SanitizeName(name)
	return &Record{
		Path:    filepath.Join(dir, FileName(name)),
		Name:    name,
		Seed:    seed,
		Version: Version,
		Time:    time.Now(),
	}
}

// Create writes the record, failing with ErrFileExists if the file exists.
func (r *Record) Create() error {
	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		return fmt.Errorf("savefile: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(r.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, os.ErrExist) {
		return ErrFileExists
	}
	if err != nil {
		return fmt.Errorf("savefile: cannot create %s: %w", r.Path, err)
	}
	defer f.Close()

	if err := r.Encode(f); err != nil {
		return err
	}
	return nil
}

// Write replaces the file with the current record, stamping the time.
func (r *Record) Write() error {
	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		return fmt.Errorf("savefile: cannot create directory: %w", err)
	}
	r.Time = time.Now()
	r.Version = Version

	tmp := r.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("savefile: cannot write %s: %w", r.Path, err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("savefile: cannot write %s: %w", r.Path, err)
	}
	if err := os.Rename(tmp, r.Path); err != nil {
		return fmt.Errorf("savefile: cannot write %s: %w", r.Path, err)
	}
	return nil
}

// Encode writes the record lines.
func (r *Record) Encode(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%d\n%s\n%d", r.Name, r.Seed, r.Version, r.Time.Unix())
	if r.Actors != "" || r.Tick != 0 {
		fmt.Fprintf(&sb, "\n%s\n%s", strconv.FormatFloat(r.Tick, 'g', -1, 64), r.Actors)
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("savefile: cannot write record: %w", err)
	}
	return nil
}

// Decode parses record lines. Path is left empty.
func Decode(rd io.Reader) (*Record, error) {
	br := bufio.NewReader(rd)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" || err == nil {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("savefile: cannot read record: %w", err)
		}
	}

	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: %d lines", ErrMalformed, len(lines))
	}
	for i := 0; i < 4; i++ {
		if lines[i] == "" {
			return nil, fmt.Errorf("%w: empty line %d", ErrMalformed, i+1)
		}
	}

	r := &Record{Name: lines[0], Version: lines[2]}
	seed, err := strconv.ParseUint(lines[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: seed: %v", ErrMalformed, err)
	}
	r.Seed = seed
	ts, err := strconv.ParseInt(lines[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp: %v", ErrMalformed, err)
	}
	r.Time = time.Unix(ts, 0)

	if len(lines) > 4 && lines[4] != "" {
		tick, err := strconv.ParseFloat(lines[4], 64)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("%w: tick %q", ErrMalformed, lines[4])
		}
		r.Tick = tick
	}
	if len(lines) > 5 {
		r.Actors = lines[5]
	}
	return r, nil
}

// Load reads the record at path.
func Load(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("savefile: cannot open %s: %w", path, err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return nil, err
	}
	r.Path = path
	return r, nil
}

// Find loads the record of the named world in dir.
func Find(dir, name string) (*Record, error) {
	return Load(filepath.Join(dir, FileName(name)))
}

// List returns the readable records in dir, newest first. A missing
// directory yields no records.
func List(dir string) ([]*Record, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("savefile: cannot list %s: %w", dir, err)
	}

	var records []*Record
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Ext {
			continue
		}
		r, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		records = append(records, r)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})
	return records, nil
}

// Delete removes a save file. Missing files are not an error.
func Delete(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("savefile: cannot delete %s: %w", path, err)
	}
	return nil
}

// Played reports whether the record holds actors.
func (r *Record) Played() bool {
	return r.Actors != ""
}

// Meta returns the world meta stored in the record.
func (r *Record) Meta() game.Meta {
	return game.Meta{Name: r.Name, Seed: r.Seed, CurrentTick: r.Tick}
}

// State decodes the stored world state.
func (r *Record) State() (game.State, error) {
	var p actorsPayload
	if err := json.Unmarshal([]byte(r.Actors), &p); err != nil {
		return game.State{}, fmt.Errorf("%w: actors: %v", ErrMalformed, err)
	}
	return game.State{Meta: r.Meta(), Actors: p.Actors, NextID: p.NextID, Player: p.Player}, nil
}

// SetState stores a world state in the record.
func (r *Record) SetState(s game.State) error {
	data, err := json.Marshal(actorsPayload{Actors: s.Actors, NextID: s.NextID, Player: s.Player})
	if err != nil {
		return fmt.Errorf("savefile: cannot encode actors: %w", err)
	}
	r.Name = s.Meta.Name
	r.Seed = s.Meta.Seed
	r.Tick = s.Meta.CurrentTick
	r.Actors = string(data)
	return nil
}

// Open restores the world of a played record, or creates it from the
// record's meta using setup.
func (r *Record) Open(rules game.Rules, setup game.Setup) (*game.World, error) {
	if !r.Played() {
		return game.Create(r.Meta(), rules, setup), nil
	}
	s, err := r.State()
	if err != nil {
		return nil, err
	}
	w, err := game.Restore(s, rules)
	if err != nil {
		return nil, fmt.Errorf("savefile: cannot restore %s: %w", r.Name, err)
	}
	return w, nil
}

// Save captures the world into the record and writes it.
func (r *Record) Save(w *game.World) error {
	if err := r.SetState(w.State()); err != nil {
		return err
	}
	return r.Write()
}
