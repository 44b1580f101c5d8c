package game

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/gravedigger/internal/core"
)

// Brain drives a non-player actor. Plan may only change the brain's own
// state; the world commits the proposal only if it is possible.
type Brain interface {
	// Kind names the brain for saving and restoring.
	Kind() string
	// Plan picks the next proposal.
	Plan(rng *rand.Rand)
	// Action returns the current proposal, if any.
	Action() (ActionType, bool)
}

// BrainFactory creates a fresh brain of one kind.
type BrainFactory func() Brain

var (
	brains   = make(map[string]BrainFactory)
	brainsMu sync.RWMutex
)

// RegisterBrain makes a brain kind restorable. It panics on duplicates.
func RegisterBrain(kind string, f BrainFactory) {
	brainsMu.Lock()
	defer brainsMu.Unlock()

	if _, exists := brains[kind]; exists {
		panic(fmt.Sprintf("game: brain %q already registered", kind))
	}
	brains[kind] = f
}

// NewBrain creates a brain by kind.
func NewBrain(kind string) (Brain, error) {
	brainsMu.RLock()
	defer brainsMu.RUnlock()

	f, ok := brains[kind]
	if !ok {
		return nil, fmt.Errorf("game: unknown brain %q", kind)
	}
	return f(), nil
}

// BrainKinds lists the registered kinds, sorted.
func BrainKinds() []string {
	brainsMu.RLock()
	defer brainsMu.RUnlock()

	kinds := make([]string, 0, len(brains))
	for k := range brains {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// ZombieBrainKind is the registry name of ZombieBrain.
const ZombieBrainKind = "zombie"

func init() {
	RegisterBrain(ZombieBrainKind, func() Brain { return NewZombieBrain() })
}

var zombieSteps = [...]core.Direction{core.East, core.West, core.North, core.South, core.Here}

// ZombieBrain wanders: every cycle it picks one of four directions or stays.
type ZombieBrain struct {
	action ActionType
}

// NewZombieBrain creates a brain that first proposes to skip time.
func NewZombieBrain() *ZombieBrain {
	return &ZombieBrain{action: Skip()}
}

func (z *ZombieBrain) Kind() string { return ZombieBrainKind }

func (z *ZombieBrain) Plan(rng *rand.Rand) {
	z.action = Walk(zombieSteps[rng.Intn(len(zombieSteps))])
}

func (z *ZombieBrain) Action() (ActionType, bool) {
	return z.action, true
}
