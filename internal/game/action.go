package game

import (
	"errors"

	"github.com/vovakirdan/gravedigger/internal/core"
)

var (
	// ErrUnknownActor is returned for ids that are not in the world.
	ErrUnknownActor = errors.New("game: unknown actor")
	// ErrBusy is returned when an actor already has an action.
	ErrBusy = errors.New("game: actor is busy")
)

// ImpossibleError explains why an action cannot be started.
type ImpossibleError struct {
	Reason string
}

func (e *ImpossibleError) Error() string {
	return e.Reason
}

func impossible(reason string) error {
	return &ImpossibleError{Reason: reason}
}

// Action is a committed, timed intent. Finish is the absolute tick at which
// the effect is applied.
type Action struct {
	Type   ActionType   `json:"type"`
	Owner  core.ActorID `json:"owner"`
	Finish float64      `json:"finish"`
}

// NewAction checks the action against the world and fixes its finish tick.
func NewAction(owner *Avatar, t ActionType, w *World) (Action, error) {
	if err := t.Possible(owner, w); err != nil {
		return Action{}, err
	}
	return Action{
		Type:   t,
		Owner:  owner.ID,
		Finish: w.meta.CurrentTick + t.Length(owner, w),
	}, nil
}

// Remaining returns the ticks left until the action resolves.
func (a Action) Remaining(now float64) float64 {
	if a.Finish <= now {
		return 0
	}
	return a.Finish - now
}
