package game

import "github.com/vovakirdan/gravedigger/internal/core"

// EventKind tells front-ends what happened during a tick.
type EventKind uint8

const (
	// EventLog carries a message for the message log.
	EventLog EventKind = iota
	// EventSpawn reports a new actor.
	EventSpawn
)

// Event is produced by resolved actions.
type Event struct {
	Kind    EventKind
	Message string
	Actor   core.ActorID
}

func logEvent(msg string) Event {
	return Event{Kind: EventLog, Message: msg}
}

// Messages extracts the log messages from events, in order.
func Messages(events []Event) []string {
	var out []string
	for _, e := range events {
		if e.Kind == EventLog {
			out = append(out, e.Message)
		}
	}
	return out
}
