package core

import "strconv"

// ActorID identifies an actor within one world. IDs are never reused.
type ActorID uint64

func (id ActorID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}
