package types

import "strings"

// Event is the set of things that happened during one tick. The host
// turns these into sounds; the core never plays anything itself.
type Event uint8

const (
	EventAte Event = 1 << iota
	EventHitWall
	EventHitSelf
	EventGameOver
	EventBoardFull
)

// EventNone means the tick was ignored or nothing notable happened.
const EventNone Event = 0

func (e Event) Has(flag Event) bool {
	return e&flag != 0
}

func (e Event) String() string {
	if e == EventNone {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		flag Event
		name string
	}{
		{EventAte, "ate"},
		{EventHitWall, "wall"},
		{EventHitSelf, "self"},
		{EventGameOver, "game-over"},
		{EventBoardFull, "board-full"},
	} {
		if e.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}
