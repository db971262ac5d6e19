package game

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/board"
)

// EventType discriminates session events
type EventType uint8

const (
	EventFruitEaten EventType = iota
	EventDied
	EventHighScore
	EventPaused
	EventResumed
)

func (t EventType) String() string {
	switch t {
	case EventFruitEaten:
		return "fruit-eaten"
	case EventDied:
		return "died"
	case EventHighScore:
		return "high-score"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Event is a notable session change for collaborators such as audio
type Event struct {
	Type   EventType
	At     board.Point // Head position for fruit and death
	Points int         // Score after the event
}

// maxPendingEvents caps the queue when nobody drains it; oldest events are dropped
const maxPendingEvents = 64

// eventQueue is a FIFO of events drained once per frame
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(e Event) {
	if len(q.events) >= maxPendingEvents {
		q.events = q.events[1:]
	}
	q.events = append(q.events, e)
}

// consume returns pending events in FIFO order and empties the queue
func (q *eventQueue) consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
