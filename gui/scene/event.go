package scene

import (
	"fmt"

	"glint/gui/geom"
)

// EventType enumerates what a widget's Construct is asked to do.
type EventType uint8

const (
	EventNone EventType = iota
	// DrawMain asks the widget to paint itself into the surface.
	DrawMain
	// Pressed, Released and Motion carry a pointer position.
	Pressed
	Released
	Motion
	// OptionWalk moves the selection inside the focused widget.
	OptionWalk
	// OptionTap activates the current selection of the focused widget.
	OptionTap
	Focused
	Unfocused
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case DrawMain:
		return "draw-main"
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case Motion:
		return "motion"
	case OptionWalk:
		return "option-walk"
	case OptionTap:
		return "option-tap"
	case Focused:
		return "focused"
	case Unfocused:
		return "unfocused"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Pointer reports whether the event carries a meaningful position.
func (t EventType) Pointer() bool {
	return t == Pressed || t == Released || t == Motion
}

type Event struct {
	Type EventType
	Pos  geom.Pos
}

// eventQueue is a fixed-capacity ring. head is the slot of the oldest
// event and always stays below len(slots).
type eventQueue struct {
	head  int
	n     int
	slots []Event
}

func newEventQueue(size int) eventQueue {
	return eventQueue{slots: make([]Event, size)}
}

func (q *eventQueue) push(e Event) bool {
	if q.n == len(q.slots) {
		return false
	}
	q.slots[(q.head+q.n)%len(q.slots)] = e
	q.n++
	return true
}

func (q *eventQueue) pop() (Event, bool) {
	if q.n == 0 {
		return Event{}, false
	}
	e := q.slots[q.head]
	q.slots[q.head] = Event{}
	q.head = (q.head + 1) % len(q.slots)
	q.n--
	return e, true
}

func (q *eventQueue) len() int { return q.n }
