package mdcode

import "fmt"

// EventKind discriminates the document event shapes
// the preprocessor knows about.
type EventKind uint8

const (
	// EventOther is any event the preprocessor does not inspect.
	// It passes through untouched, payload and all.
	EventOther EventKind = iota

	// EventCodeStart opens a fenced code block.
	// Info carries the fence's language tag, possibly empty.
	EventCodeStart

	// EventText is a text payload.
	EventText

	// EventCodeEnd closes a fenced code block.
	EventCodeEnd

	// EventHTML is raw markup, emitted verbatim by the renderer.
	EventHTML
)

var _eventKindNames = [...]string{
	EventOther:     "Other",
	EventCodeStart: "CodeStart",
	EventText:      "Text",
	EventCodeEnd:   "CodeEnd",
	EventHTML:      "HTML",
}

func (k EventKind) String() string {
	if int(k) < len(_eventKindNames) {
		return _eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is one unit of a parsed markdown document stream.
type Event struct {
	Kind EventKind

	// Info is the fence info string on EventCodeStart events.
	Info string

	// Text is the payload of EventText and EventHTML events.
	Text string

	// Node carries an opaque upstream payload through EventOther events.
	Node any
}

func (e Event) String() string {
	switch e.Kind {
	case EventCodeStart:
		return fmt.Sprintf("CodeStart(%q)", e.Info)
	case EventText, EventHTML:
		return fmt.Sprintf("%v(%q)", e.Kind, e.Text)
	case EventOther:
		return fmt.Sprintf("Other(%v)", e.Node)
	default:
		return e.Kind.String()
	}
}

// Stream is a pull-based sequence of document events.
// Next reports false once the stream is exhausted
// and must keep reporting false afterwards.
type Stream interface {
	Next() (Event, bool)
}

// SliceStream builds a Stream that yields the given events in order.
func SliceStream(events []Event) Stream {
	return &sliceStream{events: events}
}

type sliceStream struct {
	events []Event
	pos    int
}

func (s *sliceStream) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}

// Collect drains a Stream into a slice.
func Collect(s Stream) []Event {
	var events []Event
	for {
		ev, ok := s.Next()
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}
