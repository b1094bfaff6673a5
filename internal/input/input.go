// Package input defines the events the render loop reacts to.
package input

// Kind identifies an event type.
type Kind uint8

const (
	KindQuit Kind = iota + 1
	KindKeyDown
)

// Key is a backend-neutral key code. Only Escape carries meaning.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Event is a single input event.
type Event struct {
	Kind Kind
	Key  Key
}

// Source drains pending events without blocking. Implementations append to
// dst and return the extended slice.
type Source interface {
	Poll(dst []Event) []Event
}

// Quit returns a quit request event.
func Quit() Event {
	return Event{Kind: KindQuit}
}

// KeyDown returns a key press event for k.
func KeyDown(k Key) Event {
	return Event{Kind: KindKeyDown, Key: k}
}

// IsExit reports whether ev should stop the program.
func IsExit(ev Event) bool {
	switch ev.Kind {
	case KindQuit:
		return true
	case KindKeyDown:
		return ev.Key == KeyEscape
	}
	return false
}
