package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/starfield/internal/input"
)

// Events drains the tcell event queue without blocking.
type Events struct {
	screen tcell.Screen
}

func NewEvents(screen tcell.Screen) *Events {
	return &Events{screen: screen}
}

func (e *Events) Poll(dst []input.Event) []input.Event {
	for e.screen.HasPendingEvent() {
		switch ev := e.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return append(dst, input.Quit())
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape:
				dst = append(dst, input.KeyDown(input.KeyEscape))
			case isCtrlC(ev):
				dst = append(dst, input.Quit())
			default:
				dst = append(dst, input.KeyDown(input.KeyUnknown))
			}
		case *tcell.EventResize:
			e.screen.Sync()
		}
	}
	return dst
}

func isCtrlC(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'c' || ev.Rune() == 'C') && ev.Modifiers()&tcell.ModCtrl != 0
}
