package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/starfield/internal/input"
)

// events reports window-close requests and keys pressed since the last tick.
// Window closing must be handled by the game (ebiten.SetWindowClosingHandled).
type events struct {
	keys []ebiten.Key
}

func (e *events) Poll(dst []input.Event) []input.Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, input.Quit())
	}
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		dst = append(dst, input.KeyDown(keyFor(k)))
	}
	return dst
}

func keyFor(k ebiten.Key) input.Key {
	if k == ebiten.KeyEscape {
		return input.KeyEscape
	}
	return input.KeyUnknown
}
