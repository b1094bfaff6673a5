package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/framebuffer"
	"github.com/iburimskiy/starfield/internal/loop"
	"github.com/iburimskiy/starfield/internal/lut"
	"github.com/iburimskiy/starfield/internal/starfield"
)

// game adapts the render loop to ebiten. Update runs a whole frame into the
// framebuffer and Draw shows the last presented one.
type game struct {
	loop *loop.Loop
	fb   *framebuffer.Framebuffer

	img     *ebiten.Image
	scratch []byte
}

func NewGame(logger *log.Logger) *game {
	fb := framebuffer.New(config.ScreenWidth, config.ScreenHeight)
	field := starfield.NewField(config.StarCount, starfield.NewRand(), lut.Generate())
	return &game{
		loop:    loop.New(field, fb, &events{}, logger),
		fb:      fb,
		scratch: make([]byte, 4*config.ScreenWidth*config.ScreenHeight),
	}
}

func (g *game) Update() error {
	if err := g.loop.Step(); err != nil {
		return err
	}
	if g.loop.State() == loop.Terminated {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.fb.Width(), g.fb.Height())
	}
	g.fb.Snapshot(g.scratch)
	g.img.WritePixels(g.scratch)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
