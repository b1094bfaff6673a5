// Package term renders the star field onto a terminal through tcell.
package term

import (
	"errors"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
)

var ErrOffScreen = errors.New("term: point outside field")

var background = tcell.StyleDefault.Background(tcell.ColorBlack)

// Canvas maps a width×height field onto the terminal's cell grid.
type Canvas struct {
	screen        tcell.Screen
	width, height int
	ticker        *time.Ticker
}

func NewCanvas(screen tcell.Screen, width, height int) *Canvas {
	return &Canvas{screen: screen, width: width, height: height}
}

// Pace makes Present wait for the next tick of interval after each frame.
func (c *Canvas) Pace(interval time.Duration) {
	c.Close()
	c.ticker = time.NewTicker(interval)
}

func (c *Canvas) Close() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

func (c *Canvas) Clear(col color.RGBA) {
	c.screen.Fill(' ', background.Background(rgb(col)))
}

func (c *Canvas) DrawPoint(x, y int, col color.RGBA) error {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ErrOffScreen
	}
	cols, rows := c.screen.Size()
	if cols <= 0 || rows <= 0 {
		return ErrOffScreen
	}
	c.screen.SetContent(x*cols/c.width, y*rows/c.height, glyph(col.R), nil, background.Foreground(rgb(col)))
	return nil
}

func (c *Canvas) Present() error {
	c.screen.Show()
	if c.ticker != nil {
		<-c.ticker.C
	}
	return nil
}

func glyph(brightness uint8) rune {
	switch {
	case brightness < 86:
		return '.'
	case brightness < 171:
		return '+'
	default:
		return '*'
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
