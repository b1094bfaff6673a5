// Package loop drives the per-frame event, update and render cycle.
package loop

import (
	"context"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/starfield/internal/input"
	"github.com/iburimskiy/starfield/internal/starfield"
)

// State is the loop's lifecycle state.
type State uint8

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Canvas is the drawing surface a frame is rendered to.
type Canvas interface {
	starfield.Plotter
	Clear(c color.RGBA)
	Present() error
}

var black = color.RGBA{A: 0xff}

// Loop owns the field, canvas and event source for the life of the program.
type Loop struct {
	field  *starfield.Field
	canvas Canvas
	events input.Source
	log    *log.Logger

	state  State
	frames uint64
	buf    []input.Event
}

func New(field *starfield.Field, canvas Canvas, events input.Source, logger *log.Logger) *Loop {
	return &Loop{
		field:  field,
		canvas: canvas,
		events: events,
		log:    logger,
		buf:    make([]input.Event, 0, 8),
	}
}

func (l *Loop) State() State   { return l.state }
func (l *Loop) Frames() uint64 { return l.frames }

// Step runs one frame. An exit event terminates the loop and abandons the
// frame before anything is drawn.
func (l *Loop) Step() error {
	if l.state == Terminated {
		return nil
	}

	l.buf = l.events.Poll(l.buf[:0])
	for _, ev := range l.buf {
		if input.IsExit(ev) {
			l.state = Terminated
			l.log.Debug("exit requested", "kind", ev.Kind, "key", ev.Key)
			l.log.Info("terminated", "frames", l.frames)
			return nil
		}
	}

	l.canvas.Clear(black)
	l.field.Render(l.canvas)
	l.frames++

	if err := l.canvas.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", l.frames, err)
	}
	return nil
}

// Run steps until the loop terminates, the context is cancelled, or a frame
// cannot be presented.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("running", "stars", len(l.field.Stars))
	for l.state == Running {
		select {
		case <-ctx.Done():
			l.log.Debug("context done", "frames", l.frames)
			return ctx.Err()
		default:
		}
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}
