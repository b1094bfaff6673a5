package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/loop"
	"github.com/iburimskiy/starfield/internal/lut"
	"github.com/iburimskiy/starfield/internal/starfield"
	"github.com/iburimskiy/starfield/internal/term"
)

func main() {
	// Log lines are held until the screen is released so they do not
	// scribble over the frame.
	var logBuf bytes.Buffer
	logger := log.NewWithOptions(&logBuf, log.Options{
		Prefix:          "starfield",
		ReportTimestamp: true,
	})
	flush := func() { _, _ = os.Stderr.Write(logBuf.Bytes()) }

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("create screen", "err", err)
		flush()
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("init screen", "err", err)
		flush()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	canvas := term.NewCanvas(screen, config.ScreenWidth, config.ScreenHeight)
	canvas.Pace(config.FrameInterval)

	field := starfield.NewField(config.StarCount, starfield.NewRand(), lut.Generate())
	l := loop.New(field, canvas, term.NewEvents(screen), logger)
	err = l.Run(ctx)

	canvas.Close()
	screen.Fini()
	stop()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run", "err", err)
		flush()
		os.Exit(1)
	}
	flush()
}
