package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"ppmview/app"
	"ppmview/config"
	"ppmview/hal"
	"ppmview/internal/buildinfo"
	"ppmview/ppm"
)

const defaultImage = "out.ppm"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ppmview:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	path := defaultImage
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return errors.New("usage: ppmview [path]")
	}

	cfg := config.Default()
	if cfgPath, err := config.Path(); err == nil {
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}

	var log hal.Logger = hal.NopLogger{}
	if cfg.Verbose {
		log = hal.NewLogger(os.Stderr)
	}

	img, err := ppm.DecodeFile(path)
	if err != nil {
		return err
	}
	log.WriteLineString(fmt.Sprintf("ppmview %s: %s %dx%d maxValue %d",
		buildinfo.Short(), path, img.Width, img.Height, img.MaxValue))

	v := app.New(img, log, app.Config{HUD: cfg.HUD})

	if cfg.Headless.Enabled {
		hc, err := cfg.HeadlessConfig()
		if err != nil {
			return err
		}
		log.WriteLineString(fmt.Sprintf("ppmview: headless %dx%d, %d frames", hc.Width, hc.Height, hc.Frames))
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, hc, v); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	wc := cfg.WindowConfig()
	wc.Title = buildinfo.Title(wc.Title)
	log.WriteLineString(fmt.Sprintf("ppmview: window %dx%d", wc.Width, wc.Height))
	return hal.RunWindow(wc, v)
}
