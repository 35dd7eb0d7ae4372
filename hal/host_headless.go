package hal

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Frames int
	Width  int
	Height int
	// Keys are delivered one per frame, before that frame is drawn.
	Keys []KeyEvent
	// Snapshot, if set, receives the last frame as PNG.
	Snapshot string
}

// RunHeadless drives c with a software renderer, one frame per tick, until
// Frames frames are drawn, c requests exit, or ctx ends.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, c Client) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Frames <= 0 {
		cfg.Frames = 1
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("hal: invalid headless hz: %d", cfg.Hz)
	}

	r := NewSoftRenderer(cfg.Width, cfg.Height)
	if err := c.Init(r); err != nil {
		return err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	keys := cfg.Keys
	for frame := 0; frame < cfg.Frames; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if len(keys) > 0 {
				ev := keys[0]
				keys = keys[1:]
				if c.HandleKey(ev) {
					return writeSnapshot(r, cfg.Snapshot)
				}
			}
			r.Clear()
			if err := c.Frame(r, r.Aspect()); err != nil {
				return err
			}
			frame++
		}
	}
	return writeSnapshot(r, cfg.Snapshot)
}

func writeSnapshot(r *SoftRenderer, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hal: snapshot: %w", err)
	}
	if err := png.Encode(f, r.Image()); err != nil {
		f.Close()
		return fmt.Errorf("hal: snapshot %s: %w", path, err)
	}
	return f.Close()
}
