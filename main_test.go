package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ppmview/config"
	"ppmview/ppm"
)

func setupConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	path, err := config.Path()
	if err != nil {
		t.Fatal(err)
	}
	if body == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeRed(t *testing.T, path string) {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 0xff, 0xff
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := ppm.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRunDefaultPath(t *testing.T) {
	setupConfig(t, "[headless]\nenabled = true\nhz = 1000\nwidth = 4\nheight = 4\n")
	dir := t.TempDir()
	chdir(t, dir)

	err := run(nil)
	if !errors.Is(err, ppm.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), defaultImage) {
		t.Fatalf("error does not name %s: %v", defaultImage, err)
	}

	writeRed(t, filepath.Join(dir, defaultImage))
	if err := run(nil); err != nil {
		t.Fatalf("run with %s present failed: %v", defaultImage, err)
	}
}

func TestRunUsage(t *testing.T) {
	setupConfig(t, "")
	if err := run([]string{"a.ppm", "b.ppm"}); err == nil {
		t.Fatalf("expected usage error")
	}
}

func TestRunMissingFile(t *testing.T) {
	setupConfig(t, "")
	err := run([]string{filepath.Join(t.TempDir(), "missing.ppm")})
	if !errors.Is(err, ppm.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestRunMalformedHeader(t *testing.T) {
	setupConfig(t, "")
	path := filepath.Join(t.TempDir(), "bad.ppm")
	if err := os.WriteFile(path, []byte("P6\n2 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run([]string{path}); !errors.Is(err, ppm.ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestRunHeadlessSnapshot(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "snap.png")
	setupConfig(t, `
[headless]
enabled = true
hz = 1000
frames = 2
width = 8
height = 8
snapshot = "`+filepath.ToSlash(snap)+`"
`)

	red := filepath.Join(dir, "red.ppm")
	writeRed(t, red)

	if err := run([]string{red}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	sf, err := os.Open(snap)
	if err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
	defer sf.Close()
	img, err := png.Decode(sf)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.RGBAModel.Convert(img.At(4, 4)).(color.RGBA); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("center pixel = %v, want red", got)
	}
}

func TestRunBadConfig(t *testing.T) {
	setupConfig(t, "[window]\nwidth = -1\n")
	if err := run([]string{"out.ppm"}); err == nil {
		t.Fatalf("expected config error")
	}
}
