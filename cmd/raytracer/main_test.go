package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"raytracer/internal/config"
)

func testConfig(dir string) config.Config {
	cfg := config.Config{OutputDir: dir, Workers: 1}
	cfg.Resolve(config.Flags{})
	return cfg
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := run(testConfig(dir), nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != usage+"\n" {
		t.Errorf("output = %q, want %q", got, usage+"\n")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("bad usage produced %d files", len(entries))
	}
}

func TestRunUnknownScenePrintsUsage(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := run(testConfig(dir), []string{"teapot"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != usage+"\n" {
		t.Errorf("output = %q, want %q", got, usage+"\n")
	}
}

func TestRunColorSwatch(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := run(testConfig(dir), []string{"colorswatch"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Done.") {
		t.Errorf("output missing Done.: %q", out.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "color_swatch.ppm"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n256 256\n255\n")) {
		t.Errorf("unexpected PPM header: %q", data[:20])
	}
	if !bytes.HasPrefix(bytes.TrimPrefix(data, []byte("P3\n256 256\n255\n")), []byte("0 255 63\n")) {
		t.Error("first pixel is not 0 255 63")
	}
}

func TestRunBlueSkyWithPreview(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Preview = "png"
	var out bytes.Buffer

	if err := run(cfg, []string{"bluesky"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "blue_sky.ppm"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n400 225\n255\n")) {
		t.Errorf("unexpected PPM header: %q", data[:20])
	}

	if _, err := os.Stat(filepath.Join(dir, "blue_sky.png")); err != nil {
		t.Errorf("preview: %v", err)
	}
}

func TestRunBadOutputDir(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing", "nested"))
	var out bytes.Buffer

	if err := run(cfg, []string{"colorswatch"}, &out); err == nil {
		t.Error("run into a missing directory succeeded")
	}
}
