package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"raytracer/internal/config"
	"raytracer/internal/ppm"
	"raytracer/internal/preview"
	"raytracer/internal/render"
	"raytracer/internal/scene"
)

const usage = "Usage: ./raytracer [colorswatch|bluesky]"

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: current directory)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	previewFmt := flag.String("preview", "", "Also write a preview image: webp, tga or png")
	previewScale := flag.Int("scale", 0, "Integer scale factor for the preview image")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:    *outputDir,
		Workers:      *workers,
		Preview:      *previewFmt,
		PreviewScale: *previewScale,
	})

	if !preview.Valid(cfg.Preview) {
		fmt.Fprintf(os.Stderr, "Error: unknown preview format %q\n", cfg.Preview)
		os.Exit(1)
	}

	if err := run(cfg, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches on the scene command and writes the output files. Bad usage
// prints the usage line and succeeds; only I/O failures return an error.
func run(cfg config.Config, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		fmt.Fprintln(stdout, usage)
		return nil
	}

	var (
		s    render.Scene
		name string
	)
	switch args[0] {
	case "colorswatch":
		s, name = scene.NewColorSwatch(), "color_swatch"
	case "bluesky":
		s, name = scene.NewBlueSky(), "blue_sky"
	default:
		fmt.Fprintln(stdout, usage)
		return nil
	}

	fb := render.Render(s, render.Options{
		Workers:  cfg.Workers,
		Progress: stdout,
	})

	base := filepath.Join(cfg.OutputDir, name)
	if err := writePPM(base+".ppm", fb); err != nil {
		return err
	}
	if err := preview.Write(base, cfg.Preview, fb, cfg.PreviewScale); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Done.")
	return nil
}

func writePPM(path string, fb *render.FrameBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return ppm.Encode(f, fb)
}
