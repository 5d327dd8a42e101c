// Command rust-raytracer renders a JSON scene description to a PNG
// image: `rust-raytracer [--thread-count N] scene.json out.png`.
// Grounded on original_source/main.rs for the CLI-argument/output-file
// contract and on the teacher's main.go for the flag-plus-positional-
// args idiom and log.Logger wiring.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/trevday/rust-raytracer/pkg/core"
	"github.com/trevday/rust-raytracer/pkg/integrator"
	"github.com/trevday/rust-raytracer/pkg/renderer"
	"github.com/trevday/rust-raytracer/pkg/scene"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rust-raytracer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	threadCount := flag.Int("thread-count", 2, "number of parallel render workers (>= 1)")
	flag.Parse()

	if *threadCount < 1 {
		return fmt.Errorf("--thread-count must be >= 1, got %d", *threadCount)
	}

	args := flag.Args()
	if len(args) != 2 {
		return fmt.Errorf("usage: %s [--thread-count N] <scene.json> <out.png>", os.Args[0])
	}
	scenePath, outPath := args[0], args[1]

	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("output path %q already exists", outPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat output path %q: %w", outPath, err)
	}

	sc, err := scene.Load(scenePath)
	if err != nil {
		return err
	}

	logger := log.New(os.Stdout, "", 0)
	integ := integrator.NewPathIntegrator(skyBackground)

	rgb := renderer.Render(sc, integ, sc.Width, sc.Height, sc.Samples, *threadCount, 1, logger)

	return writePNG(outPath, sc.Width, sc.Height, rgb)
}

// skyBackground is the classic sky-gradient miss color, a white-to-blue
// blend by the ray's vertical component, per original_source/main.rs.
func skyBackground(ray core.Ray) core.Vector3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1)
	white := core.NewVector3(1, 1, 1)
	sky := core.NewVector3(0.5, 0.7, 1.0)
	return white.Scale(1 - t).Add(sky.Scale(t))
}

func writePNG(path string, width, height int, rgb []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create output %q: %w", path, err)
	}
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: rgb[i], G: rgb[i+1], B: rgb[i+2], A: 255})
		}
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG %q: %w", path, err)
	}
	return nil
}
