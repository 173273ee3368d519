package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/docbound/docbound-mcp/internal/detect"
	"github.com/docbound/docbound-mcp/internal/imaging"
	"github.com/docbound/docbound-mcp/internal/preprocess"
)

// runDetectCLI implements `docbound-mcp detect <path> [flags]`. It loads the
// image directly (bypassing the MCP cache, which exists for the server's
// repeated-call lifetime rather than a one-shot CLI invocation), runs the
// requested detector, writes the boundary overlay to disk, and prints a
// human-readable summary to stdout.
func runDetectCLI(args []string) {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	out := fs.String("out", "", "overlay PNG output path (default <path>.boundaries.png)")
	maxDimension := fs.Int("max-dimension", 0, "downscale the image so its longer side is at most n pixels")
	enhanced := fs.Bool("enhanced", false, "run the multi-strategy detector")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: docbound-mcp detect <path> [--out overlay.png] [--max-dimension N] [--enhanced]")
		os.Exit(2)
	}
	path := fs.Arg(0)

	cache := imaging.NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", path, err)
		os.Exit(1)
	}

	r, err := imaging.RasterFromImage(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to convert %s: %v\n", path, err)
		os.Exit(1)
	}

	if *maxDimension > 0 {
		plan := preprocess.Plan(r.Width, r.Height, *maxDimension)
		r, err = preprocess.Downscale(r, plan)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to downscale %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	var result detect.Result
	if *enhanced {
		result = detect.DetectEnhanced(r, detect.DefaultOptions())
	} else {
		result, err = detect.Detect(r, detect.DefaultOptions())
		if err != nil {
			fmt.Fprintf(os.Stderr, "detection failed: %v\n", err)
			os.Exit(1)
		}
	}

	overlay, err := imaging.RenderBoundaries(r, result, imaging.RenderOptions{LabelVertices: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render overlay: %v\n", err)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		outPath = defaultOverlayPath(path)
	}
	if err := os.WriteFile(outPath, overlay, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("detected %d boundary(ies) in %s\n", result.Stats.TotalDetected, path)
	for i, b := range result.Boundaries {
		fmt.Printf("  [%d] type=%s vertices=%d area=%.0f convex=%v\n", i, b.Type, b.NumVertices, b.Area, b.IsConvex)
	}
	fmt.Printf("overlay written to %s\n", outPath)
}

func defaultOverlayPath(path string) string {
	if ext := strings.LastIndex(path, "."); ext > strings.LastIndex(path, "/") {
		return path[:ext] + ".boundaries.png"
	}
	return path + ".boundaries.png"
}
