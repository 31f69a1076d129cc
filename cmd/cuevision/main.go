package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"

	"cuevision/internal/classify"
	"cuevision/internal/config"
	"cuevision/internal/imaging"
	"cuevision/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("cuevision %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	mode := flag.String("mode", "", "game mode: pool or snooker (default from CUEVISION_GAME_MODE, else pool)")
	outPath := flag.String("out", "", "write an annotated copy of the image to this PNG path")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	// Results go to stdout; everything else to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *mode == "" {
		*mode = cfg.DefaultMode
	}
	gameMode := classify.GameMode(*mode)
	if !gameMode.Valid() {
		log.Fatalf("Unknown game mode %q (want pool or snooker)", *mode)
	}

	opts := []pipeline.Option{pipeline.WithMaxWorkingDim(cfg.MaxWorkingDim)}
	if cfg.LogLevel == "debug" {
		log.Printf("cuevision %s (built %s, commit %s)", Version, BuildTime, GitCommit)
		opts = append(opts,
			pipeline.WithTrace(log.Printf),
			pipeline.WithProgress(func(percent int, stage string) {
				log.Printf("progress %3d%% %s", percent, stage)
			}),
		)
	}

	imgPath := flag.Arg(0)
	img, err := imgio.Open(imgPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", imgPath, err)
	}

	detector := pipeline.New(opts...)
	result, err := detector.DetectImage(img, gameMode)
	if err != nil {
		log.Fatalf("Detection failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}

	if *outPath != "" {
		if err := writeOverlay(*outPath, img, result); err != nil {
			log.Fatalf("Failed to write overlay: %v", err)
		}
	}
}

// writeOverlay renders the detections onto a copy of the original image and
// saves it as PNG.
func writeOverlay(path string, img image.Image, result *pipeline.DetectionResult) error {
	annotated := imaging.Annotate(img, markers(result))
	return imgio.Save(path, annotated, imgio.PNGEncoder())
}

func usage() {
	fmt.Fprintln(os.Stderr, "cuevision - locate and classify pool/snooker balls in a photograph")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: cuevision [flags] <image>")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  CUEVISION_LOG_LEVEL=debug   enable debug logging")
	fmt.Fprintln(os.Stderr, "  CUEVISION_MAX_DIM=800       working resolution bound")
	fmt.Fprintln(os.Stderr, "  CUEVISION_GAME_MODE=pool    default game mode")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Detections are printed to stdout as JSON in original image coordinates.")
}

// markers converts detections to overlay markers in original coordinates.
func markers(result *pipeline.DetectionResult) []imaging.Marker {
	ms := make([]imaging.Marker, 0, len(result.Balls))
	for _, b := range result.Balls {
		label := ""
		if b.Number > 0 {
			label = strconv.Itoa(b.Number)
		}
		ms = append(ms, imaging.Marker{
			X:      int(b.X),
			Y:      int(b.Y),
			Radius: int(b.Radius),
			Label:  label,
			Hex:    b.Color,
		})
	}
	return ms
}
