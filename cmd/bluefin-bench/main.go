// Command bluefin-bench is a headless smoke-test/benchmark harness: it
// decodes a JSON board fixture, runs the bot once, and prints the chosen
// move and timing/telemetry. It is not the game-protocol client — that
// collaborator is out of scope for this core (see spec.md §1).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/iitalics/botris-battle-bluefin/internal/bot"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/piece"
	"github.com/iitalics/botris-battle-bluefin/internal/render"
	"github.com/iitalics/botris-battle-bluefin/internal/telemetry"
)

var (
	fixturePath  = flag.String("fixture", "", "path to a JSON board fixture (default: stdin)")
	renderPath   = flag.String("render", "", "if set, write a PNG snapshot of the root matrix here")
	telemetryDir = flag.String("telemetry-dir", "", "override the telemetry database directory (also via BLUEFIN_TELEMETRY_DIR)")
	verbose      = flag.Bool("v", false, "log per-generation search progress")
)

// fixture is the JSON shape bluefin-bench reads: rows are listed bottom
// row first, matching the core's y=0-at-bottom convention.
type fixture struct {
	Current string   `json:"current"`
	Hold    *string  `json:"hold"`
	Queue   []string `json:"queue"`
	Rows    []uint16 `json:"rows"`
	B2B     bool     `json:"b2b"`
}

func main() {
	flag.Parse()

	path := *fixturePath
	if path == "" {
		path = os.Getenv("BLUEFIN_FIXTURE")
	}

	var r *os.File
	if path == "" {
		r = os.Stdin
	} else {
		var err error
		r, err = os.Open(path)
		if err != nil {
			log.Fatalf("[bluefin-bench] opening fixture: %v", err)
		}
		defer r.Close()
	}

	var f fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		log.Fatalf("[bluefin-bench] decoding fixture: %v", err)
	}

	current, err := parseShape(f.Current)
	if err != nil {
		log.Fatalf("[bluefin-bench] current: %v", err)
	}
	var hold *piece.Shape
	if f.Hold != nil {
		s, err := parseShape(*f.Hold)
		if err != nil {
			log.Fatalf("[bluefin-bench] hold: %v", err)
		}
		hold = &s
	}
	queue := make([]piece.Shape, len(f.Queue))
	for i, s := range f.Queue {
		shape, err := parseShape(s)
		if err != nil {
			log.Fatalf("[bluefin-bench] queue[%d]: %v", i, err)
		}
		queue[i] = shape
	}

	mat := matrix.View(f.Rows)

	if *renderPath != "" {
		out, err := os.Create(*renderPath)
		if err != nil {
			log.Fatalf("[bluefin-bench] creating render output: %v", err)
		}
		if err := render.WriteMatrix(out, mat); err != nil {
			log.Fatalf("[bluefin-bench] rendering matrix: %v", err)
		}
		out.Close()
		log.Printf("[bluefin-bench] wrote root matrix snapshot to %s", *renderPath)
	}

	var logger *log.Logger
	if *verbose {
		logger = log.Default()
	}

	start := time.Now()
	decision, ok := bot.Decide(current, hold, queue, mat, bot.Options{B2B: f.B2B, Logger: logger})
	elapsed := time.Since(start)

	if !ok {
		fmt.Println("no move")
		os.Exit(1)
	}

	fmt.Printf("hold=%t inputs=%v (%s)\n", decision.Hold, decision.Inputs, elapsed)

	store, err := telemetry.Open(*telemetryDir)
	if err != nil {
		log.Printf("[bluefin-bench] telemetry unavailable: %v", err)
		return
	}
	defer store.Close()

	telemetry.LogSummary(log.Default(), decision.Stats)
	if err := store.Record(uint64(time.Now().UnixNano()), f.Rows, decision.Stats); err != nil {
		log.Printf("[bluefin-bench] recording telemetry: %v", err)
	}
}

func parseShape(s string) (piece.Shape, error) {
	switch s {
	case "I":
		return piece.I, nil
	case "J":
		return piece.J, nil
	case "L":
		return piece.L, nil
	case "O":
		return piece.O, nil
	case "S":
		return piece.S, nil
	case "T":
		return piece.T, nil
	case "Z":
		return piece.Z, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", s)
	}
}
