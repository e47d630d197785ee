// cmd/rc5kat — run RC5 known-answer vectors
//
// Usage:
//
//	go run ./cmd/rc5kat
//	go run ./cmd/rc5kat -vectors kat.yaml -report report.json
//
// Without -vectors (or vector_file in the config) the built-in
// reference vectors are checked: the RC5-32/12/16 suite plus one
// vector each at 16, 32 and 64-bit words.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rc5-cipher/internal/batch"
	"rc5-cipher/internal/config"
	"rc5-cipher/internal/vectors"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	vectorFile := flag.String("vectors", "", "Vector file (.json, .yaml); default: built-in reference vectors")
	reportPath := flag.String("report", "", "Write a JSON report to this path")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Check only the first N vectors")

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
		VectorFile: *vectorFile,
		ReportPath: *reportPath,
		Rounds:     -1,
		Workers:    *workers,
	})

	// Load vectors
	source := "built-in reference"
	vecs := vectors.Reference()
	if cfg.VectorFile != "" {
		var err error
		vecs, err = vectors.Load(cfg.VectorFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading vectors: %v\n", err)
			os.Exit(1)
		}
		source = cfg.VectorFile
	}

	// Limit for testing
	if *testN > 0 && *testN < len(vecs) {
		vecs = vecs[:*testN]
	}

	if len(vecs) == 0 {
		fmt.Println("No vectors to check.")
		os.Exit(0)
	}

	fmt.Printf("RC5 known-answer vectors: %s\n", source)
	fmt.Printf("Vectors: %d, Workers: %d\n", len(vecs), cfg.Workers)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Workers:  cfg.Workers,
		Progress: cfg.Progress(),
	}, vecs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.3fs\n", elapsed.Seconds())

	// Count results
	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}

	fmt.Printf("Passed: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := 20
		if len(failed) < limit {
			limit = len(failed)
		}
		for _, r := range failed[:limit] {
			fmt.Printf("  %s: %s\n", r.Name, r.Error)
		}
	}

	// Write report
	if cfg.ReportPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.ReportPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: report dir: %v\n", err)
		} else if err := batch.WriteReport(cfg.ReportPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: report write failed: %v\n", err)
		} else {
			fmt.Printf("Report: %s\n", cfg.ReportPath)
		}
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
