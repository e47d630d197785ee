package batch

import (
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"rc5-cipher/internal/vectors"
)

// Config holds the settings for a batch run.
type Config struct {
	Workers int
	// Progress is the interval between progress lines; zero disables them.
	Progress time.Duration
}

// Result holds the outcome of checking one vector.
type Result struct {
	Name       string `json:"name"`
	WordBits   int    `json:"word_bits"`
	Rounds     int    `json:"rounds"`
	Success    bool   `json:"success"`
	Ciphertext string `json:"ciphertext,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Run checks all vectors using a worker pool. Results are in input order.
//
// Schedules are expanded once per distinct (width, rounds, key) before the
// workers start and are shared read-only between them.
func Run(cfg Config, vecs []vectors.Vector) []Result {
	total := len(vecs)
	results := make([]Result, total)
	if total == 0 {
		return results
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	scheds, errs := expandAll(vecs)

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f vectors/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	vecChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range vecChan {
				results[idx] = checkVector(vecs[idx], scheds[idx], errs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range vecs {
		vecChan <- i
	}
	close(vecChan)

	wg.Wait()
	close(done)

	return results
}

// expandAll resolves the schedule for every vector, expanding each
// distinct schedule ID once. A vector whose ID or schedule cannot be
// built gets an error in the matching slot instead.
func expandAll(vecs []vectors.Vector) ([]vectors.Transformer, []error) {
	scheds := make([]vectors.Transformer, len(vecs))
	errs := make([]error, len(vecs))
	type entry struct {
		t   vectors.Transformer
		err error
	}
	cache := make(map[string]entry)
	for i, v := range vecs {
		id, err := v.ScheduleID()
		if err != nil {
			errs[i] = err
			continue
		}
		e, ok := cache[id]
		if !ok {
			e.t, e.err = vectors.Expand(v)
			cache[id] = e
		}
		scheds[i], errs[i] = e.t, e.err
	}
	return scheds, errs
}

func checkVector(v vectors.Vector, t vectors.Transformer, expandErr error) Result {
	res := Result{
		Name:     v.Name,
		WordBits: v.WordBits,
		Rounds:   v.Rounds,
	}
	if expandErr != nil {
		res.Error = expandErr.Error()
		return res
	}

	got, err := vectors.Check(v, t)
	if got != nil {
		res.Ciphertext = hex.EncodeToString(got)
	}
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}
