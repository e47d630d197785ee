package batch

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rc5-cipher/internal/vectors"
)

func TestRunReference(t *testing.T) {
	vecs := vectors.Reference()
	for _, workers := range []int{0, 1, 4, 32} {
		results := Run(Config{Workers: workers}, vecs)
		if len(results) != len(vecs) {
			t.Fatalf("workers=%d: %d results for %d vectors", workers, len(results), len(vecs))
		}
		for i, r := range results {
			if r.Name != vecs[i].Name {
				t.Errorf("workers=%d: result %d is %q, want %q", workers, i, r.Name, vecs[i].Name)
			}
			if !r.Success {
				t.Errorf("workers=%d: %s failed: %s", workers, r.Name, r.Error)
			}
		}
	}
}

func TestRunFailures(t *testing.T) {
	good := vectors.Reference()[2]
	bad := good
	bad.Name = "flipped"
	bad.Ciphertext = "21a5dbee154b8f6e"
	badWidth := good
	badWidth.Name = "width"
	badWidth.WordBits = 8

	results := Run(Config{Workers: 2}, []vectors.Vector{good, bad, badWidth})
	if !results[0].Success {
		t.Errorf("good vector failed: %s", results[0].Error)
	}
	if results[1].Success || !strings.Contains(results[1].Error, "mismatch") {
		t.Errorf("flipped vector: %+v", results[1])
	}
	if results[1].Ciphertext != "21a5dbee154b8f6d" {
		t.Errorf("flipped vector ciphertext = %q", results[1].Ciphertext)
	}
	if results[2].Success || !strings.Contains(results[2].Error, "word size") {
		t.Errorf("bad width vector: %+v", results[2])
	}
}

func TestRunEmpty(t *testing.T) {
	if got := Run(Config{Workers: 4}, nil); len(got) != 0 {
		t.Fatalf("got %d results", len(got))
	}
}

func TestWriteReport(t *testing.T) {
	results := []Result{
		{Name: "a", Success: true},
		{Name: "b", Error: "boom"},
		{Name: "c", Success: true},
	}
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteReport(path, results); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rep Report
	if err := json.Unmarshal(raw, &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Total != 3 || rep.Passed != 2 || rep.Failed != 1 {
		t.Errorf("report counts = %d/%d/%d", rep.Total, rep.Passed, rep.Failed)
	}
	if len(rep.Results) != 3 || rep.Results[1].Error != "boom" {
		t.Errorf("report results = %+v", rep.Results)
	}
}

func TestRunMalformedKey(t *testing.T) {
	good := vectors.Vector{
		Name:       "short key",
		WordBits:   32,
		Rounds:     12,
		Key:        "00",
		Plaintext:  "0000000000000000",
		Ciphertext: "0000000000000000",
	}
	// the ciphertext is whatever "00" encrypts to, so a reused schedule
	// would make the malformed vector pass
	tr, err := vectors.Expand(good)
	if err != nil {
		t.Fatal(err)
	}
	ct, err := tr.Encode(make([]byte, 8))
	if err != nil {
		t.Fatal(err)
	}
	good.Ciphertext = hex.EncodeToString(ct)
	odd := good
	odd.Name = "odd-length key"
	odd.Key = "000"

	for _, order := range [][]vectors.Vector{{good, odd}, {odd, good}} {
		results := Run(Config{Workers: 1}, order)
		for _, r := range results {
			switch r.Name {
			case good.Name:
				if !r.Success {
					t.Errorf("valid vector failed: %s", r.Error)
				}
			case odd.Name:
				if r.Success || !strings.Contains(r.Error, "odd length") {
					t.Errorf("odd-length key: %+v", r)
				}
			}
		}
	}
}
