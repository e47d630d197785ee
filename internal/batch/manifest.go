package batch

import (
	"encoding/json"
	"os"
	"time"
)

// Report is the JSON document written after a batch run.
type Report struct {
	Generated time.Time `json:"generated"`
	Total     int       `json:"total"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	Results   []Result  `json:"results"`
}

// NewReport summarizes results.
func NewReport(results []Result) Report {
	r := Report{
		Generated: time.Now().UTC(),
		Total:     len(results),
		Results:   results,
	}
	for _, res := range results {
		if res.Success {
			r.Passed++
		} else {
			r.Failed++
		}
	}
	return r
}

// WriteReport writes the report for results to path.
func WriteReport(path string, results []Result) error {
	data, err := json.MarshalIndent(NewReport(results), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
