package counter

import (
	"context"

	"github.com/lumipallolabs/codemap/internal/model"
)

// Record is one per-language result reported for a path
type Record struct {
	Language string `json:"Name"`
	Lines    int64  `json:"Lines"`
	Code     int64  `json:"Code"`
	Blank    int64  `json:"Blank"`
	Comment  int64  `json:"Comment"`
}

// Stats converts the record to model.Stats
func (r Record) Stats() model.Stats {
	return model.Stats{
		Lines:   r.Lines,
		Code:    r.Code,
		Blank:   r.Blank,
		Comment: r.Comment,
	}
}

// Counter counts lines for a file or directory
type Counter interface {
	// Count returns the per-language records for path
	Count(ctx context.Context, path string) ([]Record, error)
}

// Sum folds records into one aggregate
func Sum(records []Record) model.Stats {
	var total model.Stats
	for _, r := range records {
		total = total.Add(r.Stats())
	}
	return total
}
