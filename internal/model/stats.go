package model

import "fmt"

// Stats holds the line counters for a file or directory
type Stats struct {
	Lines   int64
	Code    int64
	Blank   int64
	Comment int64
}

// Add returns the elementwise sum of s and other
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Lines:   s.Lines + other.Lines,
		Code:    s.Code + other.Code,
		Blank:   s.Blank + other.Blank,
		Comment: s.Comment + other.Comment,
	}
}

// IsZero reports whether all counters are zero
func (s Stats) IsZero() bool {
	return s == Stats{}
}

// CodeShare returns the fraction of total's code lines held by s
func (s Stats) CodeShare(total Stats) float64 {
	if total.Code <= 0 {
		return 0
	}
	return float64(s.Code) / float64(total.Code)
}

// FormatSize formats a line count for display: plain below a thousand,
// then thousands (KL) and millions (ML) of lines with two decimals.
func FormatSize(n int64) string {
	const (
		KL = 1000
		ML = KL * 1000
	)

	switch {
	case n < KL:
		return fmt.Sprintf("%d", n)
	case n < ML:
		return fmt.Sprintf("%.2f KL", float64(n)/KL)
	default:
		return fmt.Sprintf("%.2f ML", float64(n)/ML)
	}
}
