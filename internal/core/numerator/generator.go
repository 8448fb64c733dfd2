// Package numerator provides domain contracts for radicado auto-numbering.
// Implementations live in infrastructure layer.
package numerator

import (
	"context"
	"fmt"
	"time"
)

// CounterKey identifies one allocation sequence: a legal-area code plus a
// period string (year-semester). Sequences for different keys are fully
// independent.
type CounterKey struct {
	Area   string
	Period string
}

func (k CounterKey) String() string {
	return k.Area + "/" + k.Period
}

// Generator mints sequential case-filing numbers.
type Generator interface {
	// AllocateNext returns the next sequence value for the key, starting at 1.
	// For a fixed key the values ever returned are exactly {1..n}: no
	// duplicates, no gaps, under arbitrary concurrent callers.
	AllocateNext(ctx context.Context, key CounterKey) (int64, error)

	// NextRadicado allocates and formats the next case-filing number for the
	// configured legal area at the given time.
	// Pattern: AREA-NNN-PERIOD (e.g. PE-001-2025-1).
	NextRadicado(ctx context.Context, cfg Config, at time.Time) (string, error)
}

// Config holds radicado formatting configuration.
type Config struct {
	// Area is the legal-area code prefix (e.g. "PE", "LA", "CI").
	Area string

	// PadWidth is the minimum sequence number width (default 3).
	PadWidth int
}

// DefaultConfig returns standard formatting for a legal area.
func DefaultConfig(area string) Config {
	return Config{
		Area:     area,
		PadWidth: 3,
	}
}

// PeriodFor returns the year-semester period string a moment belongs to,
// e.g. "2025-1" for January through June, "2025-2" otherwise. Counters reset
// each semester.
func PeriodFor(t time.Time) string {
	semester := 1
	if t.Month() >= time.July {
		semester = 2
	}
	return fmt.Sprintf("%d-%d", t.Year(), semester)
}

// FormatRadicado renders the final case-filing number.
func FormatRadicado(cfg Config, period string, n int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 3
	}
	return fmt.Sprintf("%s-%0*d-%s", cfg.Area, padWidth, n, period)
}

// ParseSequence extracts the numeric part from a formatted radicado.
// Returns -1 if parsing fails.
func ParseSequence(radicado string) int64 {
	var num int64
	if _, err := fmt.Sscanf(radicado, "%*[^-]-%d-", &num); err == nil {
		return num
	}
	return -1
}
