package model

import "time"

// Signal is the classification outcome attached to a match.
type Signal string

const (
	SignalBuy Signal = "BUY"
)

// Provenance marks whether a persisted result set came from a real scan or
// from the static demo fallback.
type Provenance string

const (
	ProvenanceLive Provenance = "live"
	ProvenanceDemo Provenance = "demo"
)

// ScanMatch is one symbol that passed classification (or was entered manually).
type ScanMatch struct {
	Symbol     string
	Signal     Signal
	Price      float64
	Conditions string
	Entry      float64
	StopLoss   float64
	Target     float64
}

// ScanReport summarizes one orchestrated scan run.
type ScanReport struct {
	RunID      string
	ScanDate   string
	Matches    []ScanMatch
	Provenance Provenance
	Scanned    int
	Skipped    int
	Errors     int
	Duration   time.Duration
}

// MatchCount returns the number of matches in the report.
func (r *ScanReport) MatchCount() int { return len(r.Matches) }

// Demo reports whether the result set is the static fallback.
func (r *ScanReport) Demo() bool { return r.Provenance == ProvenanceDemo }
