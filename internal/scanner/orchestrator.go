package scanner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"SwingScout/internal/collector"
	"SwingScout/internal/model"
	"SwingScout/internal/store"
	"SwingScout/internal/strategy"
	"SwingScout/internal/universe"
)

// ErrScanInProgress is returned when a trigger arrives while a scan is
// already running. The caller should retry later, not queue.
var ErrScanInProgress = errors.New("scan already in progress")

// Options tunes one orchestrated scan run.
type Options struct {
	PaceInterval  time.Duration // delay between symbols, 0 disables pacing
	ProgressEvery int           // progress log cadence in symbols
}

// Orchestrator drives the resolver and, per symbol, the fetch → compute →
// classify chain. Per-symbol failures are isolated; only a persistence
// failure propagates.
type Orchestrator struct {
	resolver   *universe.Resolver
	collector  *collector.Collector
	classifier *strategy.Classifier
	store      store.Store
	opts       Options

	mu sync.Mutex // held for the duration of one scan
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(r *universe.Resolver, c *collector.Collector, cl *strategy.Classifier, st store.Store, opts Options) *Orchestrator {
	return &Orchestrator{
		resolver:   r,
		collector:  c,
		classifier: cl,
		store:      st,
		opts:       opts,
	}
}

// Run executes one full scan: resolve the universe, scan every symbol,
// aggregate matches, persist the day's result set, and return the report.
// A second concurrent trigger is rejected with ErrScanInProgress. The report
// is non-nil even when persistence fails, so callers can still inspect what
// the scan found.
func (o *Orchestrator) Run(ctx context.Context) (*model.ScanReport, error) {
	if !o.mu.TryLock() {
		return nil, ErrScanInProgress
	}
	defer o.mu.Unlock()

	started := time.Now()
	report := &model.ScanReport{
		RunID:      uuid.NewString(),
		ScanDate:   store.DateKey(started),
		Provenance: model.ProvenanceLive,
	}
	log.Printf("[INFO] scan %s started", report.RunID)

	symbols := o.resolver.Resolve(ctx)
	log.Printf("[INFO] scan %s: universe of %d symbols", report.RunID, len(symbols))

	limiter := rate.NewLimiter(paceLimit(o.opts.PaceInterval), 1)

	for i, symbol := range symbols {
		if err := limiter.Wait(ctx); err != nil {
			// Process shutdown mid-scan; persist nothing and report the abort.
			return report, fmt.Errorf("scan %s interrupted: %w", report.RunID, err)
		}

		snap, err := o.collector.Snapshot(ctx, symbol)
		switch {
		case errors.Is(err, collector.ErrInsufficientData):
			report.Skipped++
		case err != nil:
			report.Errors++
			log.Printf("[WARN] skip %s: %v", symbol, err)
		default:
			report.Scanned++
			if match := o.classifier.Classify(snap); match != nil {
				report.Matches = append(report.Matches, *match)
				log.Printf("[INFO] signal: %s %s @ %.2f", match.Signal, match.Symbol, match.Price)
			}
		}

		if o.opts.ProgressEvery > 0 && (i+1)%o.opts.ProgressEvery == 0 {
			log.Printf("[INFO] progress: %d/%d — %d signals so far",
				i+1, len(symbols), len(report.Matches))
		}
	}

	if len(report.Matches) == 0 {
		// Degrade gracefully: downstream consumers always get representative
		// data, tagged so demo rows are never mistaken for live signals.
		log.Printf("[WARN] scan %s found no matches, substituting demo set", report.RunID)
		report.Matches = DemoMatches()
		report.Provenance = model.ProvenanceDemo
	}

	report.Duration = time.Since(started)

	if err := o.store.ReplaceDay(report.ScanDate, report.Provenance, report.Matches); err != nil {
		return report, fmt.Errorf("persist scan %s: %w", report.RunID, err)
	}

	log.Printf("[INFO] scan %s complete: %d matches (%s), %d skipped, %d errors, %s",
		report.RunID, report.MatchCount(), report.Provenance,
		report.Skipped, report.Errors, report.Duration.Round(time.Second))
	return report, nil
}

func paceLimit(interval time.Duration) rate.Limit {
	if interval <= 0 {
		return rate.Inf
	}
	return rate.Every(interval)
}
