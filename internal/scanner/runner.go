// internal/scanner/runner.go
package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/ps-vitor/ss-monitor/internal/domain"
	"github.com/ps-vitor/ss-monitor/internal/ledger"
	"github.com/ps-vitor/ss-monitor/pkg/logger"
)

// Result is one location's outcome within a run.
type Result struct {
	Location string             `json:"location"`
	Summary  domain.ScanSummary `json:"summary"`
}

// Runner drives a full pass over every configured location and persists the
// ledger exactly once at the end, batching all locations' updates into a
// single write.
type Runner struct {
	scanner   *Scanner
	locations []domain.Location
	statePath string
	log       *logger.Logger

	mu     sync.Mutex
	last   []Result
	lastAt time.Time
}

func NewRunner(scanner *Scanner, locations []domain.Location, statePath string, log *logger.Logger) *Runner {
	return &Runner{
		scanner:   scanner,
		locations: locations,
		statePath: statePath,
		log:       log,
	}
}

// Run scans every location sequentially, in configured order. A failed
// location is logged and contributes zero counts; the remaining locations
// still run, and the ledger persist is attempted regardless. Runs never
// overlap: a second caller blocks until the current pass finishes.
func (r *Runner) Run(ctx context.Context) []Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := ledger.Load(r.statePath)
	results := make([]Result, 0, len(r.locations))

	for _, loc := range r.locations {
		summary, err := r.scanner.Scan(ctx, loc, seen)
		if err != nil {
			r.log.Error("scan failed", "location", loc.Name, "error", err)
		} else {
			r.log.Info("scan finished", "location", loc.Name,
				"fetched", summary.Fetched, "new", summary.New, "notified", summary.Notified)
		}
		results = append(results, Result{Location: loc.Name, Summary: summary})
	}

	if err := seen.Persist(); err != nil {
		r.log.Error("persist ledger failed", "path", r.statePath, "error", err)
	}

	r.last = results
	r.lastAt = time.Now()
	return results
}

// Last returns the results of the most recent pass and when it finished.
// The zero time means no pass has run yet.
func (r *Runner) Last() ([]Result, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.lastAt
}
