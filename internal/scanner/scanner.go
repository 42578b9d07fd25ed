// internal/scanner/scanner.go

// Package scanner drives the listing pipeline for configured locations:
// fetch, parse, deduplicate, price-filter, notify.
package scanner

import (
	"context"
	"fmt"

	"github.com/ps-vitor/ss-monitor/internal/domain"
	"github.com/ps-vitor/ss-monitor/internal/ledger"
	"github.com/ps-vitor/ss-monitor/internal/parser"
	"github.com/ps-vitor/ss-monitor/internal/price"
	"github.com/ps-vitor/ss-monitor/pkg/logger"
)

// Fetcher retrieves one raw source document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Notifier delivers one plain-text alert.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Scanner checks one location at a time for new listings under the ceiling.
type Scanner struct {
	fetcher   Fetcher
	notifier  Notifier
	parser    *parser.Parser
	extractor *price.Extractor
	ceiling   int
	log       *logger.Logger
}

func New(fetcher Fetcher, notifier Notifier, extractor *price.Extractor, ceiling int, log *logger.Logger) *Scanner {
	return &Scanner{
		fetcher:   fetcher,
		notifier:  notifier,
		parser:    parser.New(),
		extractor: extractor,
		ceiling:   ceiling,
		log:       log,
	}
}

// Scan fetches and processes one location. Every listing observed for the
// first time is marked seen immediately, whether or not it qualifies for a
// notification, so it is never re-evaluated on later runs. A notify failure
// is logged per listing and the scan continues.
func (s *Scanner) Scan(ctx context.Context, loc domain.Location, seen *ledger.Ledger) (domain.ScanSummary, error) {
	var summary domain.ScanSummary

	raw, err := s.fetcher.Fetch(ctx, loc.URL)
	if err != nil {
		return summary, fmt.Errorf("fetch %s: %w", loc.Name, err)
	}

	listings, err := s.parser.Parse(raw, loc)
	if err != nil {
		return summary, fmt.Errorf("parse %s: %w", loc.Name, err)
	}
	summary.Fetched = len(listings)
	if len(listings) == 0 {
		// Usually means the site's markup changed under us.
		s.log.Warn("document yielded no listings", "location", loc.Name)
	}

	for _, l := range listings {
		if !seen.IsNew(l.Key) {
			continue
		}
		seen.MarkSeen(l.Key)
		summary.New++

		value, ok := s.extractor.Extract(l.Title + " " + l.Description)
		if !ok || value > s.ceiling {
			continue
		}

		if err := s.notifier.Notify(ctx, formatMessage(l, loc.Name, value)); err != nil {
			s.log.Error("notify failed", "location", loc.Name, "link", l.Link, "error", err)
			continue
		}
		summary.Notified++
	}

	return summary, nil
}

// formatMessage builds the fixed alert layout: title, location, price, link.
func formatMessage(l domain.Listing, location string, value int) string {
	return fmt.Sprintf("🏠 %s\n📍 %s\n💰 %d €\n🔗 %s", l.Title, location, value, l.Link)
}
