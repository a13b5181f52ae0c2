package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/user/safebrowse-service/internal/entity"
	"github.com/user/safebrowse-service/internal/input"
	"github.com/user/safebrowse-service/internal/repository"
	"github.com/user/safebrowse-service/pkg/metrics"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 500
	matchLogLimit    = 2000
)

// Scanner defines the interface for one full check run.
type Scanner interface {
	Run(ctx context.Context) (entity.RunSummary, error)
}

// ScanConfig carries the run settings for the scanner use case.
type ScanConfig struct {
	DomainsFile string
	BatchSize   int
	// DedupExpiry > 0 enables the recently-checked filter; zero keeps
	// every input entry, duplicates included.
	DedupExpiry time.Duration
}

type scanUseCase struct {
	checker  repository.ThreatCheckerRepository
	notifier repository.NotifierRepository
	history  repository.ThreatHistoryRepository // optional, nil disables persistence
	checked  repository.CheckedURLRepository    // optional, nil disables deduplication
	logger   *zap.Logger
	cfg      ScanConfig
	now      func() time.Time
}

// NewScanner creates a new Scanner use case. history and checked may be
// nil; the corresponding features are then disabled.
func NewScanner(
	checker repository.ThreatCheckerRepository,
	notifier repository.NotifierRepository,
	history repository.ThreatHistoryRepository,
	checked repository.CheckedURLRepository,
	logger *zap.Logger,
	cfg ScanConfig,
) Scanner {
	return &scanUseCase{
		checker:  checker,
		notifier: notifier,
		history:  history,
		checked:  checked,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Run reads the input file and processes its URLs batch by batch,
// strictly sequentially. Retry is entirely the checker's concern; every
// failure at this level is logged and converted to a benign default so
// one bad batch never aborts the run.
func (uc *scanUseCase) Run(ctx context.Context) (entity.RunSummary, error) {
	var summary entity.RunSummary

	urls, err := input.ReadURLs(uc.cfg.DomainsFile)
	if err != nil {
		return summary, fmt.Errorf("failed to read input file %s: %w", uc.cfg.DomainsFile, err)
	}
	if len(urls) == 0 {
		uc.logger.Info("No URLs to check")
		return summary, nil
	}

	urls = uc.filterRecentlyChecked(ctx, urls, &summary)
	if len(urls) == 0 {
		uc.logger.Info("All URLs checked recently, nothing to do", zap.Int("skipped", summary.Skipped))
		return summary, nil
	}

	for _, batch := range chunkURLs(urls, uc.cfg.BatchSize) {
		summary.Batches++
		summary.TotalChecked += len(batch)
		metrics.URLsCheckedTotal.Add(float64(len(batch)))

		matches, err := uc.checker.FindThreats(ctx, batch)
		switch {
		case err != nil:
			// An incomplete check degrades to "no matches"; it is logged
			// and counted separately from a genuine clean scan.
			summary.IncompleteBatches++
			metrics.ChecksTotal.WithLabelValues("incomplete").Inc()
			uc.logger.Error("Check incomplete, treating batch as unmatched",
				zap.Int("batch_size", len(batch)),
				zap.Error(err),
			)
		case len(matches) > 0:
			summary.Matches += len(matches)
			metrics.ChecksTotal.WithLabelValues("matched").Inc()
			for _, m := range matches {
				metrics.ThreatMatchesTotal.WithLabelValues(string(m.ThreatType)).Inc()
			}
			uc.handleMatches(ctx, matches, len(batch))
			uc.markChecked(ctx, batch)
		default:
			metrics.ChecksTotal.WithLabelValues("clean").Inc()
			uc.logger.Info("No matches in batch", zap.Int("batch_size", len(batch)))
			uc.markChecked(ctx, batch)
		}
	}

	uc.logger.Info("Finished", zap.Int("total_processed", summary.TotalChecked))
	return summary, nil
}

// handleMatches delivers the alert and records the matches. Neither
// delivery nor persistence failures propagate.
func (uc *scanUseCase) handleMatches(ctx context.Context, matches []entity.ThreatMatch, batchSize int) {
	msg := buildAlertMessage(matches, batchSize)
	if err := uc.notifier.Send(ctx, msg); err != nil {
		metrics.AlertsSentTotal.WithLabelValues("failed").Inc()
		uc.logger.Error("Alert delivery failed", zap.Error(err))
	} else {
		metrics.AlertsSentTotal.WithLabelValues("sent").Inc()
	}

	if detail, err := json.Marshal(matches); err == nil {
		uc.logger.Info("Matches", zap.String("detail", truncate(string(detail), matchLogLimit)))
	}

	if uc.history != nil {
		if err := uc.history.SaveMatches(ctx, matches, uc.now()); err != nil {
			uc.logger.Warn("Failed to record matches", zap.Error(err))
		}
	}
}

// filterRecentlyChecked drops URLs the dedup store has seen within the
// configured expiry. Store errors degrade to "not checked" so the URL
// is checked again rather than silently dropped.
func (uc *scanUseCase) filterRecentlyChecked(ctx context.Context, urls []string, summary *entity.RunSummary) []string {
	if uc.checked == nil || uc.cfg.DedupExpiry <= 0 {
		return urls
	}

	kept := urls[:0]
	for _, u := range urls {
		isChecked, err := uc.checked.IsChecked(ctx, u)
		if err != nil {
			uc.logger.Warn("Recently-checked lookup failed", zap.String("url", u), zap.Error(err))
			isChecked = false
		}
		if isChecked {
			summary.Skipped++
			metrics.URLsSkippedTotal.Inc()
			continue
		}
		kept = append(kept, u)
	}
	if summary.Skipped > 0 {
		uc.logger.Info("Skipped recently checked URLs", zap.Int("skipped", summary.Skipped))
	}
	return kept
}

// markChecked records a completed batch in the dedup store.
func (uc *scanUseCase) markChecked(ctx context.Context, urls []string) {
	if uc.checked == nil || uc.cfg.DedupExpiry <= 0 {
		return
	}
	for _, u := range urls {
		if err := uc.checked.MarkChecked(ctx, u, uc.cfg.DedupExpiry); err != nil {
			uc.logger.Warn("Failed to mark URL as checked", zap.String("url", u), zap.Error(err))
		}
	}
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
