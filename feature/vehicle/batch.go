package vehicle

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"vehicle-reconciler/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// BatchOptions controls a batch replay.
type BatchOptions struct {
	// VINs limits the run to these identifiers. Empty means every archived VIN.
	VINs []string
	// Limit caps the number of VINs processed. Zero means no cap.
	Limit int
	// Save persists each result.
	Save bool
}

// BatchReport summarizes a batch replay.
type BatchReport struct {
	Total        int                          `json:"total"`
	Succeeded    int                          `json:"succeeded"`
	Failed       int                          `json:"failed"`
	ByConfidence map[reconcile.Confidence]int `json:"byConfidence"`
	Failures     map[string]string            `json:"failures"`
	Duration     time.Duration                `json:"duration"`
}

// ReplayBatch reconciles archived VINs concurrently, bounded by the configured worker count
// and rate. A failing VIN is recorded in the report and never aborts the batch; only
// listing the archive or cancelling ctx returns an error.
func (s *Service) ReplayBatch(ctx context.Context, opts BatchOptions) (*BatchReport, error) {
	start := time.Now()

	if s.archive == nil {
		return nil, ErrArchiveUnavailable
	}

	vins := append([]string(nil), opts.VINs...)
	if len(vins) == 0 {
		listed, err := s.archive.ListVINs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list archived vehicles: %w", err)
		}
		vins = listed
	}
	sort.Strings(vins)
	if opts.Limit > 0 && len(vins) > opts.Limit {
		vins = vins[:opts.Limit]
	}

	report := &BatchReport{
		Total:        len(vins),
		ByConfidence: map[reconcile.Confidence]int{},
		Failures:     map[string]string{},
	}
	if len(vins) == 0 {
		s.logger.Info("No archived vehicles to reconcile")
		return report, nil
	}

	s.logger.Info("Processing batch",
		zap.Int("vehicles", len(vins)),
		zap.Int("workers", s.cfg.Workers),
		zap.Float64("rate_per_second", s.cfg.RatePerSecond),
	)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if s.cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.cfg.RatePerSecond), 1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	var mu sync.Mutex
	for _, vin := range vins {
		vin := vin
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			result, err := s.Replay(gctx, vin, opts.Save)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed++
				report.Failures[vin] = err.Error()
				s.logger.Error("Batch reconcile failed", zap.String("vin", vin), zap.Error(err))
				return nil
			}
			report.Succeeded++
			report.ByConfidence[result.Metadata.Confidence]++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, fmt.Errorf("batch interrupted: %w", err)
	}
	report.Duration = time.Since(start)

	s.logger.Info("Batch complete",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}
