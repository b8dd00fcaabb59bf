package runner

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jovalie/political-forecast/internal/aggregate"
	"github.com/jovalie/political-forecast/internal/config"
	"github.com/jovalie/political-forecast/internal/fetcher"
	"github.com/jovalie/political-forecast/internal/types"
)

// TopicSource produces scored topics for one region. The rendered-page
// pipeline and the RSS feed both satisfy it, so the runner is indifferent
// to where topics come from.
type TopicSource interface {
	Topics(ctx context.Context, region types.Region) ([]types.Topic, error)
}

// RunSummary reports per-region outcomes for a full batch.
type RunSummary struct {
	Regions   int
	Succeeded int
	Empty     int
	Failed    int
	Duration  time.Duration
}

// Runner fans a batch of regions out over a bounded worker pool, isolates
// per-region failures, and performs a single merge-and-persist once every
// region has finished. Regions that fail or come back empty simply keep
// their previous stored record.
type Runner struct {
	cfg    *config.Config
	source TopicSource
	store  aggregate.Store
	logger *slog.Logger
	now    func() time.Time
}

// New creates a runner over the given topic source and store.
func New(cfg *config.Config, source TopicSource, store aggregate.Store, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		source: source,
		store:  store,
		logger: logger.With("component", "runner"),
		now:    time.Now,
	}
}

// Run executes the batch. It returns an error only when the batch as a
// whole cannot proceed (region resolution or persistence); individual
// region failures are counted in the summary, not returned.
func (r *Runner) Run(ctx context.Context) (*RunSummary, error) {
	regions, err := r.resolveRegions()
	if err != nil {
		return nil, err
	}

	start := r.now()
	summary := &RunSummary{Regions: len(regions)}

	sem := make(chan struct{}, r.cfg.Scan.Concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	updates := make([]types.StateRecord, 0, len(regions))

	for i, region := range regions {
		// Stagger launches so the source sees a human-ish request cadence
		// even with a full worker pool.
		if i > 0 {
			select {
			case <-time.After(fetcher.RandomDelay(r.cfg.Scan.RegionDelay)):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			mu.Lock()
			summary.Failed += len(regions) - i
			mu.Unlock()
			break
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(region types.Region) {
			defer wg.Done()
			defer func() { <-sem }()

			record, ok := r.scanRegion(ctx, region)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case ok && len(record.Topics) > 0:
				summary.Succeeded++
				updates = append(updates, record)
			case ok:
				summary.Empty++
			default:
				summary.Failed++
			}
		}(region)
	}

	wg.Wait()
	summary.Duration = r.now().Sub(start)

	if err := r.persist(ctx, updates); err != nil {
		return summary, err
	}

	r.logger.Info("batch complete",
		"regions", summary.Regions,
		"succeeded", summary.Succeeded,
		"empty", summary.Empty,
		"failed", summary.Failed,
		"duration", summary.Duration.Round(time.Millisecond),
	)
	return summary, nil
}

// scanRegion runs one region under its own deadline. ok reports whether
// the region completed; a completed region may still have zero topics.
func (r *Runner) scanRegion(ctx context.Context, region types.Region) (types.StateRecord, bool) {
	rctx, cancel := context.WithTimeout(ctx, r.cfg.Scan.RegionTimeout)
	defer cancel()

	topics, err := r.source.Topics(rctx, region)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = errors.Join(types.ErrRegionTimeout, err)
		}
		r.logger.Warn("region failed", "region", region.Code, "error", err)
		return types.StateRecord{}, false
	}

	record := aggregate.BuildStateRecord(region, topics, r.now(),
		r.cfg.Scan.TopN, r.cfg.Scan.RelevanceFloor)

	if len(record.Topics) == 0 {
		r.logger.Info("region empty", "region", region.Code)
	} else {
		r.logger.Info("region complete",
			"region", region.Code,
			"topics", len(record.Topics),
			"top", record.TopTopic,
		)
	}
	return record, true
}

// persist loads the prior aggregate, merges this run's updates in, and
// writes the result back. Serialized after the batch so partial results
// never hit the store mid-run.
func (r *Runner) persist(ctx context.Context, updates []types.StateRecord) error {
	prior, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	merged := aggregate.Merge(prior, updates, r.now())
	if err := r.store.Save(ctx, merged); err != nil {
		return err
	}

	r.logger.Debug("aggregate merged",
		"prior_states", len(prior.States),
		"updated", len(updates),
		"total", len(merged.States),
	)
	return nil
}

// resolveRegions maps configured region keys to known regions. An empty
// configuration means the full tracked set.
func (r *Runner) resolveRegions() ([]types.Region, error) {
	if len(r.cfg.Scan.Regions) == 0 {
		return types.USStates, nil
	}

	regions := make([]types.Region, 0, len(r.cfg.Scan.Regions))
	for _, key := range r.cfg.Scan.Regions {
		region, ok := types.FindRegion(types.USStates, key)
		if !ok {
			return nil, errors.Join(types.ErrUnknownRegion, errors.New(key))
		}
		regions = append(regions, region)
	}
	return regions, nil
}
