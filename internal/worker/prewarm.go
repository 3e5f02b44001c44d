package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nalssiboard/nalssiboard/internal/dashboard"
	"github.com/nalssiboard/nalssiboard/internal/geo"
	"github.com/nalssiboard/nalssiboard/internal/location"
)

// PrewarmJob keeps dashboard snapshots warm for the common landing
// cities.
type PrewarmJob struct {
	config     PrewarmConfig
	logger     zerolog.Logger
	dashboards *dashboard.Service

	metrics *PrewarmMetrics
}

// PrewarmMetrics tracks prewarm job statistics.
type PrewarmMetrics struct {
	mu sync.RWMutex

	TotalRuns       int64
	WarmedTargets   int64
	FailedTargets   int64
	LastRunAt       time.Time
	LastRunDuration time.Duration
}

// PrewarmJobConfig holds configuration for creating a PrewarmJob.
type PrewarmJobConfig struct {
	Config     PrewarmConfig
	Logger     zerolog.Logger
	Dashboards *dashboard.Service
}

// NewPrewarmJob creates a new prewarm job processor.
func NewPrewarmJob(cfg PrewarmJobConfig) *PrewarmJob {
	config := cfg.Config
	if len(config.Targets) == 0 {
		config = DefaultPrewarmConfig()
	}
	if config.Concurrency == 0 {
		config.Concurrency = 3
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Interval == 0 {
		config.Interval = 30 * time.Minute
	}

	return &PrewarmJob{
		config:     config,
		logger:     cfg.Logger,
		dashboards: cfg.Dashboards,
		metrics:    &PrewarmMetrics{},
	}
}

// PrewarmResult contains the result of one prewarm run.
type PrewarmResult struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Total      int
	Successful int
	Failed     int
	Errors     []PrewarmError
}

// PrewarmError represents a failed target.
type PrewarmError struct {
	Target string
	Error  string
}

// Run warms the snapshot cache for all configured targets once.
func (j *PrewarmJob) Run(ctx context.Context) *PrewarmResult {
	startTime := time.Now()
	result := &PrewarmResult{
		StartTime: startTime,
		Total:     len(j.config.Targets),
	}

	j.logger.Info().
		Int("targets", result.Total).
		Int("concurrency", j.config.Concurrency).
		Msg("starting snapshot prewarm job")

	targetsChan := make(chan PrewarmTarget, len(j.config.Targets))
	resultsChan := make(chan targetResult, len(j.config.Targets))

	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.warmWorker(ctx, targetsChan, resultsChan)
		}()
	}

	for _, t := range j.config.Targets {
		targetsChan <- t
	}
	close(targetsChan)

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for tr := range resultsChan {
		if tr.err == nil {
			result.Successful++
		} else {
			result.Failed++
			result.Errors = append(result.Errors, PrewarmError{
				Target: tr.target.Name,
				Error:  tr.err.Error(),
			})
		}
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)

	j.updateMetrics(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Msg("snapshot prewarm job completed")

	return result
}

// Start runs the job immediately and then on every interval tick until
// the context is cancelled.
func (j *PrewarmJob) Start(ctx context.Context) {
	j.Run(ctx)

	ticker := time.NewTicker(j.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("stopping snapshot prewarm job")
			return
		case <-ticker.C:
			j.Run(ctx)
		}
	}
}

type targetResult struct {
	target PrewarmTarget
	err    error
}

func (j *PrewarmJob) warmWorker(ctx context.Context, targets <-chan PrewarmTarget, results chan<- targetResult) {
	for target := range targets {
		select {
		case <-ctx.Done():
			return
		default:
			results <- targetResult{target: target, err: j.warmTarget(ctx, target)}
		}
	}
}

func (j *PrewarmJob) warmTarget(ctx context.Context, target PrewarmTarget) error {
	targetCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	// Targets are known Korean cities, so the location is assembled
	// directly instead of going through the geocoder.
	coord := geo.Coordinate{Lat: target.Point.Lat, Lon: target.Point.Lon}
	info := &location.Info{
		Coordinate: coord,
		Grid:       geo.ProjectCoordinate(coord),
		Country:    "대한민국",
		Province:   target.Province,
		Locality:   target.Name,
	}

	if err := j.dashboards.Warm(targetCtx, info); err != nil {
		j.logger.Warn().Err(err).
			Str("target", target.Name).
			Str("province", target.Province).
			Msg("prewarm target failed")
		return err
	}
	return nil
}

func (j *PrewarmJob) updateMetrics(result *PrewarmResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	j.metrics.WarmedTargets += int64(result.Successful)
	j.metrics.FailedTargets += int64(result.Failed)
	j.metrics.LastRunAt = result.EndTime
	j.metrics.LastRunDuration = result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *PrewarmJob) GetMetrics() PrewarmMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return PrewarmMetrics{
		TotalRuns:       j.metrics.TotalRuns,
		WarmedTargets:   j.metrics.WarmedTargets,
		FailedTargets:   j.metrics.FailedTargets,
		LastRunAt:       j.metrics.LastRunAt,
		LastRunDuration: j.metrics.LastRunDuration,
	}
}
