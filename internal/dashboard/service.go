package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nalssiboard/nalssiboard/internal/airquality"
	"github.com/nalssiboard/nalssiboard/internal/forecast"
	"github.com/nalssiboard/nalssiboard/internal/geo"
	"github.com/nalssiboard/nalssiboard/internal/location"
	"github.com/nalssiboard/nalssiboard/internal/region"
)

// hourlyWindowSize is the number of hourly slots requested per refresh:
// the current hour plus the next five.
const hourlyWindowSize = 6

// dailyBaseTime is the fixed publication slot of the multi-day
// forecast.
const dailyBaseTime = "0200"

// WeatherProvider defines the interface for the three weather
// endpoints.
type WeatherProvider interface {
	FetchCurrent(ctx context.Context, cell geo.GridCell, baseDate, baseTime string) ([]forecast.CategoryRecord, error)
	FetchHourly(ctx context.Context, cell geo.GridCell, baseDate, baseTime string) ([]forecast.CategoryRecord, error)
	FetchDaily(ctx context.Context, cell geo.GridCell, baseDate, baseTime string) ([]forecast.CategoryRecord, error)

	// Name returns the provider name for logging.
	Name() string
}

// AirProvider defines the interface for regional air-quality readings.
type AirProvider interface {
	FetchBySido(ctx context.Context, sidoName string) ([]airquality.Reading, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the dashboard service.
type ServiceConfig struct {
	// Weather is the weather data provider.
	Weather WeatherProvider

	// Air is the air-quality data provider.
	Air AirProvider

	// Logger for service operations.
	Logger zerolog.Logger

	// RefreshTimeout bounds one whole refresh cycle (default: 10s).
	RefreshTimeout time.Duration

	// CacheTTL is how long assembled snapshots are reused for the same
	// grid cell, region and locality (default: 5 minutes).
	CacheTTL time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service orchestrates the four-source refresh and holds the last
// committed snapshot.
type Service struct {
	weather        WeatherProvider
	air            AirProvider
	logger         zerolog.Logger
	refreshTimeout time.Duration
	cache          *gocache.Cache
	now            func() time.Time

	mu           sync.RWMutex
	snapshot     *Snapshot
	issuedGen    uint64 // guarded by mu
	committedGen uint64 // guarded by mu
}

// NewService creates a new dashboard service.
func NewService(cfg ServiceConfig) *Service {
	refreshTimeout := cfg.RefreshTimeout
	if refreshTimeout == 0 {
		refreshTimeout = 10 * time.Second
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		weather:        cfg.Weather,
		air:            cfg.Air,
		logger:         cfg.Logger,
		refreshTimeout: refreshTimeout,
		cache:          gocache.New(cacheTTL, 2*cacheTTL),
		now:            now,
	}
}

// Refresh rebuilds the snapshot for a resolved location. The four data
// sources are fetched as one joined concurrent batch; if any single
// source fails the whole refresh fails and the previously committed
// snapshot stays in place. A refresh that was superseded by a newer one
// while in flight still returns its result but is not committed.
func (s *Service) Refresh(ctx context.Context, loc *location.Info) (*Snapshot, error) {
	gen := s.nextGeneration()

	sido := region.Shorten(loc.Province)
	cacheKey := snapshotCacheKey(loc, sido)

	if cached, ok := s.cache.Get(cacheKey); ok {
		snap := *cached.(*Snapshot)
		snap.Location = loc
		snap.CityLabel = loc.CityLabel()
		s.commit(gen, &snap)
		return &snap, nil
	}

	snap, err := s.build(ctx, loc, sido, cacheKey)
	if err != nil {
		return nil, err
	}

	if !s.commit(gen, snap) {
		s.logger.Debug().Msg("discarding superseded refresh result")
	}

	return snap, nil
}

// Warm populates the snapshot cache for a location without publishing
// the result as the current snapshot. Used by the prewarm worker.
func (s *Service) Warm(ctx context.Context, loc *location.Info) error {
	sido := region.Shorten(loc.Province)
	cacheKey := snapshotCacheKey(loc, sido)

	if _, ok := s.cache.Get(cacheKey); ok {
		return nil
	}

	_, err := s.build(ctx, loc, sido, cacheKey)
	return err
}

// build fetches all four sources, assembles the snapshot and caches it.
func (s *Service) build(ctx context.Context, loc *location.Info, sido, cacheKey string) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.refreshTimeout)
	defer cancel()

	now := s.now()
	obsDate, obsTime := observationBase(now)
	dailyDate := now.Format("20060102")

	s.logger.Debug().
		Int("nx", loc.Grid.NX).
		Int("ny", loc.Grid.NY).
		Str("sido", sido).
		Str("base_time", obsTime).
		Msg("refreshing dashboard snapshot")

	var (
		currentRecords []forecast.CategoryRecord
		hourlyRecords  []forecast.CategoryRecord
		dailyRecords   []forecast.CategoryRecord
		readings       []airquality.Reading
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentRecords, err = s.weather.FetchCurrent(gctx, loc.Grid, obsDate, obsTime)
		return err
	})
	g.Go(func() error {
		var err error
		hourlyRecords, err = s.weather.FetchHourly(gctx, loc.Grid, obsDate, obsTime)
		return err
	})
	g.Go(func() error {
		var err error
		dailyRecords, err = s.weather.FetchDaily(gctx, loc.Grid, dailyDate, dailyBaseTime)
		return err
	})
	g.Go(func() error {
		var err error
		readings, err = s.air.FetchBySido(gctx, sido)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).
			Int("nx", loc.Grid.NX).
			Int("ny", loc.Grid.NY).
			Str("sido", sido).
			Msg("dashboard refresh failed")
		return nil, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	snap := &Snapshot{
		Location:  loc,
		Current:   forecast.BuildObservation(currentRecords),
		Hourly:    forecast.ReduceHourly(hourlyRecords, now.Hour(), hourlyWindowSize),
		Daily:     forecast.ReduceDaily(dailyRecords),
		Air:       airquality.SelectReading(readings, loc.Locality),
		SidoName:  sido,
		CityLabel: loc.CityLabel(),
		FetchedAt: now,
	}

	s.cache.SetDefault(cacheKey, snap)

	return snap, nil
}

// Snapshot returns the last committed snapshot, or nil before the
// first successful refresh.
func (s *Service) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// InvalidateCache clears all cached snapshots.
func (s *Service) InvalidateCache() {
	s.cache.Flush()
}

// nextGeneration issues a monotonically increasing refresh generation.
func (s *Service) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedGen++
	return s.issuedGen
}

// commit publishes a snapshot unless a newer refresh was issued while
// this one was in flight. Only the latest-issued refresh may win.
func (s *Service) commit(gen uint64, snap *Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.issuedGen || gen <= s.committedGen {
		return false
	}
	s.snapshot = snap
	s.committedGen = gen
	return true
}

// snapshotCacheKey keys cached snapshots by grid cell, sido and
// locality. The locality is part of the key because the air reading is
// station-matched against it; two cities sharing a grid cell must not
// reuse each other's match.
func snapshotCacheKey(loc *location.Info, sido string) string {
	return fmt.Sprintf("%d:%d:%s:%s", loc.Grid.NX, loc.Grid.NY, sido, loc.Locality)
}

// observationBase returns the base date and time for the current
// observation and hourly forecast requests: the most recent top of the
// hour no earlier than one hour ago.
func observationBase(now time.Time) (baseDate, baseTime string) {
	base := now.Add(-time.Hour)
	base = time.Date(base.Year(), base.Month(), base.Day(), base.Hour(), 0, 0, 0, base.Location())
	return base.Format("20060102"), base.Format("1504")
}
