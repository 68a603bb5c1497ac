package holidaysrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/laboral/internal/metrics"
	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

const (
	DefaultCacheTTL = 24 * time.Hour

)

// HolidayService resolves holidays from the cache, the remote source or the static fallback
type HolidayService struct {
	remote   holiday.Source
	fallback holiday.Source
	cache    holiday.Cache
	cacheTTL time.Duration
}

// NewHolidayService creates a new instance of the holiday service. cache may be nil.
func NewHolidayService(
	remote holiday.Source,
	fallback holiday.Source,
	cache holiday.Cache,
	cacheTTL time.Duration,
) *HolidayService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &HolidayService{
		remote:   remote,
		fallback: fallback,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// FetchHolidays never fails: when the remote source is unavailable the static list is used
func (s *HolidayService) FetchHolidays(ctx context.Context, year int) []holiday.Holiday {
	holidays, _ := s.resolve(ctx, year)
	return holidays
}

// Lookup returns the holidays of year along with the origin that served them
func (s *HolidayService) Lookup(ctx context.Context, year int) (*holiday.HolidaysResponse, error) {
	if year < holiday.MinYear || year > holiday.MaxYear {
		return nil, holiday.ErrInvalidYear().WithDetail("year", year)
	}

	holidays, origin := s.resolve(ctx, year)
	return &holiday.HolidaysResponse{
		Year:     year,
		Source:   origin,
		Holidays: holidays,
	}, nil
}

func (s *HolidayService) resolve(ctx context.Context, year int) ([]holiday.Holiday, holiday.Origin) {
	if cached, ok := s.fromCache(ctx, year); ok {
		metrics.HolidayLookups.WithLabelValues(string(holiday.OriginCache)).Inc()
		return cached, holiday.OriginCache
	}

	holidays, err := s.fetchRemote(ctx, year)
	if err == nil {
		s.toCache(ctx, year, holidays)
		metrics.HolidayLookups.WithLabelValues(string(holiday.OriginRemote)).Inc()
		return holidays, holiday.OriginRemote
	}

	metrics.HolidaySourceErrors.Inc()
	logx.Warnf("Holiday source unavailable for %d, using static list: %v", year, err)

	fallback, ferr := s.fallback.Fetch(ctx, year)
	if ferr != nil {
		logx.Errorf("Static holiday list failed for %d: %v", year, ferr)
	}
	holiday.SortByDate(fallback)
	metrics.HolidayLookups.WithLabelValues(string(holiday.OriginFallback)).Inc()
	return fallback, holiday.OriginFallback
}

// fetchRemote maps every remote failure to ErrSourceUnavailable. An empty
// list for the year counts as a failure since a year always has holidays.
func (s *HolidayService) fetchRemote(ctx context.Context, year int) ([]holiday.Holiday, error) {
	if s.remote == nil {
		return nil, holiday.ErrSourceUnavailable().WithDetail("reason", "no remote source")
	}

	holidays, err := s.remote.Fetch(ctx, year)
	if err != nil {
		return nil, holiday.ErrSourceUnavailable().WithCause(err)
	}

	holidays = holiday.FilterByYear(holidays, year)
	if len(holidays) == 0 {
		return nil, holiday.ErrSourceUnavailable().WithDetail("reason", "no holidays for year").WithDetail("year", year)
	}

	holiday.SortByDate(holidays)
	return holidays, nil
}

func (s *HolidayService) fromCache(ctx context.Context, year int) ([]holiday.Holiday, bool) {
	if s.cache == nil {
		return nil, false
	}

	holidays, ok, err := s.cache.Get(ctx, year)
	if err != nil {
		logx.Warnf("Holiday cache read failed for %d: %v", year, err)
		return nil, false
	}
	if !ok || len(holidays) == 0 {
		return nil, false
	}
	return holidays, true
}

func (s *HolidayService) toCache(ctx context.Context, year int, holidays []holiday.Holiday) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, year, holidays, s.cacheTTL); err != nil {
		logx.Warnf("Holiday cache write failed for %d: %v", year, err)
	}
}
