package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	mbkerror "github.com/msto63/mBK/foundation/core/error"
	"github.com/msto63/mBK/foundation/utils/mathx"
	"github.com/msto63/mBK/pkg/core/cache"
	"github.com/msto63/mBK/pkg/core/logging"
)

// Service parses beer catalog files and answers questions about the
// resulting records.
type Service struct {
	logger *logging.Logger
	parsed *cache.Cache[[]Beer]
}

// NewService creates a new catalog service
func NewService() *Service {
	return &Service{
		logger: logging.New("catalog"),
		parsed: cache.New[[]Beer](cache.DefaultConfig()),
	}
}

// ParseBeerFile loads, groups and tokenizes the catalog file at path.
// The first malformed record aborts the whole parse; a list with a bad
// record in it is not a valid result. Results are cached per path and
// file modification time, so an unchanged file is parsed once.
func (s *Service) ParseBeerFile(path string) ([]Beer, error) {
	if key, ok := cacheKey(path); ok {
		if beers, hit := s.parsed.Get(key); hit {
			return beers, nil
		}
	}

	runID := uuid.NewString()
	logger := s.logger.WithRunID(runID)

	start := time.Now()
	logger.Info("Parsing beer catalog", "path", path)

	lines, err := loadLines(path)
	if err != nil {
		return nil, err
	}

	composite := groupLines(lines)
	if dropped := len(lines) % linesPerRecord; dropped != 0 {
		logger.Warn("Dropping incomplete trailing record",
			"lines", dropped)
	}

	beers := make([]Beer, 0, len(composite))
	for i, line := range composite {
		beer, err := parseRecord(line)
		if err != nil {
			logger.Error("Malformed record", "record", i+1)
			if mbkErr, ok := err.(*mbkerror.Error); ok {
				return nil, mbkErr.WithDetail("record", i+1)
			}
			return nil, err
		}
		beers = append(beers, beer)
	}

	logger.Info("Beer catalog parsed",
		"lines", len(lines),
		"records", len(beers),
		"duration", time.Since(start).String())

	if key, ok := cacheKey(path); ok {
		s.parsed.Set(key, beers)
	}

	return beers, nil
}

// cacheKey derives the cache key from path and modification time, so a
// rewritten file invalidates its cached parse.
func cacheKey(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size()), true
}

// Stats summarizes a parsed catalog.
type Stats struct {
	Count         int
	TotalRatings  int
	AverageABV    mathx.Decimal
	AverageRating mathx.Decimal
	Strongest     Beer
	TopRated      Beer
}

// ComputeStats aggregates the records of a parsed catalog. An empty
// catalog has nothing to aggregate and is rejected.
func (s *Service) ComputeStats(beers []Beer) (Stats, error) {
	if len(beers) == 0 {
		return Stats{}, mbkerror.New("beer catalog holds no records").
			WithCode(mbkerror.CodeEmptyCatalog).
			WithOperation("ComputeStats")
	}

	stats := Stats{
		Count:     len(beers),
		Strongest: beers[0],
		TopRated:  beers[0],
	}

	sumABV := mathx.Zero()
	sumRating := mathx.Zero()

	for _, beer := range beers {
		stats.TotalRatings += beer.NumRatings
		sumABV = sumABV.Add(beer.ABV)
		sumRating = sumRating.Add(beer.AverageRating)

		if beer.ABV.GreaterThan(stats.Strongest.ABV) {
			stats.Strongest = beer
		}
		if beer.AverageRating.GreaterThan(stats.TopRated.AverageRating) {
			stats.TopRated = beer
		}
	}

	count := mathx.NewDecimalFromInt(int64(len(beers)))

	avgABV, err := sumABV.Divide(count)
	if err != nil {
		return Stats{}, err
	}
	avgRating, err := sumRating.Divide(count)
	if err != nil {
		return Stats{}, err
	}

	stats.AverageABV = avgABV.Round(2)
	stats.AverageRating = avgRating.Round(2)

	return stats, nil
}
