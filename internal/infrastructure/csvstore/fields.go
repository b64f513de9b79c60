package csvstore

import (
	"time"

	"github.com/stockgame-service/stockgame_service/pkg/logger"
	"github.com/stockgame-service/stockgame_service/pkg/metrics"
	"github.com/stockgame-service/stockgame_service/pkg/normalize"
)

// Field helpers implementing the degrade-to-zero policy: a normalizer
// failure is logged and counted, and the record keeps its zero value
// instead of failing the row.

func (s *Store) currency(log *logger.Logger, resource string, row int, field, raw string) float64 {
	v, err := normalize.Currency(raw)
	if err != nil {
		s.warn(log, resource, row, field, raw, err)
		return 0
	}
	return v
}

func (s *Store) percent(log *logger.Logger, resource string, row int, field, raw string) float64 {
	v, err := normalize.Percent(raw)
	if err != nil {
		s.warn(log, resource, row, field, raw, err)
		return 0
	}
	return v
}

func (s *Store) count(log *logger.Logger, resource string, row int, field, raw string) int {
	v, err := normalize.Count(raw)
	if err != nil {
		s.warn(log, resource, row, field, raw, err)
		return 0
	}
	return v
}

func (s *Store) number(log *logger.Logger, resource string, row int, field, raw string) float64 {
	v, err := normalize.Number(raw)
	if err != nil {
		s.warn(log, resource, row, field, raw, err)
		return 0
	}
	return v
}

func (s *Store) date(log *logger.Logger, resource string, row int, field, raw string) time.Time {
	v, err := normalize.Date(raw)
	if err != nil {
		s.warn(log, resource, row, field, raw, err)
		return time.Time{}
	}
	return v
}

func (s *Store) warn(log *logger.Logger, resource string, row int, field, raw string, err error) {
	log.Warnw("malformed field degraded to zero value",
		"row", row,
		"field", field,
		"value", raw,
		"error", err,
	)
	metrics.ParseWarningsTotal.WithLabelValues(resource, field).Inc()
}
