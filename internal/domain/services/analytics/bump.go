package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
)

// RankPoint is one sampled observation of a player's standing.
type RankPoint struct {
	Date time.Time `json:"date"`
	Rank int       `json:"rank"`
}

// PlayerRankSeries is one player's rank-over-time line in the bump
// chart.
type PlayerRankSeries struct {
	Name   string      `json:"name"`
	Slug   string      `json:"slug"`
	Points []RankPoint `json:"points"`
}

// RankSeries builds the rank-over-time series for every player. When
// the number of distinct dates across all players exceeds maxPoints,
// the dates are downsampled to every k-th date (k = ceil(total/max))
// to bound rendering cost; sampling starts at the first date.
func RankSeries(players []entities.Player, performance map[string][]entities.PerformancePoint, maxPoints int) []PlayerRankSeries {
	dateSet := make(map[time.Time]struct{})
	for _, points := range performance {
		for _, p := range points {
			dateSet[p.Date] = struct{}{}
		}
	}
	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(a, b int) bool { return dates[a].Before(dates[b]) })

	kept := make(map[time.Time]struct{}, len(dates))
	if maxPoints > 0 && len(dates) > maxPoints {
		k := int(math.Ceil(float64(len(dates)) / float64(maxPoints)))
		for i := 0; i < len(dates); i += k {
			kept[dates[i]] = struct{}{}
		}
	} else {
		for _, d := range dates {
			kept[d] = struct{}{}
		}
	}

	series := make([]PlayerRankSeries, 0, len(players))
	for _, player := range players {
		s := PlayerRankSeries{Name: player.Name, Slug: player.Slug}
		for _, p := range performance[player.Name] {
			if _, ok := kept[p.Date]; ok {
				s.Points = append(s.Points, RankPoint{Date: p.Date, Rank: p.Rank})
			}
		}
		series = append(series, s)
	}
	return series
}
