package analytics

import (
	"sort"
	"time"

	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
	"github.com/stockgame-service/stockgame_service/internal/domain/services/stats"
)

// DayRecord is a single-day record with the player who set it.
type DayRecord struct {
	Player        string    `json:"player"`
	Date          time.Time `json:"date"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
}

// StreakRecord names the holder of the longest streak of one kind.
type StreakRecord struct {
	Player string `json:"player"`
	Days   int    `json:"days"`
}

// TradeRecord names the most active trader.
type TradeRecord struct {
	Player string `json:"player"`
	Trades int    `json:"trades"`
}

// VolatilityRecord names a volatility extreme.
type VolatilityRecord struct {
	Player     string  `json:"player"`
	Volatility float64 `json:"volatility"`
}

// Reversal describes a player's fall from their peak.
type Reversal struct {
	Name                 string     `json:"name"`
	PeakNetWorth         float64    `json:"peak_net_worth"`
	PeakDate             *time.Time `json:"peak_date"`
	CurrentNetWorth      float64    `json:"current_net_worth"`
	MaxDrawdownPercent   float64    `json:"max_drawdown_percent"`
	PeakReturnPercent    float64    `json:"peak_return_percent"`
	CurrentReturnPercent float64    `json:"current_return_percent"`
}

// Insights aggregates cross-player records for the insights view.
type Insights struct {
	BestDay           *DayRecord        `json:"best_day"`
	WorstDay          *DayRecord        `json:"worst_day"`
	LongestWinStreak  *StreakRecord     `json:"longest_win_streak"`
	LongestLoseStreak *StreakRecord     `json:"longest_lose_streak"`
	MostActiveTrader  *TradeRecord      `json:"most_active_trader"`
	MostVolatile      *VolatilityRecord `json:"most_volatile"`
	LeastVolatile     *VolatilityRecord `json:"least_volatile"`
	LongestLeader     *StreakRecord     `json:"longest_leader"`
	Reversals         []Reversal        `json:"reversals"`
}

// reversalThreshold filters the reversal list to declines worth
// mentioning, in percent of peak.
const reversalThreshold = 5.0

// BuildInsights scans every player's data once for cross-player
// records. All ties resolve to the first player encountered, so the
// output is deterministic for a given roster order.
func BuildInsights(players []*entities.PlayerData, baseline float64) Insights {
	var insights Insights

	for _, pd := range players {
		name := pd.Player.Name
		returns := stats.DailyReturns(pd.Performance)

		for _, r := range returns {
			if insights.BestDay == nil || r.Change > insights.BestDay.Change {
				insights.BestDay = &DayRecord{Player: name, Date: r.Date, Change: r.Change, ChangePercent: r.ChangePercent}
			}
			if insights.WorstDay == nil || r.Change < insights.WorstDay.Change {
				insights.WorstDay = &DayRecord{Player: name, Date: r.Date, Change: r.Change, ChangePercent: r.ChangePercent}
			}
		}

		streaks := stats.Streaks(returns)
		if insights.LongestWinStreak == nil || streaks.LongestWinStreak > insights.LongestWinStreak.Days {
			insights.LongestWinStreak = &StreakRecord{Player: name, Days: streaks.LongestWinStreak}
		}
		if insights.LongestLoseStreak == nil || streaks.LongestLoseStreak > insights.LongestLoseStreak.Days {
			insights.LongestLoseStreak = &StreakRecord{Player: name, Days: streaks.LongestLoseStreak}
		}

		if insights.MostActiveTrader == nil || pd.Stats.TotalTrades > insights.MostActiveTrader.Trades {
			insights.MostActiveTrader = &TradeRecord{Player: name, Trades: pd.Stats.TotalTrades}
		}
		if insights.MostVolatile == nil || pd.Stats.Volatility > insights.MostVolatile.Volatility {
			insights.MostVolatile = &VolatilityRecord{Player: name, Volatility: pd.Stats.Volatility}
		}
		if insights.LeastVolatile == nil || pd.Stats.Volatility < insights.LeastVolatile.Volatility {
			insights.LeastVolatile = &VolatilityRecord{Player: name, Volatility: pd.Stats.Volatility}
		}
		if insights.LongestLeader == nil || pd.Stats.DaysAtRankOne > insights.LongestLeader.Days {
			insights.LongestLeader = &StreakRecord{Player: name, Days: pd.Stats.DaysAtRankOne}
		}

		if pd.Stats.MaxDrawdownPercent > reversalThreshold {
			insights.Reversals = append(insights.Reversals, Reversal{
				Name:                 name,
				PeakNetWorth:         pd.Stats.PeakNetWorth,
				PeakDate:             pd.Stats.PeakDate,
				CurrentNetWorth:      pd.Stats.CurrentNetWorth,
				MaxDrawdownPercent:   pd.Stats.MaxDrawdownPercent,
				PeakReturnPercent:    (pd.Stats.PeakNetWorth - baseline) / baseline * 100,
				CurrentReturnPercent: pd.Stats.TotalReturnPercent,
			})
		}
	}

	sort.SliceStable(insights.Reversals, func(a, b int) bool {
		return insights.Reversals[a].MaxDrawdownPercent > insights.Reversals[b].MaxDrawdownPercent
	})
	return insights
}

// RiskReturn assembles the scatter input for the frontier from every
// player's computed stats.
func RiskReturn(players []*entities.PlayerData) []RiskReturnPoint {
	points := make([]RiskReturnPoint, 0, len(players))
	for _, pd := range players {
		points = append(points, RiskReturnPoint{
			Name:          pd.Player.Name,
			Slug:          pd.Player.Slug,
			Volatility:    pd.Stats.Volatility,
			ReturnPercent: pd.Stats.TotalReturnPercent,
		})
	}
	return points
}
