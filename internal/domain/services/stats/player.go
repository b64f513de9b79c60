package stats

import (
	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
	"github.com/stockgame-service/stockgame_service/pkg/normalize"
)

// PlayerStats orchestrates every per-player derivation into one record.
// Total and percent returns are measured against the game's baseline
// starting capital; the trade count excludes cancelled orders.
func PlayerStats(
	playerName string,
	performance []entities.PerformancePoint,
	transactions []entities.Transaction,
	holdingsCount int,
	totalPlayers int,
	baseline float64,
) entities.PlayerStats {
	returns := DailyReturns(performance)
	maxDrawdown, maxDrawdownPercent := MaxDrawdown(performance)
	bestDay, worstDay := BestWorstDays(returns)
	peakNetWorth, peakDate := Peak(performance, baseline)

	currentNetWorth := baseline
	currentRank := 0
	if len(performance) > 0 {
		latest := performance[len(performance)-1]
		currentNetWorth = latest.NetWorth
		currentRank = latest.Rank
	}

	return entities.PlayerStats{
		Name:               playerName,
		Slug:               normalize.Slugify(playerName),
		CurrentNetWorth:    currentNetWorth,
		TotalReturn:        currentNetWorth - baseline,
		TotalReturnPercent: (currentNetWorth - baseline) / baseline * 100,
		BestDay:            bestDay,
		WorstDay:           worstDay,
		MaxDrawdown:        maxDrawdown,
		MaxDrawdownPercent: maxDrawdownPercent,
		Volatility:         Volatility(returns),
		WinRate:            WinRate(returns),
		DaysAtRankOne:      DaysAtRankOne(performance),
		DaysAtRankLast:     DaysAtRankLast(performance, totalPlayers),
		TotalTrades:        CompletedTrades(transactions),
		CurrentRank:        currentRank,
		PeakNetWorth:       peakNetWorth,
		PeakDate:           peakDate,
		HoldingsCount:      holdingsCount,
	}
}
