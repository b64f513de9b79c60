package stats

import (
	"math"
	"time"

	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
)

// Pure derivations over a player's performance and transaction series.
// Every function is total: degenerate inputs (empty series, single
// points, zero variance) yield zeros or nils, never errors, so a player
// with one data point still renders a trivial stats card.

// DailyReturns derives the day-over-day change series from a sorted
// performance sequence. The percent change is 0 when the prior net
// worth is not positive.
func DailyReturns(performance []entities.PerformancePoint) []entities.DailyReturn {
	if len(performance) < 2 {
		return nil
	}
	returns := make([]entities.DailyReturn, 0, len(performance)-1)
	for i := 1; i < len(performance); i++ {
		prev := performance[i-1]
		curr := performance[i]
		change := curr.NetWorth - prev.NetWorth
		changePercent := 0.0
		if prev.NetWorth > 0 {
			changePercent = change / prev.NetWorth * 100
		}
		returns = append(returns, entities.DailyReturn{
			Date:          curr.Date,
			Change:        change,
			ChangePercent: changePercent,
		})
	}
	return returns
}

// Volatility is the sample standard deviation (n-1 divisor) of the
// daily percent returns. Undefined below two data points, reported as 0.
func Volatility(returns []entities.DailyReturn) float64 {
	if len(returns) < 2 {
		return 0
	}
	mean := 0.0
	for _, r := range returns {
		mean += r.ChangePercent
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		diff := r.ChangePercent - mean
		variance += diff * diff
	}
	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance)
}

// MaxDrawdown tracks the largest decline from a running peak in a
// single forward pass, returning it absolute and as percent-of-peak.
func MaxDrawdown(performance []entities.PerformancePoint) (maxDrawdown, maxDrawdownPercent float64) {
	if len(performance) == 0 {
		return 0, 0
	}
	peak := performance[0].NetWorth
	for _, point := range performance {
		if point.NetWorth > peak {
			peak = point.NetWorth
		}
		drawdown := peak - point.NetWorth
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
			if peak > 0 {
				maxDrawdownPercent = drawdown / peak * 100
			} else {
				maxDrawdownPercent = 0
			}
		}
	}
	return maxDrawdown, maxDrawdownPercent
}

// WinRate is the fraction of daily returns with a strictly positive
// change, as a 0-100 percent. Flat days count toward the denominator
// but are neither wins nor losses.
func WinRate(returns []entities.DailyReturn) float64 {
	if len(returns) == 0 {
		return 0
	}
	wins := 0
	for _, r := range returns {
		if r.Change > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(returns)) * 100
}

// BestWorstDays finds the returns with the maximum and minimum change.
// Ties resolve to the first record in sequence order.
func BestWorstDays(returns []entities.DailyReturn) (best, worst *entities.DailyReturn) {
	if len(returns) == 0 {
		return nil, nil
	}
	best, worst = &returns[0], &returns[0]
	for i := range returns {
		if returns[i].Change > best.Change {
			best = &returns[i]
		}
		if returns[i].Change < worst.Change {
			worst = &returns[i]
		}
	}
	return best, worst
}

// Peak finds the highest net worth in the series and its date. An empty
// series reports the baseline starting capital with no date. Ties
// resolve to the first point.
func Peak(performance []entities.PerformancePoint, baseline float64) (peakNetWorth float64, peakDate *time.Time) {
	if len(performance) == 0 {
		return baseline, nil
	}
	peak := performance[0]
	for _, point := range performance {
		if point.NetWorth > peak.NetWorth {
			peak = point
		}
	}
	d := peak.Date
	return peak.NetWorth, &d
}

// DaysAtRankOne counts the points where the player held first place.
func DaysAtRankOne(performance []entities.PerformancePoint) int {
	return daysAtRank(performance, 1)
}

// DaysAtRankLast counts the points where the player held last place.
func DaysAtRankLast(performance []entities.PerformancePoint, totalPlayers int) int {
	return daysAtRank(performance, totalPlayers)
}

func daysAtRank(performance []entities.PerformancePoint, rank int) int {
	days := 0
	for _, point := range performance {
		if point.Rank == rank {
			days++
		}
	}
	return days
}

// CompletedTrades counts transactions without a cancellation reason.
func CompletedTrades(transactions []entities.Transaction) int {
	completed := 0
	for _, txn := range transactions {
		if txn.CancelReason == nil {
			completed++
		}
	}
	return completed
}
