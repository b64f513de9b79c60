package entities

import "time"

// DailyReturn is the day-over-day net worth delta derived from two
// consecutive performance points. A series of n points yields n-1
// returns; the first day has no prior reference.
type DailyReturn struct {
	Date          time.Time `json:"date"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
}

// StreakType classifies the run a player is currently on.
type StreakType string

const (
	StreakWin  StreakType = "win"
	StreakLose StreakType = "lose"
	StreakNone StreakType = "none"
)

// StreakState is the streak still active at the end of a series.
type StreakState struct {
	Type  StreakType `json:"type"`
	Count int        `json:"count"`
}

// Streaks summarizes win/lose runs over a return series. Flat days
// neither extend nor reset a streak.
type Streaks struct {
	LongestWinStreak  int         `json:"longest_win_streak"`
	LongestLoseStreak int         `json:"longest_lose_streak"`
	CurrentStreak     StreakState `json:"current_streak"`
}

// PlayerStats aggregates every derived metric for one player. It is
// recomputed from the full source series, never updated incrementally.
type PlayerStats struct {
	Name               string       `json:"name"`
	Slug               string       `json:"slug"`
	CurrentNetWorth    float64      `json:"current_net_worth"`
	TotalReturn        float64      `json:"total_return"`
	TotalReturnPercent float64      `json:"total_return_percent"`
	BestDay            *DailyReturn `json:"best_day"`
	WorstDay           *DailyReturn `json:"worst_day"`
	MaxDrawdown        float64      `json:"max_drawdown"`
	MaxDrawdownPercent float64      `json:"max_drawdown_percent"`
	Volatility         float64      `json:"volatility"`
	WinRate            float64      `json:"win_rate"`
	DaysAtRankOne      int          `json:"days_at_rank_one"`
	DaysAtRankLast     int          `json:"days_at_rank_last"`
	TotalTrades        int          `json:"total_trades"`
	CurrentRank        int          `json:"current_rank"`
	PeakNetWorth       float64      `json:"peak_net_worth"`
	PeakDate           *time.Time   `json:"peak_date"`
	HoldingsCount      int          `json:"holdings_count"`
}

// PlayerData bundles everything the view layer needs for one player.
type PlayerData struct {
	Player       Player             `json:"player"`
	Performance  []PerformancePoint `json:"performance"`
	Holdings     []Holding          `json:"holdings"`
	Transactions []Transaction      `json:"transactions"`
	Stats        PlayerStats        `json:"stats"`
}
