package entities

import "time"

// Player is a roster identity derived from the leaderboard. The slug is
// the URL-safe key and must be unique within a run.
type Player struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// LeaderboardEntry is one row of the current standings.
type LeaderboardEntry struct {
	Place        int     `json:"place"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	NetWorth     float64 `json:"net_worth"`
	LastChange   float64 `json:"last_change"`
	Trades       int     `json:"trades"`
	TotalReturns float64 `json:"total_returns"`
}

// PerformancePoint is one observation in a player's time series,
// ordered ascending by date once parsed.
type PerformancePoint struct {
	Date          time.Time `json:"date"`
	Rank          int       `json:"rank"`
	Cash          float64   `json:"cash"`
	CashInterest  float64   `json:"cash_interest"`
	NetWorth      float64   `json:"net_worth"`
	PercentReturn float64   `json:"percent_return"`
}

// HoldingType marks a position as long or short.
type HoldingType string

const (
	HoldingTypeBuy   HoldingType = "BUY"
	HoldingTypeShort HoldingType = "SHORT"
)

// Holding is a currently open position. percent_of_portfolio is 0-100
// and the column may not sum to 100 across holdings because of cash.
type Holding struct {
	Symbol             string      `json:"symbol"`
	Shares             int         `json:"shares"`
	PercentOfPortfolio int         `json:"percent_of_portfolio"`
	Type               HoldingType `json:"type"`
	Price              float64     `json:"price"`
	PriceChange        float64     `json:"price_change"`
	PriceChangePercent float64     `json:"price_change_percent"`
	Value              float64     `json:"value"`
	GainLoss           float64     `json:"gain_loss"`
	GainLossPercent    float64     `json:"gain_loss_percent"`
}

// TransactionType is the order side as exported by the game.
type TransactionType string

const (
	TransactionTypeBuy   TransactionType = "Buy"
	TransactionTypeSell  TransactionType = "Sell"
	TransactionTypeShort TransactionType = "Short"
	TransactionTypeCover TransactionType = "Cover"
)

// Transaction is an order event. TransactionDate is nil when the order
// never executed; a non-nil CancelReason excludes the order from
// completed-trade statistics; Price is nil for cancelled/unfilled
// orders. Sequences are ordered descending by order date for display.
type Transaction struct {
	Symbol          string          `json:"symbol"`
	OrderDate       time.Time       `json:"order_date"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
	Type            TransactionType `json:"type"`
	CancelReason    *string         `json:"cancel_reason,omitempty"`
	Amount          int             `json:"amount"`
	Price           *float64        `json:"price,omitempty"`
}

// ErrorResponse is the error payload returned by the API
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
