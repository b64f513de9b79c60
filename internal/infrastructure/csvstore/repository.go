package csvstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
	apperrors "github.com/stockgame-service/stockgame_service/pkg/errors"
	"github.com/stockgame-service/stockgame_service/pkg/metrics"
	"github.com/stockgame-service/stockgame_service/pkg/normalize"
)

// Record parsers. Malformed fields degrade to their zero value with a
// logged warning (the exports are hand-maintained); missing files are
// real errors, scoped to the leaderboard or to one player.

const (
	resourceLeaderboard  = "leaderboard"
	resourcePerformance  = "performance"
	resourceHoldings     = "holdings"
	resourceTransactions = "transactions"
)

// Leaderboard parses the rankings file into ordered standings. A
// missing or unreadable file is fatal for every page, so it surfaces
// as DATA_UNAVAILABLE instead of degrading.
func (s *Store) Leaderboard(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	file := s.leaderboardFile()
	defer observeParse(resourceLeaderboard, time.Now())

	rows, err := s.readTable(file)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDataUnavailable, "leaderboard source is missing or unreadable")
	}

	log := s.logger.ForResource(resourceLeaderboard, file)
	entries := make([]entities.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		name := row["Name"]
		entries = append(entries, entities.LeaderboardEntry{
			Place:        s.count(log, resourceLeaderboard, i, "Place", row["Place"]),
			Name:         name,
			Slug:         normalize.Slugify(name),
			NetWorth:     s.currency(log, resourceLeaderboard, i, "Net Worth", row["Net Worth"]),
			LastChange:   s.percent(log, resourceLeaderboard, i, "Last", row["Last"]),
			Trades:       s.count(log, resourceLeaderboard, i, "Trades", row["Trades"]),
			TotalReturns: s.currency(log, resourceLeaderboard, i, "Total Returns", row["Total Returns"]),
		})
	}
	metrics.CSVRowsParsed.WithLabelValues(resourceLeaderboard).Add(float64(len(entries)))
	return entries, nil
}

// Performance parses one player's time series, sorted ascending by
// date; the export's row order is not guaranteed.
func (s *Store) Performance(ctx context.Context, playerName string) ([]entities.PerformancePoint, error) {
	file := performanceFile(playerName)
	defer observeParse(resourcePerformance, time.Now())

	rows, err := s.readTable(file)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodePlayerNotFound,
			fmt.Sprintf("no performance data for player %q", playerName))
	}

	log := s.logger.ForResource(resourcePerformance, file)
	points := make([]entities.PerformancePoint, 0, len(rows))
	for i, row := range rows {
		points = append(points, entities.PerformancePoint{
			Date:          s.date(log, resourcePerformance, i, "Date", row["Date"]),
			Rank:          s.count(log, resourcePerformance, i, "Rank", row["Rank"]),
			Cash:          s.currency(log, resourcePerformance, i, "Cash", row["Cash"]),
			CashInterest:  s.currency(log, resourcePerformance, i, "Cash Interest", row["Cash Interest"]),
			NetWorth:      s.currency(log, resourcePerformance, i, "Net Worth", row["Net Worth"]),
			PercentReturn: s.percent(log, resourcePerformance, i, "% Return", row["% Return"]),
		})
	}
	sort.Slice(points, func(a, b int) bool {
		return points[a].Date.Before(points[b].Date)
	})
	metrics.CSVRowsParsed.WithLabelValues(resourcePerformance).Add(float64(len(points)))
	return points, nil
}

// Holdings parses one player's current open positions. No ordering is
// guaranteed to consumers.
func (s *Store) Holdings(ctx context.Context, playerName string) ([]entities.Holding, error) {
	file := holdingsFile(playerName)
	defer observeParse(resourceHoldings, time.Now())

	rows, err := s.readTable(file)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodePlayerNotFound,
			fmt.Sprintf("no holdings data for player %q", playerName))
	}

	log := s.logger.ForResource(resourceHoldings, file)
	holdings := make([]entities.Holding, 0, len(rows))
	for i, row := range rows {
		holdings = append(holdings, entities.Holding{
			Symbol:             row["Symbol"],
			Shares:             s.count(log, resourceHoldings, i, "Shares", row["Shares"]),
			PercentOfPortfolio: s.count(log, resourceHoldings, i, "% Holdings", row["% Holdings"]),
			Type:               normalizeHoldingType(row["Type"]),
			Price:              s.currency(log, resourceHoldings, i, "Price", row["Price"]),
			PriceChange:        s.number(log, resourceHoldings, i, "Price Change", row["Price Change"]),
			PriceChangePercent: s.percent(log, resourceHoldings, i, "Price Change %", row["Price Change %"]),
			Value:              s.currency(log, resourceHoldings, i, "Value", row["Value"]),
			GainLoss:           s.currency(log, resourceHoldings, i, "Value Gain/Loss", row["Value Gain/Loss"]),
			GainLossPercent:    s.percent(log, resourceHoldings, i, "Value Gain/Loss %", row["Value Gain/Loss %"]),
		})
	}
	metrics.CSVRowsParsed.WithLabelValues(resourceHoldings).Add(float64(len(holdings)))
	return holdings, nil
}

// Transactions parses one player's order events, dropping structural
// rows with an empty symbol and sorting descending by order date.
func (s *Store) Transactions(ctx context.Context, playerName string) ([]entities.Transaction, error) {
	file := transactionsFile(playerName)
	defer observeParse(resourceTransactions, time.Now())

	rows, err := s.readTable(file)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodePlayerNotFound,
			fmt.Sprintf("no transaction data for player %q", playerName))
	}

	log := s.logger.ForResource(resourceTransactions, file)
	txns := make([]entities.Transaction, 0, len(rows))
	for i, row := range rows {
		if row["Symbol"] == "" {
			continue
		}
		txn := entities.Transaction{
			Symbol:    row["Symbol"],
			OrderDate: s.date(log, resourceTransactions, i, "Order Date", row["Order Date"]),
			Type:      entities.TransactionType(row["Type"]),
			Amount:    s.count(log, resourceTransactions, i, "Amount", row["Amount"]),
		}
		if raw := row["Transaction Date"]; raw != "" {
			d := s.date(log, resourceTransactions, i, "Transaction Date", raw)
			txn.TransactionDate = &d
		}
		if raw := row["Cancel Reason"]; raw != "" {
			reason := raw
			txn.CancelReason = &reason
		}
		if raw := row["Price"]; raw != "" && raw != "N/A" {
			price := s.currency(log, resourceTransactions, i, "Price", raw)
			txn.Price = &price
		}
		txns = append(txns, txn)
	}
	sort.Slice(txns, func(a, b int) bool {
		return txns[a].OrderDate.After(txns[b].OrderDate)
	})
	metrics.CSVRowsParsed.WithLabelValues(resourceTransactions).Add(float64(len(txns)))
	return txns, nil
}

// Players derives the roster from the leaderboard and fails fast on a
// slug collision, since two players aliasing one URL key would silently
// merge their pages.
func (s *Store) Players(ctx context.Context) ([]entities.Player, error) {
	leaderboard, err := s.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(leaderboard))
	players := make([]entities.Player, 0, len(leaderboard))
	for _, entry := range leaderboard {
		if other, ok := seen[entry.Slug]; ok {
			return nil, apperrors.New(apperrors.ErrCodeSlugCollision, "two player names map to the same slug").
				AddDetail("slug", entry.Slug).
				AddDetail("names", []string{other, entry.Name})
		}
		seen[entry.Slug] = entry.Name
		players = append(players, entities.Player{Name: entry.Name, Slug: entry.Slug})
	}
	return players, nil
}

// PlayerBySlug looks a player up by slug. Absence is not an error;
// callers translate a nil player into a not-found response.
func (s *Store) PlayerBySlug(ctx context.Context, slug string) (*entities.Player, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].Slug == slug {
			return &players[i], nil
		}
	}
	return nil, nil
}

func normalizeHoldingType(raw string) entities.HoldingType {
	if strings.EqualFold(strings.TrimSpace(raw), "short") {
		return entities.HoldingTypeShort
	}
	return entities.HoldingTypeBuy
}

func observeParse(resource string, start time.Time) {
	metrics.CSVParseDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
}
