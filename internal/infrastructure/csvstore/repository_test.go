package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
	apperrors "github.com/stockgame-service/stockgame_service/pkg/errors"
	"github.com/stockgame-service/stockgame_service/pkg/logger"
)

const testGameID = "TESTGAME"

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStore(dir, testGameID, logger.NewNop()), dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeLeaderboard(t *testing.T, dir, content string) {
	writeFile(t, dir, "Rankings - "+testGameID+".csv", content)
}

func TestLeaderboard(t *testing.T) {
	store, dir := newTestStore(t)
	writeLeaderboard(t, dir, `Place,Name,Net Worth,Last,Trades,Total Returns
1,Jane Doe,"$110,500.25",+2.5%,14,"$10,500.25"
2,John Smith,"$95,000.00",-1.2%,3,"($5,000.00)"
`)

	entries, err := store.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Place)
	assert.Equal(t, "Jane Doe", entries[0].Name)
	assert.Equal(t, "jane-doe", entries[0].Slug)
	assert.InDelta(t, 110500.25, entries[0].NetWorth, 1e-9)
	assert.InDelta(t, 2.5, entries[0].LastChange, 1e-9)
	assert.Equal(t, 14, entries[0].Trades)
	assert.InDelta(t, 10500.25, entries[0].TotalReturns, 1e-9)

	assert.InDelta(t, -5000, entries[1].TotalReturns, 1e-9)
}

func TestLeaderboardMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Leaderboard(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDataUnavailable))
}

func TestLeaderboardMalformedFieldDegradesToZero(t *testing.T) {
	store, dir := newTestStore(t)
	writeLeaderboard(t, dir, `Place,Name,Net Worth,Last,Trades,Total Returns
1,Jane Doe,garbage,+2.5%,14,"$10,500.25"
`)

	entries, err := store.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Zero(t, entries[0].NetWorth)
	assert.InDelta(t, 2.5, entries[0].LastChange, 1e-9)
}

func TestLeaderboardBOMHeader(t *testing.T) {
	store, dir := newTestStore(t)
	writeLeaderboard(t, dir, "\ufeffPlace,Name,Net Worth,Last,Trades,Total Returns\n1,Jane Doe,$100,+1%,2,$0\n")

	entries, err := store.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Place)
}

func TestPerformanceSortedAscending(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, dir, "Portfolio Performance - Jane Doe.csv", `Date,Rank,Cash,Cash Interest,Net Worth,% Return
5/6/25,1,"$20,000.00",$12.50,"$110,000.00",+10%
5/4/25,2,"$15,000.00",$0.00,"$100,000.00",0%
5/5/25,1,"$18,000.00",$5.00,"$105,000.00",+5%
`)

	points, err := store.Performance(context.Background(), "Jane Doe")
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC), points[1].Date)
	assert.Equal(t, time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC), points[2].Date)
	assert.InDelta(t, 110000, points[2].NetWorth, 1e-9)
	assert.Equal(t, 1, points[2].Rank)
	assert.InDelta(t, 12.50, points[2].CashInterest, 1e-9)
}

func TestPerformanceMissingFileScopedToPlayer(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Performance(context.Background(), "Nobody")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodePlayerNotFound))
}

func TestHoldings(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, dir, "Holdings - Jane Doe.csv", `Symbol,Shares,% Holdings,Type,Price,Price Change,Price Change %,Value,Value Gain/Loss,Value Gain/Loss %
AAPL,100,45%,buy,$210.50,1.25,+0.6%,"$21,050.00","$1,050.00",+5.25%
TSLA,50,20%,Short,$180.00,-3.40,-1.9%,"$9,000.00","($500.00)",-5.3%
`)

	holdings, err := store.Holdings(context.Background(), "Jane Doe")
	require.NoError(t, err)
	require.Len(t, holdings, 2)

	assert.Equal(t, "AAPL", holdings[0].Symbol)
	assert.Equal(t, 100, holdings[0].Shares)
	assert.Equal(t, 45, holdings[0].PercentOfPortfolio)
	assert.Equal(t, entities.HoldingTypeBuy, holdings[0].Type)
	assert.InDelta(t, 210.50, holdings[0].Price, 1e-9)

	assert.Equal(t, entities.HoldingTypeShort, holdings[1].Type)
	assert.InDelta(t, -500, holdings[1].GainLoss, 1e-9)
	assert.InDelta(t, -3.40, holdings[1].PriceChange, 1e-9)
}

func TestTransactions(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, dir, "Portfolio Transactions - Jane Doe.csv", `Symbol,Order Date,Transaction Date,Type,Cancel Reason,Amount,Price
AAPL,5/4/25,5/5/25,Buy,,100,$210.50
,,,,,,
TSLA,5/6/25,,Short,Insufficient funds,50,N/A
NVDA,5/5/25,5/5/25,Sell,,25,$900.00
`)

	txns, err := store.Transactions(context.Background(), "Jane Doe")
	require.NoError(t, err)
	// The structural empty-symbol row is dropped.
	require.Len(t, txns, 3)

	// Sorted descending by order date.
	assert.Equal(t, "TSLA", txns[0].Symbol)
	assert.Equal(t, "NVDA", txns[1].Symbol)
	assert.Equal(t, "AAPL", txns[2].Symbol)

	// Cancelled short: no transaction date, no price, a reason.
	assert.Nil(t, txns[0].TransactionDate)
	assert.Nil(t, txns[0].Price)
	require.NotNil(t, txns[0].CancelReason)
	assert.Equal(t, "Insufficient funds", *txns[0].CancelReason)
	assert.Equal(t, entities.TransactionTypeShort, txns[0].Type)

	// Filled buy carries everything.
	require.NotNil(t, txns[2].TransactionDate)
	require.NotNil(t, txns[2].Price)
	assert.InDelta(t, 210.50, *txns[2].Price, 1e-9)
	assert.Equal(t, 100, txns[2].Amount)
}

func TestPlayersDerivedFromLeaderboard(t *testing.T) {
	store, dir := newTestStore(t)
	writeLeaderboard(t, dir, `Place,Name,Net Worth,Last,Trades,Total Returns
1,Jane Doe,$100,+1%,2,$0
2,John Smith,$90,-1%,1,$0
`)

	players, err := store.Players(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, entities.Player{Name: "Jane Doe", Slug: "jane-doe"}, players[0])
	assert.Equal(t, entities.Player{Name: "John Smith", Slug: "john-smith"}, players[1])
}

func TestPlayersSlugCollisionFailsFast(t *testing.T) {
	store, dir := newTestStore(t)
	writeLeaderboard(t, dir, `Place,Name,Net Worth,Last,Trades,Total Returns
1,Jane Doe,$100,+1%,2,$0
2,jane.doe,$90,-1%,1,$0
`)

	_, err := store.Players(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeSlugCollision))
}

func TestPlayerBySlugAbsenceIsNotAnError(t *testing.T) {
	store, dir := newTestStore(t)
	writeLeaderboard(t, dir, `Place,Name,Net Worth,Last,Trades,Total Returns
1,Jane Doe,$100,+1%,2,$0
`)

	player, err := store.PlayerBySlug(context.Background(), "jane-doe")
	require.NoError(t, err)
	require.NotNil(t, player)
	assert.Equal(t, "Jane Doe", player.Name)

	player, err = store.PlayerBySlug(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, player)
}

func TestReadTableShortRecords(t *testing.T) {
	store, dir := newTestStore(t)
	writeLeaderboard(t, dir, `Place,Name,Net Worth,Last,Trades,Total Returns
1,Jane Doe,$100
`)

	entries, err := store.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Jane Doe", entries[0].Name)
	assert.Zero(t, entries[0].Trades)
	assert.Zero(t, entries[0].TotalReturns)
}
