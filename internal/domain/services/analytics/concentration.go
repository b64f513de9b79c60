package analytics

import (
	"sort"

	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
)

// ConcentrationEntry ranks one player by how much of their portfolio
// sits in a single position.
type ConcentrationEntry struct {
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	TopSymbol         string `json:"top_symbol,omitempty"`
	TopHoldingPercent int    `json:"top_holding_percent"`
}

// Concentration ranks players descending by their largest single
// holding's share of portfolio. Players with no holdings rank at 0.
func Concentration(players []*entities.PlayerData) []ConcentrationEntry {
	entries := make([]ConcentrationEntry, 0, len(players))
	for _, pd := range players {
		entry := ConcentrationEntry{
			Name: pd.Player.Name,
			Slug: pd.Player.Slug,
		}
		for _, holding := range pd.Holdings {
			if holding.PercentOfPortfolio > entry.TopHoldingPercent {
				entry.TopHoldingPercent = holding.PercentOfPortfolio
				entry.TopSymbol = holding.Symbol
			}
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].TopHoldingPercent > entries[b].TopHoldingPercent
	})
	return entries
}
