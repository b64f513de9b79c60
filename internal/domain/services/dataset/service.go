package dataset

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
	"github.com/stockgame-service/stockgame_service/internal/domain/services/stats"
	"github.com/stockgame-service/stockgame_service/internal/infrastructure/csvstore"
	"github.com/stockgame-service/stockgame_service/pkg/logger"
	"github.com/stockgame-service/stockgame_service/pkg/metrics"
)

// Service memoizes parsed and derived data for the life of the
// process. Source files are static per deployment, so there is no
// invalidation and no TTL. Cold-cache computation is guarded per key
// with singleflight so concurrent first requests parse exactly once;
// errors are never cached, so a missing per-player file is retried on
// the next request.
type Service struct {
	store    *csvstore.Store
	logger   *logger.Logger
	baseline float64

	group singleflight.Group

	mu             sync.RWMutex
	leaderboard    []entities.LeaderboardEntry
	players        []entities.Player
	performance    map[string][]entities.PerformancePoint
	playerData     map[string]*entities.PlayerData
	allPerformance map[string][]entities.PerformancePoint
	allData        []*entities.PlayerData
}

// New creates a dataset service over the given store. baseline is the
// starting capital every player began the game with.
func New(store *csvstore.Store, log *logger.Logger, baseline float64) *Service {
	return &Service{
		store:       store,
		logger:      log,
		baseline:    baseline,
		performance: make(map[string][]entities.PerformancePoint),
		playerData:  make(map[string]*entities.PlayerData),
	}
}

// Warm eagerly loads the roster so a broken deployment fails at
// startup instead of on the first request.
func (s *Service) Warm(ctx context.Context) error {
	_, err := s.Players(ctx)
	return err
}

// Leaderboard returns the cached standings, parsing them on first use.
func (s *Service) Leaderboard(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	s.mu.RLock()
	cached := s.leaderboard
	s.mu.RUnlock()
	if cached != nil {
		metrics.DatasetCacheHits.WithLabelValues("leaderboard").Inc()
		return cached, nil
	}

	v, err, _ := s.group.Do("leaderboard", func() (interface{}, error) {
		metrics.DatasetCacheMisses.WithLabelValues("leaderboard").Inc()
		entries, err := s.store.Leaderboard(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.leaderboard = entries
		s.mu.Unlock()
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.LeaderboardEntry), nil
}

// Players returns the cached roster. The leaderboard is the single
// source of truth for who is a player.
func (s *Service) Players(ctx context.Context) ([]entities.Player, error) {
	s.mu.RLock()
	cached := s.players
	s.mu.RUnlock()
	if cached != nil {
		metrics.DatasetCacheHits.WithLabelValues("players").Inc()
		return cached, nil
	}

	v, err, _ := s.group.Do("players", func() (interface{}, error) {
		metrics.DatasetCacheMisses.WithLabelValues("players").Inc()
		players, err := s.store.Players(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.players = players
		s.mu.Unlock()
		return players, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.Player), nil
}

// PlayerBySlug resolves a slug against the roster. A nil player means
// not found; callers translate that into a not-found response.
func (s *Service) PlayerBySlug(ctx context.Context, slug string) (*entities.Player, error) {
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

// PlayerPerformance returns one player's cached time series.
func (s *Service) PlayerPerformance(ctx context.Context, playerName string) ([]entities.PerformancePoint, error) {
	s.mu.RLock()
	cached, ok := s.performance[playerName]
	s.mu.RUnlock()
	if ok {
		metrics.DatasetCacheHits.WithLabelValues("performance").Inc()
		return cached, nil
	}

	v, err, _ := s.group.Do("performance:"+playerName, func() (interface{}, error) {
		metrics.DatasetCacheMisses.WithLabelValues("performance").Inc()
		points, err := s.store.Performance(ctx, playerName)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.performance[playerName] = points
		s.mu.Unlock()
		return points, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.PerformancePoint), nil
}

// PlayerData assembles one player's full bundle: performance, holdings,
// transactions and derived stats. The source reads fan out
// concurrently; a failure here fails only this player's bundle.
func (s *Service) PlayerData(ctx context.Context, playerName string) (*entities.PlayerData, error) {
	s.mu.RLock()
	cached, ok := s.playerData[playerName]
	s.mu.RUnlock()
	if ok {
		metrics.DatasetCacheHits.WithLabelValues("player_data").Inc()
		return cached, nil
	}

	v, err, _ := s.group.Do("player_data:"+playerName, func() (interface{}, error) {
		metrics.DatasetCacheMisses.WithLabelValues("player_data").Inc()

		var (
			performance  []entities.PerformancePoint
			holdings     []entities.Holding
			transactions []entities.Transaction
			players      []entities.Player
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			performance, err = s.PlayerPerformance(gctx, playerName)
			return err
		})
		g.Go(func() (err error) {
			holdings, err = s.store.Holdings(gctx, playerName)
			return err
		})
		g.Go(func() (err error) {
			transactions, err = s.store.Transactions(gctx, playerName)
			return err
		})
		g.Go(func() (err error) {
			players, err = s.Players(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		playerStats := stats.PlayerStats(playerName, performance, transactions, len(holdings), len(players), s.baseline)
		data := &entities.PlayerData{
			Player:       entities.Player{Name: playerName, Slug: playerStats.Slug},
			Performance:  performance,
			Holdings:     holdings,
			Transactions: transactions,
			Stats:        playerStats,
		}

		s.mu.Lock()
		s.playerData[playerName] = data
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entities.PlayerData), nil
}

// AllPlayersPerformance returns a name-keyed map of every player's
// series, fetched concurrently on first use.
func (s *Service) AllPlayersPerformance(ctx context.Context) (map[string][]entities.PerformancePoint, error) {
	s.mu.RLock()
	cached := s.allPerformance
	s.mu.RUnlock()
	if cached != nil {
		metrics.DatasetCacheHits.WithLabelValues("all_performance").Inc()
		return cached, nil
	}

	v, err, _ := s.group.Do("all_performance", func() (interface{}, error) {
		metrics.DatasetCacheMisses.WithLabelValues("all_performance").Inc()
		players, err := s.Players(ctx)
		if err != nil {
			return nil, err
		}

		series := make([][]entities.PerformancePoint, len(players))
		g, gctx := errgroup.WithContext(ctx)
		for i, player := range players {
			g.Go(func() (err error) {
				series[i], err = s.PlayerPerformance(gctx, player.Name)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		byName := make(map[string][]entities.PerformancePoint, len(players))
		for i, player := range players {
			byName[player.Name] = series[i]
		}
		s.mu.Lock()
		s.allPerformance = byName
		s.mu.Unlock()
		return byName, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string][]entities.PerformancePoint), nil
}

// AllPlayersData returns every player's bundle in roster order.
func (s *Service) AllPlayersData(ctx context.Context) ([]*entities.PlayerData, error) {
	s.mu.RLock()
	cached := s.allData
	s.mu.RUnlock()
	if cached != nil {
		metrics.DatasetCacheHits.WithLabelValues("all_data").Inc()
		return cached, nil
	}

	v, err, _ := s.group.Do("all_data", func() (interface{}, error) {
		metrics.DatasetCacheMisses.WithLabelValues("all_data").Inc()
		players, err := s.Players(ctx)
		if err != nil {
			return nil, err
		}

		data := make([]*entities.PlayerData, len(players))
		g, gctx := errgroup.WithContext(ctx)
		for i, player := range players {
			g.Go(func() (err error) {
				data[i], err = s.PlayerData(gctx, player.Name)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.allData = data
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*entities.PlayerData), nil
}

// Baseline exposes the starting capital the stats were computed from.
func (s *Service) Baseline() float64 {
	return s.baseline
}
