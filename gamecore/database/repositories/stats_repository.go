package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/uptrace/bun"
)

type StatsRepository interface {
	// Get returns the player's stats row, creating an empty one on first use.
	Get(ctx context.Context, playerID int64) (*models.PlayerStats, error)
	Update(ctx context.Context, stats *models.PlayerStats) error
}

type statsRepository struct {
	db *bun.DB
}

func NewStatsRepository(db *bun.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Get(ctx context.Context, playerID int64) (*models.PlayerStats, error) {
	stats := new(models.PlayerStats)
	err := r.db.NewSelect().
		Model(stats).
		Where("player_id = ?", playerID).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		stats = &models.PlayerStats{
			PlayerID:            playerID,
			NetworkingByCountry: map[string]int{},
			ExploredByCountry:   map[string]int{},
			AdventureByCountry:  map[string]int{},
			UpdatedAt:           time.Now(),
		}
		if _, err := r.db.NewInsert().
			Model(stats).
			On("CONFLICT (player_id) DO NOTHING").
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to create stats row: %w", err)
		}
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	// JSONB maps come back nil when empty; the callers index into them.
	if stats.NetworkingByCountry == nil {
		stats.NetworkingByCountry = map[string]int{}
	}
	if stats.ExploredByCountry == nil {
		stats.ExploredByCountry = map[string]int{}
	}
	if stats.AdventureByCountry == nil {
		stats.AdventureByCountry = map[string]int{}
	}
	return stats, nil
}

func (r *statsRepository) Update(ctx context.Context, stats *models.PlayerStats) error {
	stats.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(stats).
		WherePK().
		Exec(ctx)
	return err
}
