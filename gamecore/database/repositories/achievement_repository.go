package repositories

import (
	"context"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/uptrace/bun"
)

type AchievementRepository interface {
	// UnlockedKeys returns the set of unlocked achievement keys for a player.
	UnlockedKeys(ctx context.Context, playerID int64) (map[string]bool, error)
	// Unlock records an unlock; a repeat unlock is silently ignored so the
	// operation stays idempotent under concurrent checks.
	Unlock(ctx context.Context, playerID int64, key string) error
	GetAll(ctx context.Context, playerID int64) ([]*models.UnlockedAchievement, error)
}

type achievementRepository struct {
	db *bun.DB
}

func NewAchievementRepository(db *bun.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) UnlockedKeys(ctx context.Context, playerID int64) (map[string]bool, error) {
	var rows []*models.UnlockedAchievement
	err := r.db.NewSelect().
		Model(&rows).
		Column("achievement_key").
		Where("player_id = ?", playerID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]bool, len(rows))
	for _, row := range rows {
		keys[row.AchievementKey] = true
	}
	return keys, nil
}

func (r *achievementRepository) Unlock(ctx context.Context, playerID int64, key string) error {
	row := &models.UnlockedAchievement{
		PlayerID:       playerID,
		AchievementKey: key,
		UnlockedAt:     time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(row).
		On("CONFLICT (player_id, achievement_key) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *achievementRepository) GetAll(ctx context.Context, playerID int64) ([]*models.UnlockedAchievement, error) {
	var rows []*models.UnlockedAchievement
	err := r.db.NewSelect().
		Model(&rows).
		Where("player_id = ?", playerID).
		Order("unlocked_at ASC").
		Scan(ctx)
	return rows, err
}
