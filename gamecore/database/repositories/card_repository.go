package repositories

import (
	"context"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/uptrace/bun"
)

type CardRepository interface {
	// OwnedCardIDs returns the player's collection as a membership set.
	OwnedCardIDs(ctx context.Context, playerID int64) (map[string]bool, error)
	// Add records a scanned card and reports whether it was new.
	Add(ctx context.Context, playerID int64, cardID string) (bool, error)
	Count(ctx context.Context, playerID int64) (int, error)
}

type cardRepository struct {
	db *bun.DB
}

func NewCardRepository(db *bun.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) OwnedCardIDs(ctx context.Context, playerID int64) (map[string]bool, error) {
	var rows []*models.PlayerCard
	err := r.db.NewSelect().
		Model(&rows).
		Column("card_id").
		Where("player_id = ?", playerID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(rows))
	for _, row := range rows {
		owned[row.CardID] = true
	}
	return owned, nil
}

func (r *cardRepository) Add(ctx context.Context, playerID int64, cardID string) (bool, error) {
	row := &models.PlayerCard{
		PlayerID:  playerID,
		CardID:    cardID,
		ScannedAt: time.Now(),
	}
	result, err := r.db.NewInsert().
		Model(row).
		On("CONFLICT (player_id, card_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *cardRepository) Count(ctx context.Context, playerID int64) (int, error) {
	return r.db.NewSelect().
		Model((*models.PlayerCard)(nil)).
		Where("player_id = ?", playerID).
		Count(ctx)
}
