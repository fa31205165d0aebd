package repositories

import (
	"context"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/uptrace/bun"
)

type QuestRepository interface {
	RecordCompletion(ctx context.Context, completion *models.QuestCompletion) error
	// CompletedQuestIDs returns the distinct quest ids the player finished,
	// as the membership set questline progress reads.
	CompletedQuestIDs(ctx context.Context, playerID int64) (map[string]bool, error)
	// CountSince counts completions after the cutoff, used for the
	// quests-per-hour achievement stat.
	CountSince(ctx context.Context, playerID int64, cutoff time.Time) (int, error)
}

type questRepository struct {
	db *bun.DB
}

func NewQuestRepository(db *bun.DB) QuestRepository {
	return &questRepository{db: db}
}

func (r *questRepository) RecordCompletion(ctx context.Context, completion *models.QuestCompletion) error {
	if completion.CompletedAt.IsZero() {
		completion.CompletedAt = time.Now()
	}
	_, err := r.db.NewInsert().Model(completion).Exec(ctx)
	return err
}

func (r *questRepository) CompletedQuestIDs(ctx context.Context, playerID int64) (map[string]bool, error) {
	var rows []*models.QuestCompletion
	err := r.db.NewSelect().
		Model(&rows).
		Column("quest_id").
		Where("player_id = ?", playerID).
		Group("quest_id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool, len(rows))
	for _, row := range rows {
		completed[row.QuestID] = true
	}
	return completed, nil
}

func (r *questRepository) CountSince(ctx context.Context, playerID int64, cutoff time.Time) (int, error) {
	return r.db.NewSelect().
		Model((*models.QuestCompletion)(nil)).
		Where("player_id = ?", playerID).
		Where("completed_at > ?", cutoff).
		Count(ctx)
}
