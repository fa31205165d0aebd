package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/uptrace/bun"
)

var ErrClaimNotFound = errors.New("claim not found")

type ClaimRepository interface {
	// ClaimedChallengeIDs returns the set of challenge ids the player already
	// redeemed.
	ClaimedChallengeIDs(ctx context.Context, playerID int64) (map[string]bool, error)
	// Insert records a claim; a duplicate (player, challenge) pair reports
	// success with created=false.
	Insert(ctx context.Context, claim *models.ChallengeClaim) (created bool, err error)
	GetByCode(ctx context.Context, code string) (*models.ChallengeClaim, error)
	GetAll(ctx context.Context, playerID int64) ([]*models.ChallengeClaim, error)
}

type claimRepository struct {
	db *bun.DB
}

func NewClaimRepository(db *bun.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) ClaimedChallengeIDs(ctx context.Context, playerID int64) (map[string]bool, error) {
	var rows []*models.ChallengeClaim
	err := r.db.NewSelect().
		Model(&rows).
		Column("challenge_id").
		Where("player_id = ?", playerID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	claimed := make(map[string]bool, len(rows))
	for _, row := range rows {
		claimed[row.ChallengeID] = true
	}
	return claimed, nil
}

func (r *claimRepository) Insert(ctx context.Context, claim *models.ChallengeClaim) (bool, error) {
	if claim.ClaimedAt.IsZero() {
		claim.ClaimedAt = time.Now()
	}
	result, err := r.db.NewInsert().
		Model(claim).
		On("CONFLICT (player_id, challenge_id) DO NOTHING").
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

func (r *claimRepository) GetByCode(ctx context.Context, code string) (*models.ChallengeClaim, error) {
	claim := new(models.ChallengeClaim)
	err := r.db.NewSelect().
		Model(claim).
		Where("claim_code = ?", code).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClaimNotFound
	}
	if err != nil {
		return nil, err
	}
	return claim, nil
}

func (r *claimRepository) GetAll(ctx context.Context, playerID int64) ([]*models.ChallengeClaim, error) {
	var rows []*models.ChallengeClaim
	err := r.db.NewSelect().
		Model(&rows).
		Where("player_id = ?", playerID).
		Order("claimed_at ASC").
		Scan(ctx)
	return rows, err
}
