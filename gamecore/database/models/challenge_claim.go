package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ChallengeClaim records a redeemed challenge reward. The claim code is shown
// at the physical claim location; the unique pair enforces one claim per
// challenge per player.
type ChallengeClaim struct {
	bun.BaseModel `bun:"table:challenge_claims,alias:cc"`

	ID          int64     `bun:"id,pk,autoincrement"`
	ClaimCode   string    `bun:"claim_code,notnull,unique"`
	PlayerID    int64     `bun:"player_id,notnull,unique:cc_player_challenge"`
	ChallengeID string    `bun:"challenge_id,notnull,unique:cc_player_challenge"`
	ClaimedAt   time.Time `bun:"claimed_at,notnull,default:current_timestamp"`
}
