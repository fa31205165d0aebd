package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UnlockedAchievement is one row per player per achievement key. The unique
// pair makes unlocks one-way at the storage level.
type UnlockedAchievement struct {
	bun.BaseModel `bun:"table:unlocked_achievements,alias:ua"`

	ID             int64     `bun:"id,pk,autoincrement"`
	PlayerID       int64     `bun:"player_id,notnull,unique:ua_player_key"`
	AchievementKey string    `bun:"achievement_key,notnull,unique:ua_player_key"`
	UnlockedAt     time.Time `bun:"unlocked_at,notnull,default:current_timestamp"`
}
