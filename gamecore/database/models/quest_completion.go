package models

import (
	"time"

	"github.com/uptrace/bun"
)

// QuestCompletion is one finished quest. QuestID references the questline
// catalog for questline quests and is free-form for standalone quests.
type QuestCompletion struct {
	bun.BaseModel `bun:"table:quest_completions,alias:qc"`

	ID       int64  `bun:"id,pk,autoincrement"`
	PlayerID int64  `bun:"player_id,notnull"`
	QuestID  string `bun:"quest_id,notnull"`

	// Quest classification used by the per-country challenge counters.
	Kind    string `bun:"kind"`
	Country string `bun:"country"`

	DurationSeconds float64   `bun:"duration_seconds,notnull,default:0"`
	XPAwarded       int       `bun:"xp_awarded,notnull,default:0"`
	CompletedAt     time.Time `bun:"completed_at,notnull,default:current_timestamp"`
}
