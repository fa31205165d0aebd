package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID       int64  `bun:"id,pk,autoincrement"`
	DeviceID string `bun:"device_id,notnull,unique"`
	Username string `bun:"username,notnull"`

	// XP earned from quests, achievements and challenge rewards.
	XP    int64 `bun:"xp,notnull,default:0"`
	Level int   `bun:"level,notnull,default:1"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
