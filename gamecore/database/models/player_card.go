package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PlayerCard records one scanned collectible card. Re-scanning the same card
// is a no-op at the storage level.
type PlayerCard struct {
	bun.BaseModel `bun:"table:player_cards,alias:pc"`

	ID        int64     `bun:"id,pk,autoincrement"`
	PlayerID  int64     `bun:"player_id,notnull,unique:pc_player_card"`
	CardID    string    `bun:"card_id,notnull,unique:pc_player_card"`
	ScannedAt time.Time `bun:"scanned_at,notnull,default:current_timestamp"`
}
