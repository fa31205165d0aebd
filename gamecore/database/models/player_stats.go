package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PlayerStats is the per-player counter record every progression check reads.
// The per-country counters are stored as JSONB so new countries never need a
// schema change.
type PlayerStats struct {
	bun.BaseModel `bun:"table:player_stats,alias:ps"`

	PlayerID int64 `bun:"player_id,pk"`

	QuestsCompleted int `bun:"quests_completed,notnull,default:0"`
	FriendsCount    int `bun:"friends_count,notnull,default:0"`
	FriendTeams     int `bun:"friend_teams,notnull,default:0"`
	WorkshopVisited int `bun:"workshop_visited,notnull,default:0"`
	CollectedCards  int `bun:"collected_cards,notnull,default:0"`
	RewardsRedeemed int `bun:"rewards_redeemed,notnull,default:0"`

	ChallengesWon      int `bun:"challenges_won,notnull,default:0"`
	ChallengeWinStreak int `bun:"challenge_win_streak,notnull,default:0"`

	LoginStreak int       `bun:"login_streak,notnull,default:0"`
	LastLoginAt time.Time `bun:"last_login_at"`

	TotalDistanceWalked float64 `bun:"total_distance_walked,notnull,default:0"`
	// Duration of the most recent quest in seconds; 0 until a quest is timed.
	LastQuestTime float64 `bun:"last_quest_time,notnull,default:0"`

	NetworkingByCountry map[string]int `bun:"networking_by_country,type:jsonb"`
	ExploredByCountry   map[string]int `bun:"explored_by_country,type:jsonb"`
	AdventureByCountry  map[string]int `bun:"adventure_by_country,type:jsonb"`

	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
