package migration

import "time"

// Document shapes of the legacy Mongo backend's bsondump exports. Field names
// follow the old collections verbatim; everything is converted before it
// touches the new schema.

type MongoPlayer struct {
	DeviceID    string    `bson:"deviceId"`
	Username    string    `bson:"username"`
	XP          int64     `bson:"xp"`
	Level       int       `bson:"level"`
	Friends     []string  `bson:"friends"`
	FriendTeams int       `bson:"friendTeams"`
	LoginStreak int       `bson:"loginStreak"`
	LastLogin   time.Time `bson:"lastLogin"`
	Distance    float64   `bson:"distanceWalked"`
	Workshop    int       `bson:"workshopVisits"`
	Redeemed    int       `bson:"rewardsRedeemed"`
	Cards       []string  `bson:"cards"`
	Unlocked    []string  `bson:"achievements"`
	CreatedAt   time.Time `bson:"createdAt"`
}

type MongoQuestCompletion struct {
	DeviceID    string    `bson:"deviceId"`
	QuestID     string    `bson:"questId"`
	Kind        string    `bson:"kind"`
	Country     string    `bson:"country"`
	Duration    float64   `bson:"durationSeconds"`
	XPAwarded   int       `bson:"xpAwarded"`
	CompletedAt time.Time `bson:"completedAt"`
}

type MongoClaim struct {
	DeviceID    string    `bson:"deviceId"`
	ChallengeID string    `bson:"challengeId"`
	Code        string    `bson:"code"`
	ClaimedAt   time.Time `bson:"claimedAt"`
}

// TableStats tracks per-collection import counters.
type TableStats struct {
	Read     int
	Imported int
	Skipped  int
}

type ImportStats struct {
	Players map[string]*TableStats
	Start   time.Time
}
