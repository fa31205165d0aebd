package progression

// PlayerStats is a read-only snapshot of a player's counters, assembled by
// the persistence layer and consumed by the rule engines. The json tags are
// the stable field vocabulary shared with the mobile client; both counter
// families (achievement-facing and challenge-facing) are populated from the
// same sources by the stats service.
type PlayerStats struct {
	TotalQuestsCompleted int     `json:"totalQuestsCompleted"`
	FriendsCount         int     `json:"friendsCount"`
	LoginStreak          int     `json:"loginStreak"`
	Level                int     `json:"level"`
	TotalXP              int     `json:"totalXP"`
	ChallengesWon        int     `json:"challengesWon"`
	ChallengeWinStreak   int     `json:"challengeWinStreak"`
	TotalDistanceWalked  float64 `json:"totalDistanceWalked"`
	RewardsRedeemed      int     `json:"rewardsRedeemed"`
	// LastQuestTime is the duration of the most recent quest in seconds;
	// 0 means no quest has been timed yet.
	LastQuestTime float64 `json:"lastQuestTime"`
	QuestsLastHour int    `json:"questsLastHour"`

	// Challenge-facing counters.
	CompletedQuests int `json:"completedQuests"`
	FriendCount     int `json:"friendCount"`
	FriendTeams     int `json:"friendTeams"`
	WorkshopVisited int `json:"workshopVisited"`
	DailyStreak     int `json:"dailyStreak"`
	CollectedCards  int `json:"collectedCards"`

	NetworkingByCountry map[string]int `json:"networkingByCountry,omitempty"`
	ExploredByCountry   map[string]int `json:"exploredByCountry,omitempty"`
	AdventureByCountry  map[string]int `json:"adventureByCountry,omitempty"`
}

// ClaimState is the lifecycle of a challenge from a player's point of view.
type ClaimState string

const (
	ClaimStateNotStarted ClaimState = "not_started"
	ClaimStateInProgress ClaimState = "in_progress"
	ClaimStateCompleted  ClaimState = "completed"
	ClaimStateClaimed    ClaimState = "claimed"
)
