package catalog

// Rarity buckets shared by achievements and cards.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Multiplier returns the reward weight attached to a rarity bucket.
func (r Rarity) Multiplier() float64 {
	switch r {
	case RarityCommon:
		return 1.0
	case RarityUncommon:
		return 1.1
	case RarityRare:
		return 1.25
	case RarityEpic:
		return 1.5
	case RarityLegendary:
		return 2.0
	default:
		return 1.0
	}
}

// StatKey is the closed set of player counters achievement conditions can
// reference. Adding a key here requires extending the resolver switch in the
// progression engine.
type StatKey string

const (
	StatQuestsCompleted    StatKey = "quests_completed"
	StatFriendsCount       StatKey = "friends_count"
	StatLoginStreak        StatKey = "login_streak"
	StatLevel              StatKey = "level"
	StatTotalXP            StatKey = "total_xp"
	StatChallengesWon      StatKey = "challenges_won"
	StatChallengeWinStreak StatKey = "challenge_win_streak"
	StatDistanceWalked     StatKey = "distance_walked"
	StatRewardsRedeemed    StatKey = "rewards_redeemed"
	StatQuestTimeUnder     StatKey = "quest_time_under"
	StatQuestsPerHour      StatKey = "quests_per_hour"
)

// Achievement category constants
const (
	AchievementCategoryQuests      = "quests"
	AchievementCategorySocial      = "social"
	AchievementCategoryDedication  = "dedication"
	AchievementCategoryProgression = "progression"
	AchievementCategoryChallenges  = "challenges"
	AchievementCategoryExploration = "exploration"
	AchievementCategoryRewards     = "rewards"
	AchievementCategorySpecial     = "special"
)

// Condition is a single numeric threshold on one stat.
type Condition struct {
	Stat  StatKey
	Value float64
}

type Achievement struct {
	Key         string
	Category    string
	Name        string
	Description string
	Icon        string
	Color       int
	XP          int
	Condition   Condition
	Rarity      Rarity
}

// BonusKind tags the effect a card or set bonus applies.
type BonusKind string

const (
	BonusXPMultiplier BonusKind = "xp_multiplier"
	BonusQuestXP      BonusKind = "quest_xp"
	BonusSocial       BonusKind = "social_bonus"
	BonusDiscount     BonusKind = "discount"
)

// BonusEffect is a tagged bonus value. For card bonuses the discount value is
// a fraction of 1 (0.15 = 15%); for category completion effects it is already
// in percentage points. The aggregator accounts for the difference.
type BonusEffect struct {
	Kind  BonusKind
	Value float64
}

type Card struct {
	ID       string
	Name     string
	Category string
	Country  string
	Rarity   Rarity
	Bonus    *BonusEffect
}

type Category struct {
	ID   string
	Name string
	Icon string
	// PartialThreshold is the owned-card count that unlocks the partial
	// badge; 0 falls back to DefaultPartialThreshold.
	PartialThreshold int
	PartialLabel     string
	CompleteLabel    string
	// CompleteEffects are applied on top of the completion badge.
	CompleteEffects []BonusEffect
}

const DefaultPartialThreshold = 2

// Threshold returns the effective partial threshold.
func (c Category) Threshold() int {
	if c.PartialThreshold <= 0 {
		return DefaultPartialThreshold
	}
	return c.PartialThreshold
}

type Country struct {
	Code            string
	Name            string
	Flag            string
	BonusMultiplier float64
}

// Challenge tier constants
const (
	TierBronze  = "bronze"
	TierSilver  = "silver"
	TierGold    = "gold"
	TierSpecial = "special"
	TierEvent   = "event"
	TierCountry = "country"
)

// Challenge mode constants
const (
	ModeCounter   = "counter"
	ModeQuestline = "questline"
)

// ProgressKey selects the player counter a counter-mode challenge tracks.
// The *_by_country keys carry the country code as a dotted suffix, e.g.
// "networking_by_country.deutschland".
type ProgressKey string

const (
	ProgressCompletedQuests ProgressKey = "completed_quests"
	ProgressFriendCount     ProgressKey = "friend_count"
	ProgressFriendTeams     ProgressKey = "friend_teams"
	ProgressWorkshopVisited ProgressKey = "workshop_visited"
	ProgressDailyStreak     ProgressKey = "daily_streak"
	ProgressCollectedCards  ProgressKey = "collected_cards"
)

const (
	ProgressPrefixNetworking = "networking_by_country."
	ProgressPrefixExplored   = "explored_by_country."
	ProgressPrefixAdventure  = "adventure_by_country."
)

// QuestRef is one entry of a questline. Optional quests contribute BonusXP
// when completed but never gate challenge completion.
type QuestRef struct {
	ID       string
	Name     string
	Optional bool
	BonusXP  int
}

// Reward describes the physical reward a completed challenge can be redeemed
// for at its claim location.
type Reward struct {
	PhysicalCard  string
	ClaimLocation string
}

type Challenge struct {
	ID          string
	Title       string
	Description string
	Tier        string
	Mode        string
	// Target is the completion threshold for counter challenges. For
	// questline challenges it is derived from the required quest count.
	Target      int
	ProgressKey ProgressKey
	Quests      []QuestRef
	Reward      Reward
	XPReward    int
}

// RequiredQuestCount returns the number of non-optional quests.
func (c Challenge) RequiredQuestCount() int {
	count := 0
	for _, q := range c.Quests {
		if !q.Optional {
			count++
		}
	}
	return count
}
