package catalog

// Achievements is the full achievement catalog. Keys are stable identifiers
// persisted in player unlock records and must never be reused.
var Achievements = []Achievement{
	{
		Key:         "first_steps",
		Category:    AchievementCategoryQuests,
		Name:        "Erste Schritte",
		Description: "Schließe deine erste Quest ab",
		Icon:        "footprints",
		Color:       0x4CAF50,
		XP:          50,
		Condition:   Condition{Stat: StatQuestsCompleted, Value: 1},
		Rarity:      RarityCommon,
	},
	{
		Key:         "quest_novice",
		Category:    AchievementCategoryQuests,
		Name:        "Quest-Neuling",
		Description: "Schließe 5 Quests ab",
		Icon:        "map",
		Color:       0x4CAF50,
		XP:          100,
		Condition:   Condition{Stat: StatQuestsCompleted, Value: 5},
		Rarity:      RarityCommon,
	},
	{
		Key:         "quest_adept",
		Category:    AchievementCategoryQuests,
		Name:        "Quest-Kenner",
		Description: "Schließe 15 Quests ab",
		Icon:        "compass",
		Color:       0x2196F3,
		XP:          200,
		Condition:   Condition{Stat: StatQuestsCompleted, Value: 15},
		Rarity:      RarityUncommon,
	},
	{
		Key:         "quest_master",
		Category:    AchievementCategoryQuests,
		Name:        "Quest-Meister",
		Description: "Schließe 50 Quests ab",
		Icon:        "trophy",
		Color:       0x9C27B0,
		XP:          500,
		Condition:   Condition{Stat: StatQuestsCompleted, Value: 50},
		Rarity:      RarityEpic,
	},
	{
		Key:         "social_butterfly",
		Category:    AchievementCategorySocial,
		Name:        "Gesellig",
		Description: "Füge 5 Freunde hinzu",
		Icon:        "users",
		Color:       0xFF9800,
		XP:          150,
		Condition:   Condition{Stat: StatFriendsCount, Value: 5},
		Rarity:      RarityUncommon,
	},
	{
		Key:         "networker",
		Category:    AchievementCategorySocial,
		Name:        "Netzwerker",
		Description: "Füge 15 Freunde hinzu",
		Icon:        "network",
		Color:       0xFF9800,
		XP:          300,
		Condition:   Condition{Stat: StatFriendsCount, Value: 15},
		Rarity:      RarityRare,
	},
	{
		Key:         "week_streak",
		Category:    AchievementCategoryDedication,
		Name:        "Wochenritual",
		Description: "Logge dich 7 Tage in Folge ein",
		Icon:        "calendar",
		Color:       0x00BCD4,
		XP:          200,
		Condition:   Condition{Stat: StatLoginStreak, Value: 7},
		Rarity:      RarityUncommon,
	},
	{
		Key:         "month_streak",
		Category:    AchievementCategoryDedication,
		Name:        "Monatsmarathon",
		Description: "Logge dich 30 Tage in Folge ein",
		Icon:        "flame",
		Color:       0x00BCD4,
		XP:          750,
		Condition:   Condition{Stat: StatLoginStreak, Value: 30},
		Rarity:      RarityEpic,
	},
	{
		Key:         "level_10",
		Category:    AchievementCategoryProgression,
		Name:        "Aufsteiger",
		Description: "Erreiche Level 10",
		Icon:        "arrow-up",
		Color:       0x8BC34A,
		XP:          250,
		Condition:   Condition{Stat: StatLevel, Value: 10},
		Rarity:      RarityUncommon,
	},
	{
		Key:         "level_25",
		Category:    AchievementCategoryProgression,
		Name:        "Veteran",
		Description: "Erreiche Level 25",
		Icon:        "shield",
		Color:       0x8BC34A,
		XP:          600,
		Condition:   Condition{Stat: StatLevel, Value: 25},
		Rarity:      RarityRare,
	},
	{
		Key:         "xp_collector",
		Category:    AchievementCategoryProgression,
		Name:        "XP-Sammler",
		Description: "Sammle insgesamt 10.000 XP",
		Icon:        "star",
		Color:       0xFFC107,
		XP:          400,
		Condition:   Condition{Stat: StatTotalXP, Value: 10000},
		Rarity:      RarityRare,
	},
	{
		Key:         "legend",
		Category:    AchievementCategoryProgression,
		Name:        "Legende",
		Description: "Sammle insgesamt 50.000 XP",
		Icon:        "crown",
		Color:       0xFFC107,
		XP:          2000,
		Condition:   Condition{Stat: StatTotalXP, Value: 50000},
		Rarity:      RarityLegendary,
	},
	{
		Key:         "challenger",
		Category:    AchievementCategoryChallenges,
		Name:        "Herausforderer",
		Description: "Gewinne deine erste Challenge",
		Icon:        "swords",
		Color:       0xF44336,
		XP:          100,
		Condition:   Condition{Stat: StatChallengesWon, Value: 1},
		Rarity:      RarityCommon,
	},
	{
		Key:         "challenge_champion",
		Category:    AchievementCategoryChallenges,
		Name:        "Challenge-Champion",
		Description: "Gewinne 10 Challenges",
		Icon:        "medal",
		Color:       0xF44336,
		XP:          500,
		Condition:   Condition{Stat: StatChallengesWon, Value: 10},
		Rarity:      RarityEpic,
	},
	{
		Key:         "on_a_roll",
		Category:    AchievementCategoryChallenges,
		Name:        "Siegesserie",
		Description: "Gewinne 3 Challenges in Folge",
		Icon:        "zap",
		Color:       0xF44336,
		XP:          300,
		Condition:   Condition{Stat: StatChallengeWinStreak, Value: 3},
		Rarity:      RarityRare,
	},
	{
		Key:         "wanderer",
		Category:    AchievementCategoryExploration,
		Name:        "Wanderer",
		Description: "Lege 10 km zu Fuß zurück",
		Icon:        "footsteps",
		Color:       0x795548,
		XP:          200,
		Condition:   Condition{Stat: StatDistanceWalked, Value: 10000},
		Rarity:      RarityUncommon,
	},
	{
		Key:         "marathoner",
		Category:    AchievementCategoryExploration,
		Name:        "Marathoni",
		Description: "Lege eine Marathondistanz zurück",
		Icon:        "mountain",
		Color:       0x795548,
		XP:          800,
		Condition:   Condition{Stat: StatDistanceWalked, Value: 42195},
		Rarity:      RarityEpic,
	},
	{
		Key:         "bargain_hunter",
		Category:    AchievementCategoryRewards,
		Name:        "Schnäppchenjäger",
		Description: "Löse 5 Belohnungen ein",
		Icon:        "tag",
		Color:       0xE91E63,
		XP:          150,
		Condition:   Condition{Stat: StatRewardsRedeemed, Value: 5},
		Rarity:      RarityUncommon,
	},
	{
		Key:         "speedrunner",
		Category:    AchievementCategorySpecial,
		Name:        "Sprinter",
		Description: "Schließe eine Quest in unter 5 Minuten ab",
		Icon:        "timer",
		Color:       0x3F51B5,
		XP:          400,
		Condition:   Condition{Stat: StatQuestTimeUnder, Value: 300},
		Rarity:      RarityRare,
	},
	{
		Key:         "power_hour",
		Category:    AchievementCategorySpecial,
		Name:        "Power-Stunde",
		Description: "Schließe 3 Quests innerhalb einer Stunde ab",
		Icon:        "hourglass",
		Color:       0x3F51B5,
		XP:          350,
		Condition:   Condition{Stat: StatQuestsPerHour, Value: 3},
		Rarity:      RarityRare,
	},
}
