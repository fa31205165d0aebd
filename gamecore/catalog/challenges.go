package catalog

// Challenges is the full challenge catalog. Counter challenges track one
// player counter against a target; questline challenges track an ordered set
// of quests. Questline targets are derived from the required quest count when
// the catalog is indexed.
var Challenges = []Challenge{
	{
		ID:          "ch_quest_starter",
		Title:       "Quest-Einsteiger",
		Description: "Schließe 5 Quests ab",
		Tier:        TierBronze,
		Mode:        ModeCounter,
		Target:      5,
		ProgressKey: ProgressCompletedQuests,
		XPReward:    100,
	},
	{
		ID:          "ch_quest_pro",
		Title:       "Quest-Profi",
		Description: "Schließe 15 Quests ab",
		Tier:        TierSilver,
		Mode:        ModeCounter,
		Target:      15,
		ProgressKey: ProgressCompletedQuests,
		XPReward:    250,
	},
	{
		ID:          "ch_quest_elite",
		Title:       "Quest-Elite",
		Description: "Schließe 40 Quests ab",
		Tier:        TierGold,
		Mode:        ModeCounter,
		Target:      40,
		ProgressKey: ProgressCompletedQuests,
		XPReward:    600,
		Reward: Reward{
			PhysicalCard:  "ep-phys-010",
			ClaimLocation: "Tourist-Info Hauptbahnhof",
		},
	},
	{
		ID:          "ch_team_player",
		Title:       "Teamplayer",
		Description: "Füge 3 Freunde hinzu",
		Tier:        TierBronze,
		Mode:        ModeCounter,
		Target:      3,
		ProgressKey: ProgressFriendCount,
		XPReward:    100,
	},
	{
		ID:          "ch_team_builder",
		Title:       "Teambuilder",
		Description: "Gründe 2 Teams mit Freunden",
		Tier:        TierSilver,
		Mode:        ModeCounter,
		Target:      2,
		ProgressKey: ProgressFriendTeams,
		XPReward:    250,
	},
	{
		ID:          "ch_workshop",
		Title:       "Werkstattbesuch",
		Description: "Besuche die Mitmach-Werkstatt",
		Tier:        TierSpecial,
		Mode:        ModeCounter,
		Target:      1,
		ProgressKey: ProgressWorkshopVisited,
		XPReward:    150,
	},
	{
		ID:          "ch_daily_devotion",
		Title:       "Tägliche Hingabe",
		Description: "Spiele 14 Tage in Folge",
		Tier:        TierSilver,
		Mode:        ModeCounter,
		Target:      14,
		ProgressKey: ProgressDailyStreak,
		XPReward:    300,
	},
	{
		ID:          "ch_collector",
		Title:       "Kartensammler",
		Description: "Sammle 5 Karten",
		Tier:        TierSilver,
		Mode:        ModeCounter,
		Target:      5,
		ProgressKey: ProgressCollectedCards,
		XPReward:    250,
	},
	{
		ID:          "ch_collector_gold",
		Title:       "Meistersammler",
		Description: "Sammle 10 Karten",
		Tier:        TierGold,
		Mode:        ModeCounter,
		Target:      10,
		ProgressKey: ProgressCollectedCards,
		XPReward:    600,
		Reward: Reward{
			PhysicalCard:  "ep-phys-011",
			ClaimLocation: "Tourist-Info Altstadt",
		},
	},
	{
		ID:          "ch_networking_de",
		Title:       "Netzwerken in Deutschland",
		Description: "Schließe 3 Networking-Quests in Deutschland ab",
		Tier:        TierCountry,
		Mode:        ModeCounter,
		Target:      3,
		ProgressKey: ProgressKey(ProgressPrefixNetworking + CountryDeutschland),
		XPReward:    200,
	},
	{
		ID:          "ch_explorer_at",
		Title:       "Entdecker in Österreich",
		Description: "Erkunde 4 Orte in Österreich",
		Tier:        TierCountry,
		Mode:        ModeCounter,
		Target:      4,
		ProgressKey: ProgressKey(ProgressPrefixExplored + CountryOesterreich),
		XPReward:    200,
	},
	{
		ID:          "ch_adventure_ch",
		Title:       "Abenteuer in der Schweiz",
		Description: "Bestehe 3 Abenteuer-Quests in der Schweiz",
		Tier:        TierCountry,
		Mode:        ModeCounter,
		Target:      3,
		ProgressKey: ProgressKey(ProgressPrefixAdventure + CountrySchweiz),
		XPReward:    200,
	},
	{
		ID:          "ch_summer_event",
		Title:       "Sommer-Event",
		Description: "Schließe 10 Quests während des Sommer-Events ab",
		Tier:        TierEvent,
		Mode:        ModeCounter,
		Target:      10,
		ProgressKey: ProgressCompletedQuests,
		XPReward:    400,
	},
	{
		ID:          "ch_altstadt_tour",
		Title:       "Altstadt-Tour",
		Description: "Folge der Questline durch die historische Altstadt",
		Tier:        TierGold,
		Mode:        ModeQuestline,
		Quests: []QuestRef{
			{ID: "quest_marktplatz", Name: "Der Marktplatz"},
			{ID: "quest_rathaus", Name: "Das alte Rathaus"},
			{ID: "quest_stadtkirche", Name: "Die Stadtkirche"},
		},
		Reward: Reward{
			PhysicalCard:  "ep-phys-001",
			ClaimLocation: "Tourist-Info Altstadt",
		},
		XPReward: 500,
	},
	{
		ID:          "ch_bergpfad",
		Title:       "Bergpfad",
		Description: "Erklimme den Bergpfad bis zur Aussichtsplattform",
		Tier:        TierSilver,
		Mode:        ModeQuestline,
		Quests: []QuestRef{
			{ID: "quest_talstation", Name: "Die Talstation"},
			{ID: "quest_aussichtsplattform", Name: "Die Aussichtsplattform"},
			{ID: "quest_gipfelkreuz", Name: "Das Gipfelkreuz", Optional: true, BonusXP: 100},
		},
		Reward: Reward{
			PhysicalCard:  "ep-phys-002",
			ClaimLocation: "Bergbahn-Kasse",
		},
		XPReward: 350,
	},
}
