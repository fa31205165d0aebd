package progression

import (
	"testing"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
)

func challengeByID(t *testing.T, c *catalog.Catalog, id string) catalog.Challenge {
	t.Helper()
	ch, ok := c.ChallengeByID(id)
	if !ok {
		t.Fatalf("challenge %s not in catalog", id)
	}
	return ch
}

func TestProgressFor(t *testing.T) {
	c := testCatalog(t)
	stats := PlayerStats{
		CompletedQuests: 7,
		FriendCount:     2,
		FriendTeams:     1,
		WorkshopVisited: 1,
		DailyStreak:     9,
		CollectedCards:  4,
		NetworkingByCountry: map[string]int{
			catalog.CountryDeutschland: 2,
		},
		ExploredByCountry: map[string]int{
			catalog.CountryOesterreich: 4,
		},
		AdventureByCountry: map[string]int{
			catalog.CountrySchweiz: 1,
		},
	}

	tests := []struct {
		id   string
		want int
	}{
		{"ch_quest_starter", 7},
		{"ch_team_player", 2},
		{"ch_team_builder", 1},
		{"ch_workshop", 1},
		{"ch_daily_devotion", 9},
		{"ch_collector", 4},
		{"ch_networking_de", 2},
		{"ch_explorer_at", 4},
		{"ch_adventure_ch", 1},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			ch := challengeByID(t, c, tt.id)
			if got := ProgressFor(ch, stats); got != tt.want {
				t.Errorf("ProgressFor(%s) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestProgressFor_UnknownKeyIsZero(t *testing.T) {
	ch := catalog.Challenge{
		ID:          "ch_mystery",
		Mode:        catalog.ModeCounter,
		Target:      3,
		ProgressKey: catalog.ProgressKey("moon_phase"),
	}
	stats := PlayerStats{CompletedQuests: 99}
	if got := ProgressFor(ch, stats); got != 0 {
		t.Errorf("ProgressFor(unknown key) = %d, want 0", got)
	}
}

func TestProgressFor_MissingCountryEntryIsZero(t *testing.T) {
	c := testCatalog(t)
	ch := challengeByID(t, c, "ch_networking_de")

	// Nil map and map without the country both resolve to 0.
	if got := ProgressFor(ch, PlayerStats{}); got != 0 {
		t.Errorf("ProgressFor(nil map) = %d, want 0", got)
	}
	stats := PlayerStats{NetworkingByCountry: map[string]int{catalog.CountrySchweiz: 5}}
	if got := ProgressFor(ch, stats); got != 0 {
		t.Errorf("ProgressFor(other country) = %d, want 0", got)
	}
}

func TestWithProgress_CounterBoundary(t *testing.T) {
	c := testCatalog(t)

	// One below the target stays open, exactly at the target completes, and
	// anything beyond it reports the target itself.
	for _, tt := range []struct {
		quests       int
		wantProgress int
		want         bool
	}{
		{4, 4, false},
		{5, 5, true},
		{6, 5, true},
		{12, 5, true},
	} {
		stats := PlayerStats{CompletedQuests: tt.quests}
		results := WithProgress(c.Challenges, stats, nil)
		found := false
		for _, r := range results {
			if r.Challenge.ID != "ch_quest_starter" {
				continue
			}
			found = true
			if r.CurrentProgress != tt.wantProgress {
				t.Errorf("quests=%d: currentProgress = %d, want %d", tt.quests, r.CurrentProgress, tt.wantProgress)
			}
			if r.IsCompleted != tt.want {
				t.Errorf("quests=%d: isCompleted = %v, want %v", tt.quests, r.IsCompleted, tt.want)
			}
		}
		if !found {
			t.Fatalf("ch_quest_starter missing from results")
		}
	}
}

func TestWithProgress_CoversWholeCatalog(t *testing.T) {
	c := testCatalog(t)
	results := WithProgress(c.Challenges, PlayerStats{}, nil)
	if len(results) != len(c.Challenges) {
		t.Fatalf("result count = %d, want %d", len(results), len(c.Challenges))
	}
	for i, r := range results {
		if r.Challenge.ID != c.Challenges[i].ID {
			t.Errorf("result[%d] = %s, want catalog order %s", i, r.Challenge.ID, c.Challenges[i].ID)
		}
	}
}

func TestQuestlineProgress(t *testing.T) {
	c := testCatalog(t)
	ch := challengeByID(t, c, "ch_bergpfad")

	tests := []struct {
		name      string
		completed map[string]bool
		want      int
	}{
		{"nothing done", nil, 0},
		{"one required", map[string]bool{"quest_talstation": true}, 1},
		{
			"optional does not count",
			map[string]bool{"quest_talstation": true, "quest_gipfelkreuz": true},
			1,
		},
		{
			"all required",
			map[string]bool{"quest_talstation": true, "quest_aussichtsplattform": true},
			2,
		},
		{"unrelated quest ignored", map[string]bool{"quest_marktplatz": true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuestlineProgress(ch, tt.completed); got != tt.want {
				t.Errorf("QuestlineProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuestlineComplete(t *testing.T) {
	c := testCatalog(t)
	ch := challengeByID(t, c, "ch_bergpfad")

	// Both required quests done; the optional one is irrelevant either way.
	completed := map[string]bool{
		"quest_talstation":         true,
		"quest_aussichtsplattform": true,
	}
	if !QuestlineComplete(ch, completed) {
		t.Errorf("questline not complete with all required quests done")
	}

	completed["quest_gipfelkreuz"] = true
	if !QuestlineComplete(ch, completed) {
		t.Errorf("optional quest flipped completion")
	}

	if QuestlineComplete(ch, map[string]bool{"quest_talstation": true}) {
		t.Errorf("questline complete with a required quest missing")
	}

	// Only the optional quest done is not completion.
	if QuestlineComplete(ch, map[string]bool{"quest_gipfelkreuz": true}) {
		t.Errorf("questline complete from optional quest alone")
	}
}

func TestQuestlineBonusXP(t *testing.T) {
	c := testCatalog(t)
	ch := challengeByID(t, c, "ch_bergpfad")

	if got := QuestlineBonusXP(ch, map[string]bool{"quest_talstation": true}); got != 0 {
		t.Errorf("bonus XP from required quest = %d, want 0", got)
	}
	if got := QuestlineBonusXP(ch, map[string]bool{"quest_gipfelkreuz": true}); got != 100 {
		t.Errorf("bonus XP = %d, want 100", got)
	}
}

func TestQuestlineStatus(t *testing.T) {
	c := testCatalog(t)
	ch := challengeByID(t, c, "ch_altstadt_tour")

	// Fresh questline: only the first quest is available.
	statuses := QuestlineStatus(ch, nil)
	wantStates := []QuestState{QuestStateAvailable, QuestStateLocked, QuestStateLocked}
	for i, want := range wantStates {
		if statuses[i].State != want {
			t.Errorf("fresh state[%d] = %s, want %s", i, statuses[i].State, want)
		}
	}

	// First quest done: the second opens, the third stays locked.
	statuses = QuestlineStatus(ch, map[string]bool{"quest_marktplatz": true})
	wantStates = []QuestState{QuestStateCompleted, QuestStateAvailable, QuestStateLocked}
	for i, want := range wantStates {
		if statuses[i].State != want {
			t.Errorf("state[%d] = %s, want %s", i, statuses[i].State, want)
		}
	}

	// An out-of-order completion shows as completed even behind a lock.
	statuses = QuestlineStatus(ch, map[string]bool{"quest_stadtkirche": true})
	wantStates = []QuestState{QuestStateAvailable, QuestStateLocked, QuestStateCompleted}
	for i, want := range wantStates {
		if statuses[i].State != want {
			t.Errorf("out-of-order state[%d] = %s, want %s", i, statuses[i].State, want)
		}
	}
}

func TestQuestlineStatus_OptionalAlwaysAvailable(t *testing.T) {
	c := testCatalog(t)
	ch := challengeByID(t, c, "ch_bergpfad")

	// The optional summit quest is never locked, even before the required
	// chain opens it.
	statuses := QuestlineStatus(ch, nil)
	if statuses[2].Quest.ID != "quest_gipfelkreuz" {
		t.Fatalf("unexpected quest order: %+v", statuses)
	}
	if statuses[2].State != QuestStateAvailable {
		t.Errorf("optional quest state = %s, want available", statuses[2].State)
	}
	if statuses[1].State != QuestStateLocked {
		t.Errorf("second required quest state = %s, want locked", statuses[1].State)
	}
}

func TestWithProgress_Questline(t *testing.T) {
	c := testCatalog(t)
	completed := map[string]bool{
		"quest_talstation":         true,
		"quest_aussichtsplattform": true,
		"quest_marktplatz":         true,
	}

	results := WithProgress(c.Challenges, PlayerStats{}, completed)
	for _, r := range results {
		switch r.Challenge.ID {
		case "ch_bergpfad":
			if r.CurrentProgress != 2 || !r.IsCompleted {
				t.Errorf("ch_bergpfad = %d/%v, want 2/completed", r.CurrentProgress, r.IsCompleted)
			}
		case "ch_altstadt_tour":
			if r.CurrentProgress != 1 || r.IsCompleted {
				t.Errorf("ch_altstadt_tour = %d/%v, want 1/open", r.CurrentProgress, r.IsCompleted)
			}
		}
	}
}
