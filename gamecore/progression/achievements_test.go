package progression

import (
	"math"
	"testing"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(testCatalog(t), NewUnlockNotifier(immediateClock{}, 1))
}

func unlockKeys(result CheckResult) []string {
	keys := make([]string, 0, len(result.NewUnlocks))
	for _, a := range result.NewUnlocks {
		keys = append(keys, a.Key)
	}
	return keys
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func TestCheckAll_FirstSteps(t *testing.T) {
	e := testEngine(t)

	result := e.CheckAll(PlayerStats{TotalQuestsCompleted: 1}, map[string]bool{})
	if !containsKey(unlockKeys(result), "first_steps") {
		t.Errorf("first_steps not unlocked with 1 completed quest, got %v", unlockKeys(result))
	}

	result = e.CheckAll(PlayerStats{TotalQuestsCompleted: 0}, map[string]bool{})
	if containsKey(unlockKeys(result), "first_steps") {
		t.Errorf("first_steps unlocked with 0 completed quests")
	}
	if got := result.Progress["first_steps"]; got != 0 {
		t.Errorf("progress[first_steps] = %v, want 0", got)
	}
}

func TestCheckAll_BoundaryIsInclusive(t *testing.T) {
	e := testEngine(t)

	// Exactly at the threshold must unlock.
	result := e.CheckAll(PlayerStats{FriendsCount: 5}, map[string]bool{})
	if !containsKey(unlockKeys(result), "social_butterfly") {
		t.Errorf("social_butterfly not unlocked at exact threshold")
	}
}

func TestCheckAll_OneWayUnlock(t *testing.T) {
	e := testEngine(t)
	unlocked := map[string]bool{}

	first := e.CheckAll(PlayerStats{TotalQuestsCompleted: 5}, unlocked)
	for _, a := range first.NewUnlocks {
		unlocked[a.Key] = true
	}
	if !containsKey(unlockKeys(first), "quest_novice") {
		t.Fatalf("quest_novice not unlocked, got %v", unlockKeys(first))
	}

	// Re-running with the same (or even higher) stats must not re-unlock,
	// and unlocked keys must not appear in the progress map either.
	second := e.CheckAll(PlayerStats{TotalQuestsCompleted: 100}, unlocked)
	if containsKey(unlockKeys(second), "quest_novice") {
		t.Errorf("quest_novice re-unlocked")
	}
	if _, present := second.Progress["quest_novice"]; present {
		t.Errorf("unlocked key still present in progress map")
	}

	// Dropping the stat below the threshold never relocks.
	third := e.CheckAll(PlayerStats{TotalQuestsCompleted: 0}, unlocked)
	if containsKey(unlockKeys(third), "quest_novice") {
		t.Errorf("quest_novice unlocked again after stat reset")
	}
}

func TestCheckAll_UnlocksInCatalogOrder(t *testing.T) {
	e := testEngine(t)

	result := e.CheckAll(PlayerStats{TotalQuestsCompleted: 20}, map[string]bool{})
	keys := unlockKeys(result)
	want := []string{"first_steps", "quest_novice", "quest_adept"}
	if len(keys) < len(want) {
		t.Fatalf("unlock count = %d, want at least %d (%v)", len(keys), len(want), keys)
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("unlock order[%d] = %s, want %s", i, keys[i], key)
		}
	}
}

// quest_time_under resolves to +Inf when no quest has been timed and the
// engine compares every condition with >=, so the achievement unlocks when no
// time is recorded or when the last quest took *longer* than the threshold.
// The behavior is preserved deliberately; flip the operator only on an
// explicit product decision.
func TestCheckAll_QuestTimeUnderComparison(t *testing.T) {
	e := testEngine(t)

	// No timed quest yet: +Inf >= 300 unlocks.
	result := e.CheckAll(PlayerStats{}, map[string]bool{})
	if !containsKey(unlockKeys(result), "speedrunner") {
		t.Errorf("speedrunner not unlocked with no timed quest (inf >= threshold)")
	}

	// A genuinely fast quest (under the threshold) does NOT unlock.
	result = e.CheckAll(PlayerStats{LastQuestTime: 120}, map[string]bool{})
	if containsKey(unlockKeys(result), "speedrunner") {
		t.Errorf("speedrunner unlocked for a fast quest; the >= comparison should reject it")
	}

	// A slow quest does unlock.
	result = e.CheckAll(PlayerStats{LastQuestTime: 900}, map[string]bool{})
	if !containsKey(unlockKeys(result), "speedrunner") {
		t.Errorf("speedrunner not unlocked for a slow quest")
	}
}

func TestProgressAll_ReadOnly(t *testing.T) {
	e := testEngine(t)

	progress := e.ProgressAll(PlayerStats{TotalQuestsCompleted: 3, FriendsCount: 5}, map[string]bool{
		"first_steps": true,
	})
	if _, ok := progress["first_steps"]; ok {
		t.Errorf("unlocked key present in progress map")
	}
	if got := progress["quest_novice"]; got != 3 {
		t.Errorf("progress[quest_novice] = %v, want 3", got)
	}
	// A satisfied condition must not queue a notification on the read path.
	if pending := e.Notifier().Pending(); pending != 0 {
		t.Errorf("Pending() = %d after ProgressAll, want 0", pending)
	}
}

func TestResolveStat_UnknownDefaultsToZero(t *testing.T) {
	stats := PlayerStats{TotalQuestsCompleted: 10}
	if got := resolveStat(catalog.StatKey("no_such_stat"), stats); got != 0 {
		t.Errorf("resolveStat(unknown) = %v, want 0", got)
	}
	if got := resolveStat(catalog.StatQuestTimeUnder, PlayerStats{}); !math.IsInf(got, 1) {
		t.Errorf("resolveStat(quest_time_under, empty) = %v, want +Inf", got)
	}
}

func TestEngineDerivedStats(t *testing.T) {
	e := testEngine(t)

	unlocked := map[string]bool{
		"first_steps":  true, // 50 XP, common
		"quest_novice": true, // 100 XP, common
		"week_streak":  true, // 200 XP, uncommon
	}

	if got := e.TotalXP(unlocked); got != 350 {
		t.Errorf("TotalXP = %d, want 350", got)
	}

	breakdown := e.RarityBreakdown(unlocked)
	if breakdown[catalog.RarityCommon] != 2 || breakdown[catalog.RarityUncommon] != 1 {
		t.Errorf("RarityBreakdown = %v, want 2 common / 1 uncommon", breakdown)
	}
}

func TestNearlyUnlocked(t *testing.T) {
	e := testEngine(t)

	// 4 of 5 quests (80%), 3 of 5 friends (60%).
	stats := PlayerStats{TotalQuestsCompleted: 4, FriendsCount: 3}
	unlocked := map[string]bool{"first_steps": true}

	near := e.NearlyUnlocked(stats, unlocked, 0)
	if len(near) == 0 {
		t.Fatalf("NearlyUnlocked returned nothing")
	}
	for _, n := range near {
		if n.Ratio < 0.75 {
			t.Errorf("entry %s below default ratio: %v", n.Achievement.Key, n.Ratio)
		}
		if n.Achievement.Key == "first_steps" {
			t.Errorf("unlocked achievement listed as nearly unlocked")
		}
	}
	if near[0].Achievement.Key != "quest_novice" {
		t.Errorf("nearest achievement = %s, want quest_novice", near[0].Achievement.Key)
	}

	// Sorted descending by ratio.
	for i := 1; i < len(near); i++ {
		if near[i].Ratio > near[i-1].Ratio {
			t.Errorf("NearlyUnlocked not sorted descending at %d", i)
		}
	}

	// Custom ratio includes the 60% entry.
	near = e.NearlyUnlocked(stats, unlocked, 0.5)
	found := false
	for _, n := range near {
		if n.Achievement.Key == "social_butterfly" {
			found = true
		}
	}
	if !found {
		t.Errorf("social_butterfly missing at minRatio 0.5")
	}
}
