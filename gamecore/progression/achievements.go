package progression

import (
	"math"
	"sort"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
)

// CheckResult is the outcome of one evaluation pass over the achievement
// catalog.
type CheckResult struct {
	// NewUnlocks lists achievements whose condition is now satisfied, in
	// catalog order.
	NewUnlocks []catalog.Achievement
	// Progress maps every still-locked achievement key to the raw value of
	// its condition stat, for progress bars. Recomputed each pass.
	Progress map[string]float64
}

// Engine evaluates achievement conditions against stat snapshots and paces
// unlock notifications. Construct one per process and share it; it holds no
// per-player state.
type Engine struct {
	catalog  *catalog.Catalog
	notifier *UnlockNotifier
}

func NewEngine(cat *catalog.Catalog, notifier *UnlockNotifier) *Engine {
	if notifier == nil {
		notifier = NewUnlockNotifier(nil, 0)
	}
	return &Engine{
		catalog:  cat,
		notifier: notifier,
	}
}

// Notifier exposes the unlock notification queue for subscription.
func (e *Engine) Notifier() *UnlockNotifier {
	return e.notifier
}

// CheckAll evaluates every locked achievement against the snapshot. Keys in
// unlocked are never re-evaluated and never appear in the result; persisting
// the returned unlocks is the caller's job. Newly satisfied achievements are
// also queued on the notifier.
func (e *Engine) CheckAll(stats PlayerStats, unlocked map[string]bool) CheckResult {
	result := CheckResult{
		NewUnlocks: []catalog.Achievement{},
		Progress:   make(map[string]float64),
	}

	for _, achievement := range e.catalog.Achievements {
		if unlocked[achievement.Key] {
			continue
		}

		current := resolveStat(achievement.Condition.Stat, stats)
		result.Progress[achievement.Key] = current

		if current >= achievement.Condition.Value {
			result.NewUnlocks = append(result.NewUnlocks, achievement)
		}
	}

	if len(result.NewUnlocks) > 0 {
		e.notifier.Enqueue(result.NewUnlocks...)
	}

	return result
}

// ProgressAll reports the raw condition stat for every locked achievement
// without touching the notifier. Read paths use this; CheckAll is for event
// processing.
func (e *Engine) ProgressAll(stats PlayerStats, unlocked map[string]bool) map[string]float64 {
	progress := make(map[string]float64)
	for _, achievement := range e.catalog.Achievements {
		if unlocked[achievement.Key] {
			continue
		}
		progress[achievement.Key] = resolveStat(achievement.Condition.Stat, stats)
	}
	return progress
}

// resolveStat maps a condition stat key to the snapshot value. Unknown keys
// resolve to 0 so a misconfigured catalog entry reads as "no progress".
func resolveStat(key catalog.StatKey, stats PlayerStats) float64 {
	switch key {
	case catalog.StatQuestsCompleted:
		return float64(stats.TotalQuestsCompleted)
	case catalog.StatFriendsCount:
		return float64(stats.FriendsCount)
	case catalog.StatLoginStreak:
		return float64(stats.LoginStreak)
	case catalog.StatLevel:
		return float64(stats.Level)
	case catalog.StatTotalXP:
		return float64(stats.TotalXP)
	case catalog.StatChallengesWon:
		return float64(stats.ChallengesWon)
	case catalog.StatChallengeWinStreak:
		return float64(stats.ChallengeWinStreak)
	case catalog.StatDistanceWalked:
		return stats.TotalDistanceWalked
	case catalog.StatRewardsRedeemed:
		return float64(stats.RewardsRedeemed)
	case catalog.StatQuestTimeUnder:
		// Resolves to +Inf when no quest has been timed, and the engine
		// compares every condition with >=. The name reads "under" but the
		// observable behavior has always been a >= check against the last
		// quest duration; kept as-is pending product clarification.
		if stats.LastQuestTime > 0 {
			return stats.LastQuestTime
		}
		return math.Inf(1)
	case catalog.StatQuestsPerHour:
		return float64(stats.QuestsLastHour)
	default:
		return 0
	}
}

// TotalXP sums the XP rewards of every unlocked achievement.
func (e *Engine) TotalXP(unlocked map[string]bool) int {
	total := 0
	for _, achievement := range e.catalog.Achievements {
		if unlocked[achievement.Key] {
			total += achievement.XP
		}
	}
	return total
}

// RarityBreakdown counts unlocked achievements per rarity bucket.
func (e *Engine) RarityBreakdown(unlocked map[string]bool) map[catalog.Rarity]int {
	breakdown := make(map[catalog.Rarity]int)
	for _, achievement := range e.catalog.Achievements {
		if unlocked[achievement.Key] {
			breakdown[achievement.Rarity]++
		}
	}
	return breakdown
}

// NearUnlock is a locked achievement close to its threshold.
type NearUnlock struct {
	Achievement catalog.Achievement `json:"achievement"`
	Current     float64             `json:"current"`
	Ratio       float64             `json:"ratio"`
}

// NearlyUnlocked returns locked achievements whose progress ratio is at least
// minRatio (default 0.75 when <= 0), sorted by ratio descending. Conditions
// without a finite progress value are skipped.
func (e *Engine) NearlyUnlocked(stats PlayerStats, unlocked map[string]bool, minRatio float64) []NearUnlock {
	if minRatio <= 0 {
		minRatio = 0.75
	}

	var near []NearUnlock
	for _, achievement := range e.catalog.Achievements {
		if unlocked[achievement.Key] || achievement.Condition.Value <= 0 {
			continue
		}

		current := resolveStat(achievement.Condition.Stat, stats)
		if math.IsInf(current, 0) {
			continue
		}

		ratio := current / achievement.Condition.Value
		if ratio >= minRatio {
			near = append(near, NearUnlock{
				Achievement: achievement,
				Current:     current,
				Ratio:       ratio,
			})
		}
	}

	sort.SliceStable(near, func(i, j int) bool {
		return near[i].Ratio > near[j].Ratio
	})

	return near
}
