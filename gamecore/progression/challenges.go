package progression

import (
	"strings"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
)

// ChallengeProgress is one challenge annotated with the player's standing.
type ChallengeProgress struct {
	Challenge       catalog.Challenge `json:"challenge"`
	CurrentProgress int               `json:"currentProgress"`
	IsCompleted     bool              `json:"isCompleted"`
}

// ProgressFor resolves a counter challenge's progress from the snapshot.
// Unknown progress keys resolve to 0. Questline challenges are handled by
// QuestlineProgress instead.
func ProgressFor(ch catalog.Challenge, stats PlayerStats) int {
	key := string(ch.ProgressKey)

	switch {
	case strings.HasPrefix(key, catalog.ProgressPrefixNetworking):
		return stats.NetworkingByCountry[strings.TrimPrefix(key, catalog.ProgressPrefixNetworking)]
	case strings.HasPrefix(key, catalog.ProgressPrefixExplored):
		return stats.ExploredByCountry[strings.TrimPrefix(key, catalog.ProgressPrefixExplored)]
	case strings.HasPrefix(key, catalog.ProgressPrefixAdventure):
		return stats.AdventureByCountry[strings.TrimPrefix(key, catalog.ProgressPrefixAdventure)]
	}

	switch ch.ProgressKey {
	case catalog.ProgressCompletedQuests:
		return stats.CompletedQuests
	case catalog.ProgressFriendCount:
		return stats.FriendCount
	case catalog.ProgressFriendTeams:
		return stats.FriendTeams
	case catalog.ProgressWorkshopVisited:
		return stats.WorkshopVisited
	case catalog.ProgressDailyStreak:
		return stats.DailyStreak
	case catalog.ProgressCollectedCards:
		return stats.CollectedCards
	default:
		return 0
	}
}

// QuestlineProgress counts completed required quests. Optional quests never
// count toward the target.
func QuestlineProgress(ch catalog.Challenge, completedQuests map[string]bool) int {
	progress := 0
	for _, q := range ch.Quests {
		if !q.Optional && completedQuests[q.ID] {
			progress++
		}
	}
	return progress
}

// QuestlineComplete reports whether every required quest is completed. A
// questline without required quests is never complete.
func QuestlineComplete(ch catalog.Challenge, completedQuests map[string]bool) bool {
	required := ch.RequiredQuestCount()
	return required > 0 && QuestlineProgress(ch, completedQuests) == required
}

// QuestlineBonusXP sums the bonus XP of completed optional quests.
func QuestlineBonusXP(ch catalog.Challenge, completedQuests map[string]bool) int {
	bonus := 0
	for _, q := range ch.Quests {
		if q.Optional && completedQuests[q.ID] {
			bonus += q.BonusXP
		}
	}
	return bonus
}

// QuestState is the display state of one questline entry.
type QuestState string

const (
	QuestStateLocked    QuestState = "locked"
	QuestStateAvailable QuestState = "available"
	QuestStateCompleted QuestState = "completed"
)

// QuestStatus merges one questline entry with the completion record.
type QuestStatus struct {
	Quest catalog.QuestRef `json:"quest"`
	State QuestState       `json:"state"`
}

// QuestlineStatus reports the per-quest state of a questline. A quest is
// locked while an earlier required quest is incomplete; completion data is
// taken as-is, so out-of-order completions from the field still show as
// completed.
func QuestlineStatus(ch catalog.Challenge, completedQuests map[string]bool) []QuestStatus {
	statuses := make([]QuestStatus, 0, len(ch.Quests))
	chainOpen := true

	for _, q := range ch.Quests {
		var state QuestState
		switch {
		case completedQuests[q.ID]:
			state = QuestStateCompleted
		case chainOpen || q.Optional:
			state = QuestStateAvailable
		default:
			state = QuestStateLocked
		}
		if !q.Optional && !completedQuests[q.ID] {
			chainOpen = false
		}
		statuses = append(statuses, QuestStatus{Quest: q, State: state})
	}

	return statuses
}

// WithProgress annotates the whole challenge catalog with the player's
// standing. Counter challenges read the snapshot; questlines read the quest
// completion record.
func WithProgress(challenges []catalog.Challenge, stats PlayerStats, completedQuests map[string]bool) []ChallengeProgress {
	results := make([]ChallengeProgress, 0, len(challenges))
	for _, ch := range challenges {
		var current int
		switch ch.Mode {
		case catalog.ModeQuestline:
			current = QuestlineProgress(ch, completedQuests)
		default:
			current = ProgressFor(ch, stats)
		}
		completed := current >= ch.Target
		// Reported progress never overshoots the target; completion is
		// decided on the raw value.
		if current > ch.Target {
			current = ch.Target
		}
		results = append(results, ChallengeProgress{
			Challenge:       ch,
			CurrentProgress: current,
			IsCompleted:     completed,
		})
	}
	return results
}
