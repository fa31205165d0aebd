package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/ethernalpaths/gamecore/gamecore/database/repositories"
	"github.com/ethernalpaths/gamecore/gamecore/progression"
)

// Quest kinds feed the per-country challenge counters.
const (
	QuestKindNetworking  = "networking"
	QuestKindExploration = "exploration"
	QuestKindAdventure   = "adventure"
)

// xpPerLevel is the flat level curve; levels start at 1.
const xpPerLevel = 1000

var ErrUnknownCard = errors.New("unknown card")

// ProgressionService applies game events to a player's persistent counters
// and runs the achievement check after every mutation. All writes go through
// here so the engines always see consistent state.
type ProgressionService struct {
	catalog      *catalog.Catalog
	engine       *progression.Engine
	players      repositories.PlayerRepository
	stats        repositories.StatsRepository
	quests       repositories.QuestRepository
	cards        repositories.CardRepository
	achievements repositories.AchievementRepository
	statsService *StatsService
	bonuses      *BonusService
}

func NewProgressionService(
	cat *catalog.Catalog,
	engine *progression.Engine,
	players repositories.PlayerRepository,
	stats repositories.StatsRepository,
	quests repositories.QuestRepository,
	cards repositories.CardRepository,
	achievements repositories.AchievementRepository,
	statsService *StatsService,
	bonuses *BonusService,
) *ProgressionService {
	return &ProgressionService{
		catalog:      cat,
		engine:       engine,
		players:      players,
		stats:        stats,
		quests:       quests,
		cards:        cards,
		achievements: achievements,
		statsService: statsService,
		bonuses:      bonuses,
	}
}

// QuestCompletionInput describes one finished quest as reported by the app.
type QuestCompletionInput struct {
	QuestID         string
	Kind            string
	Country         string
	DurationSeconds float64
	BaseXP          int
}

// QuestResult is what the app shows on the quest completion screen.
type QuestResult struct {
	XPAwarded  int                   `json:"xpAwarded"`
	NewLevel   int                   `json:"newLevel"`
	NewUnlocks []catalog.Achievement `json:"newUnlocks"`
}

// RecordQuestCompletion persists the quest, applies the collection's XP
// bonuses to the base reward and bumps every affected counter.
func (s *ProgressionService) RecordQuestCompletion(ctx context.Context, playerID int64, input QuestCompletionInput) (*QuestResult, error) {
	totals, err := s.bonuses.TotalsFor(ctx, playerID)
	if err != nil {
		return nil, err
	}

	awarded := input.BaseXP
	if awarded > 0 {
		awarded = int(math.Round(float64(input.BaseXP)*totals.XPMultiplier)) + totals.QuestXPBonus
	}

	if err := s.quests.RecordCompletion(ctx, &models.QuestCompletion{
		PlayerID:        playerID,
		QuestID:         input.QuestID,
		Kind:            input.Kind,
		Country:         input.Country,
		DurationSeconds: input.DurationSeconds,
		XPAwarded:       awarded,
	}); err != nil {
		return nil, fmt.Errorf("failed to record quest completion: %w", err)
	}

	record, err := s.stats.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	record.QuestsCompleted++
	if input.DurationSeconds > 0 {
		record.LastQuestTime = input.DurationSeconds
	}
	if input.Country != "" {
		switch input.Kind {
		case QuestKindNetworking:
			record.NetworkingByCountry[input.Country]++
		case QuestKindExploration:
			record.ExploredByCountry[input.Country]++
		case QuestKindAdventure:
			record.AdventureByCountry[input.Country]++
		}
	}
	if err := s.stats.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	level, err := s.awardXP(ctx, playerID, awarded)
	if err != nil {
		return nil, err
	}

	unlocks, err := s.runCheck(ctx, playerID)
	if err != nil {
		return nil, err
	}

	slog.Info("Quest completed",
		slog.String("type", "engine"),
		slog.Int64("player_id", playerID),
		slog.String("quest_id", input.QuestID),
		slog.Int("xp_awarded", awarded),
		slog.Int("new_unlocks", len(unlocks)),
	)

	return &QuestResult{
		XPAwarded:  awarded,
		NewLevel:   level,
		NewUnlocks: unlocks,
	}, nil
}

// ScanResult is what the app shows after scanning a collectible card.
type ScanResult struct {
	Card       catalog.Card            `json:"card"`
	New        bool                    `json:"new"`
	Totals     progression.BonusTotals `json:"totals"`
	NewUnlocks []catalog.Achievement   `json:"newUnlocks"`
}

// RecordCardScan adds a scanned card to the collection. Duplicate scans
// return the card with New=false and change nothing.
func (s *ProgressionService) RecordCardScan(ctx context.Context, playerID int64, rawCardID string) (*ScanResult, error) {
	cardID := catalog.NormalizeCardID(rawCardID)
	card, ok := s.catalog.CardByID(cardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, cardID)
	}

	added, err := s.cards.Add(ctx, playerID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to add card: %w", err)
	}

	result := &ScanResult{Card: card, New: added, NewUnlocks: []catalog.Achievement{}}

	if added {
		record, err := s.stats.Get(ctx, playerID)
		if err != nil {
			return nil, err
		}
		record.CollectedCards++
		if err := s.stats.Update(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to update stats: %w", err)
		}

		unlocks, err := s.runCheck(ctx, playerID)
		if err != nil {
			return nil, err
		}
		result.NewUnlocks = unlocks
	}

	totals, err := s.bonuses.TotalsFor(ctx, playerID)
	if err != nil {
		return nil, err
	}
	result.Totals = totals

	return result, nil
}

// RecordFriendAdded bumps the friend counter.
func (s *ProgressionService) RecordFriendAdded(ctx context.Context, playerID int64) ([]catalog.Achievement, error) {
	return s.bumpCounter(ctx, playerID, func(record *models.PlayerStats) {
		record.FriendsCount++
	})
}

// RecordTeamFormed bumps the friend-team counter.
func (s *ProgressionService) RecordTeamFormed(ctx context.Context, playerID int64) ([]catalog.Achievement, error) {
	return s.bumpCounter(ctx, playerID, func(record *models.PlayerStats) {
		record.FriendTeams++
	})
}

// RecordWorkshopVisit bumps the workshop counter.
func (s *ProgressionService) RecordWorkshopVisit(ctx context.Context, playerID int64) ([]catalog.Achievement, error) {
	return s.bumpCounter(ctx, playerID, func(record *models.PlayerStats) {
		record.WorkshopVisited++
	})
}

// RecordRewardRedeemed bumps the redeemed-rewards counter.
func (s *ProgressionService) RecordRewardRedeemed(ctx context.Context, playerID int64) ([]catalog.Achievement, error) {
	return s.bumpCounter(ctx, playerID, func(record *models.PlayerStats) {
		record.RewardsRedeemed++
	})
}

// RecordDistance adds walked meters to the distance total.
func (s *ProgressionService) RecordDistance(ctx context.Context, playerID int64, meters float64) ([]catalog.Achievement, error) {
	if meters <= 0 {
		return []catalog.Achievement{}, nil
	}
	return s.bumpCounter(ctx, playerID, func(record *models.PlayerStats) {
		record.TotalDistanceWalked += meters
	})
}

// RecordChallengeWon bumps the win counters; a loss resets the streak.
func (s *ProgressionService) RecordChallengeWon(ctx context.Context, playerID int64, won bool) ([]catalog.Achievement, error) {
	return s.bumpCounter(ctx, playerID, func(record *models.PlayerStats) {
		if won {
			record.ChallengesWon++
			record.ChallengeWinStreak++
		} else {
			record.ChallengeWinStreak = 0
		}
	})
}

// RecordLogin maintains the daily login streak: a second login on the same
// day is a no-op, a login on the following day extends the streak, anything
// later restarts it at 1.
func (s *ProgressionService) RecordLogin(ctx context.Context, playerID int64, now time.Time) ([]catalog.Achievement, error) {
	record, err := s.stats.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	today := now.Truncate(24 * time.Hour)
	lastDay := record.LastLoginAt.Truncate(24 * time.Hour)

	switch {
	case record.LastLoginAt.IsZero():
		record.LoginStreak = 1
	case lastDay.Equal(today):
		return []catalog.Achievement{}, nil
	case today.Sub(lastDay) == 24*time.Hour:
		record.LoginStreak++
	default:
		record.LoginStreak = 1
	}
	record.LastLoginAt = now

	if err := s.stats.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}
	return s.runCheck(ctx, playerID)
}

func (s *ProgressionService) bumpCounter(ctx context.Context, playerID int64, mutate func(*models.PlayerStats)) ([]catalog.Achievement, error) {
	record, err := s.stats.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	mutate(record)
	if err := s.stats.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}
	return s.runCheck(ctx, playerID)
}

// awardXP adds XP to the player and keeps the level in step with the curve.
func (s *ProgressionService) awardXP(ctx context.Context, playerID int64, amount int) (int, error) {
	if amount > 0 {
		if err := s.players.AddXP(ctx, playerID, int64(amount)); err != nil {
			return 0, fmt.Errorf("failed to award xp: %w", err)
		}
	}

	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return 0, err
	}

	level := levelForXP(player.XP)
	if level != player.Level {
		player.Level = level
		if err := s.players.Update(ctx, player); err != nil {
			return 0, fmt.Errorf("failed to update level: %w", err)
		}
	}
	return level, nil
}

func levelForXP(xp int64) int {
	return 1 + int(xp/xpPerLevel)
}

// runCheck evaluates the achievement catalog against the current snapshot,
// persists any new unlocks and awards their XP. Achievement XP feeds back
// into the total, so a follow-up check picks up XP-threshold achievements on
// the next event.
func (s *ProgressionService) runCheck(ctx context.Context, playerID int64) ([]catalog.Achievement, error) {
	snapshot, err := s.statsService.Snapshot(ctx, playerID)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.achievements.UnlockedKeys(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocks: %w", err)
	}

	result := s.engine.CheckAll(snapshot, unlocked)

	achievementXP := 0
	for _, achievement := range result.NewUnlocks {
		if err := s.achievements.Unlock(ctx, playerID, achievement.Key); err != nil {
			return nil, fmt.Errorf("failed to persist unlock: %w", err)
		}
		achievementXP += achievement.XP
	}
	if achievementXP > 0 {
		if _, err := s.awardXP(ctx, playerID, achievementXP); err != nil {
			return nil, err
		}
	}

	return result.NewUnlocks, nil
}
