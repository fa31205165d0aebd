package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/database/repositories"
	"github.com/ethernalpaths/gamecore/gamecore/progression"
)

// StatsService assembles the read-only stat snapshots the rule engines
// consume. Both counter vocabularies are filled from the same rows so the
// achievement and challenge engines can never disagree about a value.
type StatsService struct {
	players repositories.PlayerRepository
	stats   repositories.StatsRepository
	quests  repositories.QuestRepository
}

func NewStatsService(
	players repositories.PlayerRepository,
	stats repositories.StatsRepository,
	quests repositories.QuestRepository,
) *StatsService {
	return &StatsService{
		players: players,
		stats:   stats,
		quests:  quests,
	}
}

func (s *StatsService) Snapshot(ctx context.Context, playerID int64) (progression.PlayerStats, error) {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return progression.PlayerStats{}, fmt.Errorf("failed to load player: %w", err)
	}

	record, err := s.stats.Get(ctx, playerID)
	if err != nil {
		return progression.PlayerStats{}, fmt.Errorf("failed to load stats: %w", err)
	}

	questsLastHour, err := s.quests.CountSince(ctx, playerID, time.Now().Add(-time.Hour))
	if err != nil {
		return progression.PlayerStats{}, fmt.Errorf("failed to count recent quests: %w", err)
	}

	return progression.PlayerStats{
		TotalQuestsCompleted: record.QuestsCompleted,
		FriendsCount:         record.FriendsCount,
		LoginStreak:          record.LoginStreak,
		Level:                player.Level,
		TotalXP:              int(player.XP),
		ChallengesWon:        record.ChallengesWon,
		ChallengeWinStreak:   record.ChallengeWinStreak,
		TotalDistanceWalked:  record.TotalDistanceWalked,
		RewardsRedeemed:      record.RewardsRedeemed,
		LastQuestTime:        record.LastQuestTime,
		QuestsLastHour:       questsLastHour,

		CompletedQuests: record.QuestsCompleted,
		FriendCount:     record.FriendsCount,
		FriendTeams:     record.FriendTeams,
		WorkshopVisited: record.WorkshopVisited,
		DailyStreak:     record.LoginStreak,
		CollectedCards:  record.CollectedCards,

		NetworkingByCountry: record.NetworkingByCountry,
		ExploredByCountry:   record.ExploredByCountry,
		AdventureByCountry:  record.AdventureByCountry,
	}, nil
}
