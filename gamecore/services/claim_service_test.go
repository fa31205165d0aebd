package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/ethernalpaths/gamecore/gamecore/progression"
)

func TestClaim_UnknownChallenge(t *testing.T) {
	h := newHarness(t)

	_, err := h.claim.Claim(context.Background(), 1, "ch_moonwalk")
	if !errors.Is(err, ErrUnknownChallenge) {
		t.Errorf("err = %v, want ErrUnknownChallenge", err)
	}
}

func TestClaim_NotCompleted(t *testing.T) {
	h := newHarness(t)
	player := &models.Player{ID: 1, Level: 1}
	record := emptyStats(1)
	record.QuestsCompleted = 3 // ch_quest_starter needs 5

	h.stubReads(player, record)

	_, err := h.claim.Claim(context.Background(), 1, "ch_quest_starter")
	if !errors.Is(err, ErrChallengeNotCompleted) {
		t.Errorf("err = %v, want ErrChallengeNotCompleted", err)
	}
}

func TestClaim_CounterChallenge(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	player := &models.Player{ID: 1, Level: 1}
	record := emptyStats(1)
	record.QuestsCompleted = 5

	h.stubReads(player, record)

	var inserted *models.ChallengeClaim
	h.claims.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.ChallengeClaim) (bool, error) {
			inserted = c
			return true, nil
		})
	h.players.EXPECT().AddXP(gomock.Any(), int64(1), int64(100)).Return(nil)
	h.stats.EXPECT().Update(gomock.Any(), record).Return(nil)

	result, err := h.claim.Claim(ctx, 1, "ch_quest_starter")
	if err != nil {
		t.Fatalf("Claim() error = %v", err)
	}

	if result.XPAwarded != 100 {
		t.Errorf("xpAwarded = %d, want 100", result.XPAwarded)
	}
	if result.ClaimCode == "" {
		t.Errorf("claim code is empty")
	}
	if inserted == nil || inserted.ChallengeID != "ch_quest_starter" || inserted.ClaimCode != result.ClaimCode {
		t.Errorf("persisted claim = %+v", inserted)
	}
	// A redeemed challenge counts as won.
	if record.ChallengesWon != 1 || record.ChallengeWinStreak != 1 {
		t.Errorf("win counters = %d/%d, want 1/1", record.ChallengesWon, record.ChallengeWinStreak)
	}
}

func TestClaim_AlreadyClaimed(t *testing.T) {
	h := newHarness(t)
	player := &models.Player{ID: 1, Level: 1}
	record := emptyStats(1)
	record.QuestsCompleted = 5

	h.stubReads(player, record)
	h.claims.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := h.claim.Claim(context.Background(), 1, "ch_quest_starter")
	if !errors.Is(err, ErrChallengeAlreadyClaimed) {
		t.Errorf("err = %v, want ErrChallengeAlreadyClaimed", err)
	}
}

func TestClaim_QuestlineWithOptionalBonus(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	player := &models.Player{ID: 1, Level: 1}
	record := emptyStats(1)

	h.stubReads(player, record)
	h.quests.EXPECT().CompletedQuestIDs(gomock.Any(), int64(1)).
		Return(map[string]bool{
			"quest_talstation":         true,
			"quest_aussichtsplattform": true,
			"quest_gipfelkreuz":        true,
		}, nil)
	h.claims.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
	// 350 base reward plus 100 for the optional summit quest.
	h.players.EXPECT().AddXP(gomock.Any(), int64(1), int64(450)).Return(nil)
	h.stats.EXPECT().Update(gomock.Any(), record).Return(nil)

	result, err := h.claim.Claim(ctx, 1, "ch_bergpfad")
	if err != nil {
		t.Fatalf("Claim() error = %v", err)
	}
	if result.XPAwarded != 450 {
		t.Errorf("xpAwarded = %d, want 450", result.XPAwarded)
	}
	if result.Reward.PhysicalCard != "ep-phys-002" {
		t.Errorf("reward card = %s, want ep-phys-002", result.Reward.PhysicalCard)
	}
}

func TestClaim_QuestlineMissingRequiredQuest(t *testing.T) {
	h := newHarness(t)

	// The optional quest alone never completes the line.
	h.quests.EXPECT().CompletedQuestIDs(gomock.Any(), int64(1)).
		Return(map[string]bool{"quest_gipfelkreuz": true}, nil)

	_, err := h.claim.Claim(context.Background(), 1, "ch_bergpfad")
	if !errors.Is(err, ErrChallengeNotCompleted) {
		t.Errorf("err = %v, want ErrChallengeNotCompleted", err)
	}
}

func TestStatusAll(t *testing.T) {
	h := newHarness(t)
	player := &models.Player{ID: 1, Level: 1}
	record := emptyStats(1)
	record.QuestsCompleted = 5

	h.stubReads(player, record)
	h.quests.EXPECT().CompletedQuestIDs(gomock.Any(), int64(1)).
		Return(map[string]bool{"quest_talstation": true}, nil)
	h.claims.EXPECT().ClaimedChallengeIDs(gomock.Any(), int64(1)).
		Return(map[string]bool{"ch_quest_starter": true}, nil)

	statuses, err := h.claim.StatusAll(context.Background(), 1)
	if err != nil {
		t.Fatalf("StatusAll() error = %v", err)
	}
	if len(statuses) != len(h.catalog.Challenges) {
		t.Fatalf("status count = %d, want %d", len(statuses), len(h.catalog.Challenges))
	}

	byID := make(map[string]ChallengeStatus, len(statuses))
	for _, status := range statuses {
		byID[status.Challenge.ID] = status
	}

	if got := byID["ch_quest_starter"].State; got != progression.ClaimStateClaimed {
		t.Errorf("ch_quest_starter state = %s, want claimed", got)
	}
	// 5 of 15 quests.
	if got := byID["ch_quest_pro"]; got.State != progression.ClaimStateInProgress || got.CurrentProgress != 5 {
		t.Errorf("ch_quest_pro = %s/%d, want in_progress/5", got.State, got.CurrentProgress)
	}
	if got := byID["ch_team_player"].State; got != progression.ClaimStateNotStarted {
		t.Errorf("ch_team_player state = %s, want not_started", got)
	}
	bergpfad := byID["ch_bergpfad"]
	if bergpfad.State != progression.ClaimStateInProgress || bergpfad.CurrentProgress != 1 {
		t.Errorf("ch_bergpfad = %s/%d, want in_progress/1", bergpfad.State, bergpfad.CurrentProgress)
	}
	if len(bergpfad.Quests) != 3 {
		t.Errorf("ch_bergpfad quest statuses = %d, want 3", len(bergpfad.Quests))
	}
	if len(byID["ch_quest_pro"].Quests) != 0 {
		t.Errorf("counter challenge carries quest statuses")
	}
}
