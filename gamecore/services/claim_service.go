package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/ethernalpaths/gamecore/gamecore/database/repositories"
	"github.com/ethernalpaths/gamecore/gamecore/progression"
)

var (
	ErrUnknownChallenge        = errors.New("unknown challenge")
	ErrChallengeNotCompleted   = errors.New("challenge not completed")
	ErrChallengeAlreadyClaimed = errors.New("challenge already claimed")
)

// ClaimService drives the challenge claim state machine. A claim is issued
// exactly once per player per challenge, only once the challenge is
// completed, and never goes back.
type ClaimService struct {
	catalog      *catalog.Catalog
	claims       repositories.ClaimRepository
	quests       repositories.QuestRepository
	statsService *StatsService
	prog         *ProgressionService
}

func NewClaimService(
	cat *catalog.Catalog,
	claims repositories.ClaimRepository,
	quests repositories.QuestRepository,
	statsService *StatsService,
	prog *ProgressionService,
) *ClaimService {
	return &ClaimService{
		catalog:      cat,
		claims:       claims,
		quests:       quests,
		statsService: statsService,
		prog:         prog,
	}
}

// ClaimResult is the receipt shown at the physical claim location.
type ClaimResult struct {
	ClaimCode string            `json:"claimCode"`
	Challenge catalog.Challenge `json:"challenge"`
	XPAwarded int               `json:"xpAwarded"`
	Reward    catalog.Reward    `json:"reward"`
}

// Claim redeems a completed challenge's reward. The XP reward plus any
// questline bonus XP is credited on first claim only.
func (s *ClaimService) Claim(ctx context.Context, playerID int64, challengeID string) (*ClaimResult, error) {
	challenge, ok := s.catalog.ChallengeByID(challengeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChallenge, challengeID)
	}

	completed, bonusXP, err := s.challengeCompleted(ctx, playerID, challenge)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, fmt.Errorf("%w: %s", ErrChallengeNotCompleted, challengeID)
	}

	claim := &models.ChallengeClaim{
		ClaimCode:   uuid.New().String(),
		PlayerID:    playerID,
		ChallengeID: challengeID,
	}
	created, err := s.claims.Insert(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("failed to insert claim: %w", err)
	}
	if !created {
		return nil, fmt.Errorf("%w: %s", ErrChallengeAlreadyClaimed, challengeID)
	}

	xp := challenge.XPReward + bonusXP
	if _, err := s.prog.awardXP(ctx, playerID, xp); err != nil {
		return nil, err
	}
	if _, err := s.prog.RecordChallengeWon(ctx, playerID, true); err != nil {
		return nil, err
	}

	slog.Info("Challenge claimed",
		slog.String("type", "engine"),
		slog.Int64("player_id", playerID),
		slog.String("challenge_id", challengeID),
		slog.String("claim_code", claim.ClaimCode),
		slog.Int("xp_awarded", xp),
	)

	return &ClaimResult{
		ClaimCode: claim.ClaimCode,
		Challenge: challenge,
		XPAwarded: xp,
		Reward:    challenge.Reward,
	}, nil
}

// ChallengeStatus is one challenge annotated with progress and claim state.
type ChallengeStatus struct {
	Challenge       catalog.Challenge         `json:"challenge"`
	CurrentProgress int                       `json:"currentProgress"`
	State           progression.ClaimState    `json:"state"`
	Quests          []progression.QuestStatus `json:"quests,omitempty"`
}

// StatusAll returns the claim state of every challenge in catalog order.
func (s *ClaimService) StatusAll(ctx context.Context, playerID int64) ([]ChallengeStatus, error) {
	snapshot, err := s.statsService.Snapshot(ctx, playerID)
	if err != nil {
		return nil, err
	}
	completedQuests, err := s.quests.CompletedQuestIDs(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest completions: %w", err)
	}
	claimed, err := s.claims.ClaimedChallengeIDs(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load claims: %w", err)
	}

	annotated := progression.WithProgress(s.catalog.Challenges, snapshot, completedQuests)
	statuses := make([]ChallengeStatus, 0, len(annotated))
	for _, entry := range annotated {
		state := progression.ClaimStateNotStarted
		switch {
		case claimed[entry.Challenge.ID]:
			state = progression.ClaimStateClaimed
		case entry.IsCompleted:
			state = progression.ClaimStateCompleted
		case entry.CurrentProgress > 0:
			state = progression.ClaimStateInProgress
		}

		status := ChallengeStatus{
			Challenge:       entry.Challenge,
			CurrentProgress: entry.CurrentProgress,
			State:           state,
		}
		if entry.Challenge.Mode == catalog.ModeQuestline {
			status.Quests = progression.QuestlineStatus(entry.Challenge, completedQuests)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// challengeCompleted resolves completion for either mode and, for
// questlines, the optional-quest bonus XP.
func (s *ClaimService) challengeCompleted(ctx context.Context, playerID int64, challenge catalog.Challenge) (bool, int, error) {
	if challenge.Mode == catalog.ModeQuestline {
		completedQuests, err := s.quests.CompletedQuestIDs(ctx, playerID)
		if err != nil {
			return false, 0, fmt.Errorf("failed to load quest completions: %w", err)
		}
		done := progression.QuestlineComplete(challenge, completedQuests)
		return done, progression.QuestlineBonusXP(challenge, completedQuests), nil
	}

	snapshot, err := s.statsService.Snapshot(ctx, playerID)
	if err != nil {
		return false, 0, err
	}
	return progression.ProgressFor(challenge, snapshot) >= challenge.Target, 0, nil
}
