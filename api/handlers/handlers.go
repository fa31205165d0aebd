package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ethernalpaths/gamecore/api/models"
	"github.com/ethernalpaths/gamecore/api/utils"
	"github.com/ethernalpaths/gamecore/gamecore/catalog"
	"github.com/ethernalpaths/gamecore/gamecore/database"
	dbmodels "github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/ethernalpaths/gamecore/gamecore/database/repositories"
	"github.com/ethernalpaths/gamecore/gamecore/progression"
	"github.com/ethernalpaths/gamecore/gamecore/services"
)

// Server bundles everything the handlers need.
type Server struct {
	DB           *database.DB
	Catalog      *catalog.Catalog
	Engine       *progression.Engine
	Players      repositories.PlayerRepository
	Achievements repositories.AchievementRepository
	Cards        repositories.CardRepository
	Stats        *services.StatsService
	Prog         *services.ProgressionService
	Claims       *services.ClaimService
	Bonuses      *services.BonusService
	Assets       *services.AssetsService
	Version      string
}

func playerID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid player id")
	}
	return int64(id), nil
}

// HealthCheck reports process and database health.
func HealthCheck(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "ok"
		if err := s.DB.Ping(c.Context()); err != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status":  status,
			"version": s.Version,
		})
	}
}

type registerRequest struct {
	DeviceID string `json:"deviceId"`
	Username string `json:"username"`
}

// RegisterPlayer creates a player record; repeating the call for a known
// device returns the existing record.
func RegisterPlayer(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil || req.DeviceID == "" {
			return utils.SendBadRequest(c, "deviceId is required")
		}

		if existing, err := s.Players.GetByDeviceID(c.Context(), req.DeviceID); err == nil {
			return utils.SendSuccess(c, existing, "already registered")
		}

		player := &dbmodels.Player{
			DeviceID: req.DeviceID,
			Username: req.Username,
			Level:    1,
		}
		if err := s.Players.Create(c.Context(), player); err != nil {
			return utils.SendInternalServerError(c, "failed to create player")
		}
		return utils.SendCreated(c, player, "registered")
	}
}

// PlayerSummary is the profile screen payload: level, XP, collection bonuses
// and achievement totals in one response.
func PlayerSummary(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := playerID(c)
		if err != nil {
			return utils.SendBadRequest(c, err.Error())
		}

		player, err := s.Players.GetByID(c.Context(), id)
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return utils.SendNotFound(c, "player not found")
		}
		if err != nil {
			return utils.SendInternalServerError(c, "failed to load player")
		}

		totals, err := s.Bonuses.TotalsFor(c.Context(), id)
		if err != nil {
			return utils.SendInternalServerError(c, "failed to compute bonuses")
		}
		unlocked, err := s.Achievements.UnlockedKeys(c.Context(), id)
		if err != nil {
			return utils.SendInternalServerError(c, "failed to load unlocks")
		}

		return utils.SendSuccess(c, fiber.Map{
			"player":            player,
			"bonusTotals":       totals,
			"achievementsTotal": len(s.Catalog.Achievements),
			"achievementsOwned": len(unlocked),
			"achievementXP":     s.Engine.TotalXP(unlocked),
			"rarityBreakdown":   s.Engine.RarityBreakdown(unlocked),
		}, "")
	}
}

type achievementEntry struct {
	Achievement catalog.Achievement `json:"achievement"`
	Unlocked    bool                `json:"unlocked"`
	Current     *float64            `json:"current,omitempty"`
	Target      float64             `json:"target"`
}

// PlayerAchievements lists the whole achievement catalog with unlock state
// and progress toward each locked condition.
func PlayerAchievements(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := playerID(c)
		if err != nil {
			return utils.SendBadRequest(c, err.Error())
		}

		snapshot, err := s.Stats.Snapshot(c.Context(), id)
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return utils.SendNotFound(c, "player not found")
		}
		if err != nil {
			return utils.SendInternalServerError(c, "failed to load stats")
		}
		unlocked, err := s.Achievements.UnlockedKeys(c.Context(), id)
		if err != nil {
			return utils.SendInternalServerError(c, "failed to load unlocks")
		}

		progress := s.Engine.ProgressAll(snapshot, unlocked)
		entries := make([]achievementEntry, 0, len(s.Catalog.Achievements))
		for _, achievement := range s.Catalog.Achievements {
			entry := achievementEntry{
				Achievement: achievement,
				Unlocked:    unlocked[achievement.Key],
				Target:      achievement.Condition.Value,
			}
			if !entry.Unlocked {
				entry.Current = models.FiniteOrNil(progress[achievement.Key])
			}
			entries = append(entries, entry)
		}

		return utils.SendSuccess(c, fiber.Map{
			"achievements": entries,
			"nearUnlocks":  s.Engine.NearlyUnlocked(snapshot, unlocked, 0),
		}, "")
	}
}

// PlayerChallenges lists every challenge with progress and claim state.
func PlayerChallenges(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := playerID(c)
		if err != nil {
			return utils.SendBadRequest(c, err.Error())
		}

		statuses, err := s.Claims.StatusAll(c.Context(), id)
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return utils.SendNotFound(c, "player not found")
		}
		if err != nil {
			return utils.SendInternalServerError(c, "failed to load challenges")
		}
		return utils.SendSuccess(c, statuses, "")
	}
}

// ClaimChallenge redeems a completed challenge's reward.
func ClaimChallenge(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := playerID(c)
		if err != nil {
			return utils.SendBadRequest(c, err.Error())
		}

		result, err := s.Claims.Claim(c.Context(), id, c.Params("challengeId"))
		switch {
		case errors.Is(err, services.ErrUnknownChallenge):
			return utils.SendNotFound(c, "unknown challenge")
		case errors.Is(err, services.ErrChallengeAlreadyClaimed):
			return utils.SendConflict(c, "challenge already claimed")
		case errors.Is(err, services.ErrChallengeNotCompleted):
			return utils.SendUnprocessable(c, "challenge not completed")
		case err != nil:
			return utils.SendInternalServerError(c, "failed to claim challenge")
		}
		return utils.SendSuccess(c, result, "claimed")
	}
}

type questEventRequest struct {
	QuestID         string  `json:"questId"`
	Kind            string  `json:"kind"`
	Country         string  `json:"country"`
	DurationSeconds float64 `json:"durationSeconds"`
	BaseXP          int     `json:"baseXp"`
}

// QuestCompleted records a finished quest.
func QuestCompleted(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := playerID(c)
		if err != nil {
			return utils.SendBadRequest(c, err.Error())
		}
		var req questEventRequest
		if err := c.BodyParser(&req); err != nil || req.QuestID == "" {
			return utils.SendBadRequest(c, "questId is required")
		}

		result, err := s.Prog.RecordQuestCompletion(c.Context(), id, services.QuestCompletionInput{
			QuestID:         req.QuestID,
			Kind:            req.Kind,
			Country:         req.Country,
			DurationSeconds: req.DurationSeconds,
			BaseXP:          req.BaseXP,
		})
		if err != nil {
			return utils.SendInternalServerError(c, "failed to record quest")
		}
		return utils.SendSuccess(c, result, "")
	}
}

type scanRequest struct {
	CardID string `json:"cardId"`
}

// CardScanned records a scanned collectible card.
func CardScanned(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := playerID(c)
		if err != nil {
			return utils.SendBadRequest(c, err.Error())
		}
		var req scanRequest
		if err := c.BodyParser(&req); err != nil || req.CardID == "" {
			return utils.SendBadRequest(c, "cardId is required")
		}

		result, err := s.Prog.RecordCardScan(c.Context(), id, req.CardID)
		if errors.Is(err, services.ErrUnknownCard) {
			return utils.SendNotFound(c, "unknown card")
		}
		if err != nil {
			return utils.SendInternalServerError(c, "failed to record scan")
		}
		return utils.SendSuccess(c, result, "")
	}
}

// counterEvent wraps the simple increment endpoints.
func counterEvent(s *Server, record func(c *fiber.Ctx, id int64) ([]catalog.Achievement, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := playerID(c)
		if err != nil {
			return utils.SendBadRequest(c, err.Error())
		}
		unlocks, err := record(c, id)
		if err != nil {
			return utils.SendInternalServerError(c, "failed to record event")
		}
		return utils.SendSuccess(c, fiber.Map{"newUnlocks": unlocks}, "")
	}
}

func FriendAdded(s *Server) fiber.Handler {
	return counterEvent(s, func(c *fiber.Ctx, id int64) ([]catalog.Achievement, error) {
		return s.Prog.RecordFriendAdded(c.Context(), id)
	})
}

func TeamFormed(s *Server) fiber.Handler {
	return counterEvent(s, func(c *fiber.Ctx, id int64) ([]catalog.Achievement, error) {
		return s.Prog.RecordTeamFormed(c.Context(), id)
	})
}

func WorkshopVisited(s *Server) fiber.Handler {
	return counterEvent(s, func(c *fiber.Ctx, id int64) ([]catalog.Achievement, error) {
		return s.Prog.RecordWorkshopVisit(c.Context(), id)
	})
}

func RewardRedeemed(s *Server) fiber.Handler {
	return counterEvent(s, func(c *fiber.Ctx, id int64) ([]catalog.Achievement, error) {
		return s.Prog.RecordRewardRedeemed(c.Context(), id)
	})
}

func LoggedIn(s *Server) fiber.Handler {
	return counterEvent(s, func(c *fiber.Ctx, id int64) ([]catalog.Achievement, error) {
		return s.Prog.RecordLogin(c.Context(), id, time.Now())
	})
}

type distanceRequest struct {
	Meters float64 `json:"meters"`
}

func DistanceWalked(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := playerID(c)
		if err != nil {
			return utils.SendBadRequest(c, err.Error())
		}
		var req distanceRequest
		if err := c.BodyParser(&req); err != nil || req.Meters <= 0 {
			return utils.SendBadRequest(c, "meters must be positive")
		}

		unlocks, err := s.Prog.RecordDistance(c.Context(), id, req.Meters)
		if err != nil {
			return utils.SendInternalServerError(c, "failed to record distance")
		}
		return utils.SendSuccess(c, fiber.Map{"newUnlocks": unlocks}, "")
	}
}
