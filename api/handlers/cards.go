package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ethernalpaths/gamecore/api/utils"
	"github.com/ethernalpaths/gamecore/gamecore/catalog"
	"github.com/ethernalpaths/gamecore/gamecore/progression"
)

type ownedCard struct {
	Card     catalog.Card `json:"card"`
	ImageURL string       `json:"imageUrl,omitempty"`
}

// PlayerCards is the collection screen payload: every owned card plus set
// progress per category and per country.
func PlayerCards(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := playerID(c)
		if err != nil {
			return utils.SendBadRequest(c, err.Error())
		}

		owned, err := s.Cards.OwnedCardIDs(c.Context(), id)
		if err != nil {
			return utils.SendInternalServerError(c, "failed to load collection")
		}

		cards := make([]ownedCard, 0, len(owned))
		for _, card := range s.Catalog.Cards {
			if !owned[card.ID] {
				continue
			}
			entry := ownedCard{Card: card}
			if s.Assets != nil {
				entry.ImageURL = s.Assets.CardImageURL(card)
			}
			cards = append(cards, entry)
		}

		byCategory := make(map[string]progression.SetProgress, len(s.Catalog.Categories))
		for _, category := range s.Catalog.Categories {
			byCategory[category.ID] = progression.ComputeSetProgress(owned, s.Catalog.CardIDsByCategory(category.ID))
		}
		byCountry := make(map[string]progression.SetProgress, len(s.Catalog.Countries))
		for _, country := range s.Catalog.Countries {
			byCountry[country.Code] = progression.ComputeSetProgress(owned, s.Catalog.CardIDsByCountry(country.Code))
		}

		return utils.SendSuccess(c, fiber.Map{
			"cards":      cards,
			"byCategory": byCategory,
			"byCountry":  byCountry,
			"bonuses":    s.Bonuses.TotalsForSet(owned),
		}, "")
	}
}

// SearchCards fuzzy-matches catalog cards by name.
func SearchCards(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return utils.SendBadRequest(c, "q is required")
		}
		limit := 20
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				return utils.SendBadRequest(c, "limit must be a positive integer")
			}
			limit = parsed
		}
		return utils.SendSuccess(c, s.Catalog.SearchCards(query, limit), "")
	}
}

// MissingCardArt lists catalog cards without uploaded artwork. Used by the
// content pipeline before a release.
func MissingCardArt(s *Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.Assets == nil {
			return utils.SendError(c, fiber.StatusServiceUnavailable, "ASSETS_DISABLED", "asset storage is not configured", nil)
		}
		missing, err := s.Assets.MissingCardImages(c.Context(), s.Catalog)
		if err != nil {
			return utils.SendInternalServerError(c, "failed to check card art")
		}
		return utils.SendSuccess(c, fiber.Map{"missing": missing}, "")
	}
}
