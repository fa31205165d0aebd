package progression

import (
	"fmt"
	"math"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
)

// MaxDiscountPercent caps the stacked discount regardless of owned cards.
const MaxDiscountPercent = 50.0

// Badge is a display entry for an earned (or partially earned) set bonus.
type Badge struct {
	Name    string `json:"name"`
	Bonus   string `json:"bonus"`
	Icon    string `json:"icon"`
	Partial bool   `json:"partial,omitempty"`
}

// BonusTotals is the stacked effect of every bonus a player's collection
// grants. Multiplier fields compound multiplicatively, the rest additively.
type BonusTotals struct {
	XPMultiplier     float64 `json:"xpMultiplier"`
	QuestXPBonus     int     `json:"questXpBonus"`
	SocialMultiplier float64 `json:"socialMultiplier"`
	DiscountPercent  float64 `json:"discountPercent"`
	SpecialBadges    []Badge `json:"specialBadges"`
}

// ComputeBonusTotals derives the active bonus set from the owned card ids.
// Pure and idempotent: same input set, same output. Badge order follows
// catalog order (categories first, then countries).
func ComputeBonusTotals(cat *catalog.Catalog, owned map[string]bool) BonusTotals {
	totals := BonusTotals{
		XPMultiplier:     1.0,
		SocialMultiplier: 1.0,
		SpecialBadges:    []Badge{},
	}

	// Individual card bonuses.
	for _, card := range cat.Cards {
		if !owned[card.ID] || card.Bonus == nil {
			continue
		}
		applyEffect(&totals, *card.Bonus, true)
	}

	// Category set bonuses.
	for _, category := range cat.Categories {
		ids := cat.CardIDsByCategory(category.ID)
		progress := ComputeSetProgress(owned, ids)
		if progress.Total == 0 {
			continue
		}

		if progress.IsComplete {
			totals.SpecialBadges = append(totals.SpecialBadges, Badge{
				Name:  category.Name + " Komplett",
				Bonus: category.CompleteLabel,
				Icon:  category.Icon,
			})
			for _, effect := range category.CompleteEffects {
				applyEffect(&totals, effect, false)
			}
		} else if progress.Collected >= category.Threshold() {
			// Partial badges are informational only.
			totals.SpecialBadges = append(totals.SpecialBadges, Badge{
				Name:    category.Name,
				Bonus:   category.PartialLabel,
				Icon:    category.Icon,
				Partial: true,
			})
		}
	}

	// Country set bonuses.
	for _, country := range cat.Countries {
		ids := cat.CardIDsByCountry(country.Code)
		progress := ComputeSetProgress(owned, ids)
		if progress.Total == 0 || !progress.IsComplete {
			continue
		}

		totals.XPMultiplier *= country.BonusMultiplier
		totals.SpecialBadges = append(totals.SpecialBadges, Badge{
			Name:  country.Name + " Meister",
			Bonus: fmt.Sprintf("+%d%% XP", int(math.Round((country.BonusMultiplier-1)*100))),
			Icon:  country.Flag,
		})
	}

	if totals.DiscountPercent > MaxDiscountPercent {
		totals.DiscountPercent = MaxDiscountPercent
	}

	return totals
}

// applyEffect folds one bonus effect into the totals. Card discounts are
// stored as a fraction of 1, category completion discounts as percentage
// points; fromCard selects the scaling.
func applyEffect(totals *BonusTotals, effect catalog.BonusEffect, fromCard bool) {
	switch effect.Kind {
	case catalog.BonusXPMultiplier:
		totals.XPMultiplier *= effect.Value
	case catalog.BonusQuestXP:
		totals.QuestXPBonus += int(effect.Value)
	case catalog.BonusSocial:
		totals.SocialMultiplier *= effect.Value
	case catalog.BonusDiscount:
		if fromCard {
			totals.DiscountPercent += effect.Value * 100
		} else {
			totals.DiscountPercent += effect.Value
		}
	}
}
