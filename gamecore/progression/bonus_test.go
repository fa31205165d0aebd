package progression

import (
	"reflect"
	"testing"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func ownedSet(ids ...string) map[string]bool {
	owned := make(map[string]bool, len(ids))
	for _, id := range ids {
		owned[id] = true
	}
	return owned
}

func TestComputeBonusTotals_EmptyCollection(t *testing.T) {
	c := testCatalog(t)

	got := ComputeBonusTotals(c, map[string]bool{})
	want := BonusTotals{
		XPMultiplier:     1.0,
		QuestXPBonus:     0,
		SocialMultiplier: 1.0,
		DiscountPercent:  0,
		SpecialBadges:    []Badge{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeBonusTotals(empty) = %+v, want %+v", got, want)
	}
}

func TestComputeBonusTotals_Idempotent(t *testing.T) {
	c := testCatalog(t)
	owned := ownedSet("card_ivo", "card_roland", "card_paulinchen")

	first := ComputeBonusTotals(c, owned)
	second := ComputeBonusTotals(c, owned)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ComputeBonusTotals not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestComputeBonusTotals_IndividualBonuses(t *testing.T) {
	c := testCatalog(t)

	got := ComputeBonusTotals(c, ownedSet("card_ivo"))
	if got.XPMultiplier != 1.1 {
		t.Errorf("xpMultiplier = %v, want 1.1", got.XPMultiplier)
	}

	got = ComputeBonusTotals(c, ownedSet("card_marcus"))
	if got.QuestXPBonus != 25 {
		t.Errorf("questXpBonus = %v, want 25", got.QuestXPBonus)
	}

	got = ComputeBonusTotals(c, ownedSet("card_ramy"))
	if got.SocialMultiplier != 1.15 {
		t.Errorf("socialMultiplier = %v, want 1.15", got.SocialMultiplier)
	}

	// Discount cards store a fraction of 1; the totals carry percent.
	got = ComputeBonusTotals(c, ownedSet("card_roland"))
	if got.DiscountPercent != 15 {
		t.Errorf("discountPercent = %v, want 15", got.DiscountPercent)
	}

	// A card without a bonus contributes nothing.
	got = ComputeBonusTotals(c, ownedSet("card_bruno"))
	if got.XPMultiplier != 1.0 || got.QuestXPBonus != 0 || got.DiscountPercent != 0 {
		t.Errorf("card without bonus changed totals: %+v", got)
	}
}

func TestComputeBonusTotals_CategoryComplete(t *testing.T) {
	c := testCatalog(t)
	owned := ownedSet("card_ivo", "card_marcus", "card_ramy", "card_roland")

	got := ComputeBonusTotals(c, owned)

	// ivo 1.1 compounded with the completion effect 1.25.
	wantXP := 1.1 * 1.25
	if got.XPMultiplier != wantXP {
		t.Errorf("xpMultiplier = %v, want %v", got.XPMultiplier, wantXP)
	}

	// roland 15 plus the completion effect +10.
	if got.DiscountPercent != 25 {
		t.Errorf("discountPercent = %v, want 25", got.DiscountPercent)
	}

	foundComplete := false
	for _, badge := range got.SpecialBadges {
		if badge.Name == "Persönlichkeiten Komplett" {
			foundComplete = true
			if badge.Partial {
				t.Errorf("completion badge marked partial")
			}
		}
	}
	if !foundComplete {
		t.Errorf("missing completion badge, got badges %+v", got.SpecialBadges)
	}
}

func TestComputeBonusTotals_PartialBadgeIsInformational(t *testing.T) {
	c := testCatalog(t)
	// Two of four persoenlichkeiten cards, none with an xp bonus effect.
	owned := ownedSet("card_marcus", "card_ramy")

	got := ComputeBonusTotals(c, owned)

	foundPartial := false
	for _, badge := range got.SpecialBadges {
		if badge.Name == "Persönlichkeiten" && badge.Partial {
			foundPartial = true
		}
	}
	if !foundPartial {
		t.Errorf("missing partial badge, got badges %+v", got.SpecialBadges)
	}
	// No numeric effect from a partial set.
	if got.XPMultiplier != 1.0 || got.DiscountPercent != 0 {
		t.Errorf("partial set applied numeric effects: %+v", got)
	}
}

func TestComputeBonusTotals_CountryComplete(t *testing.T) {
	c := testCatalog(t)
	owned := ownedSet(c.CardIDsByCountry(catalog.CountryOesterreich)...)

	got := ComputeBonusTotals(c, owned)

	wantXP := 1.15
	if got.XPMultiplier != wantXP {
		t.Errorf("xpMultiplier = %v, want %v", got.XPMultiplier, wantXP)
	}

	found := false
	for _, badge := range got.SpecialBadges {
		if badge.Name == "Österreich Meister" {
			found = true
			if badge.Bonus != "+15% XP" {
				t.Errorf("country badge label = %q, want +15%% XP", badge.Bonus)
			}
		}
	}
	if !found {
		t.Errorf("missing country badge, got badges %+v", got.SpecialBadges)
	}
}

func TestComputeBonusTotals_FullCollection(t *testing.T) {
	c := testCatalog(t)
	owned := make(map[string]bool)
	for _, card := range c.Cards {
		owned[card.ID] = true
	}

	got := ComputeBonusTotals(c, owned)

	// Individual multipliers, both category completions with effects, and
	// all three country completions stack multiplicatively.
	wantXP := 1.1 * 1.05 * 1.1 * 1.2 * // ivo, brandenburger tor, matterhorn, neuschwanstein
		1.25 * // persoenlichkeiten complete
		1.2 * 1.15 * 1.15 // deutschland, oesterreich, schweiz
	if diff := got.XPMultiplier - wantXP; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("xpMultiplier = %v, want %v", got.XPMultiplier, wantXP)
	}

	// roland 15 + persoenlichkeiten 10 + maskottchen 10 = 35, below the cap.
	if got.DiscountPercent != 35 {
		t.Errorf("discountPercent = %v, want 35", got.DiscountPercent)
	}

	if got.QuestXPBonus != 35 { // marcus 25 + paulinchen 10
		t.Errorf("questXpBonus = %v, want 35", got.QuestXPBonus)
	}
}

func TestComputeBonusTotals_DiscountCap(t *testing.T) {
	// A synthetic catalog whose stacked discounts exceed the ceiling.
	categories := []catalog.Category{
		{
			ID: "vouchers", Name: "Vouchers", CompleteLabel: "+30%",
			CompleteEffects: []catalog.BonusEffect{{Kind: catalog.BonusDiscount, Value: 30}},
		},
	}
	cards := []catalog.Card{
		{ID: "v1", Name: "V1", Category: "vouchers", Bonus: &catalog.BonusEffect{Kind: catalog.BonusDiscount, Value: 0.2}},
		{ID: "v2", Name: "V2", Category: "vouchers", Bonus: &catalog.BonusEffect{Kind: catalog.BonusDiscount, Value: 0.25}},
	}
	c, err := catalog.Build(nil, cards, categories, nil, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := ComputeBonusTotals(c, ownedSet("v1", "v2"))
	// 20 + 25 + 30 = 75 pre-cap.
	if got.DiscountPercent != MaxDiscountPercent {
		t.Errorf("discountPercent = %v, want capped at %v", got.DiscountPercent, MaxDiscountPercent)
	}
}

func TestComputeBonusTotals_Monotonicity(t *testing.T) {
	c := testCatalog(t)

	smaller := ownedSet("card_ivo")
	larger := ownedSet("card_ivo", "card_roland", "card_marcus", "card_ramy")

	a := ComputeBonusTotals(c, smaller)
	b := ComputeBonusTotals(c, larger)

	if b.XPMultiplier < a.XPMultiplier {
		t.Errorf("xpMultiplier decreased when adding cards: %v -> %v", a.XPMultiplier, b.XPMultiplier)
	}
	if b.DiscountPercent < a.DiscountPercent {
		t.Errorf("discountPercent decreased when adding cards: %v -> %v", a.DiscountPercent, b.DiscountPercent)
	}
}

func TestComputeBonusTotals_EmptyGroupSkipped(t *testing.T) {
	// A category with no cards must not panic or produce a badge.
	categories := []catalog.Category{
		{ID: "ghost", Name: "Ghost", CompleteLabel: "never"},
		{ID: "real", Name: "Real", CompleteLabel: "ok"},
	}
	cards := []catalog.Card{
		{ID: "r1", Name: "R1", Category: "real"},
	}
	c, err := catalog.Build(nil, cards, categories, nil, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := ComputeBonusTotals(c, ownedSet("r1"))
	for _, badge := range got.SpecialBadges {
		if badge.Name == "Ghost Komplett" {
			t.Errorf("empty category produced a completion badge")
		}
	}
}
