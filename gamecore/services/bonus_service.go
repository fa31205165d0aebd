package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
	"github.com/ethernalpaths/gamecore/gamecore/database/repositories"
	"github.com/ethernalpaths/gamecore/gamecore/progression"
)

// BonusService computes bonus totals for a player's collection. Totals are a
// pure function of the owned-card set, so they are cached keyed on the sorted
// set itself; every mutation of a collection naturally produces a new key.
type BonusService struct {
	catalog *catalog.Catalog
	cards   repositories.CardRepository
	cache   *lru.Cache
}

func NewBonusService(cat *catalog.Catalog, cards repositories.CardRepository, cacheSize int) (*BonusService, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create bonus cache: %w", err)
	}
	return &BonusService{
		catalog: cat,
		cards:   cards,
		cache:   cache,
	}, nil
}

// TotalsFor loads the player's collection and returns its bonus totals.
func (s *BonusService) TotalsFor(ctx context.Context, playerID int64) (progression.BonusTotals, error) {
	owned, err := s.cards.OwnedCardIDs(ctx, playerID)
	if err != nil {
		return progression.BonusTotals{}, fmt.Errorf("failed to load collection: %w", err)
	}
	return s.TotalsForSet(owned), nil
}

// TotalsForSet computes (or recalls) totals for an explicit owned-card set.
func (s *BonusService) TotalsForSet(owned map[string]bool) progression.BonusTotals {
	key := setKey(owned)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(progression.BonusTotals)
	}

	totals := progression.ComputeBonusTotals(s.catalog, owned)
	s.cache.Add(key, totals)
	return totals
}

func setKey(owned map[string]bool) string {
	ids := make([]string, 0, len(owned))
	for id, has := range owned {
		if has {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
