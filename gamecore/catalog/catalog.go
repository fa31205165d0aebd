package catalog

import (
	"fmt"
	"strings"
)

// Catalog bundles the static game data with id-indexed lookups. It is built
// once at process start and treated as immutable afterwards.
type Catalog struct {
	Achievements []Achievement
	Cards        []Card
	Categories   []Category
	Countries    []Country
	Challenges   []Challenge

	achievementByKey map[string]Achievement
	cardByID         map[string]Card
	categoryByID     map[string]Category
	countryByCode    map[string]Country
	challengeByID    map[string]Challenge
	cardIDsByCat     map[string][]string
	cardIDsByCountry map[string][]string
}

// New builds the default catalog from the compiled-in data.
func New() (*Catalog, error) {
	return Build(Achievements, Cards, Categories, Countries, Challenges)
}

// Build indexes and validates an arbitrary data set. Questline challenge
// targets are derived from their required quest count here.
func Build(achievements []Achievement, cards []Card, categories []Category, countries []Country, challenges []Challenge) (*Catalog, error) {
	c := &Catalog{
		Achievements:     achievements,
		Cards:            cards,
		Categories:       categories,
		Countries:        countries,
		Challenges:       make([]Challenge, len(challenges)),
		achievementByKey: make(map[string]Achievement, len(achievements)),
		cardByID:         make(map[string]Card, len(cards)),
		categoryByID:     make(map[string]Category, len(categories)),
		countryByCode:    make(map[string]Country, len(countries)),
		challengeByID:    make(map[string]Challenge, len(challenges)),
		cardIDsByCat:     make(map[string][]string),
		cardIDsByCountry: make(map[string][]string),
	}

	for _, a := range achievements {
		if _, exists := c.achievementByKey[a.Key]; exists {
			return nil, fmt.Errorf("duplicate achievement key: %s", a.Key)
		}
		c.achievementByKey[a.Key] = a
	}

	for _, cat := range categories {
		if _, exists := c.categoryByID[cat.ID]; exists {
			return nil, fmt.Errorf("duplicate category id: %s", cat.ID)
		}
		c.categoryByID[cat.ID] = cat
	}

	for _, country := range countries {
		if _, exists := c.countryByCode[country.Code]; exists {
			return nil, fmt.Errorf("duplicate country code: %s", country.Code)
		}
		c.countryByCode[country.Code] = country
	}

	for _, card := range cards {
		if _, exists := c.cardByID[card.ID]; exists {
			return nil, fmt.Errorf("duplicate card id: %s", card.ID)
		}
		if _, ok := c.categoryByID[card.Category]; !ok {
			return nil, fmt.Errorf("card %s references unknown category %s", card.ID, card.Category)
		}
		if card.Country != "" {
			if _, ok := c.countryByCode[card.Country]; !ok {
				return nil, fmt.Errorf("card %s references unknown country %s", card.ID, card.Country)
			}
			c.cardIDsByCountry[card.Country] = append(c.cardIDsByCountry[card.Country], card.ID)
		}
		c.cardByID[card.ID] = card
		c.cardIDsByCat[card.Category] = append(c.cardIDsByCat[card.Category], card.ID)
	}

	for i, ch := range challenges {
		if _, exists := c.challengeByID[ch.ID]; exists {
			return nil, fmt.Errorf("duplicate challenge id: %s", ch.ID)
		}
		switch ch.Mode {
		case ModeCounter:
			if ch.ProgressKey == "" {
				return nil, fmt.Errorf("counter challenge %s has no progress key", ch.ID)
			}
			if ch.Target <= 0 {
				return nil, fmt.Errorf("counter challenge %s has no target", ch.ID)
			}
		case ModeQuestline:
			if len(ch.Quests) == 0 {
				return nil, fmt.Errorf("questline challenge %s has no quests", ch.ID)
			}
			if ch.RequiredQuestCount() == 0 {
				return nil, fmt.Errorf("questline challenge %s has no required quests", ch.ID)
			}
			ch.Target = ch.RequiredQuestCount()
		default:
			return nil, fmt.Errorf("challenge %s has unknown mode %q", ch.ID, ch.Mode)
		}
		c.Challenges[i] = ch
		c.challengeByID[ch.ID] = ch
	}

	return c, nil
}

func (c *Catalog) AchievementByKey(key string) (Achievement, bool) {
	a, ok := c.achievementByKey[key]
	return a, ok
}

func (c *Catalog) CardByID(id string) (Card, bool) {
	card, ok := c.cardByID[id]
	return card, ok
}

func (c *Catalog) CategoryByID(id string) (Category, bool) {
	cat, ok := c.categoryByID[id]
	return cat, ok
}

func (c *Catalog) CountryByCode(code string) (Country, bool) {
	country, ok := c.countryByCode[code]
	return country, ok
}

func (c *Catalog) ChallengeByID(id string) (Challenge, bool) {
	ch, ok := c.challengeByID[id]
	return ch, ok
}

// CardIDsByCategory returns card ids in catalog order for one category.
func (c *Catalog) CardIDsByCategory(categoryID string) []string {
	return c.cardIDsByCat[categoryID]
}

// CardIDsByCountry returns card ids in catalog order for one country.
func (c *Catalog) CardIDsByCountry(code string) []string {
	return c.cardIDsByCountry[code]
}

// QuestlineFor returns the questline challenge containing the given quest id,
// if any. Quest ids are unique across questlines.
func (c *Catalog) QuestlineFor(questID string) (Challenge, bool) {
	for _, ch := range c.Challenges {
		if ch.Mode != ModeQuestline {
			continue
		}
		for _, q := range ch.Quests {
			if q.ID == questID {
				return ch, true
			}
		}
	}
	return Challenge{}, false
}

// NormalizeCardID maps QR payloads of the form "ethernal:card:<id>" or plain
// ids to a catalog card id.
func NormalizeCardID(payload string) string {
	payload = strings.TrimSpace(payload)
	payload = strings.TrimPrefix(payload, "ethernal:card:")
	return payload
}
