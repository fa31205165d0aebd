package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// cardSource implements fuzzy.Source for card searching.
type cardSource []Card

func (s cardSource) String(i int) string {
	return strings.ToLower(s[i].Name + " " + s[i].ID)
}

func (s cardSource) Len() int { return len(s) }

// achievementSource implements fuzzy.Source for achievement searching.
type achievementSource []Achievement

func (s achievementSource) String(i int) string {
	return strings.ToLower(s[i].Name + " " + s[i].Key)
}

func (s achievementSource) Len() int { return len(s) }

// SearchCards performs fuzzy matching over card names and ids, best matches
// first. An empty query returns the whole catalog in catalog order.
func (c *Catalog) SearchCards(query string, limit int) []Card {
	if limit <= 0 || limit > len(c.Cards) {
		limit = len(c.Cards)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]Card(nil), c.Cards[:limit]...)
	}

	matches := fuzzy.FindFrom(query, cardSource(c.Cards))
	results := make([]Card, 0, len(matches))
	for _, m := range matches {
		if len(results) >= limit {
			break
		}
		results = append(results, c.Cards[m.Index])
	}
	return results
}

// SearchAchievements performs fuzzy matching over achievement names and keys.
func (c *Catalog) SearchAchievements(query string, limit int) []Achievement {
	if limit <= 0 || limit > len(c.Achievements) {
		limit = len(c.Achievements)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]Achievement(nil), c.Achievements[:limit]...)
	}

	matches := fuzzy.FindFrom(query, achievementSource(c.Achievements))
	results := make([]Achievement, 0, len(matches))
	for _, m := range matches {
		if len(results) >= limit {
			break
		}
		results = append(results, c.Achievements[m.Index])
	}
	return results
}
