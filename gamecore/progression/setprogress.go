package progression

// SetProgress describes how much of a card group a player owns.
type SetProgress struct {
	Collected  int     `json:"collected"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	IsComplete bool    `json:"isComplete"`
}

// ComputeSetProgress counts how many ids of a group are owned. An empty group
// yields 0% and is never complete.
func ComputeSetProgress(owned map[string]bool, ids []string) SetProgress {
	collected := 0
	for _, id := range ids {
		if owned[id] {
			collected++
		}
	}

	total := len(ids)
	percentage := 0.0
	if total > 0 {
		percentage = (float64(collected) / float64(total)) * 100
	}

	return SetProgress{
		Collected:  collected,
		Total:      total,
		Percentage: percentage,
		IsComplete: total > 0 && collected == total,
	}
}
