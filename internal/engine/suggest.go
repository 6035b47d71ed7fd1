package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gtd-task-management/internal/model"
)

// SmartSuggestions filters the task set against the given situational
// preferences and returns the best candidates, ranked, each with the reasons
// that earned its score. Input order breaks ties, so the result is stable
// across calls on the same snapshot. The input is never mutated.
func SmartSuggestions(tasks []model.Task, projects ProjectIndex, prefs Preferences, now time.Time) []Suggestion {
	all := NewIndex(tasks)

	suggestions := make([]Suggestion, 0, len(tasks))
	for _, t := range tasks {
		if !suggestable(t, all, now) {
			continue
		}
		score, reasons := suggestionScore(t, projects, prefs, now)
		suggestions = append(suggestions, Suggestion{Task: t, Score: score, Reasons: reasons})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	max := prefs.MaxSuggestions
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}

// suggestable is the candidate filter: completed tasks, reference material,
// someday tasks, deferred tasks, and blocked tasks never surface.
func suggestable(t model.Task, all Index, now time.Time) bool {
	if t.Completed || t.Status == model.StatusCompleted {
		return false
	}
	if t.Type == model.TypeReference {
		return false
	}
	if t.Status == model.StatusSomeday {
		return false
	}
	if !Available(t, now) {
		return false
	}
	return DependenciesMet(t, all)
}

func suggestionScore(t model.Task, projects ProjectIndex, prefs Preferences, now time.Time) (int, []string) {
	score := 0
	reasons := []string{}

	if t.DueDate != nil {
		switch days := daysBetween(now, *t.DueDate); {
		case days < 0:
			score += 100
			reasons = append(reasons, "Overdue")
		case days == 0:
			score += 75
			reasons = append(reasons, "Due today")
		case days <= 3:
			score += 50
			reasons = append(reasons, fmt.Sprintf("Due in %d days", days))
		}
	}

	if prefs.Context != "" && hasContext(t, prefs.Context) {
		score += 60
		reasons = append(reasons, fmt.Sprintf("Matches %s", prefs.Context))
	}

	if prefs.EnergyLevel != model.EnergyNone && prefs.EnergyLevel == t.Energy {
		score += 40
		reasons = append(reasons, "Matches your energy level")
	}

	if t.Time > 0 {
		switch {
		case prefs.AvailableMinutes > 0 && t.Time <= prefs.AvailableMinutes:
			score += 35
			reasons = append(reasons, "Fits your available time")
		case prefs.AvailableMinutes > 0 && float64(t.Time) > float64(prefs.AvailableMinutes)*1.5:
			score -= 30
			reasons = append(reasons, "May be too long for your available time")
		case prefs.AvailableMinutes == 0 && t.Time <= 15:
			score += 20
			reasons = append(reasons, "Quick task")
		}
	}

	if t.Status == model.StatusNext {
		score += 25
		reasons = append(reasons, "Next action")
	}

	// Flat boost for very short tasks, independent of the time-fit check.
	if t.Time > 0 && t.Time <= 5 {
		score += 15
		reasons = append(reasons, "Takes 5 minutes or less")
	}

	if t.ProjectID != "" {
		if p, ok := projects[t.ProjectID]; ok && p.Status == model.ProjectActive {
			score += 10
			reasons = append(reasons, "Part of an active project")
		}
	}

	if t.Status == model.StatusWaiting {
		score -= 20
		reasons = append(reasons, "Still marked waiting")
	}

	if len(strings.TrimSpace(t.Description)) > 10 {
		score += 5
		reasons = append(reasons, "Well described")
	}

	return score, reasons
}

func hasContext(t model.Task, context string) bool {
	for _, c := range t.Contexts {
		if c == context {
			return true
		}
	}
	return false
}
