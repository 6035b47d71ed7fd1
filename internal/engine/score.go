package engine

import (
	"time"

	"gtd-task-management/internal/model"
)

// Score deltas. The thresholds and weights are load-bearing: UI tests and
// saved-view ordering depend on reproducing them exactly.
const (
	scoreBase = 50

	scoreOverdue     = 25
	scoreDueToday    = 20
	scoreDueTomorrow = 15
	scoreDueSoon     = 10 // within 3 days
	scoreDueThisWeek = 5  // within 7 days

	scoreStarred = 15
	scoreNext    = 10
	scoreInbox   = 5

	scoreDepsReady   = 10
	scoreDepsBlocked = -10

	scoreQuickHighEnergy = 8  // high energy, <=15 min
	scoreLongLowEnergy   = -5 // low energy, >60 min
	scoreVeryQuick       = 5  // <=5 min
	scoreShort           = 3  // <=15 min

	scoreActiveProject = 5
	scoreDeferred      = -20

	scoreAgeOver30 = 7
	scoreAgeOver14 = 5
	scoreAgeOver7  = 3
)

// PriorityScore computes the 0-100 urgency score for a task. Completed tasks
// always score 0. The model is additive from a base of 50, clamped at the
// end; within the due-date, time, and age signal groups only the highest
// matching bucket applies.
func PriorityScore(t model.Task, all Index, projects ProjectIndex, now time.Time) int {
	if t.Completed {
		return 0
	}

	score := scoreBase

	if t.DueDate != nil {
		switch days := daysBetween(now, *t.DueDate); {
		case days < 0:
			score += scoreOverdue
		case days == 0:
			score += scoreDueToday
		case days == 1:
			score += scoreDueTomorrow
		case days <= 3:
			score += scoreDueSoon
		case days <= 7:
			score += scoreDueThisWeek
		}
	}

	if t.Starred {
		score += scoreStarred
	}

	switch t.Status {
	case model.StatusNext:
		score += scoreNext
	case model.StatusInbox:
		score += scoreInbox
	}

	if t.HasDependencies() {
		if DependenciesMet(t, all) {
			score += scoreDepsReady
		} else {
			score += scoreDepsBlocked
		}
	}

	if t.Time > 0 {
		if t.Energy == model.EnergyHigh && t.Time <= 15 {
			score += scoreQuickHighEnergy
		}
		if t.Energy == model.EnergyLow && t.Time > 60 {
			score += scoreLongLowEnergy
		}

		switch {
		case t.Time <= 5:
			score += scoreVeryQuick
		case t.Time <= 15:
			score += scoreShort
		}
	}

	if t.ProjectID != "" {
		if p, ok := projects[t.ProjectID]; ok && p.Status == model.ProjectActive {
			score += scoreActiveProject
		}
	}

	if t.DeferDate != nil && !Available(t, now) {
		score += scoreDeferred
	}

	switch age := daysBetween(t.CreatedAt, now); {
	case age > 30:
		score += scoreAgeOver30
	case age > 14:
		score += scoreAgeOver14
	case age > 7:
		score += scoreAgeOver7
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ScoreLabel maps a priority score to its display label.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Urgent"
	case score >= 60:
		return "High"
	case score >= 40:
		return "Medium"
	case score >= 20:
		return "Low"
	default:
		return "Very Low"
	}
}

// ScoreColor maps a priority score to the UI accent color.
func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return "#ef4444"
	case score >= 60:
		return "#f97316"
	case score >= 40:
		return "#eab308"
	case score >= 20:
		return "#22c55e"
	default:
		return "#94a3b8"
	}
}
