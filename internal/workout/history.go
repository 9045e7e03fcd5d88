package workout

import (
	"fmt"
	"strconv"
	"time"
)

// HistoryEntry is the most recent recorded performance of an exercise.
type HistoryEntry struct {
	Date           time.Time `json:"date"`
	Sets           []Set     `json:"sets"`
	CompletedCount int       `json:"completed_count"`
}

type History map[string]HistoryEntry

// BuildHistory keeps, for every exercise found in the sessions, the
// occurrence with the latest CompletedAt. On equal timestamps the first
// occurrence seen wins.
func BuildHistory(sessions []Session) History {
	history := make(History)
	for _, session := range sessions {
		for _, we := range session.Exercises {
			prev, ok := history[we.ExerciseID]
			if ok && !session.CompletedAt.After(prev.Date) {
				continue
			}
			sets := make([]Set, len(we.Sets))
			copy(sets, we.Sets)
			history[we.ExerciseID] = HistoryEntry{
				Date:           session.CompletedAt,
				Sets:           sets,
				CompletedCount: we.CompletedCount,
			}
		}
	}
	return history
}

// Display is what the catalog view shows for an exercise.
type Display struct {
	HasHistory     bool      `json:"has_history"`
	Date           time.Time `json:"date,omitempty"`
	LastSet        Set       `json:"last_set"`
	CompletedCount int       `json:"completed_count"`
}

// NoHistory is returned for exercises never recorded in a session.
var NoHistory = Display{}

// DisplayFor projects the history entry of the exercise for display.
func DisplayFor(exerciseID string, history History) Display {
	entry, ok := history[exerciseID]
	if !ok {
		return NoHistory
	}
	d := Display{
		HasHistory:     true,
		Date:           entry.Date,
		CompletedCount: entry.CompletedCount,
	}
	if len(entry.Sets) > 0 {
		d.LastSet = entry.Sets[len(entry.Sets)-1]
	}
	return d
}

func (d Display) String() string {
	if !d.HasHistory {
		return "no history"
	}
	return fmt.Sprintf(
		"%skg × %d (%d/%d) on %s",
		strconv.FormatFloat(d.LastSet.Weight, 'f', -1, 64),
		d.LastSet.Reps,
		d.CompletedCount, TargetCompletions,
		d.Date.Format("2006-01-02"),
	)
}
