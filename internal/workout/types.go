package workout

import (
	"fmt"
	"time"
)

const (
	// TargetCompletions is the number of completions after which an exercise is archived.
	TargetCompletions = 3
	// MaxExercisesPerMuscleGroup bounds how many catalog exercises a day pulls per muscle group.
	MaxExercisesPerMuscleGroup = 3
	DefaultSetsCount           = 3
	DefaultReps                = 12
)

// RepOptions are the rep counts offered when editing a set.
var RepOptions = []int{8, 10, 12, 14, 15, 20}

type MuscleGroup = string

type Exercise struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MuscleGroup  string  `json:"muscle_group"`
	Equipment    *string `json:"equipment,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}

type Day struct {
	DayNumber    int      `json:"day_number"`
	DayName      string   `json:"day_name"`
	MuscleGroups []string `json:"muscle_groups"`
}

type Split struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DaysPerWeek int       `json:"days_per_week"`
	Days        []Day     `json:"days"`
	CreatedAt   time.Time `json:"created_at"`
}

// Day returns the day with the given number, if present.
func (s *Split) Day(dayNumber int) (Day, bool) {
	for _, d := range s.Days {
		if d.DayNumber == dayNumber {
			return d, true
		}
	}
	return Day{}, false
}

// Template is a named, predefined split layout.
type Template struct {
	Name        string `json:"name"`
	DaysPerWeek int    `json:"days_per_week"`
	Days        []Day  `json:"days"`
}

type Set struct {
	SetNumber int     `json:"set_number"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
}

type WorkoutExercise struct {
	ExerciseID        string `json:"exercise_id"`
	ExerciseName      string `json:"exercise_name"`
	MuscleGroup       string `json:"muscle_group"`
	Sets              []Set  `json:"sets"`
	CompletedCount    int    `json:"completed_count"`
	TargetCompletions int    `json:"target_completions"`
	IsArchived        bool   `json:"is_archived"`
}

// Progress returns the completion state of the exercise.
func (we *WorkoutExercise) Progress() Progress {
	return Progress{
		CompletedCount:    we.CompletedCount,
		TargetCompletions: we.TargetCompletions,
		IsArchived:        we.IsArchived,
	}
}

func (we *WorkoutExercise) applyProgress(p Progress) {
	we.CompletedCount = p.CompletedCount
	we.IsArchived = p.IsArchived
	if p.TargetCompletions > 0 {
		we.TargetCompletions = p.TargetCompletions
	}
}

func (we WorkoutExercise) clone() WorkoutExercise {
	sets := make([]Set, len(we.Sets))
	copy(sets, we.Sets)
	we.Sets = sets
	return we
}

// SessionDraft is what gets posted to create a new session.
type SessionDraft struct {
	SplitID   string            `json:"split_id"`
	DayNumber int               `json:"day_number"`
	Exercises []WorkoutExercise `json:"exercises"`
}

// Validate checks the draft before it is persisted. Progress of every
// exercise is clamped into range.
func (d *SessionDraft) Validate() error {
	if d.SplitID == "" {
		return newValidationError("split_id", "must not be empty")
	}
	if d.DayNumber < MinDaysPerWeek || d.DayNumber > MaxDaysPerWeek {
		return newValidationError("day_number", "must be in [%d, %d], got %d", MinDaysPerWeek, MaxDaysPerWeek, d.DayNumber)
	}
	for i := range d.Exercises {
		we := &d.Exercises[i]
		if we.ExerciseID == "" || we.ExerciseName == "" {
			return newValidationError(fmt.Sprintf("exercises[%d]", i), "exercise id and name are required")
		}
		if err := ValidateSets(we.Sets); err != nil {
			return err
		}
		we.applyProgress(we.Progress().normalized())
	}
	return nil
}

// ValidateSets rejects negative weights and non-positive reps.
func ValidateSets(sets []Set) error {
	for i, set := range sets {
		if set.Weight < 0 {
			return newValidationError(fmt.Sprintf("sets[%d].weight", i), "must not be negative, got %v", set.Weight)
		}
		if set.Reps <= 0 {
			return newValidationError(fmt.Sprintf("sets[%d].reps", i), "must be positive, got %d", set.Reps)
		}
	}
	return nil
}

type Session struct {
	ID          string            `json:"id"`
	SplitID     string            `json:"split_id"`
	DayNumber   int               `json:"day_number"`
	Exercises   []WorkoutExercise `json:"exercises"`
	CompletedAt time.Time         `json:"completed_at"`
}
