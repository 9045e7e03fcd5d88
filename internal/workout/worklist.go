package workout

// DuplicatePolicy controls what happens when the same exercise is reachable
// more than once while deriving a day's worklist.
type DuplicatePolicy int

const (
	// DuplicatesKeep selects per muscle group independently, so an exercise
	// reachable twice appears twice. Duplicates share one server-side counter.
	DuplicatesKeep DuplicatePolicy = iota
	// DuplicatesDrop keeps only the first occurrence of each exercise.
	DuplicatesDrop
)

type WorklistOptions struct {
	Duplicates DuplicatePolicy
}

// DeriveWorklist builds the day's exercises: for each of the day's muscle
// groups in declared order, the first MaxExercisesPerMuscleGroup catalog
// exercises of that group, in catalog order.
func DeriveWorklist(day Day, catalog []Exercise, opts WorklistOptions) []WorkoutExercise {
	worklist := make([]WorkoutExercise, 0, len(day.MuscleGroups)*MaxExercisesPerMuscleGroup)
	seen := make(map[string]bool)
	for _, muscleGroup := range day.MuscleGroups {
		taken := 0
		for _, ex := range catalog {
			if taken == MaxExercisesPerMuscleGroup {
				break
			}
			if ex.MuscleGroup != muscleGroup {
				continue
			}
			taken++
			if opts.Duplicates == DuplicatesDrop && seen[ex.ID] {
				continue
			}
			seen[ex.ID] = true
			worklist = append(worklist, newWorkoutExercise(ex))
		}
	}
	return worklist
}

func newWorkoutExercise(ex Exercise) WorkoutExercise {
	return WorkoutExercise{
		ExerciseID:        ex.ID,
		ExerciseName:      ex.Name,
		MuscleGroup:       ex.MuscleGroup,
		Sets:              DefaultSets(),
		CompletedCount:    0,
		TargetCompletions: TargetCompletions,
		IsArchived:        false,
	}
}

// DefaultSets returns DefaultSetsCount empty sets of DefaultReps reps.
func DefaultSets() []Set {
	sets := make([]Set, DefaultSetsCount)
	for i := range sets {
		sets[i] = Set{
			SetNumber: i + 1,
			Weight:    0,
			Reps:      DefaultReps,
		}
	}
	return sets
}

// MuscleGroupSection is a run of exercises sharing a muscle group.
type MuscleGroupSection struct {
	MuscleGroup string
	Exercises   []WorkoutExercise
}

// GroupByMuscle groups exercises by muscle group, keeping groups in order of
// first appearance and exercises in their original order.
func GroupByMuscle(exercises []WorkoutExercise) []MuscleGroupSection {
	var sections []MuscleGroupSection
	index := make(map[string]int)
	for _, ex := range exercises {
		i, ok := index[ex.MuscleGroup]
		if !ok {
			i = len(sections)
			index[ex.MuscleGroup] = i
			sections = append(sections, MuscleGroupSection{MuscleGroup: ex.MuscleGroup})
		}
		sections[i].Exercises = append(sections[i].Exercises, ex)
	}
	return sections
}
