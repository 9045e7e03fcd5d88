package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/2beens/undergroundgym/internal/workout"

	log "github.com/sirupsen/logrus"
)

type gymAPI interface {
	workout.SessionStore
	ListExercises(ctx context.Context, muscleGroup string) ([]workout.Exercise, error)
	Splits(ctx context.Context) ([]workout.Split, error)
	GetSplit(ctx context.Context, id string) (*workout.Split, error)
	CreateSplit(ctx context.Context, split workout.Split) (*workout.Split, error)
	Templates(ctx context.Context) (map[string]workout.Template, error)
	History(ctx context.Context) (workout.History, error)
}

// runner is a line based front end over one workout.Engine at a time.
type runner struct {
	api  gymAPI
	out  io.Writer
	opts workout.WorklistOptions

	engine  *workout.Engine
	history workout.History
}

func newRunner(api gymAPI, out io.Writer, opts workout.WorklistOptions) *runner {
	return &runner{
		api:  api,
		out:  out,
		opts: opts,
	}
}

const helpText = `commands:
  splits                          list saved splits
  templates                       list split templates
  new <template> <name...>        create a split from a template
  start <split id> <day number>   start a workout for a split day
  show                            show the current workout
  done <n>                        complete exercise n once
  reset <n>                       reset exercise n
  set <n> <set> <weight> <reps>   edit a set of exercise n
  save                            log the session
  history                         show last results per exercise
  quit`

// Run reads commands until EOF, quit or ctx is done. Command errors are
// printed and the loop goes on.
func (r *runner) Run(ctx context.Context, in io.Reader) error {
	r.println(helpText)
	scanner := bufio.NewScanner(in)
	for {
		r.printf("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := r.exec(ctx, fields[0], fields[1:]); err != nil {
			r.println(describeErr(err))
		}
	}
}

func (r *runner) exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		r.println(helpText)
		return nil
	case "splits":
		return r.listSplits(ctx)
	case "templates":
		return r.listTemplates(ctx)
	case "new":
		if len(args) < 2 {
			return errors.New("usage: new <template> <name...>")
		}
		return r.newSplit(ctx, args[0], strings.Join(args[1:], " "))
	case "start":
		if len(args) != 2 {
			return errors.New("usage: start <split id> <day number>")
		}
		day, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid day number: %s", args[1])
		}
		return r.start(ctx, args[0], day)
	case "show":
		return r.show()
	case "done":
		return r.progress(ctx, args, true)
	case "reset":
		return r.progress(ctx, args, false)
	case "set":
		return r.updateSet(args)
	case "save":
		return r.save(ctx)
	case "history":
		return r.showHistory(ctx)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (r *runner) listSplits(ctx context.Context) error {
	splits, err := r.api.Splits(ctx)
	if err != nil {
		return err
	}
	if len(splits) == 0 {
		r.println("no splits yet, create one with: new <template> <name>")
		return nil
	}
	for _, s := range splits {
		r.printf("%s  %s (%d days)\n", s.ID, s.Name, s.DaysPerWeek)
		for _, d := range s.Days {
			r.printf("    %d. %s: %s\n", d.DayNumber, d.DayName, strings.Join(d.MuscleGroups, ", "))
		}
	}
	return nil
}

func (r *runner) listTemplates(ctx context.Context) error {
	templates, err := r.api.Templates(ctx)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(templates))
	for k := range templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.printf("%s: %s (%d days)\n", k, templates[k].Name, templates[k].DaysPerWeek)
	}
	return nil
}

func (r *runner) newSplit(ctx context.Context, templateKey, name string) error {
	templates, err := r.api.Templates(ctx)
	if err != nil {
		return err
	}
	t, ok := templates[templateKey]
	if !ok {
		return fmt.Errorf("unknown template: %s", templateKey)
	}

	draft := workout.NewSplitDraft(t.DaysPerWeek)
	draft.ApplyTemplate(t)
	draft.Name = name
	split, err := draft.Build()
	if err != nil {
		return err
	}

	created, err := r.api.CreateSplit(ctx, split)
	if err != nil {
		return err
	}
	r.printf("split created: %s\n", created.ID)
	return nil
}

func (r *runner) start(ctx context.Context, splitID string, dayNumber int) error {
	if r.engine != nil && r.engine.SessionID() != "" {
		log.Debugf("leaving session %s", r.engine.SessionID())
	}

	split, err := r.api.GetSplit(ctx, splitID)
	if err != nil {
		return err
	}
	catalog, err := r.api.ListExercises(ctx, "")
	if err != nil {
		return err
	}
	engine, err := workout.NewEngine(r.api, *split, dayNumber, catalog, r.opts)
	if err != nil {
		return err
	}
	r.engine = engine

	if history, err := r.api.History(ctx); err != nil {
		log.Warnf("load history: %s", err)
		r.history = nil
	} else {
		r.history = history
	}

	return r.show()
}

func (r *runner) show() error {
	if r.engine == nil {
		return errNoWorkout
	}

	day := r.engine.Day()
	r.printf("%s - %s\n", r.engine.Split().Name, day.DayName)

	worklist := r.engine.Worklist()
	if len(worklist) == 0 {
		r.println("no exercises for this day, add some to the catalog first")
		return nil
	}

	for _, section := range workout.GroupByMuscle(activeOf(worklist, false)) {
		r.printf("[%s]\n", section.MuscleGroup)
		for _, we := range section.Exercises {
			r.printExercise(positionOf(worklist, we.ExerciseID)+1, we)
		}
	}

	archived := activeOf(worklist, true)
	if len(archived) > 0 {
		r.println("[archived]")
		for _, we := range archived {
			r.printExercise(positionOf(worklist, we.ExerciseID)+1, we)
		}
	}
	return nil
}

func (r *runner) printExercise(n int, we workout.WorkoutExercise) {
	r.printf("  %2d. %s (%d/%d)  last: %s\n",
		n, we.ExerciseName, we.CompletedCount, we.TargetCompletions,
		workout.DisplayFor(we.ExerciseID, r.history),
	)
	for _, s := range we.Sets {
		r.printf("        set %d: %skg x %d\n", s.SetNumber, strconv.FormatFloat(s.Weight, 'f', -1, 64), s.Reps)
	}
}

func (r *runner) progress(ctx context.Context, args []string, complete bool) error {
	we, err := r.pick(args)
	if err != nil {
		return err
	}

	var outcome workout.Outcome
	if complete {
		outcome, err = r.engine.Complete(ctx, we.ExerciseID)
	} else {
		outcome, err = r.engine.Reset(ctx, we.ExerciseID)
	}
	if err != nil {
		return err
	}

	switch {
	case outcome.JustArchived:
		r.printf("%s done, moved to archive\n", we.ExerciseName)
	case outcome.IsArchived:
		r.printf("%s is already archived\n", we.ExerciseName)
	default:
		r.printf("%s: %d/%d\n", we.ExerciseName, outcome.CompletedCount, outcome.TargetCompletions)
	}
	return nil
}

func (r *runner) updateSet(args []string) error {
	if len(args) != 4 {
		return errors.New("usage: set <n> <set> <weight> <reps>")
	}
	we, err := r.pick(args[:1])
	if err != nil {
		return err
	}
	setNumber, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid set number: %s", args[1])
	}
	weight, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid weight: %s", args[2])
	}
	reps, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid reps: %s", args[3])
	}
	if !slices.Contains(workout.RepOptions, reps) {
		return fmt.Errorf("reps must be one of %v", workout.RepOptions)
	}

	return r.engine.UpdateSet(we.ExerciseID, setNumber-1, weight, reps)
}

func (r *runner) save(ctx context.Context) error {
	if r.engine == nil {
		return errNoWorkout
	}
	sessionID, err := r.engine.Save(ctx)
	if err != nil {
		return err
	}
	r.printf("session logged: %s\n", sessionID)
	return nil
}

func (r *runner) showHistory(ctx context.Context) error {
	history, err := r.api.History(ctx)
	if err != nil {
		return err
	}
	r.history = history
	if len(history) == 0 {
		r.println("no history yet")
		return nil
	}

	catalog, err := r.api.ListExercises(ctx, "")
	if err != nil {
		return err
	}
	for _, ex := range catalog {
		display := workout.DisplayFor(ex.ID, history)
		if display.HasHistory {
			r.printf("%s: %s\n", ex.Name, display)
		}
	}
	return nil
}

var errNoWorkout = errors.New("no workout started, use: start <split id> <day number>")

func (r *runner) pick(args []string) (workout.WorkoutExercise, error) {
	if r.engine == nil {
		return workout.WorkoutExercise{}, errNoWorkout
	}
	if len(args) != 1 {
		return workout.WorkoutExercise{}, errors.New("exercise number missing")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return workout.WorkoutExercise{}, fmt.Errorf("invalid exercise number: %s", args[0])
	}
	worklist := r.engine.Worklist()
	if n < 1 || n > len(worklist) {
		return workout.WorkoutExercise{}, fmt.Errorf("exercise number out of range [1, %d]: %d", len(worklist), n)
	}
	return worklist[n-1], nil
}

func (r *runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r *runner) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

func describeErr(err error) string {
	var validationErr *workout.ValidationError
	var notFoundErr *workout.NotFoundError
	var transportErr *workout.TransportError
	switch {
	case errors.As(err, &validationErr):
		return fmt.Sprintf("invalid input: %s: %s", validationErr.Field, validationErr.Reason)
	case errors.As(err, &notFoundErr):
		return "not found: " + notFoundErr.Error()
	case errors.Is(err, workout.ErrExerciseBusy):
		return "still saving the previous action, try again"
	case errors.Is(err, workout.ErrExerciseArchived):
		return "exercise is archived, reset it first"
	case errors.As(err, &transportErr):
		return "could not reach the server, try again: " + transportErr.Error()
	default:
		return err.Error()
	}
}

func activeOf(worklist []workout.WorkoutExercise, archived bool) []workout.WorkoutExercise {
	var res []workout.WorkoutExercise
	for _, we := range worklist {
		if we.IsArchived == archived {
			res = append(res, we)
		}
	}
	return res
}

func positionOf(worklist []workout.WorkoutExercise, exerciseID string) int {
	for i, we := range worklist {
		if we.ExerciseID == exerciseID {
			return i
		}
	}
	return -1
}
