//go:build integration_test || all_tests

package test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/2beens/undergroundgym/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) newPushPullLegsSplit(ctx context.Context) workout.Split {
	templates, err := s.client.Templates(ctx)
	s.Require().NoError(err)

	draft := workout.NewSplitDraft(3)
	draft.ApplyTemplate(templates["push_pull_legs"])
	split, err := draft.Build()
	s.Require().NoError(err)

	added, err := s.client.CreateSplit(ctx, split)
	s.Require().NoError(err)
	return *added
}

func (s *IntegrationTestSuite) TestSessions_PushDayWorkout() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.deleteAll(ctx, "session_exercise", "workout_session")

	split := s.newPushPullLegsSplit(ctx)
	catalog, err := s.client.ListExercises(ctx, "")
	s.Require().NoError(err)

	engine, err := workout.NewEngine(s.client, split, 1, catalog, workout.WorklistOptions{})
	s.Require().NoError(err)

	worklist := engine.Worklist()
	s.Require().Len(worklist, 9)
	bench := worklist[0]
	s.Require().Equal("Bench Press", bench.ExerciseName)
	assert.Empty(s.T(), engine.SessionID())

	s.T().Run("complete creates the session", func(t *testing.T) {
		outcome, err := engine.Complete(ctx, bench.ExerciseID)
		require.NoError(t, err)
		assert.Equal(t, 1, outcome.CompletedCount)
		assert.NotEmpty(t, engine.SessionID())

		sessions, err := s.client.ListSessions(ctx, 0)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Len(t, sessions[0].Exercises, 9)
	})

	s.T().Run("archive on third completion", func(t *testing.T) {
		_, err := engine.Complete(ctx, bench.ExerciseID)
		require.NoError(t, err)
		outcome, err := engine.Complete(ctx, bench.ExerciseID)
		require.NoError(t, err)
		assert.True(t, outcome.JustArchived)
		assert.Len(t, engine.Archived(), 1)
		assert.Len(t, engine.Active(), 8)
	})

	s.T().Run("save sets and history", func(t *testing.T) {
		require.NoError(t, engine.UpdateSet(worklist[1].ExerciseID, 0, 42.5, 12))
		sessionID, err := engine.Save(ctx)
		require.NoError(t, err)
		assert.Equal(t, engine.SessionID(), sessionID)

		session, err := s.client.GetSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 3, session.Exercises[0].CompletedCount)
		assert.True(t, session.Exercises[0].IsArchived)
		assert.Equal(t, 42.5, session.Exercises[1].Sets[0].Weight)
		assert.Equal(t, 12, session.Exercises[1].Sets[0].Reps)

		history, err := s.client.History(ctx)
		require.NoError(t, err)
		display := workout.DisplayFor(worklist[1].ExerciseID, history)
		require.True(t, display.HasHistory)
		assert.Equal(t, 42.5, display.LastSet.Weight)
	})

	s.T().Run("reset", func(t *testing.T) {
		outcome, err := engine.Reset(ctx, bench.ExerciseID)
		require.NoError(t, err)
		assert.Zero(t, outcome.CompletedCount)
		assert.False(t, outcome.IsArchived)
		assert.Len(t, engine.Active(), 9)
	})

	s.T().Run("unknown ids", func(t *testing.T) {
		_, err := s.client.CompleteExercise(ctx, engine.SessionID(), "no-such-exercise")
		var notFound *workout.NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "exercises", notFound.Resource)

		_, err = s.client.CompleteExercise(ctx, "no-such-session", bench.ExerciseID)
		require.True(t, errors.As(err, &notFound))
	})
}

func (s *IntegrationTestSuite) TestSessions_ConcurrentCompletionsClamp() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	split := s.newPushPullLegsSplit(ctx)
	catalog, err := s.client.ListExercises(ctx, "")
	s.Require().NoError(err)

	draft := workout.SessionDraft{
		SplitID:   split.ID,
		DayNumber: 2,
		Exercises: workout.DeriveWorklist(split.Days[1], catalog, workout.WorklistOptions{}),
	}
	session, err := s.client.CreateSession(ctx, draft)
	s.Require().NoError(err)
	exerciseID := draft.Exercises[0].ExerciseID

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.client.CompleteExercise(ctx, session.ID, exerciseID)
			assert.NoError(s.T(), err)
		}()
	}
	wg.Wait()

	stored, err := s.client.GetSession(ctx, session.ID)
	s.Require().NoError(err)
	assert.Equal(s.T(), workout.TargetCompletions, stored.Exercises[0].CompletedCount)
	assert.True(s.T(), stored.Exercises[0].IsArchived)

	var completed int
	s.Require().NoError(s.DB.QueryRowContext(
		ctx,
		`SELECT completed_count FROM session_exercise WHERE session_id = $1 AND exercise_id = $2 LIMIT 1`,
		session.ID, exerciseID,
	).Scan(&completed))
	assert.Equal(s.T(), workout.TargetCompletions, completed)
}
