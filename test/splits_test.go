//go:build integration_test || all_tests

package test

import (
	"context"
	"errors"
	"testing"

	"github.com/2beens/undergroundgym/internal/workout"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSplits() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.deleteAll(ctx, "workout_split")

	templates, err := s.client.Templates(ctx)
	s.Require().NoError(err)
	s.Require().Len(templates, 3)

	var created []*workout.Split
	s.T().Run("create from templates", func(t *testing.T) {
		for _, key := range []string{"push_pull_legs", "upper_lower"} {
			draft := workout.NewSplitDraft(1)
			draft.ApplyTemplate(templates[key])
			draft.Name = gofakeit.Word() + " " + key
			split, err := draft.Build()
			require.NoError(t, err)

			added, err := s.client.CreateSplit(ctx, split)
			require.NoError(t, err)
			require.NotEmpty(t, added.ID)
			assert.Equal(t, split.Days, added.Days)
			created = append(created, added)
		}
	})

	s.T().Run("list newest first", func(t *testing.T) {
		splits, err := s.client.Splits(ctx)
		require.NoError(t, err)
		require.Len(t, splits, 2)
		assert.Equal(t, created[1].ID, splits[0].ID)
		assert.Equal(t, created[0].ID, splits[1].ID)
	})

	s.T().Run("invalid split rejected", func(t *testing.T) {
		_, err := s.client.CreateSplit(ctx, workout.Split{Name: "bad", DaysPerWeek: 8})
		require.Error(t, err)
	})

	s.T().Run("delete", func(t *testing.T) {
		require.NoError(t, s.client.DeleteSplit(ctx, created[0].ID))

		_, err := s.client.GetSplit(ctx, created[0].ID)
		var notFound *workout.NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "splits", notFound.Resource)

		err = s.client.DeleteSplit(ctx, created[0].ID)
		require.True(t, errors.As(err, &notFound))
	})
}
