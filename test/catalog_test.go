//go:build integration_test || all_tests

package test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/2beens/undergroundgym/internal/workout"
	"github.com/2beens/undergroundgym/internal/workout/apiclient"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestCatalog() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.T().Run("seeded catalog", func(t *testing.T) {
		groups, err := s.client.MuscleGroups(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Arms", "Back", "Chest", "Core", "Legs", "Shoulders"}, groups)

		chest, err := s.client.ListExercises(ctx, "Chest")
		require.NoError(t, err)
		require.Len(t, chest, 7)
		assert.Equal(t, "Bench Press", chest[0].Name)
		for _, ex := range chest {
			assert.Equal(t, "Chest", ex.MuscleGroup)
			assert.NotEmpty(t, ex.ID)
		}
	})

	s.T().Run("add and get", func(t *testing.T) {
		name := gofakeit.Name() + " Press"
		added, err := s.client.AddExercise(ctx, workout.Exercise{
			Name:        name,
			MuscleGroup: "Forearms",
		})
		require.NoError(t, err)
		require.NotEmpty(t, added.ID)

		groups, err := s.client.MuscleGroups(ctx)
		require.NoError(t, err)
		assert.Contains(t, groups, "Forearms")

		all, err := s.client.ListExercises(ctx, "")
		require.NoError(t, err)
		require.NotEmpty(t, all)
		assert.Equal(t, added.ID, all[len(all)-1].ID, "new exercises go to the end of the catalog")

		_, err = s.client.AddExercise(ctx, workout.Exercise{Name: name, MuscleGroup: "Forearms"})
		var statusErr *apiclient.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
	})
}
