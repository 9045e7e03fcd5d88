//go:build integration_test || all_tests

package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestOrdering() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Require().NoError(s.redisClient.Del(ctx, "exercise-order").Err())

	catalog, err := s.client.ListExercises(ctx, "")
	s.Require().NoError(err)
	s.Require().True(len(catalog) > 3)

	s.T().Run("defaults to catalog order", func(t *testing.T) {
		ids, err := s.client.GetOrder(ctx)
		require.NoError(t, err)
		require.Len(t, ids, len(catalog))
		for i, ex := range catalog {
			assert.Equal(t, ex.ID, ids[i])
		}
	})

	s.T().Run("saved order persists in redis", func(t *testing.T) {
		ids := make([]string, 0, len(catalog))
		for i := len(catalog) - 1; i >= 0; i-- {
			ids = append(ids, catalog[i].ID)
		}
		require.NoError(t, s.client.PutOrder(ctx, ids))

		stored, err := s.redisClient.LRange(ctx, "exercise-order", 0, -1).Result()
		require.NoError(t, err)
		assert.Equal(t, ids, stored)

		got, err := s.client.GetOrder(ctx)
		require.NoError(t, err)
		assert.Equal(t, ids, got)
	})

	s.T().Run("unknown id rejected", func(t *testing.T) {
		require.Error(t, s.client.PutOrder(ctx, []string{"nope"}))
	})
}
