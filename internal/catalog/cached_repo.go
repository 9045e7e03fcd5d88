package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/2beens/undergroundgym/internal/telemetry/metrics"
	"github.com/2beens/undergroundgym/internal/workout"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	cacheKeyMuscleGroups   = "muscle-groups"
	cacheKeyExercisesPref  = "exercises:"
	cacheKeyExercisePref   = "exercise:"
	defaultCacheTTLSeconds = 10 * 60
)

type repo interface {
	List(ctx context.Context, muscleGroup string) ([]workout.Exercise, error)
	Get(ctx context.Context, id string) (*workout.Exercise, error)
	Add(ctx context.Context, ex workout.Exercise) (*workout.Exercise, error)
	MuscleGroups(ctx context.Context) ([]string, error)
}

// CachedRepo keeps catalog reads in memory. The catalog only changes through
// Add, which drops the whole cache.
type CachedRepo struct {
	repo           repo
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewCachedRepo(repo repo, cacheSize int, metricsManager *metrics.Manager) *CachedRepo {
	return &CachedRepo{
		repo:           repo,
		cache:          freecache.NewCache(cacheSize),
		ttlSeconds:     defaultCacheTTLSeconds,
		metricsManager: metricsManager,
	}
}

func (c *CachedRepo) List(ctx context.Context, muscleGroup string) ([]workout.Exercise, error) {
	var exercises []workout.Exercise
	if c.lookup(cacheKeyExercisesPref+muscleGroup, &exercises) {
		return exercises, nil
	}

	exercises, err := c.repo.List(ctx, muscleGroup)
	if err != nil {
		return nil, err
	}
	c.store(cacheKeyExercisesPref+muscleGroup, exercises)
	return exercises, nil
}

func (c *CachedRepo) Get(ctx context.Context, id string) (*workout.Exercise, error) {
	var ex workout.Exercise
	if c.lookup(cacheKeyExercisePref+id, &ex) {
		return &ex, nil
	}

	found, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(cacheKeyExercisePref+id, found)
	return found, nil
}

func (c *CachedRepo) MuscleGroups(ctx context.Context) ([]string, error) {
	var groups []string
	if c.lookup(cacheKeyMuscleGroups, &groups) {
		return groups, nil
	}

	groups, err := c.repo.MuscleGroups(ctx)
	if err != nil {
		return nil, err
	}
	c.store(cacheKeyMuscleGroups, groups)
	return groups, nil
}

func (c *CachedRepo) Add(ctx context.Context, ex workout.Exercise) (*workout.Exercise, error) {
	added, err := c.repo.Add(ctx, ex)
	if err != nil {
		return nil, err
	}
	c.cache.Clear()
	return added, nil
}

func (c *CachedRepo) lookup(key string, dst any) bool {
	cached, err := c.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("catalog cache get [%s]: %s", key, err)
		}
		c.count("miss")
		return false
	}
	if err := json.Unmarshal(cached, dst); err != nil {
		log.Warnf("catalog cache unmarshal [%s]: %s", key, err)
		c.cache.Del([]byte(key))
		c.count("miss")
		return false
	}
	c.count("hit")
	return true
}

func (c *CachedRepo) store(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warnf("catalog cache marshal [%s]: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), raw, c.ttlSeconds); err != nil {
		log.Warnf("catalog cache set [%s]: %s", key, err)
	}
}

func (c *CachedRepo) count(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterCatalogCache.WithLabelValues(result).Inc()
	}
}
