package ordering

import (
	"context"
	"errors"

	"github.com/2beens/undergroundgym/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseOrderKey = "exercise-order"

// Repo persists the user's exercise display order as a Redis list.
type Repo struct {
	rdb *redis.Client
}

func NewRepo(rdb *redis.Client) *Repo {
	return &Repo{
		rdb: rdb,
	}
}

// Get returns the stored order, or an empty slice if none was saved yet.
func (r *Repo) Get(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ordering.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ids, err := r.rdb.LRange(ctx, exerciseOrderKey, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(ids)))
	return ids, nil
}

// Save replaces the stored order atomically.
func (r *Repo) Save(ctx context.Context, ids []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ordering.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(ids)))

	values := make([]interface{}, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, exerciseOrderKey)
		if len(values) > 0 {
			pipe.RPush(ctx, exerciseOrderKey, values...)
		}
		return nil
	})
	return err
}
