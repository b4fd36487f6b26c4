package history

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"

	"github.com/mkovacev/fitindex/internal/fitindex"
	"github.com/mkovacev/fitindex/internal/telemetry/tracing"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const historyKeyPrefix = "fitindex-history||"

// NewRedisClient builds the client the snapshot history store runs on.
// With tracing enabled every redis command gets its own otel span.
func NewRedisClient(host string, port int, password string, tracingEnabled bool) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Password: password,
		DB:       0, // use default DB
	})

	if tracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	return rdb
}

// RedisStore keeps each user's snapshot history as a JSON value under a
// single key. The engine always writes the full normalized history, so a
// plain overwrite is enough and last-write-wins is acceptable.
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Read(ctx context.Context, userID string) (_ []fitindex.Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.history.read")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	cmd := s.redisClient.Get(ctx, historyKey(userID))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			// no history yet, valid new-user state
			return nil, nil
		}
		return nil, fmt.Errorf("get history: %w", err)
	}

	var snapshots []fitindex.Snapshot
	if err := json.Unmarshal([]byte(cmd.Val()), &snapshots); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}

	return snapshots, nil
}

func (s *RedisStore) Write(ctx context.Context, userID string, snapshots []fitindex.Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.history.write")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.Int("snapshots", len(snapshots)))

	historyJson, err := json.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	if err := s.redisClient.Set(ctx, historyKey(userID), historyJson, 0).Err(); err != nil {
		return fmt.Errorf("set history: %w", err)
	}

	return nil
}

func historyKey(userID string) string {
	return historyKeyPrefix + userID
}
