package record_cache

import (
	"context"
	"time"

	"twitch_stream_watcher/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Namespaces the watcher persists between restarts.
const (
	UsersNamespace = "twitch:users"
	GamesNamespace = "twitch:games"
)

const (
	recordsSuffix    = ":records"
	lastUpdateSuffix = ":last-update"
)

type RecordCache struct {
	client *redis.Client
}

func NewRecordCache(addr, password string) *RecordCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	return &RecordCache{client: client}
}

func (rc *RecordCache) Ping(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// Records loads a namespace. A namespace that was never written reads as an
// empty map, not an error.
func (rc *RecordCache) Records(ctx context.Context, namespace string) (map[string]models.Record, error) {
	raw, err := rc.client.Get(ctx, namespace+recordsSuffix).Result()
	if err == redis.Nil {
		return map[string]models.Record{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "Records")
	}

	records := map[string]models.Record{}
	err = jsoniter.UnmarshalFromString(raw, &records)
	if err != nil {
		return nil, errors.Wrap(err, "Records")
	}

	return records, nil
}

// Put stores a namespace and its last update time in one round trip so a
// crash cannot leave a fresh timestamp over stale records.
func (rc *RecordCache) Put(ctx context.Context, namespace string, records map[string]models.Record, updatedAt time.Time) error {
	raw, err := jsoniter.MarshalToString(records)
	if err != nil {
		return errors.Wrap(err, "Put")
	}

	pipe := rc.client.Pipeline()
	pipe.Set(ctx, namespace+recordsSuffix, raw, 0)
	pipe.Set(ctx, namespace+lastUpdateSuffix, updatedAt.UTC().Format(time.RFC3339), 0)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "Put")
	}

	return nil
}

// LastUpdate reports when a namespace was last written. A namespace that was
// never written reads as the zero time.
func (rc *RecordCache) LastUpdate(ctx context.Context, namespace string) (time.Time, error) {
	raw, err := rc.client.Get(ctx, namespace+lastUpdateSuffix).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, errors.Wrap(err, "LastUpdate")
	}

	updatedAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "LastUpdate")
	}

	return updatedAt, nil
}

func (rc *RecordCache) Close() error {
	return rc.client.Close()
}
