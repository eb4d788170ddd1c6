package markers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/zsiec/tick/pkg/tick"
)

const backendRedis = "redis"

// RedisStore keeps each timeline in a Redis hash mapping marker names to
// decimal tick positions. Update times live in a companion hash under the
// same key with an ":updated" suffix.
type RedisStore struct {
	client *redis.Client
	logger *logrus.Logger
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store. A positive ttl is refreshed
// on every Put and expires an idle timeline as a whole.
func NewRedisStore(client *redis.Client, logger *logrus.Logger, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "tick:markers"
	}
	return &RedisStore{
		client: client,
		logger: logger,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisStore) positionsKey(timeline string) string {
	return r.prefix + ":" + timeline
}

func (r *RedisStore) updatedKey(timeline string) string {
	return r.prefix + ":" + timeline + ":updated"
}

// Put creates or replaces a marker.
func (r *RedisStore) Put(ctx context.Context, m Marker) (err error) {
	defer observe(backendRedis, "put", time.Now(), &err)

	if err := validateKey(m.Timeline, m.Name); err != nil {
		return err
	}

	pos := strconv.FormatInt(m.Position.Raw(), 10)
	now := time.Now().UTC()
	posKey, updKey := r.positionsKey(m.Timeline), r.updatedKey(m.Timeline)

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, posKey, m.Name, pos)
		pipe.HSet(ctx, updKey, m.Name, now.Format(time.RFC3339Nano))
		if r.ttl > 0 {
			pipe.Expire(ctx, posKey, r.ttl)
			pipe.Expire(ctx, updKey, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to put marker: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"timeline": m.Timeline,
		"marker":   m.Name,
		"position": m.Position.Raw(),
	}).Debug("Marker stored")

	return nil
}

// Get retrieves a single marker.
func (r *RedisStore) Get(ctx context.Context, timeline, name string) (_ *Marker, err error) {
	defer observe(backendRedis, "get", time.Now(), &err)

	if err := validateKey(timeline, name); err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	posCmd := pipe.HGet(ctx, r.positionsKey(timeline), name)
	updCmd := pipe.HGet(ctx, r.updatedKey(timeline), name)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get marker: %w", err)
	}

	raw, err := posCmd.Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s/%s: %w", timeline, name, ErrMarkerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get marker: %w", err)
	}

	return r.decode(timeline, name, raw, updCmd.Val())
}

// List returns every marker on a timeline.
func (r *RedisStore) List(ctx context.Context, timeline string) (_ []*Marker, err error) {
	defer observe(backendRedis, "list", time.Now(), &err)

	if err := ValidateName("timeline", timeline); err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	posCmd := pipe.HGetAll(ctx, r.positionsKey(timeline))
	updCmd := pipe.HGetAll(ctx, r.updatedKey(timeline))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to list markers: %w", err)
	}

	positions, updated := posCmd.Val(), updCmd.Val()
	out := make([]*Marker, 0, len(positions))
	for name, raw := range positions {
		m, err := r.decode(timeline, name, raw, updated[name])
		if err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"timeline": timeline,
				"marker":   name,
			}).Warn("Skipping undecodable marker")
			continue
		}
		out = append(out, m)
	}

	sortMarkers(out)
	return out, nil
}

// Delete removes a marker.
func (r *RedisStore) Delete(ctx context.Context, timeline, name string) (err error) {
	defer observe(backendRedis, "delete", time.Now(), &err)

	if err := validateKey(timeline, name); err != nil {
		return err
	}

	var delCmd *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		delCmd = pipe.HDel(ctx, r.positionsKey(timeline), name)
		pipe.HDel(ctx, r.updatedKey(timeline), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete marker: %w", err)
	}
	if delCmd.Val() == 0 {
		return fmt.Errorf("%s/%s: %w", timeline, name, ErrMarkerNotFound)
	}

	r.logger.WithFields(logrus.Fields{
		"timeline": timeline,
		"marker":   name,
	}).Debug("Marker deleted")

	return nil
}

// Close closes the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) decode(timeline, name, raw, updated string) (*Marker, error) {
	pos, err := tick.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("marker %s/%s: %w", timeline, name, err)
	}
	m := &Marker{Timeline: timeline, Name: name, Position: pos}
	if updated != "" {
		if ts, err := time.Parse(time.RFC3339Nano, updated); err == nil {
			m.UpdatedAt = ts
		}
	}
	return m, nil
}
