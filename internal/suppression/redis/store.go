package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"medflow-insights/internal/suppression"
	pkgLog "medflow-insights/pkg/log"
)

// Hash keys holding the two suppression maps. Field = alert key,
// value = epoch milliseconds.
const (
	ackHashKey    = "insights:alerts:ack"
	snoozeHashKey = "insights:alerts:snooze"
)

// Store persists suppressions in two Redis hashes so they survive restarts
// and are shared across replicas.
type Store struct {
	rdb *redis.Client
	l   pkgLog.Logger
}

// New creates a Redis-backed suppression store.
func New(rdb *redis.Client, l pkgLog.Logger) *Store {
	return &Store{rdb: rdb, l: l}
}

// View reads both hashes. A read failure or an unparseable value degrades to
// "no suppression" instead of failing the computation pass.
func (s *Store) View(ctx context.Context) (suppression.View, error) {
	v := suppression.EmptyView()

	ack, err := s.rdb.HGetAll(ctx, ackHashKey).Result()
	if err != nil {
		s.l.Warnf(ctx, "suppression: reading %s failed, degrading to empty view: %v", ackHashKey, err)
		return suppression.EmptyView(), nil
	}

	snooze, err := s.rdb.HGetAll(ctx, snoozeHashKey).Result()
	if err != nil {
		s.l.Warnf(ctx, "suppression: reading %s failed, degrading to empty view: %v", snoozeHashKey, err)
		return suppression.EmptyView(), nil
	}

	s.fillMap(ctx, ack, v.Acknowledged)
	s.fillMap(ctx, snooze, v.SnoozedUntil)
	return v, nil
}

// fillMap decodes raw hash entries into dst, skipping anything unparseable.
func (s *Store) fillMap(ctx context.Context, raw map[string]string, dst map[string]time.Time) {
	for key, value := range raw {
		at, ok := s.parseMillis(ctx, key, value)
		if !ok {
			continue
		}
		dst[key] = at
	}
}

// Acknowledge suppresses key permanently until cleared.
func (s *Store) Acknowledge(ctx context.Context, key string, at time.Time) error {
	if err := s.rdb.HSet(ctx, ackHashKey, key, at.UnixMilli()).Err(); err != nil {
		return fmt.Errorf("acknowledge %q: %w", key, err)
	}
	return nil
}

// ClearAcknowledgement removes a permanent suppression for key.
func (s *Store) ClearAcknowledgement(ctx context.Context, key string) error {
	if err := s.rdb.HDel(ctx, ackHashKey, key).Err(); err != nil {
		return fmt.Errorf("clear acknowledgement %q: %w", key, err)
	}
	return nil
}

// Snooze suppresses key until the given instant.
func (s *Store) Snooze(ctx context.Context, key string, until time.Time) error {
	if err := s.rdb.HSet(ctx, snoozeHashKey, key, until.UnixMilli()).Err(); err != nil {
		return fmt.Errorf("snooze %q: %w", key, err)
	}
	return nil
}

func (s *Store) parseMillis(ctx context.Context, key, raw string) (time.Time, bool) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.l.Warnf(ctx, "suppression: corrupt entry %q=%q skipped: %v", key, raw, err)
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}
