package suppression

import (
	"context"
	"time"
)

// Store persists alert acknowledgments and snoozes. It is always passed in
// explicitly, never held in a package-level singleton, so tests can inject an
// isolated store per case.
//
// Writes are atomic per key with last-writer-wins semantics; repeating an
// acknowledge or snooze simply overwrites the stored timestamp.
type Store interface {
	// View returns an immutable snapshot of all suppressions for one
	// computation pass.
	View(ctx context.Context) (View, error)

	// Acknowledge suppresses key permanently until cleared.
	Acknowledge(ctx context.Context, key string, at time.Time) error

	// ClearAcknowledgement removes a permanent suppression for key.
	ClearAcknowledgement(ctx context.Context, key string) error

	// Snooze suppresses key until the given instant.
	Snooze(ctx context.Context, key string, until time.Time) error
}
