// Package realtime subscribes to member row updates pushed by the
// record store and folds them into local state. This is how a scan at
// the register reaches a signed-in member's device without polling.
package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"donlouis-club-backend/internal/mapper"
	"donlouis-club-backend/internal/repository"
)

// reconnectDelay is the pause before re-establishing a dropped
// listening connection.
const reconnectDelay = 3 * time.Second

// UpdateApplier consumes decoded member updates. Implemented by the
// profile service.
type UpdateApplier interface {
	ApplyRemoteUpdate(ctx context.Context, rec *mapper.MemberRecord)
}

// Reconciler holds one LISTEN connection against the record store and
// applies every member update it carries. Updates for members other
// than the signed-in one are filtered downstream; the subscription
// itself is channel-wide.
type Reconciler struct {
	pool     *pgxpool.Pool
	profiles UpdateApplier
}

// NewReconciler creates a new Reconciler instance.
func NewReconciler(pool *pgxpool.Pool, profiles UpdateApplier) *Reconciler {
	return &Reconciler{
		pool:     pool,
		profiles: profiles,
	}
}

// Run listens for member updates until the context is cancelled.
// A dropped connection is re-established after a short pause; updates
// published while disconnected are lost, which is acceptable because
// the next sign-in re-syncs the full record anyway.
func (r *Reconciler) Run(ctx context.Context) error {
	for {
		if err := r.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn().Err(err).Msg("Realtime subscription dropped, reconnecting")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (r *Reconciler) listen(ctx context.Context) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+repository.MemberUpdatesChannel); err != nil {
		return err
	}
	log.Info().Str("channel", repository.MemberUpdatesChannel).Msg("Realtime subscription established")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		r.handle(ctx, notification.Payload)
	}
}

// handle decodes one notification payload and applies it. A payload
// that does not decode is dropped with a log line; it must never take
// the subscription down.
func (r *Reconciler) handle(ctx context.Context, payload string) {
	var rec mapper.MemberRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		log.Error().Err(err).Msg("Failed to decode member update payload")
		return
	}
	if rec.MemberID == "" {
		log.Error().Msg("Member update payload missing member_id")
		return
	}

	r.profiles.ApplyRemoteUpdate(ctx, &rec)
}
