// Package cache provides the local, client-side stores: a durable
// profile cache backed by Redis and an ephemeral per-session flag store.
//
// The profile cache is the source of truth before a network round trip
// completes and the fallback when the remote store is unreachable. It is
// overwritten by registration, scans of the signed-in member, profile
// edits and realtime reconciliation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"donlouis-club-backend/internal/model"
)

// ErrProfileNotCached signals the absence of a locally stored profile.
var ErrProfileNotCached = errors.New("profile not cached")

// ProfileCache stores the last-known member profile, JSON encoded,
// keyed by member ID. Entries never expire: the cached profile is the
// durable local copy, not a lease.
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a new ProfileCache instance.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

func (c *ProfileCache) key(memberID string) string {
	return fmt.Sprintf("member:profile:%s", memberID)
}

// Set stores the profile under its member ID.
func (c *ProfileCache) Set(ctx context.Context, profile *model.MemberProfile) error {
	b, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := c.client.Set(ctx, c.key(profile.MemberID), b, 0).Err(); err != nil {
		return fmt.Errorf("failed to cache profile: %w", err)
	}
	return nil
}

// Get returns the cached profile for a member ID.
// Returns ErrProfileNotCached when no profile has been stored.
func (c *ProfileCache) Get(ctx context.Context, memberID string) (*model.MemberProfile, error) {
	b, err := c.client.Get(ctx, c.key(memberID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrProfileNotCached
		}
		return nil, fmt.Errorf("failed to read cached profile: %w", err)
	}

	var profile model.MemberProfile
	if err := json.Unmarshal(b, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode cached profile: %w", err)
	}
	return &profile, nil
}

// Delete removes the cached profile. Only used when a session signs out.
func (c *ProfileCache) Delete(ctx context.Context, memberID string) error {
	if err := c.client.Del(ctx, c.key(memberID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached profile: %w", err)
	}
	return nil
}
