package service

import (
	"context"
	"encoding/json"
	"time"

	"donlouis-club-backend/internal/mapper"
	"donlouis-club-backend/internal/model"
)

// MemberStore is the slice of the member repository the services need.
type MemberStore interface {
	Insert(ctx context.Context, rec *mapper.MemberRecord) (*mapper.MemberRecord, error)
	GetByMemberID(ctx context.Context, memberID string) (*mapper.MemberRecord, error)
	ApplyVisit(ctx context.Context, memberID string, points, visitsInCycle, rewardsAvailable int, lastVisit time.Time) (*mapper.MemberRecord, error)
	UpdateProfile(ctx context.Context, rec *mapper.MemberRecord) error
}

// SettingsStore is the remote configuration record access.
type SettingsStore interface {
	Get(ctx context.Context) (json.RawMessage, error)
	Upsert(ctx context.Context, config any) error
	Update(ctx context.Context, config any) error
}

// ProfileStore is the durable local profile cache.
type ProfileStore interface {
	Get(ctx context.Context, memberID string) (*model.MemberProfile, error)
	Set(ctx context.Context, profile *model.MemberProfile) error
}
