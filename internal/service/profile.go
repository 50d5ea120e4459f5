package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"donlouis-club-backend/internal/cache"
	"donlouis-club-backend/internal/mapper"
	"donlouis-club-backend/internal/model"
	"donlouis-club-backend/internal/session"
)

// ProfileService manages the signed-in member's local profile: loading
// it from the cache, re-syncing it from the remote record, applying
// edits, and folding in updates pushed by the reconciliation channel.
type ProfileService struct {
	memberRepo   MemberStore
	profileCache ProfileStore
	sessionStore *cache.SessionStore
	sess         *session.Session
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(
	memberRepo MemberStore,
	profileCache ProfileStore,
	sessionStore *cache.SessionStore,
	sess *session.Session,
) *ProfileService {
	return &ProfileService{
		memberRepo:   memberRepo,
		profileCache: profileCache,
		sessionStore: sessionStore,
		sess:         sess,
	}
}

// Load returns the locally cached profile for a member.
// Returns cache.ErrProfileNotCached when the member never signed in here.
func (s *ProfileService) Load(ctx context.Context, memberID string) (*model.MemberProfile, error) {
	return s.profileCache.Get(ctx, memberID)
}

// SignIn restores a session from the local cache and then re-syncs the
// profile from the remote record, which may have changed while the
// device was idle. The remote sync is best-effort: an unreachable store
// leaves the cached copy in charge.
func (s *ProfileService) SignIn(ctx context.Context, memberID string) (*model.MemberProfile, error) {
	profile, err := s.profileCache.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	s.sess.SetProfile(profile)

	if synced := s.SyncFromRemote(ctx, memberID); synced != nil {
		profile = synced
	}

	return profile, nil
}

// SyncFromRemote pulls the remote record and overwrites local state with
// it. Returns nil when the remote store is unavailable or has no record.
func (s *ProfileService) SyncFromRemote(ctx context.Context, memberID string) *model.MemberProfile {
	rec, err := s.memberRepo.GetByMemberID(ctx, memberID)
	if err != nil {
		log.Warn().Err(err).Str("member_id", memberID).Msg("Profile sync from remote failed")
		return nil
	}

	profile := mapper.ToProfile(rec)
	if err := s.profileCache.Set(ctx, profile); err != nil {
		log.Error().Err(err).Str("member_id", memberID).Msg("Failed to cache synced profile")
	}
	s.sess.SetProfile(profile)
	return profile
}

// Update applies an explicit profile edit: local state first, remote
// best-effort. A failed remote write is logged and silently absorbed;
// the reconciliation channel is the implicit retry path.
func (s *ProfileService) Update(ctx context.Context, profile *model.MemberProfile) *model.MemberProfile {
	s.sess.SetProfile(profile)
	if err := s.profileCache.Set(ctx, profile); err != nil {
		log.Error().Err(err).Str("member_id", profile.MemberID).Msg("Failed to cache edited profile")
	}

	if err := s.memberRepo.UpdateProfile(ctx, mapper.ToRecord(profile)); err != nil {
		log.Warn().Err(err).Str("member_id", profile.MemberID).Msg("Remote profile update failed, local copy kept")
	}

	return profile
}

// ApplyRemoteUpdate folds a record pushed by the reconciliation channel
// into local state. The pushed row always wins: no merge, no conflict
// detection. When it belongs to the signed-in member, the scan-success
// signal fires and any pending inactivity prompt is suppressed, since a
// fresh visit just occurred.
func (s *ProfileService) ApplyRemoteUpdate(ctx context.Context, rec *mapper.MemberRecord) {
	profile := mapper.ToProfile(rec)

	if s.sess.MemberID() != profile.MemberID {
		return
	}

	if err := s.profileCache.Set(ctx, profile); err != nil {
		log.Error().Err(err).Str("member_id", profile.MemberID).Msg("Failed to cache reconciled profile")
	}
	s.sess.SetProfile(profile)
	s.sessionStore.MarkInactivitySeen(profile.MemberID)
	s.sess.Publish(session.Event{Type: session.EventScanSuccess, Member: profile})

	log.Debug().
		Str("member_id", profile.MemberID).
		Int("points", profile.Points).
		Msg("Profile reconciled from remote update")
}

// CheckInactivity offers the win-back prompt when the member's last
// visit is older than the threshold. At most one prompt per session;
// the seen-flag lives in process memory and resets on restart.
func (s *ProfileService) CheckInactivity(now time.Time) bool {
	profile, ok := s.sess.Profile()
	if !ok || profile.LastVisitDate == nil {
		return false
	}
	if now.Sub(*profile.LastVisitDate) <= model.InactivityThreshold {
		return false
	}
	if s.sessionStore.InactivitySeen(profile.MemberID) {
		return false
	}

	s.sessionStore.MarkInactivitySeen(profile.MemberID)
	s.sess.Publish(session.Event{Type: session.EventInactivityPrompt, Member: &profile})
	return true
}
