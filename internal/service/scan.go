package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"donlouis-club-backend/internal/mapper"
	"donlouis-club-backend/internal/model"
	"donlouis-club-backend/internal/pkg/lock"
	"donlouis-club-backend/internal/repository"
	"donlouis-club-backend/internal/session"
)

// ScanService processes point-of-service scans. Unlike every other
// write path, a scan is pessimistic: the remote record, not the local
// cache, is authoritative for the increment, so the full round trip must
// complete before a result is returned.
type ScanService struct {
	memberRepo   MemberStore
	profileCache ProfileStore
	sess         *session.Session
	memberLock   *lock.MemberLock
}

// NewScanService creates a new ScanService instance.
func NewScanService(
	memberRepo MemberStore,
	profileCache ProfileStore,
	sess *session.Session,
	memberLock *lock.MemberLock,
) *ScanService {
	return &ScanService{
		memberRepo:   memberRepo,
		profileCache: profileCache,
		sess:         sess,
		memberLock:   memberLock,
	}
}

// ProcessScan applies one visit to the member's record: the visit
// counter advances, the fifth visit closes the cycle (counter back to
// zero, one reward granted), and every scan earns exactly one point.
//
// Failures surface as a typed result, never an error: "Member Not Found"
// for an unknown identifier, "Server Error" for transport problems. No
// automatic retry; the cashier re-scans.
//
// Scans for the same member are serialized within this process. The
// remote read-modify-write is still unguarded across processes: two
// registers scanning the same member simultaneously can read the same
// pre-state. That matches the record store's semantics, which offer no
// compare-and-swap.
func (s *ScanService) ProcessScan(ctx context.Context, memberID string) *model.ScanResult {
	s.memberLock.Lock(memberID)
	defer s.memberLock.Unlock(memberID)

	rec, err := s.memberRepo.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			log.Info().Str("member_id", memberID).Msg("Scan for unknown member")
			return &model.ScanResult{Success: false, FailureReason: model.FailureMemberNotFound}
		}
		log.Error().Err(err).Str("member_id", memberID).Msg("Scan fetch failed")
		return &model.ScanResult{Success: false, FailureReason: model.FailureServerError}
	}

	newVisits := rec.VisitsInCycle + 1
	finalVisits := newVisits
	rewards := rec.RewardsAvailable
	rewardUnlocked := newVisits >= model.CycleTarget
	if rewardUnlocked {
		rewards++
		finalVisits = 0
	}

	updated, err := s.memberRepo.ApplyVisit(ctx, memberID, rec.Points+1, finalVisits, rewards, time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Str("member_id", memberID).Msg("Scan write-back failed")
		return &model.ScanResult{Success: false, FailureReason: model.FailureServerError}
	}

	profile := mapper.ToProfile(updated)

	// A scan of the signed-in member updates the local copy immediately
	// instead of waiting for the reconciliation channel.
	if s.sess.MemberID() == memberID {
		if err := s.profileCache.Set(ctx, profile); err != nil {
			log.Error().Err(err).Str("member_id", memberID).Msg("Failed to cache scanned profile")
		}
		s.sess.SetProfile(profile)
		s.sess.Publish(session.Event{Type: session.EventScanSuccess, Member: profile})
	}

	log.Info().
		Str("member_id", memberID).
		Int("points", profile.Points).
		Int("visits_in_cycle", profile.VisitsInCycle).
		Bool("reward_unlocked", rewardUnlocked).
		Msg("Scan processed")

	return &model.ScanResult{
		Success:        true,
		Member:         profile,
		RewardUnlocked: rewardUnlocked,
	}
}
