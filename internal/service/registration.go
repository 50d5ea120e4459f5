// Package service provides business logic implementations.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"donlouis-club-backend/internal/mapper"
	"donlouis-club-backend/internal/model"
	"donlouis-club-backend/internal/pkg/memberid"
	"donlouis-club-backend/internal/session"
)

// Points granted at registration. Following the club's social account
// earns one extra point.
const (
	SignupPoints       = 1
	SignupPointsSocial = 2
)

// RegistrationService creates new member identities.
type RegistrationService struct {
	memberRepo   MemberStore
	profileCache ProfileStore
	sess         *session.Session
}

// NewRegistrationService creates a new RegistrationService instance.
func NewRegistrationService(
	memberRepo MemberStore,
	profileCache ProfileStore,
	sess *session.Session,
) *RegistrationService {
	return &RegistrationService{
		memberRepo:   memberRepo,
		profileCache: profileCache,
		sess:         sess,
	}
}

// Register creates a member profile with a fresh DL-XXXXXX identifier
// and seeds the first visit. firstName and phone are assumed non-empty;
// validating them is the caller's responsibility.
//
// Registration never fails: the remote insert is best-effort and the
// profile is committed locally regardless, so connectivity problems
// cannot keep a new member out of the app. A failed insert is retried
// only implicitly, through later reconciliation.
func (s *RegistrationService) Register(ctx context.Context, firstName, phone string, followedSocial bool) *model.MemberProfile {
	now := time.Now().UTC()
	points := SignupPoints
	if followedSocial {
		points = SignupPointsSocial
	}

	profile := &model.MemberProfile{
		FirstName:         firstName,
		Phone:             phone,
		Points:            points,
		VisitsInCycle:     1,
		RewardsAvailable:  0,
		IsRegistered:      true,
		MemberID:          memberid.New(),
		LastVisitDate:     &now,
		IsFollowingSocial: followedSocial,
	}

	if _, err := s.memberRepo.Insert(ctx, mapper.ToRecord(profile)); err != nil {
		log.Warn().Err(err).
			Str("member_id", profile.MemberID).
			Msg("Remote insert failed during registration, keeping local profile")
	}

	if err := s.profileCache.Set(ctx, profile); err != nil {
		log.Error().Err(err).
			Str("member_id", profile.MemberID).
			Msg("Failed to cache profile during registration")
	}
	s.sess.SetProfile(profile)

	log.Info().
		Str("member_id", profile.MemberID).
		Int("points", profile.Points).
		Msg("Member registered")

	return profile
}
