package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"donlouis-club-backend/internal/model"
	"donlouis-club-backend/internal/repository"
	"donlouis-club-backend/internal/session"
	"donlouis-club-backend/internal/settings"
)

// SettingsService resolves the admin configuration against the remote
// record and keeps the session snapshot current. It also gates the two
// PIN-protected staff surfaces.
type SettingsService struct {
	settingsRepo SettingsStore
	sess         *session.Session
}

// NewSettingsService creates a new SettingsService instance.
func NewSettingsService(settingsRepo SettingsStore, sess *session.Session) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		sess:         sess,
	}
}

// Load fetches the remote configuration once per session and resolves it
// over the built-in defaults. A fresh install (no settings row) seeds
// the defaults remotely and continues; a transport failure keeps the
// session on whatever snapshot it already has. Either way the caller
// receives a complete configuration.
func (s *SettingsService) Load(ctx context.Context) model.AdminSettings {
	now := time.Now().UTC()
	defaults := settings.Defaults(now)

	raw, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			resolved, _ := settings.Resolve(nil, defaults, now)
			if upsertErr := s.settingsRepo.Upsert(ctx, resolved); upsertErr != nil {
				log.Warn().Err(upsertErr).Msg("Failed to seed default settings remotely")
			} else {
				log.Info().Msg("Fresh install: default settings written remotely")
			}
			s.sess.SetSettings(resolved)
			return resolved
		}

		log.Error().Err(err).Msg("Settings fetch failed, keeping current snapshot")
		return s.sess.Settings()
	}

	resolved, _ := settings.Resolve(raw, defaults, now)
	s.sess.SetSettings(resolved)
	return resolved
}

// Update applies an admin edit: the session snapshot changes instantly,
// the remote persist runs best-effort in the same call. A failed persist
// is logged only; the optimistic local state stays in place.
func (s *SettingsService) Update(ctx context.Context, newSettings model.AdminSettings) model.AdminSettings {
	s.sess.SetSettings(newSettings)

	if err := s.settingsRepo.Upsert(ctx, newSettings); err != nil {
		log.Warn().Err(err).Msg("Failed to save settings remotely, optimistic local state kept")
	}

	return newSettings
}

// VerifyCashierPIN checks a PIN against the configured cashier PIN.
func (s *SettingsService) VerifyCashierPIN(pin string) bool {
	return pin != "" && pin == s.sess.Settings().CashierPin
}

// VerifyAdminPIN checks a PIN against the fixed owner panel PIN.
func (s *SettingsService) VerifyAdminPIN(pin string) bool {
	return pin == settings.AdminPin
}
