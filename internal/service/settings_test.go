package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donlouis-club-backend/internal/session"
	"donlouis-club-backend/internal/settings"
)

func newSettingsFixture() (*SettingsService, *fakeSettingsStore, *session.Session) {
	store := &fakeSettingsStore{}
	sess := session.New(settings.Defaults(time.Now().UTC()))
	return NewSettingsService(store, sess), store, sess
}

func TestSettingsService_Load_FreshInstallSeedsDefaults(t *testing.T) {
	svc, store, sess := newSettingsFixture()

	resolved := svc.Load(context.Background())

	assert.Equal(t, settings.DefaultCashierPin, resolved.CashierPin)
	assert.NotEmpty(t, resolved.MenuItems)
	assert.NotEmpty(t, resolved.Offers)

	// The defaults were written back so the next client finds a record.
	assert.Equal(t, 1, store.upserts)
	assert.Equal(t, resolved.CashierPin, sess.Settings().CashierPin)
}

func TestSettingsService_Load_RemoteOverridesMergeOverDefaults(t *testing.T) {
	svc, store, sess := newSettingsFixture()
	store.raw = json.RawMessage(`{"cashierPin":"2468","brand":{"primaryColor":"#112233"}}`)

	resolved := svc.Load(context.Background())

	assert.Equal(t, "2468", resolved.CashierPin)
	assert.Equal(t, "#112233", resolved.Brand.PrimaryColor)

	// Fields the record omits keep their defaults.
	defaults := settings.Defaults(time.Now().UTC())
	assert.Equal(t, defaults.Brand.AccentColor, resolved.Brand.AccentColor)
	assert.Equal(t, defaults.BestMenuItemID, resolved.BestMenuItemID)
	assert.NotEmpty(t, resolved.MenuItems)

	assert.Equal(t, "2468", sess.Settings().CashierPin)
}

func TestSettingsService_Load_TransportFailureKeepsSnapshot(t *testing.T) {
	svc, store, sess := newSettingsFixture()

	current := sess.Settings()
	current.CashierPin = "4242"
	sess.SetSettings(current)
	store.getErr = errors.New("connection refused")

	resolved := svc.Load(context.Background())

	assert.Equal(t, "4242", resolved.CashierPin)
	assert.Equal(t, 0, store.upserts)
}

func TestSettingsService_Update_OptimisticOnRemoteFailure(t *testing.T) {
	svc, store, sess := newSettingsFixture()
	store.upsertErr = errors.New("connection reset")

	edited := sess.Settings()
	edited.CashierPin = "1357"
	result := svc.Update(context.Background(), edited)

	assert.Equal(t, "1357", result.CashierPin)
	assert.Equal(t, "1357", sess.Settings().CashierPin)
}

func TestSettingsService_Update_Persists(t *testing.T) {
	svc, store, sess := newSettingsFixture()

	edited := sess.Settings()
	edited.Content.WelcomeHeadline = "Welcome back"
	svc.Update(context.Background(), edited)

	require.Equal(t, 1, store.upserts)
	assert.Contains(t, string(store.raw), "Welcome back")
}

func TestSettingsService_VerifyCashierPIN(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		pin        string
		want       bool
	}{
		{name: "correct pin", configured: "1977", pin: "1977", want: true},
		{name: "wrong pin", configured: "1977", pin: "0000", want: false},
		{name: "empty pin", configured: "1977", pin: "", want: false},
		{name: "empty pin with empty configured pin", configured: "", pin: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, sess := newSettingsFixture()
			current := sess.Settings()
			current.CashierPin = tt.configured
			sess.SetSettings(current)

			assert.Equal(t, tt.want, svc.VerifyCashierPIN(tt.pin))
		})
	}
}

func TestSettingsService_VerifyAdminPIN(t *testing.T) {
	svc, _, _ := newSettingsFixture()

	assert.True(t, svc.VerifyAdminPIN(settings.AdminPin))
	assert.False(t, svc.VerifyAdminPIN("0000"))
	assert.False(t, svc.VerifyAdminPIN(""))
}
