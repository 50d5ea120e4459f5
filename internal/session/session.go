// Package session holds the application state for the signed-in member:
// the current profile and resolved settings snapshots, plus the event
// stream the presentation layer consumes for overlays.
//
// State is owned here instead of living as globals at the application
// root; readers get copies, writers replace whole snapshots.
package session

import (
	"sync"

	"donlouis-club-backend/internal/model"
)

// EventType tags events sent to the presentation layer.
type EventType string

const (
	// EventScanSuccess fires when the signed-in member's record was
	// updated by a scan, locally or out-of-band. The presentation layer
	// shows the celebration overlay and hides any inactivity prompt.
	EventScanSuccess EventType = "scan_success"
	// EventInactivityPrompt fires at most once per session when the
	// member has been away longer than the inactivity threshold.
	EventInactivityPrompt EventType = "inactivity_prompt"
)

// Event is one presentation-layer notification.
type Event struct {
	Type   EventType            `json:"type"`
	Member *model.MemberProfile `json:"member,omitempty"`
}

// Session is the state container for one running app session.
type Session struct {
	mu       sync.RWMutex
	profile  *model.MemberProfile
	settings model.AdminSettings

	events chan Event
}

// New creates an empty session carrying the given initial settings.
func New(initial model.AdminSettings) *Session {
	return &Session{
		settings: initial,
		events:   make(chan Event, 16),
	}
}

// Profile returns a copy of the signed-in member's profile, and whether
// a member is signed in at all.
func (s *Session) Profile() (model.MemberProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return model.MemberProfile{}, false
	}
	return *s.profile, true
}

// MemberID returns the signed-in member's identifier, or "" when no
// member is signed in.
func (s *Session) MemberID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return ""
	}
	return s.profile.MemberID
}

// SetProfile replaces the session profile snapshot.
func (s *Session) SetProfile(p *model.MemberProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *p
	s.profile = &copied
}

// Settings returns the current resolved settings snapshot.
func (s *Session) Settings() model.AdminSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the settings snapshot.
func (s *Session) SetSettings(settings model.AdminSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Publish queues an event for the presentation layer. Events are
// dropped when no consumer keeps up; overlays are cosmetic, not state.
func (s *Session) Publish(e Event) {
	select {
	case s.events <- e:
	default:
	}
}

// Events returns the presentation-layer event stream.
func (s *Session) Events() <-chan Event {
	return s.events
}
