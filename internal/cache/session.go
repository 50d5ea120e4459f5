package cache

import "sync"

// SessionStore holds per-session flags that must not survive a process
// restart, such as whether the inactivity prompt was already shown.
// Process memory is the point: a restart starts a fresh session.
type SessionStore struct {
	flags sync.Map // map[string]struct{}
}

// NewSessionStore creates a new SessionStore instance.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

const inactivitySeenPrefix = "inactivity_seen:"

// MarkInactivitySeen records that the member saw the inactivity prompt
// this session.
func (s *SessionStore) MarkInactivitySeen(memberID string) {
	s.flags.Store(inactivitySeenPrefix+memberID, struct{}{})
}

// InactivitySeen reports whether the prompt was already shown this session.
func (s *SessionStore) InactivitySeen(memberID string) bool {
	_, ok := s.flags.Load(inactivitySeenPrefix + memberID)
	return ok
}
