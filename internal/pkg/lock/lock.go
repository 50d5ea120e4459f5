// Package lock provides per-member locking so that scan processing for
// the same member is serialized within this process. The remote record
// remains a plain read-modify-write target: two separate point-of-service
// processes can still interleave, matching the store's semantics.
package lock

import "sync"

// memberMutex wraps a mutex with reference counting for reuse.
type memberMutex struct {
	mu       sync.Mutex
	refCount int
}

// MemberLock provides per-member-ID locking.
type MemberLock struct {
	locks sync.Map // map[string]*memberMutex
	pool  sync.Pool
}

// NewMemberLock creates a new MemberLock instance.
func NewMemberLock() *MemberLock {
	return &MemberLock{
		pool: sync.Pool{
			New: func() any {
				return &memberMutex{}
			},
		},
	}
}

// getLock retrieves or creates the mutex for the given member ID.
func (ml *MemberLock) getLock(memberID string) *memberMutex {
	if v, ok := ml.locks.Load(memberID); ok {
		return v.(*memberMutex)
	}

	newLock := ml.pool.Get().(*memberMutex)
	newLock.refCount = 0

	actual, loaded := ml.locks.LoadOrStore(memberID, newLock)
	if loaded {
		// Another goroutine created the lock first
		ml.pool.Put(newLock)
	}
	return actual.(*memberMutex)
}

// Lock acquires the lock for a member. Call before any operation that
// reads and rewrites the member's remote record.
func (ml *MemberLock) Lock(memberID string) {
	lock := ml.getLock(memberID)
	lock.mu.Lock()
	lock.refCount++
}

// Unlock releases the lock for a member.
func (ml *MemberLock) Unlock(memberID string) {
	if v, ok := ml.locks.Load(memberID); ok {
		lock := v.(*memberMutex)
		lock.refCount--
		lock.mu.Unlock()
	}
}

// TryLock attempts to acquire the lock without blocking.
func (ml *MemberLock) TryLock(memberID string) bool {
	lock := ml.getLock(memberID)
	if lock.mu.TryLock() {
		lock.refCount++
		return true
	}
	return false
}

// WithLock executes fn while holding the member's lock.
func (ml *MemberLock) WithLock(memberID string, fn func() error) error {
	ml.Lock(memberID)
	defer ml.Unlock(memberID)
	return fn()
}
