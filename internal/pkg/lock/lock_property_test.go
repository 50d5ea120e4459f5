// Property-based tests for concurrent visit-counter safety.
package lock

import (
	"sync"
	"testing"

	"pgregory.net/rapid"
)

// TestConcurrentScanSafetyProperty checks that concurrent visit
// increments on the same member, guarded by the member lock, produce the
// same counters as sequential execution.
func TestConcurrentScanSafetyProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		initialVisits := rapid.IntRange(0, 4).Draw(rt, "initialVisits")
		initialPoints := rapid.IntRange(0, 100).Draw(rt, "initialPoints")
		numScans := rapid.IntRange(2, 20).Draw(rt, "numScans")
		memberID := rapid.StringMatching(`DL-[A-Z0-9]{6}`).Draw(rt, "memberID")

		ml := NewMemberLock()

		visits := initialVisits
		points := initialPoints
		rewards := 0

		var wg sync.WaitGroup
		wg.Add(numScans)
		for i := 0; i < numScans; i++ {
			go func() {
				defer wg.Done()
				ml.Lock(memberID)
				defer ml.Unlock(memberID)
				// Read-modify-write of the visit cycle
				visits++
				if visits >= 5 {
					visits = 0
					rewards++
				}
				points++
			}()
		}
		wg.Wait()

		expectedPoints := initialPoints + numScans
		expectedRewards := (initialVisits + numScans) / 5
		expectedVisits := (initialVisits + numScans) % 5

		if points != expectedPoints {
			rt.Fatalf("points mismatch: expected %d, got %d", expectedPoints, points)
		}
		if rewards != expectedRewards {
			rt.Fatalf("rewards mismatch: expected %d, got %d", expectedRewards, rewards)
		}
		if visits != expectedVisits {
			rt.Fatalf("visits mismatch: expected %d, got %d", expectedVisits, visits)
		}
	})
}

// TestWithLockProperty checks WithLock serializes arbitrary operations
// across distinct member IDs independently.
func TestWithLockProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numMembers := rapid.IntRange(1, 5).Draw(rt, "numMembers")
		opsPerMember := rapid.IntRange(1, 20).Draw(rt, "opsPerMember")

		ml := NewMemberLock()
		counters := make([]int, numMembers)
		ids := make([]string, numMembers)
		for i := range ids {
			ids[i] = string(rune('A'+i)) + "-MEMBER"
		}

		var wg sync.WaitGroup
		for m := 0; m < numMembers; m++ {
			for op := 0; op < opsPerMember; op++ {
				wg.Add(1)
				go func(m int) {
					defer wg.Done()
					_ = ml.WithLock(ids[m], func() error {
						counters[m]++
						return nil
					})
				}(m)
			}
		}
		wg.Wait()

		for m := 0; m < numMembers; m++ {
			if counters[m] != opsPerMember {
				rt.Fatalf("member %d: expected %d ops, got %d", m, opsPerMember, counters[m])
			}
		}
	})
}

// TestTryLock verifies a held lock rejects TryLock until released.
func TestTryLock(t *testing.T) {
	ml := NewMemberLock()

	ml.Lock("DL-AAAAAA")
	if ml.TryLock("DL-AAAAAA") {
		t.Fatal("TryLock succeeded while lock was held")
	}
	ml.Unlock("DL-AAAAAA")

	if !ml.TryLock("DL-AAAAAA") {
		t.Fatal("TryLock failed on a free lock")
	}
	ml.Unlock("DL-AAAAAA")
}
