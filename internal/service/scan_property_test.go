package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"donlouis-club-backend/internal/mapper"
	"donlouis-club-backend/internal/model"
	"donlouis-club-backend/internal/pkg/lock"
	"donlouis-club-backend/internal/session"
	"donlouis-club-backend/internal/settings"
)

// TestScanCycleProperty drives a member through a random number of scans
// and checks the cycle arithmetic in closed form: every scan earns one
// point, every fifth visit converts into exactly one reward, and the
// visit counter never reaches the cycle target.
func TestScanCycleProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		initialPoints := rapid.IntRange(0, 500).Draw(rt, "initialPoints")
		initialVisits := rapid.IntRange(0, model.CycleTarget-1).Draw(rt, "initialVisits")
		initialRewards := rapid.IntRange(0, 50).Draw(rt, "initialRewards")
		scans := rapid.IntRange(1, 60).Draw(rt, "scans")

		members := newFakeMemberStore()
		sess := session.New(settings.Defaults(time.Now().UTC()))
		svc := NewScanService(members, newFakeProfileStore(), sess, lock.NewMemberLock())

		_, err := members.Insert(context.Background(), &mapper.MemberRecord{
			MemberID:         "DL-PROP01",
			FirstName:        "Test",
			Points:           initialPoints,
			VisitsInCycle:    initialVisits,
			RewardsAvailable: initialRewards,
		})
		require.NoError(rt, err)

		unlocked := 0
		for i := 0; i < scans; i++ {
			result := svc.ProcessScan(context.Background(), "DL-PROP01")
			require.True(rt, result.Success)
			require.Less(rt, result.Member.VisitsInCycle, model.CycleTarget)
			if result.RewardUnlocked {
				unlocked++
				require.Equal(rt, 0, result.Member.VisitsInCycle)
			}
		}

		rec := members.record("DL-PROP01")
		require.Equal(rt, initialPoints+scans, rec.Points)
		require.Equal(rt, (initialVisits+scans)%model.CycleTarget, rec.VisitsInCycle)
		require.Equal(rt, initialRewards+(initialVisits+scans)/model.CycleTarget, rec.RewardsAvailable)
		require.Equal(rt, (initialVisits+scans)/model.CycleTarget, unlocked)
	})
}

// TestScanConcurrencyProperty runs concurrent scans for the same member
// and checks that the per-member lock keeps the in-process sequence
// loss-free.
func TestScanConcurrencyProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scans := rapid.IntRange(2, 25).Draw(rt, "scans")

		members := newFakeMemberStore()
		sess := session.New(settings.Defaults(time.Now().UTC()))
		svc := NewScanService(members, newFakeProfileStore(), sess, lock.NewMemberLock())

		_, err := members.Insert(context.Background(), &mapper.MemberRecord{
			MemberID:  "DL-PROP02",
			FirstName: "Test",
		})
		require.NoError(rt, err)

		done := make(chan struct{})
		for i := 0; i < scans; i++ {
			go func() {
				defer func() { done <- struct{}{} }()
				svc.ProcessScan(context.Background(), "DL-PROP02")
			}()
		}
		for i := 0; i < scans; i++ {
			<-done
		}

		rec := members.record("DL-PROP02")
		require.Equal(rt, scans, rec.Points)
		require.Equal(rt, scans%model.CycleTarget, rec.VisitsInCycle)
		require.Equal(rt, scans/model.CycleTarget, rec.RewardsAvailable)
	})
}
