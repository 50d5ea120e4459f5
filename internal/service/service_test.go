package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"donlouis-club-backend/internal/cache"
	"donlouis-club-backend/internal/mapper"
	"donlouis-club-backend/internal/model"
	"donlouis-club-backend/internal/repository"
)

// fakeMemberStore is an in-memory MemberStore with switchable failures.
type fakeMemberStore struct {
	mu      sync.Mutex
	records map[string]*mapper.MemberRecord

	getErr    error
	insertErr error
	applyErr  error
	updateErr error

	inserts int
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{records: make(map[string]*mapper.MemberRecord)}
}

func (f *fakeMemberStore) Insert(_ context.Context, rec *mapper.MemberRecord) (*mapper.MemberRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	copied := *rec
	f.records[rec.MemberID] = &copied
	f.inserts++
	return &copied, nil
}

func (f *fakeMemberStore) GetByMemberID(_ context.Context, memberID string) (*mapper.MemberRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.records[memberID]
	if !ok {
		return nil, repository.ErrMemberNotFound
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeMemberStore) ApplyVisit(_ context.Context, memberID string, points, visitsInCycle, rewardsAvailable int, lastVisit time.Time) (*mapper.MemberRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	rec, ok := f.records[memberID]
	if !ok {
		return nil, repository.ErrMemberNotFound
	}
	rec.Points = points
	rec.VisitsInCycle = visitsInCycle
	rec.RewardsAvailable = rewardsAvailable
	rec.LastVisitDate = &lastVisit
	copied := *rec
	return &copied, nil
}

func (f *fakeMemberStore) UpdateProfile(_ context.Context, rec *mapper.MemberRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.records[rec.MemberID]; !ok {
		return repository.ErrMemberNotFound
	}
	copied := *rec
	f.records[rec.MemberID] = &copied
	return nil
}

func (f *fakeMemberStore) record(memberID string) *mapper.MemberRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[memberID]
	if !ok {
		return nil
	}
	copied := *rec
	return &copied
}

// fakeProfileStore is an in-memory ProfileStore.
type fakeProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*model.MemberProfile

	getErr error
	setErr error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[string]*model.MemberProfile)}
}

func (f *fakeProfileStore) Get(_ context.Context, memberID string) (*model.MemberProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[memberID]
	if !ok {
		return nil, cache.ErrProfileNotCached
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfileStore) Set(_ context.Context, profile *model.MemberProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	copied := *profile
	f.profiles[profile.MemberID] = &copied
	return nil
}

func (f *fakeProfileStore) cached(memberID string) *model.MemberProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[memberID]
	if !ok {
		return nil
	}
	copied := *p
	return &copied
}

// fakeSettingsStore is an in-memory SettingsStore.
type fakeSettingsStore struct {
	mu  sync.Mutex
	raw json.RawMessage

	getErr    error
	upsertErr error

	upserts int
}

func (f *fakeSettingsStore) Get(_ context.Context) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.raw == nil {
		return nil, repository.ErrSettingsNotFound
	}
	return f.raw, nil
}

func (f *fakeSettingsStore) Upsert(_ context.Context, config any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	data, err := json.Marshal(config)
	if err != nil {
		return err
	}
	f.raw = data
	f.upserts++
	return nil
}

func (f *fakeSettingsStore) Update(ctx context.Context, config any) error {
	return f.Upsert(ctx, config)
}
