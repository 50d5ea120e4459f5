// Package repository provides data access against the remote record store.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"donlouis-club-backend/internal/mapper"
)

// Common errors for repository operations.
var (
	ErrMemberNotFound = errors.New("member not found")
)

// MemberRepository handles member record persistence.
type MemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository instance.
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

func scanMember(row pgx.Row) (*mapper.MemberRecord, error) {
	var rec mapper.MemberRecord
	err := row.Scan(
		&rec.MemberID,
		&rec.FirstName,
		&rec.Phone,
		&rec.Points,
		&rec.VisitsInCycle,
		&rec.RewardsAvailable,
		&rec.IsFollowingSocial,
		&rec.LastVisitDate,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert creates a new member record.
// The member_id primary key is the only uniqueness backstop for the
// randomly generated identifier.
func (r *MemberRepository) Insert(ctx context.Context, rec *mapper.MemberRecord) (*mapper.MemberRecord, error) {
	const query = `
		INSERT INTO members (member_id, first_name, phone, points, visits_in_cycle, rewards_available, is_following_social, last_visit_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING member_id, first_name, phone, points, visits_in_cycle, rewards_available, is_following_social, last_visit_date
	`

	created, err := scanMember(r.pool.QueryRow(ctx, query,
		rec.MemberID,
		rec.FirstName,
		rec.Phone,
		rec.Points,
		rec.VisitsInCycle,
		rec.RewardsAvailable,
		rec.IsFollowingSocial,
		rec.LastVisitDate,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert member: %w", err)
	}

	return created, nil
}

// GetByMemberID retrieves a member record by its identifier.
// Returns ErrMemberNotFound if the member does not exist.
func (r *MemberRepository) GetByMemberID(ctx context.Context, memberID string) (*mapper.MemberRecord, error) {
	const query = `
		SELECT member_id, first_name, phone, points, visits_in_cycle, rewards_available, is_following_social, last_visit_date
		FROM members
		WHERE member_id = $1
	`

	rec, err := scanMember(r.pool.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return rec, nil
}

// ApplyVisit writes the post-scan counters back to the member record and
// returns the stored row. The values are absolute, not deltas: the scan
// processor computes them from the row it previously read, so this stays
// a plain read-modify-write against the store.
func (r *MemberRepository) ApplyVisit(ctx context.Context, memberID string, points, visitsInCycle, rewardsAvailable int, lastVisit time.Time) (*mapper.MemberRecord, error) {
	const query = `
		UPDATE members
		SET points = $2, visits_in_cycle = $3, rewards_available = $4, last_visit_date = $5, updated_at = NOW()
		WHERE member_id = $1
		RETURNING member_id, first_name, phone, points, visits_in_cycle, rewards_available, is_following_social, last_visit_date
	`

	rec, err := scanMember(r.pool.QueryRow(ctx, query, memberID, points, visitsInCycle, rewardsAvailable, lastVisit))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to apply visit: %w", err)
	}

	return rec, nil
}

// UpdateProfile persists the mutable profile fields of an existing
// member. Identity fields (member_id, first_name, phone) are written at
// registration and changed only through explicit profile edits, which
// also land here.
func (r *MemberRepository) UpdateProfile(ctx context.Context, rec *mapper.MemberRecord) error {
	const query = `
		UPDATE members
		SET first_name = $2, phone = $3, points = $4, visits_in_cycle = $5, rewards_available = $6, is_following_social = $7, last_visit_date = $8, updated_at = NOW()
		WHERE member_id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		rec.MemberID,
		rec.FirstName,
		rec.Phone,
		rec.Points,
		rec.VisitsInCycle,
		rec.RewardsAvailable,
		rec.IsFollowingSocial,
		rec.LastVisitDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// Exists checks if a member with the given identifier exists.
func (r *MemberRepository) Exists(ctx context.Context, memberID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM members WHERE member_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, memberID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check member existence: %w", err)
	}

	return exists, nil
}
