// Package mapper translates between the flat snake_case member record
// stored remotely and the canonical MemberProfile used everywhere else.
// It is the single place field-name translation occurs: repository row
// scans and realtime notification payloads both pass through here.
package mapper

import (
	"time"

	"donlouis-club-backend/internal/model"
)

// MemberRecord is the wire/database shape of a member row.
type MemberRecord struct {
	MemberID          string     `json:"member_id" db:"member_id"`
	FirstName         string     `json:"first_name" db:"first_name"`
	Phone             string     `json:"phone" db:"phone"`
	Points            int        `json:"points" db:"points"`
	VisitsInCycle     int        `json:"visits_in_cycle" db:"visits_in_cycle"`
	RewardsAvailable  int        `json:"rewards_available" db:"rewards_available"`
	IsFollowingSocial bool       `json:"is_following_social" db:"is_following_social"`
	LastVisitDate     *time.Time `json:"last_visit_date" db:"last_visit_date"`
}

// ToProfile converts a remote record into the canonical profile shape.
// A record only exists for registered members, so IsRegistered is always true.
func ToProfile(r *MemberRecord) *model.MemberProfile {
	if r == nil {
		return nil
	}
	return &model.MemberProfile{
		FirstName:         r.FirstName,
		Phone:             r.Phone,
		Points:            r.Points,
		VisitsInCycle:     r.VisitsInCycle,
		RewardsAvailable:  r.RewardsAvailable,
		IsRegistered:      true,
		MemberID:          r.MemberID,
		LastVisitDate:     r.LastVisitDate,
		IsFollowingSocial: r.IsFollowingSocial,
	}
}

// ToRecord converts a canonical profile into the remote record shape.
func ToRecord(p *model.MemberProfile) *MemberRecord {
	if p == nil {
		return nil
	}
	return &MemberRecord{
		MemberID:          p.MemberID,
		FirstName:         p.FirstName,
		Phone:             p.Phone,
		Points:            p.Points,
		VisitsInCycle:     p.VisitsInCycle,
		RewardsAvailable:  p.RewardsAvailable,
		IsFollowingSocial: p.IsFollowingSocial,
		LastVisitDate:     p.LastVisitDate,
	}
}
