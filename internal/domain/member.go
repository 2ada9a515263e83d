package domain

import "time"

// MemberStatus represents a member's standing in the committee.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "ACTIVE"
	MemberStatusInactive MemberStatus = "INACTIVE"
)

// Member is a committee (kameti) participant who can be linked to
// income transactions. Members are never deleted; Status exists for
// bookkeeping but no operation flips it today.
type Member struct {
	ID        string
	Name      string
	Email     string
	JoinDate  time.Time
	Status    MemberStatus
	CreatedAt time.Time
}
