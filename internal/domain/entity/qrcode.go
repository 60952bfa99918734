package entity

import (
	"time"

	"github.com/google/uuid"
)

// CodeStatus is the lifecycle state of a printed code.
type CodeStatus string

const (
	// CodeStatusUnused is the initial state of an issued code.
	CodeStatusUnused CodeStatus = "unused"
	// CodeStatusLinked means an active emergency profile is attached.
	CodeStatusLinked CodeStatus = "linked"
	// CodeStatusSold is terminal and only arrives through seeded or imported data.
	CodeStatusSold CodeStatus = "sold"
)

// String returns the string representation of the status.
func (s CodeStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s CodeStatus) IsValid() bool {
	switch s {
	case CodeStatusUnused, CodeStatusLinked, CodeStatusSold:
		return true
	default:
		return false
	}
}

// QRCode is a physical token. Code is the opaque value printed on it.
type QRCode struct {
	ID              uuid.UUID
	Code            string
	Status          CodeStatus
	LinkedUserID    *uuid.UUID // Set when a profile is linked.
	EmergencyInfoID *uuid.UUID // Set when a profile is linked.
	ScansCount      int64
	CreatedAt       time.Time
}

// CanLinkTo reports whether userID may attach a profile to this code.
// Sold codes never move; linked codes only accept their owner.
func (q *QRCode) CanLinkTo(userID uuid.UUID) bool {
	switch q.Status {
	case CodeStatusUnused:
		return true
	case CodeStatusLinked:
		return q.LinkedUserID == nil || *q.LinkedUserID == userID
	default:
		return false
	}
}

// Link moves the code to linked for the given owner and profile.
func (q *QRCode) Link(userID, profileID uuid.UUID) {
	q.Status = CodeStatusLinked
	q.LinkedUserID = &userID
	q.EmergencyInfoID = &profileID
}
