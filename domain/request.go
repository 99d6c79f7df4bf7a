package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestID = uuid.UUID

type RequestStatus int

const (
	StatusInFlight RequestStatus = iota
	StatusFulfilled
	StatusFailed
)

func (s RequestStatus) String() string {
	switch s {
	case StatusInFlight:
		return "in-flight"
	case StatusFulfilled:
		return "fulfilled"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// PendingRequest is the bookkeeping record for one in-flight call to the
// response backend. A request resolves to exactly one appended assistant
// Message or one terminal failure notice, never both, never zero.
type PendingRequest struct {
	ID              RequestID
	OriginMessageID MessageID
	Status          RequestStatus
	StartedAt       time.Time
}
