package models

import (
	"slices"
	"time"
)

// RequestStatus is the lifecycle state of a join request. The only legal
// transitions are pending→approved and pending→rejected.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is allowed.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusRejected)
}

// PendingRequest is a join request awaiting majority approval. Its amount is
// held in the requester's wallet for as long as the request is pending.
type PendingRequest struct {
	ID             string
	ContentID      string
	RequesterID    string
	RequesterLabel string
	Amount         int64
	CreatedAt      time.Time
	Approvals      []string
	Status         RequestStatus
}

func (r *PendingRequest) HasApproved(userID string) bool {
	return slices.Contains(r.Approvals, userID)
}

// Older orders requests by creation time with the id as tie-break.
func (r *PendingRequest) Older(other *PendingRequest) bool {
	if !r.CreatedAt.Equal(other.CreatedAt) {
		return r.CreatedAt.Before(other.CreatedAt)
	}
	return r.ID < other.ID
}
