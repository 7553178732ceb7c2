package models

import (
	"time"

	"github.com/dmitrijs2005/cofund/internal/integrity"
)

// ChainOutcome tells what produced a chain entry.
type ChainOutcome string

const (
	OutcomeFounded  ChainOutcome = "founded"
	OutcomeApproved ChainOutcome = "approved"
	OutcomeRejected ChainOutcome = "rejected"
)

func (o ChainOutcome) Valid() bool {
	switch o {
	case OutcomeFounded, OutcomeApproved, OutcomeRejected:
		return true
	}
	return false
}

// StakeSnapshot is a stake as recorded inside a chain entry.
type StakeSnapshot struct {
	StakeID     string `json:"stakeId"`
	HolderID    string `json:"holderId"`
	HolderLabel string `json:"holderLabel"`
	Amount      int64  `json:"amount"`
}

// DividendDelta is one stake's share of a joining amount.
type DividendDelta struct {
	StakeID  string `json:"stakeId"`
	HolderID string `json:"holderId"`
	Amount   int64  `json:"amount"`
}

// ChainEntry is one append-only record of a content item's investment
// history. For founded and approved outcomes it is also the settlement log:
// Stakes is the post-settlement snapshot and JoinerStakeID names the stake
// the settlement admits.
type ChainEntry struct {
	Seq             int64
	ContentID       string
	PrevFingerprint string
	NewFingerprint  string
	Outcome         ChainOutcome
	RequestID       string
	Timestamp       time.Time
	ChainPayload
}

// ChainPayload holds the entry fields stored as a single JSON document.
type ChainPayload struct {
	Stakes        []StakeSnapshot `json:"stakes"`
	Dividends     []DividendDelta `json:"dividends,omitempty"`
	DividendDust  int64           `json:"dividendDust,omitempty"`
	Approvals     []string        `json:"approvals,omitempty"`
	ApprovedBy    string          `json:"approvedBy,omitempty"`
	RejectedBy    string          `json:"rejectedBy,omitempty"`
	JoinerStakeID string          `json:"joinerStakeId,omitempty"`
	JoinerAmount  int64           `json:"joinerAmount,omitempty"`
}

// Joiner returns the snapshot of the stake admitted by this entry.
func (e *ChainEntry) Joiner() (StakeSnapshot, bool) {
	for _, s := range e.Stakes {
		if s.StakeID == e.JoinerStakeID {
			return s, true
		}
	}
	return StakeSnapshot{}, false
}

// Link returns the part of the entry needed for chain verification.
func (e *ChainEntry) Link() integrity.Link {
	h := make([]integrity.Holding, 0, len(e.Stakes))
	for _, s := range e.Stakes {
		h = append(h, integrity.Holding{HolderLabel: s.HolderLabel, Amount: s.Amount})
	}
	return integrity.Link{Prev: e.PrevFingerprint, New: e.NewFingerprint, Holdings: h}
}
