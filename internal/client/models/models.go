// Package models defines the client-side view of catalog, funding and chain
// data as the CLI renders and verifies it.
package models

import "time"

// Content is a catalog item as the server advertises it.
type Content struct {
	ID                string
	Title             string
	Body              string
	Type              string
	MediaURL          string
	CreatedAt         time.Time
	AuthorID          string
	AuthorLabel       string
	LatestFingerprint string
}

// NewContent is what the author supplies when creating an item. MediaURL is
// either an external link or a media storage key.
type NewContent struct {
	Title    string
	Body     string
	Type     string
	MediaURL string
}

type Stake struct {
	ID              string
	ContentID       string
	HolderID        string
	HolderLabel     string
	Amount          int64
	AdmittedAt      time.Time
	AccruedDividend int64
	OriginRequestID string
}

type PendingRequest struct {
	ID             string
	ContentID      string
	RequesterID    string
	RequesterLabel string
	Amount         int64
	CreatedAt      time.Time
	Approvals      []string
	Status         string
}

// StakeSnapshot is one holding recorded in a chain entry.
type StakeSnapshot struct {
	StakeID     string
	HolderID    string
	HolderLabel string
	Amount      int64
}

type DividendDelta struct {
	StakeID  string
	HolderID string
	Amount   int64
}

// ChainEntry is one link of a content item's integrity chain.
type ChainEntry struct {
	Seq             int64
	ContentID       string
	PrevFingerprint string
	NewFingerprint  string
	Outcome         string
	RequestID       string
	Timestamp       time.Time
	Stakes          []StakeSnapshot
	Dividends       []DividendDelta
	DividendDust    int64
	Approvals       []string
	ApprovedBy      string
	RejectedBy      string
	JoinerStakeID   string
}

// JoinResult carries the stake and chain entry of a founding join, or the
// pending request of any other join.
type JoinResult struct {
	Founded bool
	Request *PendingRequest
	Stake   *Stake
	Entry   *ChainEntry
}

// ApproveResult reports the vote count and, once settled, the chain entry.
type ApproveResult struct {
	Request   PendingRequest
	Approvals int
	Required  int
	Settled   bool
	Entry     *ChainEntry
}

// Divergence is the server's classification of a cached fingerprint.
type Divergence struct {
	State         string
	Authoritative string
}

type Portfolio struct {
	Cash          int64
	TotalInvested int64
	TotalDividend int64
	Stakes        []Stake
	Pending       []PendingRequest
}
