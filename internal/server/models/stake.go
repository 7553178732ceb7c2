package models

import (
	"time"

	"github.com/dmitrijs2005/cofund/internal/integrity"
)

// Stake is a confirmed participation in a content item's funding pool.
// Amount never changes; AccruedDividend only grows.
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

// Holdings projects stakes to the fields that take part in fingerprints.
func Holdings(stakes []Stake) []integrity.Holding {
	h := make([]integrity.Holding, 0, len(stakes))
	for _, s := range stakes {
		h = append(h, integrity.Holding{HolderLabel: s.HolderLabel, Amount: s.Amount})
	}
	return h
}

// HasHolder reports whether holderID owns at least one of the stakes.
func HasHolder(stakes []Stake, holderID string) bool {
	for _, s := range stakes {
		if s.HolderID == holderID {
			return true
		}
	}
	return false
}

// DistinctHolders counts the distinct holders among stakes.
func DistinctHolders(stakes []Stake) int {
	seen := make(map[string]struct{}, len(stakes))
	for _, s := range stakes {
		seen[s.HolderID] = struct{}{}
	}
	return len(seen)
}
