package models

// Portfolio summarises a user's wallet and co-funding positions.
type Portfolio struct {
	Cash          int64
	TotalInvested int64
	TotalDividend int64
	Stakes        []Stake
	Pending       []PendingRequest
}
