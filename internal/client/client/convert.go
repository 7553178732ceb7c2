package client

import (
	"time"

	"github.com/dmitrijs2005/cofund/internal/client/models"
	pb "github.com/dmitrijs2005/cofund/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func fromContent(c *pb.Content) *models.Content {
	if c == nil {
		return nil
	}
	return &models.Content{
		ID:                c.GetId(),
		Title:             c.GetTitle(),
		Body:              c.GetBody(),
		Type:              c.GetType(),
		MediaURL:          c.GetMediaUrl(),
		CreatedAt:         fromTimestamp(c.GetCreatedAt()),
		AuthorID:          c.GetAuthorId(),
		AuthorLabel:       c.GetAuthorLabel(),
		LatestFingerprint: c.GetLatestFingerprint(),
	}
}

func fromContents(list []*pb.Content) []models.Content {
	out := make([]models.Content, 0, len(list))
	for _, c := range list {
		out = append(out, *fromContent(c))
	}
	return out
}

func fromStake(s *pb.Stake) *models.Stake {
	if s == nil {
		return nil
	}
	return &models.Stake{
		ID:              s.GetId(),
		ContentID:       s.GetContentId(),
		HolderID:        s.GetHolderId(),
		HolderLabel:     s.GetHolderLabel(),
		Amount:          s.GetAmount(),
		AdmittedAt:      fromTimestamp(s.GetAdmittedAt()),
		AccruedDividend: s.GetAccruedDividend(),
		OriginRequestID: s.GetOriginRequestId(),
	}
}

func fromStakes(list []*pb.Stake) []models.Stake {
	out := make([]models.Stake, 0, len(list))
	for _, s := range list {
		out = append(out, *fromStake(s))
	}
	return out
}

func fromRequest(r *pb.PendingRequest) *models.PendingRequest {
	if r == nil {
		return nil
	}
	return &models.PendingRequest{
		ID:             r.GetId(),
		ContentID:      r.GetContentId(),
		RequesterID:    r.GetRequesterId(),
		RequesterLabel: r.GetRequesterLabel(),
		Amount:         r.GetAmount(),
		CreatedAt:      fromTimestamp(r.GetCreatedAt()),
		Approvals:      append([]string{}, r.GetApprovals()...),
		Status:         r.GetStatus(),
	}
}

func fromRequests(list []*pb.PendingRequest) []models.PendingRequest {
	out := make([]models.PendingRequest, 0, len(list))
	for _, r := range list {
		out = append(out, *fromRequest(r))
	}
	return out
}

func fromEntry(e *pb.ChainEntry) *models.ChainEntry {
	if e == nil {
		return nil
	}
	out := &models.ChainEntry{
		Seq:             e.GetSeq(),
		ContentID:       e.GetContentId(),
		PrevFingerprint: e.GetPrevFingerprint(),
		NewFingerprint:  e.GetNewFingerprint(),
		Outcome:         e.GetOutcome(),
		RequestID:       e.GetRequestId(),
		Timestamp:       fromTimestamp(e.GetTimestamp()),
		Stakes:          make([]models.StakeSnapshot, 0, len(e.GetStakes())),
		DividendDust:    e.GetDividendDust(),
		Approvals:       e.GetApprovals(),
		ApprovedBy:      e.GetApprovedBy(),
		RejectedBy:      e.GetRejectedBy(),
		JoinerStakeID:   e.GetJoinerStakeId(),
	}
	for _, s := range e.GetStakes() {
		out.Stakes = append(out.Stakes, models.StakeSnapshot{
			StakeID: s.GetStakeId(), HolderID: s.GetHolderId(), HolderLabel: s.GetHolderLabel(), Amount: s.GetAmount(),
		})
	}
	for _, d := range e.GetDividends() {
		out.Dividends = append(out.Dividends, models.DividendDelta{
			StakeID: d.GetStakeId(), HolderID: d.GetHolderId(), Amount: d.GetAmount(),
		})
	}
	return out
}

func fromEntries(list []*pb.ChainEntry) []models.ChainEntry {
	out := make([]models.ChainEntry, 0, len(list))
	for _, e := range list {
		out = append(out, *fromEntry(e))
	}
	return out
}
