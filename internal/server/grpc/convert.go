package grpc

import (
	pb "github.com/dmitrijs2005/cofund/internal/proto"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toContent(c *models.Content) *pb.Content {
	return &pb.Content{
		Id:                c.ID,
		Title:             c.Title,
		Body:              c.Body,
		Type:              c.Type,
		MediaUrl:          c.MediaURL,
		CreatedAt:         timestamppb.New(c.CreatedAt),
		AuthorId:          c.AuthorID,
		AuthorLabel:       c.AuthorLabel,
		LatestFingerprint: c.LatestFingerprint,
	}
}

func toContentList(list []models.Content) *pb.ContentListResponse {
	out := &pb.ContentListResponse{Items: make([]*pb.Content, 0, len(list))}
	for i := range list {
		out.Items = append(out.Items, toContent(&list[i]))
	}
	return out
}

func toStake(s *models.Stake) *pb.Stake {
	return &pb.Stake{
		Id:              s.ID,
		ContentId:       s.ContentID,
		HolderId:        s.HolderID,
		HolderLabel:     s.HolderLabel,
		Amount:          s.Amount,
		AdmittedAt:      timestamppb.New(s.AdmittedAt),
		AccruedDividend: s.AccruedDividend,
		OriginRequestId: s.OriginRequestID,
	}
}

func toStakes(list []models.Stake) []*pb.Stake {
	out := make([]*pb.Stake, 0, len(list))
	for i := range list {
		out = append(out, toStake(&list[i]))
	}
	return out
}

func toRequest(r *models.PendingRequest) *pb.PendingRequest {
	return &pb.PendingRequest{
		Id:             r.ID,
		ContentId:      r.ContentID,
		RequesterId:    r.RequesterID,
		RequesterLabel: r.RequesterLabel,
		Amount:         r.Amount,
		CreatedAt:      timestamppb.New(r.CreatedAt),
		Approvals:      append([]string{}, r.Approvals...),
		Status:         string(r.Status),
	}
}

func toRequests(list []models.PendingRequest) []*pb.PendingRequest {
	out := make([]*pb.PendingRequest, 0, len(list))
	for i := range list {
		out = append(out, toRequest(&list[i]))
	}
	return out
}

func toEntry(e *models.ChainEntry) *pb.ChainEntry {
	out := &pb.ChainEntry{
		Seq:             e.Seq,
		ContentId:       e.ContentID,
		PrevFingerprint: e.PrevFingerprint,
		NewFingerprint:  e.NewFingerprint,
		Outcome:         string(e.Outcome),
		RequestId:       e.RequestID,
		Timestamp:       timestamppb.New(e.Timestamp),
		Stakes:          make([]*pb.StakeSnapshot, 0, len(e.Stakes)),
		DividendDust:    e.DividendDust,
		Approvals:       e.Approvals,
		ApprovedBy:      e.ApprovedBy,
		RejectedBy:      e.RejectedBy,
		JoinerStakeId:   e.JoinerStakeID,
	}
	for _, s := range e.Stakes {
		out.Stakes = append(out.Stakes, &pb.StakeSnapshot{
			StakeId: s.StakeID, HolderId: s.HolderID, HolderLabel: s.HolderLabel, Amount: s.Amount,
		})
	}
	for _, d := range e.Dividends {
		out.Dividends = append(out.Dividends, &pb.DividendDelta{
			StakeId: d.StakeID, HolderId: d.HolderID, Amount: d.Amount,
		})
	}
	return out
}

func toEntries(list []models.ChainEntry) []*pb.ChainEntry {
	out := make([]*pb.ChainEntry, 0, len(list))
	for i := range list {
		out = append(out, toEntry(&list[i]))
	}
	return out
}
