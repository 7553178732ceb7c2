package grpc

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/api"
	pb "github.com/dmitrijs2005/cofund/internal/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) RequestJoin(ctx context.Context, req *pb.RequestJoinRequest) (*pb.RequestJoinResponse, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.RequestJoin(ctx, req.GetContentId(), who, req.GetAmount())
	if err != nil {
		return nil, api.ToStatus(err)
	}

	out := &pb.RequestJoinResponse{Founded: res.Founded}
	if res.Request != nil {
		out.Request = toRequest(res.Request)
	}
	if res.Stake != nil {
		out.Stake = toStake(res.Stake)
	}
	if res.Entry != nil {
		out.Entry = toEntry(res.Entry)
	}
	return out, nil
}

func (s *GRPCServer) Approve(ctx context.Context, req *pb.ApproveRequest) (*pb.ApproveResponse, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.Approve(ctx, req.GetRequestId(), who, req.GetObservedFingerprint())
	if err != nil {
		return nil, api.ToStatus(err)
	}

	out := &pb.ApproveResponse{
		Request:   toRequest(res.Request),
		Approvals: int32(res.Approvals),
		Required:  int32(res.Required),
		Settled:   res.Settled,
	}
	if res.Entry != nil {
		out.Entry = toEntry(res.Entry)
	}
	return out, nil
}

func (s *GRPCServer) Reject(ctx context.Context, req *pb.RequestIDRequest) (*pb.ChainEntryResponse, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := s.engine.Reject(ctx, req.GetRequestId(), who)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.ChainEntryResponse{Entry: toEntry(entry)}, nil
}

func (s *GRPCServer) ListEligiblePending(ctx context.Context, _ *emptypb.Empty) (*pb.PendingListResponse, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.engine.ListEligiblePending(ctx, who)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.PendingListResponse{Requests: toRequests(list)}, nil
}

func (s *GRPCServer) ListMyPending(ctx context.Context, _ *emptypb.Empty) (*pb.PendingListResponse, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.engine.ListMyPending(ctx, who)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.PendingListResponse{Requests: toRequests(list)}, nil
}

func (s *GRPCServer) ListStakes(ctx context.Context, req *pb.ContentRequest) (*pb.StakeListResponse, error) {
	list, err := s.engine.ListStakes(ctx, req.GetContentId())
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.StakeListResponse{Stakes: toStakes(list)}, nil
}

func (s *GRPCServer) GetChain(ctx context.Context, req *pb.ContentRequest) (*pb.ChainResponse, error) {
	entries, err := s.engine.GetChain(ctx, req.GetContentId())
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.ChainResponse{Entries: toEntries(entries)}, nil
}

func (s *GRPCServer) ExpectedFingerprint(ctx context.Context, req *pb.RequestIDRequest) (*pb.FingerprintResponse, error) {
	fp, err := s.engine.ExpectedFingerprint(ctx, req.GetRequestId())
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.FingerprintResponse{Fingerprint: fp}, nil
}

func (s *GRPCServer) Divergence(ctx context.Context, req *pb.DivergenceRequest) (*pb.DivergenceResponse, error) {
	d, authoritative, err := s.engine.Divergence(ctx, req.GetContentId(), req.GetCached())
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.DivergenceResponse{State: d.String(), Authoritative: authoritative}, nil
}

func (s *GRPCServer) ResumeSettlement(ctx context.Context, req *pb.RequestIDRequest) (*pb.ChainEntryResponse, error) {
	entry, err := s.engine.ResumeSettlement(ctx, req.GetRequestId())
	if err != nil {
		return nil, api.ToStatus(err)
	}
	s.logger.Info(ctx, "settlement resumed on request", "request_id", req.GetRequestId())
	return &pb.ChainEntryResponse{Entry: toEntry(entry)}, nil
}

func (s *GRPCServer) Portfolio(ctx context.Context, _ *emptypb.Empty) (*pb.PortfolioResponse, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.engine.Portfolio(ctx, who)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.PortfolioResponse{
		Cash:          p.Cash,
		TotalInvested: p.TotalInvested,
		TotalDividend: p.TotalDividend,
		Stakes:        toStakes(p.Stakes),
		Pending:       toRequests(p.Pending),
	}, nil
}
