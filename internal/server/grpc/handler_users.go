package grpc

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/api"
	pb "github.com/dmitrijs2005/cofund/internal/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.GetUsername())

	result, err := s.users.Register(ctx, req.GetUsername(), req.GetSalt(), req.GetVerifier())
	if err != nil {
		return nil, api.ToStatus(err)
	}

	return &pb.RegisterUserResponse{UserId: result.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	result, err := s.users.GetSalt(ctx, req.GetUsername())
	if err != nil {
		return nil, api.ToStatus(err)
	}

	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {

	tokens, err := s.users.Login(ctx, req.GetUsername(), req.GetVerifierCandidate())
	if err != nil {
		return nil, api.ToStatus(err)
	}

	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, api.ToStatus(err)
	}

	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, who.ID); err != nil {
		return nil, api.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}
