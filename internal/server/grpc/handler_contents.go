package grpc

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/api"
	pb "github.com/dmitrijs2005/cofund/internal/proto"
	"github.com/dmitrijs2005/cofund/internal/server/services"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) RequestMediaUpload(ctx context.Context, _ *emptypb.Empty) (*pb.MediaUploadResponse, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	task, err := s.contents.RequestMediaUpload(ctx, who.ID)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.MediaUploadResponse{StorageKey: task.StorageKey, Url: task.URL}, nil
}

func (s *GRPCServer) MarkMediaUploaded(ctx context.Context, req *pb.MediaRequest) (*emptypb.Empty, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.contents.MarkMediaUploaded(ctx, req.GetStorageKey(), who.ID); err != nil {
		return nil, api.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetMediaURL(ctx context.Context, req *pb.MediaRequest) (*pb.MediaURLResponse, error) {
	url, err := s.contents.GetMediaURL(ctx, req.GetStorageKey())
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.MediaURLResponse{Url: url}, nil
}

func (s *GRPCServer) CreateContent(ctx context.Context, req *pb.CreateContentRequest) (*pb.Content, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.contents.CreateContent(ctx, services.Author{ID: who.ID, Label: who.Label}, services.NewContent{
		Title:    req.GetTitle(),
		Body:     req.GetBody(),
		Type:     req.GetType(),
		MediaURL: req.GetMediaUrl(),
	})
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return toContent(c), nil
}

func (s *GRPCServer) GetContent(ctx context.Context, req *pb.ContentRequest) (*pb.Content, error) {
	c, err := s.contents.Get(ctx, req.GetContentId())
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return toContent(c), nil
}

func (s *GRPCServer) ListContent(ctx context.Context, _ *emptypb.Empty) (*pb.ContentListResponse, error) {
	list, err := s.contents.List(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return toContentList(list), nil
}

func (s *GRPCServer) ListMyContent(ctx context.Context, _ *emptypb.Empty) (*pb.ContentListResponse, error) {
	who, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.contents.ListByAuthor(ctx, who.ID)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return toContentList(list), nil
}
