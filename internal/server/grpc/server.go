// Package grpc exposes the cofund services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/cofund/internal/logging"
	pb "github.com/dmitrijs2005/cofund/internal/proto"
	"github.com/dmitrijs2005/cofund/internal/server/funding"
	"github.com/dmitrijs2005/cofund/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedCofundServiceServer
	address   string
	users     *services.UserService
	contents  *services.ContentService
	engine    *funding.Engine
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.CofundServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, cs *services.ContentService,
	engine *funding.Engine, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		contents:  cs,
		engine:    engine,
		jwtSecret: []byte(secretKey),
	}, nil
}

// newServer builds a grpc.Server with the interceptors and the cofund
// service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterCofundServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
