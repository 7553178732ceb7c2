package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/cofund/internal/common"
	pb "github.com/dmitrijs2005/cofund/internal/proto"
	"github.com/dmitrijs2005/cofund/internal/server/auth"
	"github.com/dmitrijs2005/cofund/internal/server/funding"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const SubjectKey ctxKey = "subject"

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.CofundService_Ping_FullMethodName:         true,
	pb.CofundService_RegisterUser_FullMethodName: true,
	pb.CofundService_GetSalt_FullMethodName:      true,
	pb.CofundService_Login_FullMethodName:        true,
	pb.CofundService_RefreshToken_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	subject, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = context.WithValue(ctx, SubjectKey, subject)
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "rpc failed", "method", info.FullMethod,
			"code", status.Code(err).String(), "error", err.Error(), "elapsed", time.Since(start))
		return resp, err
	}
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "elapsed", time.Since(start))
	return resp, nil
}

// identity returns the caller put into ctx by accessTokenInterceptor.
func identity(ctx context.Context) (funding.Identity, error) {
	subject, ok := ctx.Value(SubjectKey).(auth.Subject)
	if !ok || subject.UserID == "" {
		return funding.Identity{}, status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}
	return funding.Identity{ID: subject.UserID, Label: subject.Label}, nil
}
