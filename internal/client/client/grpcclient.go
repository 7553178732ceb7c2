package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/cofund/internal/api"
	"github.com/dmitrijs2005/cofund/internal/client/models"
	"github.com/dmitrijs2005/cofund/internal/common"
	pb "github.com/dmitrijs2005/cofund/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.CofundServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, rotates the token pair once and retries the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())

	return invoker(withAccessToken(ctx, resp.GetAccessToken()), method, req, reply, cc, opts...)
}

func NewCofundClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewCofundServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// mapError turns a status error into the sentinel it carries. Transport
// failures become ErrUnavailable.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if mapped, ok := api.FromStatus(err); ok {
		return mapped
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated:
		return ErrUnauthorized
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, key []byte) error {

	req := &pb.RegisterUserRequest{Username: userName, Salt: salt, Verifier: key}

	if _, err := s.client.RegisterUser(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Username: userName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetSalt(), nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, key []byte) error {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: userName, VerifierCandidate: key})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

// Logout revokes the refresh tokens server-side and forgets the local pair.
// The local pair is dropped even when the call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, err := s.client.Logout(ctx, &emptypb.Empty{})
	s.setTokens("", "")
	if err != nil && !errors.Is(s.mapError(err), ErrUnauthorized) {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) RequestMediaUpload(ctx context.Context) (string, string, error) {
	resp, err := s.client.RequestMediaUpload(ctx, &emptypb.Empty{})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.GetStorageKey(), resp.GetUrl(), nil
}

func (s *GRPCClient) MarkMediaUploaded(ctx context.Context, key string) error {
	if _, err := s.client.MarkMediaUploaded(ctx, &pb.MediaRequest{StorageKey: key}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetMediaURL(ctx context.Context, key string) (string, error) {
	resp, err := s.client.GetMediaURL(ctx, &pb.MediaRequest{StorageKey: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) CreateContent(ctx context.Context, in *models.NewContent) (*models.Content, error) {
	resp, err := s.client.CreateContent(ctx, &pb.CreateContentRequest{
		Title:    in.Title,
		Body:     in.Body,
		Type:     in.Type,
		MediaUrl: in.MediaURL,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromContent(resp), nil
}

func (s *GRPCClient) GetContent(ctx context.Context, contentID string) (*models.Content, error) {
	resp, err := s.client.GetContent(ctx, &pb.ContentRequest{ContentId: contentID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromContent(resp), nil
}

func (s *GRPCClient) ListContent(ctx context.Context) ([]models.Content, error) {
	resp, err := s.client.ListContent(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromContents(resp.GetItems()), nil
}

func (s *GRPCClient) ListMyContent(ctx context.Context) ([]models.Content, error) {
	resp, err := s.client.ListMyContent(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromContents(resp.GetItems()), nil
}

func (s *GRPCClient) RequestJoin(ctx context.Context, contentID string, amount int64) (*models.JoinResult, error) {
	resp, err := s.client.RequestJoin(ctx, &pb.RequestJoinRequest{ContentId: contentID, Amount: amount})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.JoinResult{
		Founded: resp.GetFounded(),
		Request: fromRequest(resp.GetRequest()),
		Stake:   fromStake(resp.GetStake()),
		Entry:   fromEntry(resp.GetEntry()),
	}, nil
}

func (s *GRPCClient) Approve(ctx context.Context, requestID, observed string) (*models.ApproveResult, error) {
	resp, err := s.client.Approve(ctx, &pb.ApproveRequest{RequestId: requestID, ObservedFingerprint: observed})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := &models.ApproveResult{
		Approvals: int(resp.GetApprovals()),
		Required:  int(resp.GetRequired()),
		Settled:   resp.GetSettled(),
		Entry:     fromEntry(resp.GetEntry()),
	}
	if r := fromRequest(resp.GetRequest()); r != nil {
		out.Request = *r
	}
	return out, nil
}

func (s *GRPCClient) Reject(ctx context.Context, requestID string) (*models.ChainEntry, error) {
	resp, err := s.client.Reject(ctx, &pb.RequestIDRequest{RequestId: requestID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return entryOf(resp)
}

func (s *GRPCClient) ListEligiblePending(ctx context.Context) ([]models.PendingRequest, error) {
	resp, err := s.client.ListEligiblePending(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromRequests(resp.GetRequests()), nil
}

func (s *GRPCClient) ListMyPending(ctx context.Context) ([]models.PendingRequest, error) {
	resp, err := s.client.ListMyPending(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromRequests(resp.GetRequests()), nil
}

func (s *GRPCClient) ListStakes(ctx context.Context, contentID string) ([]models.Stake, error) {
	resp, err := s.client.ListStakes(ctx, &pb.ContentRequest{ContentId: contentID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromStakes(resp.GetStakes()), nil
}

func (s *GRPCClient) GetChain(ctx context.Context, contentID string) ([]models.ChainEntry, error) {
	resp, err := s.client.GetChain(ctx, &pb.ContentRequest{ContentId: contentID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromEntries(resp.GetEntries()), nil
}

func (s *GRPCClient) ExpectedFingerprint(ctx context.Context, requestID string) (string, error) {
	resp, err := s.client.ExpectedFingerprint(ctx, &pb.RequestIDRequest{RequestId: requestID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetFingerprint(), nil
}

func (s *GRPCClient) Divergence(ctx context.Context, contentID, cached string) (*models.Divergence, error) {
	resp, err := s.client.Divergence(ctx, &pb.DivergenceRequest{ContentId: contentID, Cached: cached})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Divergence{State: resp.GetState(), Authoritative: resp.GetAuthoritative()}, nil
}

func (s *GRPCClient) ResumeSettlement(ctx context.Context, requestID string) (*models.ChainEntry, error) {
	resp, err := s.client.ResumeSettlement(ctx, &pb.RequestIDRequest{RequestId: requestID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return entryOf(resp)
}

func (s *GRPCClient) Portfolio(ctx context.Context) (*models.Portfolio, error) {
	resp, err := s.client.Portfolio(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Portfolio{
		Cash:          resp.GetCash(),
		TotalInvested: resp.GetTotalInvested(),
		TotalDividend: resp.GetTotalDividend(),
		Stakes:        fromStakes(resp.GetStakes()),
		Pending:       fromRequests(resp.GetPending()),
	}, nil
}

// entryOf unwraps a chain entry response. A response without an entry is a
// server fault, not an empty result.
func entryOf(resp *pb.ChainEntryResponse) (*models.ChainEntry, error) {
	e := fromEntry(resp.GetEntry())
	if e == nil {
		return nil, fmt.Errorf("rpc error: %w", common.ErrorInternal)
	}
	return e, nil
}
