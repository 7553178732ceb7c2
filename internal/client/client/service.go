// Package client talks to the cofund server and owns the client's local
// SQLite database.
package client

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/client/models"
)

// Client is the remote surface used by the CLI services. Errors are mapped
// back to the sentinels in internal/common, or to ErrUnavailable when the
// server cannot be reached.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, username string, salt []byte, key []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, key []byte) error
	Logout(ctx context.Context) error

	RequestMediaUpload(ctx context.Context) (key, url string, err error)
	MarkMediaUploaded(ctx context.Context, key string) error
	GetMediaURL(ctx context.Context, key string) (string, error)

	CreateContent(ctx context.Context, in *models.NewContent) (*models.Content, error)
	GetContent(ctx context.Context, contentID string) (*models.Content, error)
	ListContent(ctx context.Context) ([]models.Content, error)
	ListMyContent(ctx context.Context) ([]models.Content, error)

	RequestJoin(ctx context.Context, contentID string, amount int64) (*models.JoinResult, error)
	Approve(ctx context.Context, requestID, observed string) (*models.ApproveResult, error)
	Reject(ctx context.Context, requestID string) (*models.ChainEntry, error)
	ListEligiblePending(ctx context.Context) ([]models.PendingRequest, error)
	ListMyPending(ctx context.Context) ([]models.PendingRequest, error)
	ListStakes(ctx context.Context, contentID string) ([]models.Stake, error)
	GetChain(ctx context.Context, contentID string) ([]models.ChainEntry, error)
	ExpectedFingerprint(ctx context.Context, requestID string) (string, error)
	Divergence(ctx context.Context, contentID, cached string) (*models.Divergence, error)
	ResumeSettlement(ctx context.Context, requestID string) (*models.ChainEntry, error)
	Portfolio(ctx context.Context) (*models.Portfolio, error)
}
