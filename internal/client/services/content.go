package services

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/cofund/internal/client/client"
	"github.com/dmitrijs2005/cofund/internal/client/models"
	"github.com/dmitrijs2005/cofund/internal/netx"
)

// uploadToPresignedURL is a seam for tests.
var uploadToPresignedURL = netx.UploadToPresignedURL

// ContentService manages catalog items from the CLI.
type ContentService interface {
	Create(ctx context.Context, in *models.NewContent) (*models.Content, error)
	CreateWithMedia(ctx context.Context, in *models.NewContent, path string) (*models.Content, error)
	Get(ctx context.Context, contentID string) (*models.Content, error)
	List(ctx context.Context) ([]models.Content, error)
	Mine(ctx context.Context) ([]models.Content, error)
	MediaURL(ctx context.Context, c *models.Content) (string, error)
}

type contentService struct {
	client client.Client
}

func NewContentService(c client.Client) ContentService {
	return &contentService{client: c}
}

func (s *contentService) Create(ctx context.Context, in *models.NewContent) (*models.Content, error) {
	return s.client.CreateContent(ctx, in)
}

// CreateWithMedia uploads the file at path to the media store and creates
// the content item pointing at the stored object.
func (s *contentService) CreateWithMedia(ctx context.Context, in *models.NewContent, path string) (*models.Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open media: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat media: %w", err)
	}

	key, url, err := s.client.RequestMediaUpload(ctx)
	if err != nil {
		return nil, err
	}
	if err := uploadToPresignedURL(ctx, url, mime.TypeByExtension(filepath.Ext(path)), f, fi.Size()); err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}
	if err := s.client.MarkMediaUploaded(ctx, key); err != nil {
		return nil, err
	}

	req := *in
	req.MediaURL = key
	return s.client.CreateContent(ctx, &req)
}

func (s *contentService) Get(ctx context.Context, contentID string) (*models.Content, error) {
	return s.client.GetContent(ctx, contentID)
}

func (s *contentService) List(ctx context.Context) ([]models.Content, error) {
	return s.client.ListContent(ctx)
}

func (s *contentService) Mine(ctx context.Context) ([]models.Content, error) {
	return s.client.ListMyContent(ctx)
}

// MediaURL resolves the media of c to a fetchable URL. External links are
// returned as they are; stored objects get a presigned URL.
func (s *contentService) MediaURL(ctx context.Context, c *models.Content) (string, error) {
	if c.MediaURL == "" || isLink(c.MediaURL) {
		return c.MediaURL, nil
	}
	return s.client.GetMediaURL(ctx, c.MediaURL)
}

func isLink(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
