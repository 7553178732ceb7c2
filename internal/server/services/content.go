package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/logging"
	sc "github.com/dmitrijs2005/cofund/internal/server/config"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	contentNow = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
)

// Author is the identity creating a content item.
type Author struct {
	ID    string
	Label string
}

// NewContent is the caller-supplied part of a content item. MediaURL is
// either an external http(s) link or the storage key of media the author
// uploaded beforehand.
type NewContent struct {
	Title    string
	Body     string
	Type     string
	MediaURL string
}

// ContentService is the catalog of co-fundable items and their media.
type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	logger      logging.Logger
}

func NewContentService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config, logger logging.Logger) *ContentService {
	return &ContentService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		logger:      logger.With("module", "contents"),
	}
}

func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("media/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func isExternalURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func (s *ContentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *ContentService) presignPut(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *ContentService) presignGet(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// RequestMediaUpload reserves a storage key for ownerID and returns a
// presigned PUT URL for it.
func (s *ContentService) RequestMediaUpload(ctx context.Context, ownerID string) (*models.MediaUploadTask, error) {
	key := GetRandomStorageKey()
	url, err := s.presignPut(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}

	m := &models.Media{StorageKey: key, OwnerID: ownerID, UploadStatus: models.MediaPending}
	if err := s.repomanager.Media(s.db).Create(ctx, m); err != nil {
		return nil, fmt.Errorf("error creating media: %w", err)
	}
	return &models.MediaUploadTask{StorageKey: key, URL: url}, nil
}

func (s *ContentService) MarkMediaUploaded(ctx context.Context, storageKey, ownerID string) error {
	if err := s.repomanager.Media(s.db).MarkUploaded(ctx, storageKey, ownerID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error updating media: %w", err)
	}
	return nil
}

// GetMediaURL returns a presigned GET URL for uploaded media.
func (s *ContentService) GetMediaURL(ctx context.Context, storageKey string) (string, error) {
	m, err := s.repomanager.Media(s.db).Get(ctx, storageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", err
		}
		return "", fmt.Errorf("error getting media: %w", err)
	}
	if m.UploadStatus != models.MediaUploaded {
		return "", fmt.Errorf("%w: media %s is not uploaded", common.ErrorNotFound, storageKey)
	}
	return s.presignGet(ctx, m.StorageKey)
}

// CreateContent validates and stores a new content item. It starts with no
// stakes and an empty fingerprint.
func (s *ContentService) CreateContent(ctx context.Context, author Author, in NewContent) (*models.Content, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if !common.ValidContentType(in.Type) {
		return nil, fmt.Errorf("%w: unknown content type %q", common.ErrorValidation, in.Type)
	}
	if in.Type == common.ContentTypeLink && !isExternalURL(in.MediaURL) {
		return nil, fmt.Errorf("%w: link content needs an http(s) url", common.ErrorValidation)
	}

	if in.MediaURL != "" && !isExternalURL(in.MediaURL) {
		m, err := s.repomanager.Media(s.db).Get(ctx, in.MediaURL)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, fmt.Errorf("%w: unknown media %s", common.ErrorValidation, in.MediaURL)
			}
			return nil, fmt.Errorf("error getting media: %w", err)
		}
		if m.OwnerID != author.ID || m.UploadStatus != models.MediaUploaded {
			return nil, fmt.Errorf("%w: media %s is not an upload of the author", common.ErrorValidation, in.MediaURL)
		}
	}

	c := &models.Content{
		ID:          uuid.NewString(),
		Title:       title,
		Body:        in.Body,
		Type:        in.Type,
		MediaURL:    in.MediaURL,
		CreatedAt:   contentNow(),
		AuthorID:    author.ID,
		AuthorLabel: author.Label,
	}
	if err := s.repomanager.Contents(s.db).Create(ctx, c); err != nil {
		return nil, fmt.Errorf("error creating content: %w", err)
	}

	s.logger.Info(ctx, "content created", "content_id", c.ID, "author", author.ID, "type", c.Type)
	return c, nil
}

func (s *ContentService) Get(ctx context.Context, id string) (*models.Content, error) {
	c, err := s.repomanager.Contents(s.db).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting content: %w", err)
	}
	return c, nil
}

func (s *ContentService) List(ctx context.Context) ([]models.Content, error) {
	list, err := s.repomanager.Contents(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing content: %w", err)
	}
	return list, nil
}

func (s *ContentService) ListByAuthor(ctx context.Context, authorID string) ([]models.Content, error) {
	list, err := s.repomanager.Contents(s.db).ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("error listing content: %w", err)
	}
	return list, nil
}
