package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPresign replaces the S3 seams with fakes that echo the object key.
func stubPresign(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	presignPutObject = func(_ *s3.PresignClient, _ context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://s3.test/" + *in.Bucket + "/" + *in.Key + "?put"}, nil
	}
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://s3.test/" + *in.Bucket + "/" + *in.Key + "?get"}, nil
	}
}

func newContentService(t *testing.T) (*ContentService, *repomanager.InMemoryRepositoryManager) {
	t.Helper()
	rm := repomanager.NewInMemoryRepositoryManager()
	return NewContentService(nil, rm, testConfig(), testLogger()), rm
}

var author = Author{ID: "u1", Label: "alice@example.com"}

func Test_getPresignClient_AppliesConfig(t *testing.T) {
	svc, _ := newContentService(t)

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	pc, err := svc.getPresignClient()
	require.NoError(t, err)
	assert.NotNil(t, pc)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000/", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = svc.getPresignClient()
	assert.EqualError(t, err, "load-fail")
}

func TestMediaLifecycle(t *testing.T) {
	stubPresign(t)
	svc, _ := newContentService(t)
	ctx := context.Background()

	task, err := svc.RequestMediaUpload(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(task.StorageKey, "media/"))
	assert.Equal(t, "https://s3.test/media/"+task.StorageKey+"?put", task.URL)

	_, err = svc.GetMediaURL(ctx, task.StorageKey)
	assert.ErrorIs(t, err, common.ErrorNotFound, "not uploaded yet")

	err = svc.MarkMediaUploaded(ctx, task.StorageKey, "someone-else")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, svc.MarkMediaUploaded(ctx, task.StorageKey, author.ID))

	url, err := svc.GetMediaURL(ctx, task.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.test/media/"+task.StorageKey+"?get", url)
}

func TestRequestMediaUpload_PresignError(t *testing.T) {
	stubPresign(t)
	presignPutObject = func(*s3.PresignClient, context.Context, *s3.PutObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errBoom{}
	}
	svc, _ := newContentService(t)

	_, err := svc.RequestMediaUpload(context.Background(), author.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error presigning upload")
}

func TestCreateContent(t *testing.T) {
	stubPresign(t)
	svc, _ := newContentService(t)
	ctx := context.Background()

	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	orig := contentNow
	contentNow = func() time.Time { return created }
	t.Cleanup(func() { contentNow = orig })

	c, err := svc.CreateContent(ctx, author, NewContent{Title: "  Essay ", Body: "words", Type: common.ContentTypeText})
	require.NoError(t, err)
	assert.Equal(t, "Essay", c.Title)
	assert.Equal(t, author.Label, c.AuthorLabel)
	assert.Equal(t, created, c.CreatedAt)
	assert.Empty(t, c.LatestFingerprint)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreateContent_Validation(t *testing.T) {
	stubPresign(t)
	svc, _ := newContentService(t)
	ctx := context.Background()

	task, err := svc.RequestMediaUpload(ctx, author.ID)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   NewContent
	}{
		{"empty title", NewContent{Title: " ", Type: common.ContentTypeText}},
		{"bad type", NewContent{Title: "t", Type: "podcast"}},
		{"link without url", NewContent{Title: "t", Type: common.ContentTypeLink}},
		{"unknown media", NewContent{Title: "t", Type: common.ContentTypeImage, MediaURL: "media/none"}},
		{"media not uploaded", NewContent{Title: "t", Type: common.ContentTypeImage, MediaURL: task.StorageKey}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateContent(ctx, author, tt.in)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}

	require.NoError(t, svc.MarkMediaUploaded(ctx, task.StorageKey, author.ID))
	_, err = svc.CreateContent(ctx, Author{ID: "u2", Label: "bob"},
		NewContent{Title: "t", Type: common.ContentTypeImage, MediaURL: task.StorageKey})
	assert.ErrorIs(t, err, common.ErrorValidation, "someone else's upload")

	c, err := svc.CreateContent(ctx, author,
		NewContent{Title: "t", Type: common.ContentTypeImage, MediaURL: task.StorageKey})
	require.NoError(t, err)
	assert.Equal(t, task.StorageKey, c.MediaURL)

	_, err = svc.CreateContent(ctx, author,
		NewContent{Title: "l", Type: common.ContentTypeLink, MediaURL: "https://example.com/x"})
	require.NoError(t, err)
}

func TestListContent(t *testing.T) {
	stubPresign(t)
	svc, rm := newContentService(t)
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, c := range []models.Content{
		{ID: "a", Title: "a", Type: "text", AuthorID: "u1", CreatedAt: base},
		{ID: "b", Title: "b", Type: "text", AuthorID: "u2", CreatedAt: base.Add(time.Minute)},
		{ID: "c", Title: "c", Type: "text", AuthorID: "u1", CreatedAt: base.Add(2 * time.Minute)},
	} {
		require.NoError(t, rm.Contents(nil).Create(ctx, &c), "item %d", i)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

	mine, err := svc.ListByAuthor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "c", mine[0].ID)
}
