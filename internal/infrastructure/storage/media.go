package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courseadmin/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

const uploadExpiry = 15 * time.Minute

type Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
}

// MediaStorage hands out presigned PUT URLs so the browser uploads images
// straight to the bucket.
type MediaStorage struct {
	presign   *s3.PresignClient
	bucket    string
	publicURL string
	logger    zerolog.Logger
}

func NewMediaStorage(ctx context.Context, opts Options, logger zerolog.Logger) (*MediaStorage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load S3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimRight(opts.PublicURL, "/")
	if publicURL == "" {
		if opts.Endpoint != "" {
			publicURL = strings.TrimRight(opts.Endpoint, "/") + "/" + opts.Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
		}
	}

	return &MediaStorage{
		presign:   s3.NewPresignClient(client),
		bucket:    opts.Bucket,
		publicURL: publicURL,
		logger:    logger.With().Str("component", "media").Logger(),
	}, nil
}

func (s *MediaStorage) PresignUpload(ctx context.Context, key, contentType string) (domain.Upload, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(uploadExpiry))
	if err != nil {
		s.logger.Error().Err(err).Str("object_key", key).Msg("Failed to generate presigned PUT URL")
		return domain.Upload{}, fmt.Errorf("failed to generate presigned PUT URL: %w", err)
	}

	return domain.Upload{
		Key:       key,
		UploadURL: req.URL,
		PublicURL: s.publicURL + "/" + key,
		ExpiresAt: time.Now().Add(uploadExpiry).UTC(),
	}, nil
}
