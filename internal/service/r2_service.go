package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
	cfg "github.com/maheshrc27/contentops/configs"
)

// MaxUploadSize bounds a single media upload.
const MaxUploadSize = 200 << 20

var allowedMedia = map[string]bool{
	"jpg":  true,
	"png":  true,
	"webp": true,
	"mp4":  true,
	"mov":  true,
}

type UploadedMedia struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	MimeType  string `json:"mimeType"`
	Extension string `json:"extension"`
	Size      int    `json:"size"`
}

// ObjectPutter is the part of the S3 API uploads need. *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type StorageService interface {
	Upload(ctx context.Context, file []byte) (*UploadedMedia, error)
}

type r2Service struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

func NewR2Service(client ObjectPutter, c cfg.R2) StorageService {
	return &r2Service{
		client:    client,
		bucket:    c.BucketName,
		publicURL: strings.TrimRight(c.PublicURL, "/"),
	}
}

// R2Client builds an S3 client pointed at the Cloudflare R2 account.
func R2Client(ctx context.Context, c cfg.R2) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.AccountID))
	}), nil
}

func (r *r2Service) Upload(ctx context.Context, file []byte) (*UploadedMedia, error) {
	if len(file) == 0 {
		return nil, invalid("file is empty")
	}
	if len(file) > MaxUploadSize {
		return nil, invalid("file exceeds %d bytes", MaxUploadSize)
	}

	kind, err := filetype.Match(file)
	if err != nil || kind == filetype.Unknown || !allowedMedia[kind.Extension] {
		return nil, invalid("unsupported media type")
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("media/%s.%s", id, kind.Extension)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(kind.MIME.Value),
	}
	if _, err := r.client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &UploadedMedia{
		Key:       key,
		URL:       r.publicURL + "/" + key,
		MimeType:  kind.MIME.Value,
		Extension: kind.Extension,
		Size:      len(file),
	}, nil
}
