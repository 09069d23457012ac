package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/contentops/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

// minimal PNG signature and IHDR header
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestUploadStoresUnderMediaKey(t *testing.T) {
	putter := &fakePutter{}
	svc := NewR2Service(putter, cfg.R2{BucketName: "assets", PublicURL: "https://cdn.example.com/"})

	media, err := svc.Upload(context.Background(), pngBytes)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(media.Key, "media/"))
	assert.True(t, strings.HasSuffix(media.Key, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+media.Key, media.URL)
	assert.Equal(t, "image/png", media.MimeType)
	assert.Equal(t, "assets", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(putter.input.ContentType))
	assert.Equal(t, pngBytes, putter.body)
}

func TestUploadRejections(t *testing.T) {
	svc := NewR2Service(&fakePutter{}, cfg.R2{})

	_, err := svc.Upload(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Upload(context.Background(), []byte("just some text, not media"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUploadSurfacesStoreErrors(t *testing.T) {
	svc := NewR2Service(&fakePutter{err: errors.New("access denied")}, cfg.R2{})
	_, err := svc.Upload(context.Background(), pngBytes)
	assert.EqualError(t, err, "access denied")
}
