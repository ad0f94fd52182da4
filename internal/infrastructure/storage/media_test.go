package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresignUpload_CustomEndpoint(t *testing.T) {
	s, err := NewMediaStorage(context.Background(), Options{
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "media",
		AccessKey: "minio",
		SecretKey: "minio-secret",
	}, zerolog.Nop())
	require.NoError(t, err)

	up, err := s.PresignUpload(context.Background(), "course/2026/05/abc.png", "image/png")
	require.NoError(t, err)

	u, err := url.Parse(up.UploadURL)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/media/course/2026/05/abc.png", u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))

	assert.Equal(t, "http://localhost:9000/media/course/2026/05/abc.png", up.PublicURL)
	assert.WithinDuration(t, time.Now().Add(uploadExpiry), up.ExpiresAt, time.Minute)
}

func TestPresignUpload_PublicURL(t *testing.T) {
	s, err := NewMediaStorage(context.Background(), Options{
		Region:    "eu-central-1",
		Bucket:    "courses",
		AccessKey: "key",
		SecretKey: "secret",
		PublicURL: "https://cdn.example.com/",
	}, zerolog.Nop())
	require.NoError(t, err)

	up, err := s.PresignUpload(context.Background(), "event/x.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/event/x.jpg", up.PublicURL)
	assert.True(t, strings.HasPrefix(up.UploadURL, "https://courses.s3.eu-central-1.amazonaws.com/event/x.jpg?"))
}
