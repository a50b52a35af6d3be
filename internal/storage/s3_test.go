package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"alcyxob/exercise-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Presigning is computed locally, so no S3 endpoint needs to be reachable.
func TestPresignedDownloadURLUsesPathStyleEndpoint(t *testing.T) {
	store, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "exports",
	})
	require.NoError(t, err)

	raw, err := store.GeneratePresignedDownloadURL(context.Background(), "exports/u1/log.json", 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/exports/exports/u1/log.json"), u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
}
