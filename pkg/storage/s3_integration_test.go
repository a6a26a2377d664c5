//go:build integration

package storage_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sheetlocale/pkg/storage"
)

// Integration test configuration for an S3-compatible server.
// Requires a MinIO-compatible server on localhost:9000 with the bucket created.
const (
	testEndpoint  = "http://localhost:9000"
	testAccessKey = "admin"
	testSecretKey = "admin123"
	testBucket    = "locales"
	testRegion    = "us-east-1"
)

func TestS3Integration_RoundTrip(t *testing.T) {
	t.Parallel()

	s, err := storage.NewS3(storage.Config{
		Endpoint:  testEndpoint,
		AccessKey: testAccessKey,
		SecretKey: testSecretKey,
		Bucket:    testBucket,
		Region:    testRegion,
		Prefix:    "it-" + uuid.NewString(),
		PathStyle: true,
	})
	require.NoError(t, err, "failed to create storage client")

	ctx := context.Background()
	key, err := storage.Key("en", "common", ".json")
	require.NoError(t, err)

	_, err = s.Get(ctx, key)
	require.ErrorIs(t, err, storage.ErrNotFound)

	data := []byte("{\n  \"hello\": \"Hello\"\n}\n")
	require.NoError(t, s.Put(ctx, key, data, "application/json"))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, data, got)
}
