package storage

import (
	"testing"
	"time"

	cfg "github.com/chalkboard-dev/chalkboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPresigner(t *testing.T) *S3Presigner {
	t.Helper()

	// Presigning is pure request signing, no network involved
	presigner, err := NewS3Presigner(S3Config{
		Region:    "auto",
		Bucket:    "chalk-test",
		AccessKey: "test-access-key",
		SecretKey: "test-secret-key",
		Endpoint:  "http://localhost:9000",
		Expiry:    15 * time.Minute,
	})
	require.NoError(t, err)
	return presigner
}

func TestPresignUpload(t *testing.T) {
	presigner := testPresigner(t)

	url, err := presigner.PresignUpload("board_attachments/demo/token/a.txt", "text/plain")

	require.NoError(t, err)
	assert.Contains(t, url, "/chalk-test/board_attachments/demo/token/a.txt")
	assert.Contains(t, url, "X-Amz-Expires=900")
	assert.Contains(t, url, "X-Amz-Signature=")
}

func TestPresignDownload(t *testing.T) {
	presigner := testPresigner(t)

	// Keys that were never written still sign; existence is not checked
	url, err := presigner.PresignDownload("board_attachments/demo/ghost/never-uploaded.bin")

	require.NoError(t, err)
	assert.Contains(t, url, "/chalk-test/board_attachments/demo/ghost/never-uploaded.bin")
	assert.Contains(t, url, "X-Amz-Signature=")
}

func TestUnconfigured(t *testing.T) {
	presigner, err := New(&cfg.Config{S3PresignExpiry: time.Hour})
	require.NoError(t, err, "missing credentials are a request-time error, not a startup error")

	_, err = presigner.PresignUpload("some/key", "text/plain")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = presigner.PresignDownload("some/key")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
