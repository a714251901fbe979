package blob

import (
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minio.New does not dial, so URL composition is checkable offline.
func newTestClient(t *testing.T, endpoint, bucket string, secure bool) *Client {
	t.Helper()

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("test", "test", ""),
		Secure: secure,
	})
	require.NoError(t, err)

	return &Client{mc: mc, bucket: bucket}
}

func TestClient_GetPublicURL(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		bucket     string
		secure     bool
		objectName string
		want       string
	}{
		{
			name:       "plain http",
			endpoint:   "localhost:9000",
			bucket:     "u1-bucket",
			objectName: "a.jpg",
			want:       "http://localhost:9000/u1-bucket/a.jpg",
		},
		{
			name:       "https endpoint",
			endpoint:   "blobs.example.com",
			bucket:     "photos",
			secure:     true,
			objectName: "cat.png",
			want:       "https://blobs.example.com/photos/cat.png",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.endpoint, tt.bucket, tt.secure)
			assert.Equal(t, tt.want, c.GetPublicURL(tt.objectName))
		})
	}
}

func TestClient_GetBucket(t *testing.T) {
	c := newTestClient(t, "localhost:9000", "u1-bucket", false)
	assert.Equal(t, "u1-bucket", c.GetBucket())
}
