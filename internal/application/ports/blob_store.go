package ports

import (
	"context"
	"io"
)

type BlobStore interface {
	PutObject(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
	GetPublicURL(objectName string) string
	GetBucket() string
}
