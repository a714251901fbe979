package blob

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"photo-service-api/config"
)

type Client struct {
	logger *zap.Logger
	mc     *minio.Client
	bucket string
}

func New(
	ctx context.Context,
	logger *zap.Logger,
	cfg config.Blob,
) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blob store client: %w", err)
	}

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket check failed: %w", err)
	}
	if !exists {
		if err = mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("bucket create failed: %w", err)
		}
		logger.Info("bucket created", zap.String("bucket", cfg.Bucket))
	}

	logger.Info("blob store connected successfully", zap.String("endpoint", cfg.Endpoint))

	return &Client{
		logger: logger,
		mc:     mc,
		bucket: cfg.Bucket,
	}, nil
}

func (c *Client) PutObject(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error {
	_, err := c.mc.PutObject(ctx, c.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("blob put %q failed: %w", objectName, err)
	}

	return nil
}

// GetPublicURL composes the path-style address the store serves the object
// under. It is derived, not returned by the store.
func (c *Client) GetPublicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", c.mc.EndpointURL(), c.bucket, objectName)
}

func (c *Client) GetBucket() string { return c.bucket }
