package minio

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"petfoster-upload/internal/config"

	"github.com/docker/go-units"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Archive uploads a merged artifact under <prefix>/<name> and returns the object key
func (a *Adapter) Archive(ctx context.Context, localPath string, name string, contentType string) (string, error) {
	objectKey := path.Join(a.config.ObjectPrefix, name)

	info, err := a.client.FPutObject(ctx, a.config.BucketName, objectKey, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive artifact: %w", err)
	}

	a.logger.Info("artifact archived",
		slog.String("objectKey", objectKey),
		slog.String("bucket", a.config.BucketName),
		slog.String("size", units.HumanSize(float64(info.Size))))

	return objectKey, nil
}
