package catalog

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"card-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver writes raw feed payloads to object storage so override rules can
// later be validated against the exact data a run saw. Archiving is best
// effort: a failed write logs a warning and never fails the sync.
type Archiver struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	now    func() time.Time
}

// NewArchiver creates an archiver targeting the given bucket.
func NewArchiver(client storage.Client, bucket string, logger *zap.Logger) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		logger: logger,
		now:    time.Now,
	}
}

// ArchiveFeeds stores both raw payloads under date-stamped object names.
func (a *Archiver) ArchiveFeeds(ctx context.Context, productRaw, priceRaw []byte) {
	date := a.now().UTC().Format("20060102")
	a.put(ctx, fmt.Sprintf("snapshots/products_%s.json", date), productRaw)
	a.put(ctx, fmt.Sprintf("snapshots/priceguide_%s.json", date), priceRaw)
}

func (a *Archiver) put(ctx context.Context, objectName string, payload []byte) {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		a.logger.Warn("Feed archive skipped: bucket check failed",
			zap.String("bucket", a.bucket), zap.Error(err))
		return
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			a.logger.Warn("Feed archive skipped: bucket creation failed",
				zap.String("bucket", a.bucket), zap.Error(err))
			return
		}
	}

	_, err = a.client.PutObject(ctx, a.bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		a.logger.Warn("Feed archive write failed",
			zap.String("object", objectName), zap.Error(err))
		return
	}

	a.logger.Info("Feed snapshot archived", zap.String("object", objectName))
}
