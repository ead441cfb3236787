package archive

import (
	"bytes"
	"context"
	"time"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/exceptions"
	"trimline-service/internal/pkg/slots"
	"trimline-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioArchiver struct {
	client       *minio.Client
	bucketName   string
	objectPrefix string
	Log          *zap.Logger
}

func NewMinioArchiver(client *minio.Client, bucketName, objectPrefix string, logger *zap.Logger) contracts.SnapshotArchiver {
	return &minioArchiver{
		client:       client,
		bucketName:   bucketName,
		objectPrefix: objectPrefix,
		Log:          logger,
	}
}

func (a *minioArchiver) ArchiveSnapshot(ctx context.Context, store slots.Store) (string, error) {
	payload, err := json.Marshal(store)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := utils.GenerateSnapshotObjectName(a.objectPrefix, time.Now())
	_, err = a.client.PutObject(
		ctx,
		a.bucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: constvars.MIMEApplicationJSON},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, a.bucketName)
	}

	a.Log.Info("minioArchiver.ArchiveSnapshot stored pre-overwrite snapshot",
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int("day_count", len(store)),
	)
	return objectName, nil
}
