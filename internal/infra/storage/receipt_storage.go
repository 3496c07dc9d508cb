// Package storage keeps shopping receipt images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"

	"mealplanner/config"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const defaultContentType = "application/octet-stream"

// blobReceiptStorage implements service.ReceiptStorage on top of a blob.Bucket.
type blobReceiptStorage struct {
	bucket *blob.Bucket
}

// Params defines the dependencies of the receipt storage.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket URL (file://, gs:// or mem://).
func New(params Params) (service.ReceiptStorage, error) {
	bucketURL := "mem://"
	if params.Config.Receipts != nil && params.Config.Receipts.BucketURL != "" {
		bucketURL = params.Config.Receipts.BucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open receipt bucket %s", bucketURL)
	}
	params.Logger.Info("Receipt bucket opened", slog.String("url", bucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewReceiptStorage(bucket), nil
}

// NewReceiptStorage wraps an already opened bucket.
func NewReceiptStorage(bucket *blob.Bucket) service.ReceiptStorage {
	return &blobReceiptStorage{bucket: bucket}
}

func (s *blobReceiptStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = defaultContentType
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return nil
}

func (s *blobReceiptStorage) Get(ctx context.Context, key string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, "", mapBlobError(err)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, "", mapBlobError(err)
	}

	contentType := attrs.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	return data, contentType, nil
}

func (s *blobReceiptStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return nil
}

func mapBlobError(err error) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return domainerrors.ErrReceiptNotFound
	}

	return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
}
