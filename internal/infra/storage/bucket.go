// Package storage holds the managed remote bucket and the local temp directory.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"adcopy/config"
	"adcopy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// Bucket implements service.ObjectStore on a gocloud blob bucket. The bucket
// is opened on first use.
type Bucket struct {
	url       string
	uriPrefix string
	logger    *slog.Logger

	mu     sync.Mutex
	bucket *blob.Bucket
}

// BucketParams holds the dependencies injected into NewBucket.
type BucketParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket registers the bucket with the fx lifecycle so it is closed on stop.
func NewBucket(params BucketParams) service.ObjectStore {
	bucket := newBucket(params.Config.Storage, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket
}

func newBucket(cfg *config.StorageConfig, logger *slog.Logger) *Bucket {
	url := "mem://"
	uriPrefix := ""
	if cfg != nil {
		if cfg.BucketURL != "" {
			url = cfg.BucketURL
		}
		uriPrefix = cfg.ObjectURIPrefix
	}
	if uriPrefix == "" {
		uriPrefix = bucketRoot(url)
	}

	return &Bucket{
		url:       url,
		uriPrefix: strings.TrimRight(uriPrefix, "/"),
		logger:    logger,
	}
}

// newBucketFrom wraps an already opened bucket.
func newBucketFrom(bucket *blob.Bucket, uriPrefix string) *Bucket {
	return &Bucket{
		url:       "opened",
		uriPrefix: strings.TrimRight(uriPrefix, "/"),
		logger:    slog.Default(),
		bucket:    bucket,
	}
}

// Upload writes data under key and returns the object URI.
func (b *Bucket) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	bucket, err := b.open(ctx)
	if err != nil {
		return "", err
	}

	if err := bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	return b.objectURI(key), nil
}

// Delete removes the object at key.
func (b *Bucket) Delete(ctx context.Context, key string) error {
	bucket, err := b.open(ctx)
	if err != nil {
		return err
	}

	if err := bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// List returns the objects under prefix. CreatedAt is left nil when the
// backend does not report a creation time.
func (b *Bucket) List(ctx context.Context, prefix string) ([]service.ObjectInfo, error) {
	bucket, err := b.open(ctx)
	if err != nil {
		return nil, err
	}

	var objects []service.ObjectInfo
	iter := bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list objects")
		}
		if obj.IsDir {
			continue
		}

		info := service.ObjectInfo{
			Key:  obj.Key,
			URI:  b.objectURI(obj.Key),
			Size: obj.Size,
		}

		attrs, err := bucket.Attributes(ctx, obj.Key)
		if err != nil {
			b.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to read object attributes",
				slog.String("key", obj.Key),
				slog.Any("error", err),
			)
		} else if !attrs.CreateTime.IsZero() {
			createdAt := attrs.CreateTime.UTC()
			info.CreatedAt = &createdAt
		}

		objects = append(objects, info)
	}

	return objects, nil
}

// Close releases the bucket if it was opened.
func (b *Bucket) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bucket == nil {
		return nil
	}
	err := b.bucket.Close()
	b.bucket = nil

	return err
}

func (b *Bucket) open(ctx context.Context) (*blob.Bucket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bucket != nil {
		return b.bucket, nil
	}

	bucket, err := blob.OpenBucket(ctx, b.url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", b.url)
	}
	b.bucket = bucket

	return bucket, nil
}

func (b *Bucket) objectURI(key string) string {
	if b.uriPrefix == "" {
		return key
	}

	return b.uriPrefix + "/" + key
}

// bucketRoot strips query parameters from a bucket URL, turning
// gs://bucket?x=y into gs://bucket.
func bucketRoot(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}

	return url
}
