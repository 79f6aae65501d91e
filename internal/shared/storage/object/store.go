package object

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound indicates the requested object or bucket does not exist.
var ErrNotFound = errors.New("object not found")

// Info describes a stored object.
type Info struct {
	Key          string
	SizeBytes    int64
	LastModified time.Time
}

// ObjectStore defines the contract for saving and retrieving binary objects.
type ObjectStore interface {
	Save(ctx context.Context, sessionKey string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	// URL returns a public URL for a stored object.
	URL(storageKey string) string
}

// BucketOps defines cross-bucket operations used by the admin image utilities.
type BucketOps interface {
	List(ctx context.Context, bucket, prefix string) ([]Info, error)
	Head(ctx context.Context, bucket, key string) (Info, error)
	Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error
	Delete(ctx context.Context, bucket, key string) error
}
