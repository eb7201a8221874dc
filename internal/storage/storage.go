// Package storage hosts uploaded images on an S3-compatible bucket.
// Uploads are streamed straight to the bucket and never touch local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions describe an upload. Size is the exact byte count,
// or -1 to let the backend chunk the stream.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the bucket reports back after an upload.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is the object store used for image hosting.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a link that works without credentials until expiry.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// PublicURL returns a permanent link for key. ok is false when the
	// bucket is not served publicly.
	PublicURL(key string) (url string, ok bool)
}
