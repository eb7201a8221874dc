package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/samber/lo"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"zoomboom/internal/config"
)

// PublicPrefix is the key prefix opened for anonymous reads when the bucket
// is served through MINIO_PUBLIC_BASE_URL.
const PublicPrefix = "images/"

const setupTimeout = 10 * time.Second

type minioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinIO connects to the bucket and creates it if missing. With a public
// base URL configured it also grants anonymous GET on PublicPrefix so the
// permanent links resolve.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig) (Storage, error) {
	missing := lo.Compact([]string{
		lo.Ternary(cfg.Endpoint == "", "MINIO_ENDPOINT", ""),
		lo.Ternary(cfg.AccessKey == "", "MINIO_ACCESS_KEY", ""),
		lo.Ternary(cfg.SecretKey == "", "MINIO_SECRET_KEY", ""),
		lo.Ternary(cfg.Bucket == "", "MINIO_BUCKET", ""),
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("minio config incomplete: %s not set", strings.Join(missing, ", "))
	}

	tr, err := minio.DefaultTransport(cfg.UseSSL)
	if err != nil {
		return nil, fmt.Errorf("minio transport: %w", err)
	}
	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: otelhttp.NewTransport(tr),
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}
	if cfg.PublicBaseURL != "" {
		policy, err := publicReadPolicy(cfg.Bucket)
		if err != nil {
			return nil, err
		}
		if err := cli.SetBucketPolicy(ctx, cfg.Bucket, policy); err != nil {
			return nil, fmt.Errorf("set bucket policy: %w", err)
		}
	}

	return &minioStorage{client: cli, bucket: cfg.Bucket, publicBaseURL: cfg.PublicBaseURL}, nil
}

func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{Key: key, Size: info.Size, ETag: info.ETag, ContentType: opt.ContentType}, nil
}

func (m *minioStorage) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

func (m *minioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (m *minioStorage) PublicURL(key string) (string, bool) {
	return publicURL(m.publicBaseURL, m.bucket, key)
}

func publicURL(base, bucket, key string) (string, bool) {
	if base == "" {
		return "", false
	}
	return base + "/" + url.PathEscape(bucket) + "/" + key, true
}

type policyStatement struct {
	Effect    string              `json:"Effect"`
	Principal map[string][]string `json:"Principal"`
	Action    []string            `json:"Action"`
	Resource  []string            `json:"Resource"`
}

type bucketPolicy struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

// publicReadPolicy allows anonymous s3:GetObject on bucket/PublicPrefix* only.
func publicReadPolicy(bucket string) (string, error) {
	b, err := json.Marshal(bucketPolicy{
		Version: "2012-10-17",
		Statement: []policyStatement{{
			Effect:    "Allow",
			Principal: map[string][]string{"AWS": {"*"}},
			Action:    []string{"s3:GetObject"},
			Resource:  []string{"arn:aws:s3:::" + bucket + "/" + PublicPrefix + "*"},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("encode bucket policy: %w", err)
	}
	return string(b), nil
}
