package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"zoomboom/internal/model"
	"zoomboom/internal/storage"
)

// ImageService hosts pictures used by rider applications and profiles.
type ImageService interface {
	// Upload stores the image under images/<uuid><ext> and returns a link to it.
	Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*model.Image, error)
}

type imageService struct {
	store    storage.Storage
	maxBytes int64
	urlTTL   time.Duration
	newID    func() string
}

func NewImageService(store storage.Storage, maxBytes int64, urlTTL time.Duration) ImageService {
	return &imageService{store: store, maxBytes: maxBytes, urlTTL: urlTTL, newID: uuid.NewString}
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*model.Image, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedImage, contentType)
	}
	if size > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrImageTooLarge, size, s.maxBytes)
	}

	key := storage.PublicPrefix + s.newID() + strings.ToLower(filepath.Ext(filename))
	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	link, ok := s.store.PublicURL(info.Key)
	if !ok {
		link, err = s.store.PresignGet(ctx, info.Key, s.urlTTL)
		if err != nil {
			// Rollback: delete the object nobody can link to
			if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
				return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
			}
			return nil, fmt.Errorf("presign failed: %w", err)
		}
	}

	return &model.Image{
		Key:         info.Key,
		URL:         link,
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}
