package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"signage/internal/config"
	"signage/internal/model"
	"signage/internal/repository"
	"signage/internal/storage"
)

// ContentService defines the use cases of the content registry.
type ContentService interface {
	// Upload validates the file, stores its bytes in the blob store and
	// records the metadata. The stored object key is UUID-based; the
	// sanitized original filename is kept in the metadata record.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.ContentItem, error)

	// List returns all content newest-first.
	List(ctx context.Context) ([]model.ContentItem, error)

	// Get returns a single content item by its ID.
	Get(ctx context.Context, id string) (*model.ContentItem, error)

	// Delete removes a content item. It fails with *ContentInUseError
	// while any screen still points at the item.
	Delete(ctx context.Context, id string) error
}

type contentService struct {
	store       storage.Storage
	repo        repository.ContentRepository
	screens     repository.ScreenRepository
	allowedExts map[string]struct{}
	maxBytes    int64
}

// NewContentService constructs a ContentService. The screen repository
// is needed for the reference-count guard on delete.
func NewContentService(store storage.Storage, repo repository.ContentRepository, screens repository.ScreenRepository, cfg config.UploadConfig) ContentService {
	exts := make(map[string]struct{}, len(cfg.AllowedExtensions))
	for _, e := range cfg.AllowedExtensions {
		exts[strings.ToLower(strings.TrimPrefix(e, "."))] = struct{}{}
	}
	return &contentService{
		store:       store,
		repo:        repo,
		screens:     screens,
		allowedExts: exts,
		maxBytes:    cfg.MaxUploadBytes,
	}
}

func (s *contentService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.ContentItem, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	filename := SanitizeFilename(originalFilename)
	if filename == "" {
		return nil, ErrFilenameRequired
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return nil, ErrExtensionNotAllowed
	}
	if _, ok := s.allowedExts[ext]; !ok {
		return nil, ErrExtensionNotAllowed
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	// The object key is UUID-based so identically named uploads never
	// collide in the blob store.
	key := "content/" + uuid.New().String() + "." + ext

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	item := &model.ContentItem{
		ID:         uuid.New().String(),
		Filename:   filename,
		StorageKey: objInfo.Key,
		MimeType:   contentType,
		Size:       objInfo.Size,
		UploadedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, item)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *contentService) List(ctx context.Context) ([]model.ContentItem, error) {
	return s.repo.List(ctx)
}

func (s *contentService) Get(ctx context.Context, id string) (*model.ContentItem, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete enforces the reference-count guard: the record is removed only
// after a count of zero was observed. The blob removal afterwards is
// not atomic with the record delete; a failed blob removal is reported
// but the record delete stands.
func (s *contentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrContentNotFound
		}
		return err
	}
	count, err := s.screens.CountAssignedTo(ctx, id)
	if err != nil {
		return fmt.Errorf("count assignments: %w", err)
	}
	if count > 0 {
		return &ContentInUseError{Count: count}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, item.StorageKey); err != nil {
		return fmt.Errorf("content record deleted but blob removal failed: %w", err)
	}
	return nil
}
