package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"signage/internal/model"
	"signage/internal/repository"
	"signage/internal/storage"
)

// Poll API messages. Display clients show these verbatim, so they are
// part of the endpoint's compatibility contract.
const (
	MsgScreenRegistered  = "Screen registered. No content assigned yet."
	MsgNoContentAssigned = "No content assigned yet."
	MsgContentMissing    = "Assigned content not found. Content may have been deleted."
)

// PollContent is the content payload of a poll response.
type PollContent struct {
	ContentID string `json:"content_id"`
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	MimeType  string `json:"mimetype"`
}

// PollResult is the JSON body served to a polling display client.
type PollResult struct {
	ScreenID string       `json:"screen_id"`
	Content  *PollContent `json:"content"`
	Message  string       `json:"message,omitempty"`
}

// ScreenService defines the use cases of the screen registry and the
// polling endpoint built on top of it.
type ScreenService interface {
	// GetOrRegister fetches a screen, creating an unassigned record if
	// none exists. The bool reports whether the record was just created.
	GetOrRegister(ctx context.Context, screenID string) (*model.Screen, bool, error)

	// Assign upserts the screen and sets its assignment pointer; a nil
	// contentID clears it. The stored value is re-read and verified.
	Assign(ctx context.Context, screenID string, contentID *string) (*model.Screen, error)

	// Unassign clears the screen's assignment pointer.
	Unassign(ctx context.Context, screenID string) (*model.Screen, error)

	// Delete removes a screen. Deleting an unknown screen is not an
	// error, and content is never affected.
	Delete(ctx context.Context, screenID string) error

	// CountAssignedTo reports how many screens point at a content item.
	CountAssignedTo(ctx context.Context, contentID string) (int, error)

	// List returns all screens.
	List(ctx context.Context) ([]model.Screen, error)

	// ListResolved returns all screens joined against the content
	// registry.
	ListResolved(ctx context.Context) ([]model.ResolvedScreen, error)

	// Poll drives the per-screen state machine: auto-registers unknown
	// screens and reports the current assignment, including the
	// dangling case.
	Poll(ctx context.Context, screenID string) (*PollResult, error)
}

type screenService struct {
	screens       repository.ScreenRepository
	content       repository.ContentRepository
	store         storage.Storage
	presignExpiry time.Duration
}

// NewScreenService constructs a ScreenService. The content repository
// and blob store back the resolver and the poll URL generation.
func NewScreenService(screens repository.ScreenRepository, content repository.ContentRepository, store storage.Storage, presignExpiry time.Duration) ScreenService {
	return &screenService{
		screens:       screens,
		content:       content,
		store:         store,
		presignExpiry: presignExpiry,
	}
}

func (s *screenService) GetOrRegister(ctx context.Context, screenID string) (*model.Screen, bool, error) {
	if screenID == "" {
		return nil, false, ErrScreenIDRequired
	}
	// Insert-if-absent first so two concurrent first polls cannot both
	// create; the follow-up read always observes a row.
	created, err := s.screens.CreateIfAbsent(ctx, screenID)
	if err != nil {
		return nil, false, fmt.Errorf("register screen: %w", err)
	}
	screen, err := s.screens.Find(ctx, screenID)
	if err != nil {
		return nil, false, fmt.Errorf("read screen: %w", err)
	}
	return screen, created, nil
}

func (s *screenService) Assign(ctx context.Context, screenID string, contentID *string) (*model.Screen, error) {
	if screenID == "" {
		return nil, ErrScreenIDRequired
	}
	if contentID != nil {
		if _, err := uuid.Parse(*contentID); err != nil {
			return nil, ErrInvalidContentID
		}
	}
	// No existence check against the content registry: the store keeps
	// no referential integrity and the resolver reports dangling
	// pointers instead.
	if _, err := s.screens.Upsert(ctx, &model.Screen{ID: screenID, AssignedContentID: contentID}); err != nil {
		return nil, fmt.Errorf("upsert screen: %w", err)
	}
	// Verification read. The upsert itself is atomic; this re-read is
	// an integration check on the stored value and can fail spuriously
	// when a concurrent assign on the same screen lands in between.
	stored, err := s.screens.Find(ctx, screenID)
	if err != nil {
		return nil, fmt.Errorf("verify assignment: %w", err)
	}
	if !assignmentEqual(stored.AssignedContentID, contentID) {
		return nil, ErrAssignmentVerification
	}
	return stored, nil
}

func (s *screenService) Unassign(ctx context.Context, screenID string) (*model.Screen, error) {
	return s.Assign(ctx, screenID, nil)
}

func (s *screenService) Delete(ctx context.Context, screenID string) error {
	if screenID == "" {
		return ErrScreenIDRequired
	}
	return s.screens.Delete(ctx, screenID)
}

func (s *screenService) CountAssignedTo(ctx context.Context, contentID string) (int, error) {
	return s.screens.CountAssignedTo(ctx, contentID)
}

func (s *screenService) List(ctx context.Context) ([]model.Screen, error) {
	return s.screens.List(ctx)
}

func (s *screenService) ListResolved(ctx context.Context) ([]model.ResolvedScreen, error) {
	screens, err := s.screens.List(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.content.List(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveAll(screens, content), nil
}

func (s *screenService) Poll(ctx context.Context, screenID string) (*PollResult, error) {
	screen, wasNew, err := s.GetOrRegister(ctx, screenID)
	if err != nil {
		return nil, err
	}
	result := &PollResult{ScreenID: screen.ID}
	if wasNew {
		result.Message = MsgScreenRegistered
		return result, nil
	}
	// Same join routine as the listings, backed by a point lookup.
	var item *model.ContentItem
	var lookupErr error
	resolved := Resolve(*screen, func(id string) (*model.ContentItem, bool) {
		found, err := s.content.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				lookupErr = err
			}
			return nil, false
		}
		item = found
		return found, true
	})
	if lookupErr != nil {
		return nil, fmt.Errorf("resolve assignment: %w", lookupErr)
	}
	if resolved.AssignedContentID == nil {
		result.Message = MsgNoContentAssigned
		return result, nil
	}
	if !resolved.ContentExists {
		// Dangling pointer: report, never auto-clear.
		result.Message = MsgContentMissing
		return result, nil
	}
	url, err := s.store.PresignGet(ctx, item.StorageKey, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign content url: %w", err)
	}
	result.Content = &PollContent{
		ContentID: item.ID,
		Filename:  item.Filename,
		URL:       url,
		MimeType:  item.MimeType,
	}
	return result, nil
}

func assignmentEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
