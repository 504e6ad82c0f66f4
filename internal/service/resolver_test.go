package service

import (
	"testing"

	"signage/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	contentID := "8b76a257-3624-41b5-bbf7-0f3b7a2331c1"
	item := &model.ContentItem{ID: contentID, Filename: "promo.mp4"}
	lookup := func(id string) (*model.ContentItem, bool) {
		if id == contentID {
			return item, true
		}
		return nil, false
	}

	t.Run("unassigned", func(t *testing.T) {
		resolved := Resolve(model.Screen{ID: "empty"}, lookup)
		assert.Equal(t, "empty", resolved.ID)
		assert.Nil(t, resolved.AssignedContentID)
		assert.Nil(t, resolved.Filename)
		assert.False(t, resolved.ContentExists)
	})

	t.Run("assigned and resolvable", func(t *testing.T) {
		resolved := Resolve(model.Screen{ID: "lobby", AssignedContentID: &contentID}, lookup)
		assert.True(t, resolved.ContentExists)
		assert.Equal(t, "promo.mp4", *resolved.Filename)
		assert.Equal(t, contentID, *resolved.AssignedContentID)
	})

	t.Run("dangling pointer is reported, not corrected", func(t *testing.T) {
		ghost := "0e0e0e0e-0e0e-4e0e-8e0e-0e0e0e0e0e0e"
		resolved := Resolve(model.Screen{ID: "lobby", AssignedContentID: &ghost}, lookup)
		assert.False(t, resolved.ContentExists)
		assert.Nil(t, resolved.Filename)
		// Pointer passes through so callers can tell dangling from unassigned.
		assert.Equal(t, ghost, *resolved.AssignedContentID)
	})
}

func TestResolveAll(t *testing.T) {
	idA := "8b76a257-3624-41b5-bbf7-0f3b7a2331c1"
	idB := "ffffffff-ffff-4fff-8fff-ffffffffffff"
	content := []model.ContentItem{
		{ID: idA, Filename: "a.png"},
		{ID: idB, Filename: "b.png"},
	}
	screens := []model.Screen{
		{ID: "s1", AssignedContentID: &idB},
		{ID: "s2"},
		{ID: "s3", AssignedContentID: &idA},
	}

	resolved := ResolveAll(screens, content)

	assert.Len(t, resolved, 3)
	assert.Equal(t, "s1", resolved[0].ID)
	assert.Equal(t, "b.png", *resolved[0].Filename)
	assert.False(t, resolved[1].ContentExists)
	assert.Equal(t, "a.png", *resolved[2].Filename)
}

func TestResolveAll_Empty(t *testing.T) {
	resolved := ResolveAll(nil, nil)
	assert.NotNil(t, resolved)
	assert.Len(t, resolved, 0)
}
