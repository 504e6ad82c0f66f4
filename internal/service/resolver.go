package service

import "signage/internal/model"

// Resolve joins one screen's assignment pointer against a content
// lookup. It is a pure function with no persisted derived state: every
// read path (index listing, management listing, polling API) calls it
// fresh, so dangling-reference handling stays uniform across all of
// them. A dangling pointer is reported, never corrected: the pointer
// passes through unmodified with ContentExists=false.
func Resolve(screen model.Screen, lookup func(id string) (*model.ContentItem, bool)) model.ResolvedScreen {
	resolved := model.ResolvedScreen{
		ID:                screen.ID,
		AssignedContentID: screen.AssignedContentID,
	}
	if screen.AssignedContentID == nil {
		return resolved
	}
	item, ok := lookup(*screen.AssignedContentID)
	if !ok {
		return resolved
	}
	filename := item.Filename
	resolved.Filename = &filename
	resolved.ContentExists = true
	return resolved
}

// ResolveAll joins a screen list against a content slice, preserving
// the screens' order.
func ResolveAll(screens []model.Screen, content []model.ContentItem) []model.ResolvedScreen {
	byID := make(map[string]*model.ContentItem, len(content))
	for i := range content {
		byID[content[i].ID] = &content[i]
	}
	lookup := func(id string) (*model.ContentItem, bool) {
		item, ok := byID[id]
		return item, ok
	}
	resolved := make([]model.ResolvedScreen, 0, len(screens))
	for _, s := range screens {
		resolved = append(resolved, Resolve(s, lookup))
	}
	return resolved
}
