package model

import "time"

// ContentItem is the metadata record for one uploaded media file.
// The bytes themselves live in the blob store under StorageKey; this
// struct is a pure domain model with no persistence tags or logic.
// Items are immutable after creation except for deletion.
type ContentItem struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	StorageKey string    `json:"storage_key"`
	MimeType   string    `json:"mimetype"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
