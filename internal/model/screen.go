package model

// Screen is one physical or virtual display. The ID is the
// operator-supplied name, not a generated identifier; it doubles as the
// primary key, so re-assigning the same name upserts rather than
// duplicates. AssignedContentID is nil when nothing is assigned and is
// deliberately not foreign-key-enforced: a pointer to deleted content
// must remain representable so it can be detected and reported.
type Screen struct {
	ID                string  `json:"id"`
	AssignedContentID *string `json:"assigned_content_id"`
}

// ResolvedScreen is the denormalized screen+content view produced by
// joining a screen's assignment pointer against the content registry at
// read time. ContentExists is false both for unassigned screens and for
// dangling pointers; the pointer itself is passed through unmodified so
// callers can tell the two apart.
type ResolvedScreen struct {
	ID                string  `json:"id"`
	AssignedContentID *string `json:"assigned_content_id"`
	Filename          *string `json:"filename"`
	ContentExists     bool    `json:"content_exists"`
}
