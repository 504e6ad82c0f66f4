package service

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired       = errors.New("id is required")
	ErrReaderNil        = errors.New("reader is nil")
	ErrContentNotFound  = errors.New("content not found")
	ErrFilenameRequired = errors.New("a usable filename is required")

	ErrExtensionNotAllowed = errors.New("file extension not allowed")
	ErrFileTooLarge        = errors.New("file exceeds the maximum upload size")

	ErrScreenIDRequired = errors.New("screen id is required")
	ErrInvalidContentID = errors.New("invalid content id")

	// ErrAssignmentVerification means the re-read after an assignment
	// write did not observe the value just written. A concurrent writer
	// on the same screen can trigger this spuriously; the caller gets
	// the error rather than a silently trusted write.
	ErrAssignmentVerification = errors.New("assignment verification failed")
)

// ContentInUseError blocks deletion of content that screens still point
// at. Count is the number of referencing screens at check time.
type ContentInUseError struct {
	Count int
}

func (e *ContentInUseError) Error() string {
	return fmt.Sprintf("content is currently assigned to %d screen(s)", e.Count)
}
