package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Submission validation
	ErrEmptySubmission    = fmt.Errorf("submission is empty")
	ErrInputLocked        = fmt.Errorf("input locked while a request is in flight")
	ErrNoValidAttachments = fmt.Errorf("no attachment passed the ingestion policy")
	ErrSessionClosed      = fmt.Errorf("session engine is not running")

	// Attachment ingestion (per file)
	ErrEmptyFile      = fmt.Errorf("file is empty")
	ErrFileTooLarge   = fmt.Errorf("file exceeds the size limit")
	ErrMimeNotAllowed = fmt.Errorf("file type is not allowed")

	// Storage
	ErrBlobNotFound    = fmt.Errorf("no blob for this handle")
	ErrInvalidHandle   = fmt.Errorf("malformed content handle")
	ErrFindingNotFound = fmt.Errorf("finding not found")

	// Auth gate
	ErrUnauthenticated   = fmt.Errorf("not authenticated")
	ErrInvalidPassword   = fmt.Errorf("password does not meet complexity rules")
	ErrUserAlreadyExists = fmt.Errorf("user already exists")
	ErrUserNotFound      = fmt.Errorf("user not found")
	ErrBadCredentials    = fmt.Errorf("invalid email or password")

	ErrEmptyWords = fmt.Errorf("no words have been found")
)
