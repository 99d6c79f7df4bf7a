package domain

// ContentHandle is an opaque locator for ingested file content.
// The bytes behind a handle belong to the blob store; a Message only
// carries the reference.
type ContentHandle string

// AttachmentRef is a lightweight reference to ingested file content,
// decoupled from storage. Handles are released on session reset.
type AttachmentRef struct {
	DisplayName string
	MimeType    string
	Handle      ContentHandle
}

// RawFile is a file as selected for upload, before ingestion.
type RawFile struct {
	Name string
	Data []byte
}

const KB = 1024
const MB = KB * KB
