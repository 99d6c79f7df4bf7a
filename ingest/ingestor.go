// Package ingest converts raw file uploads into addressable attachment
// records. Each file is judged independently against the configured
// policy; a rejected file never blocks the rest of its batch.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"biograph/domain"
	"biograph/errors"
	"biograph/repositories"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

// Policy bounds what the ingestor accepts. An empty AllowedMimeTypes
// list accepts any detected type.
type Policy struct {
	MaxFileSizeBytes int64
	AllowedMimeTypes []string
}

// Failure reports one rejected file of a batch.
type Failure struct {
	Name string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Name, f.Err)
}

type Ingestor struct {
	blobs  repositories.IBlobRepository
	policy Policy
	log    *slog.Logger
}

func NewIngestor(blobs repositories.IBlobRepository, policy Policy, log *slog.Logger) *Ingestor {
	return &Ingestor{blobs: blobs, policy: policy, log: log}
}

// Ingest validates and stores a batch of raw files. The returned refs
// cover the accepted subset in input order; every rejected file appears
// in the failure list. No partial ref is ever produced: a file either
// yields a stored blob plus a ref, or a single Failure. A canceled
// context fails the files not yet processed.
func (i *Ingestor) Ingest(ctx context.Context, files []domain.RawFile) ([]domain.AttachmentRef, []Failure) {
	var refs []domain.AttachmentRef
	var failures []Failure

	for n, file := range files {
		if err := ctx.Err(); err != nil {
			for _, remaining := range files[n:] {
				failures = append(failures, Failure{Name: remaining.Name, Err: err})
			}
			break
		}
		ref, err := i.ingestOne(file)
		if err != nil {
			i.log.Debug("file rejected", "name", file.Name, "err", err)
			failures = append(failures, Failure{Name: file.Name, Err: err})
			continue
		}
		refs = append(refs, ref)
	}
	return refs, failures
}

func (i *Ingestor) ingestOne(file domain.RawFile) (domain.AttachmentRef, error) {
	if len(file.Data) == 0 {
		return domain.AttachmentRef{}, errors.ErrEmptyFile
	}
	if i.policy.MaxFileSizeBytes > 0 && int64(len(file.Data)) > i.policy.MaxFileSizeBytes {
		return domain.AttachmentRef{}, fmt.Errorf("%w: %d bytes", errors.ErrFileTooLarge, len(file.Data))
	}

	// The MIME type is sniffed from content, never trusted from the
	// file name.
	detected := mimetype.Detect(file.Data)
	if len(i.policy.AllowedMimeTypes) > 0 {
		allowed := lo.SomeBy(i.policy.AllowedMimeTypes, func(mime string) bool {
			return detected.Is(mime)
		})
		if !allowed {
			return domain.AttachmentRef{}, fmt.Errorf("%w: %s", errors.ErrMimeNotAllowed, detected.String())
		}
	}

	handle, err := i.blobs.Put(file.Data)
	if err != nil {
		return domain.AttachmentRef{}, err
	}
	return domain.AttachmentRef{
		DisplayName: file.Name,
		MimeType:    detected.String(),
		Handle:      handle,
	}, nil
}

// Release frees the content behind refs whose owning messages were
// discarded.
func (i *Ingestor) Release(handles ...domain.ContentHandle) error {
	return i.blobs.Release(handles...)
}
