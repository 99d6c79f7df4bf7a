//go:generate go run go.uber.org/mock/mockgen -source=blob.go -destination=../mocks/mock_blob_repository.go -package=mocks
package repositories

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"biograph/domain"
	"biograph/errors"

	"github.com/dgraph-io/badger/v4"
)

const blobPrefix = "blob:"

type IBlobRepository interface {
	Put(data []byte) (domain.ContentHandle, error)
	Get(handle domain.ContentHandle) ([]byte, error)
	Release(handles ...domain.ContentHandle) error
}

// BlobRepository owns the bytes behind attachment content handles.
// Storage is content-addressed: the handle is derived from the SHA-256
// of the payload, so ingesting the same file twice yields the same
// handle and a single stored copy.
type BlobRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBlobRepository(db *badger.DB, log *slog.Logger) BlobRepository {
	return BlobRepository{db: db, log: log}
}

// Put stores the payload and returns its handle.
// The key is formatted as "blob:{sha256_hex}" so that re-uploads are
// deduplicated for free by the keyspace itself.
func (b BlobRepository) Put(data []byte) (domain.ContentHandle, error) {
	sum := sha256.Sum256(data)
	handle := domain.ContentHandle(blobPrefix + hex.EncodeToString(sum[:]))
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(handle), data)
	})
	if err != nil {
		return "", fmt.Errorf("storing blob: %w", err)
	}
	return handle, nil
}

func (b BlobRepository) Get(handle domain.ContentHandle) ([]byte, error) {
	if !strings.HasPrefix(string(handle), blobPrefix) {
		return nil, errors.ErrInvalidHandle
	}
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(handle))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.ErrBlobNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Release deletes the content behind the given handles. Called on
// session reset, when the owning messages are discarded. Unknown
// handles are ignored so a double release stays harmless.
func (b BlobRepository) Release(handles ...domain.ContentHandle) error {
	return b.db.Update(func(txn *badger.Txn) error {
		for _, h := range handles {
			if !strings.HasPrefix(string(h), blobPrefix) {
				continue
			}
			if err := txn.Delete([]byte(h)); err != nil && err != badger.ErrKeyNotFound {
				return err
			}
		}
		return nil
	})
}
