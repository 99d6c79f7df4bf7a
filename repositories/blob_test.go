package repositories

import (
	"log/slog"
	"testing"

	"biograph/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Put_Then_Get_Roundtrip(t *testing.T) {
	req := require.New(t)
	repository := NewBlobRepository(openTestDB(t), slog.Default())

	payload := []byte("patient cohort summary, March")
	handle, err := repository.Put(payload)
	req.NoError(err)
	req.Contains(string(handle), "blob:")

	fetched, err := repository.Get(handle)
	req.NoError(err)
	req.Equal(payload, fetched)
}

func Test_Same_Content_Yields_Same_Handle(t *testing.T) {
	req := require.New(t)
	repository := NewBlobRepository(openTestDB(t), slog.Default())

	first, err := repository.Put([]byte("identical bytes"))
	req.NoError(err)
	second, err := repository.Put([]byte("identical bytes"))
	req.NoError(err)
	req.Equal(first, second)

	other, err := repository.Put([]byte("different bytes"))
	req.NoError(err)
	req.NotEqual(first, other)
}

func Test_Get_Unknown_Handle(t *testing.T) {
	req := require.New(t)
	repository := NewBlobRepository(openTestDB(t), slog.Default())

	_, err := repository.Get("blob:0000000000000000000000000000000000000000000000000000000000000000")
	req.ErrorIs(err, errors.ErrBlobNotFound)

	_, err = repository.Get("not-a-handle")
	req.ErrorIs(err, errors.ErrInvalidHandle)
}

func Test_Release_Deletes_And_Tolerates_Double_Release(t *testing.T) {
	req := require.New(t)
	repository := NewBlobRepository(openTestDB(t), slog.Default())

	handle, err := repository.Put([]byte("to be discarded"))
	req.NoError(err)

	req.NoError(repository.Release(handle))
	_, err = repository.Get(handle)
	req.ErrorIs(err, errors.ErrBlobNotFound)

	// Releasing again, or releasing junk, must stay silent.
	req.NoError(repository.Release(handle, "not-a-handle"))
}
