//go:generate go run go.uber.org/mock/mockgen -source=finding.go -destination=../mocks/mock_finding_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"biograph/domain"
	"biograph/errors"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
)

type IFindingRepository interface {
	Store(finding domain.Finding) error
	GetByID(id string) (domain.Finding, error)
	Search(ctx context.Context, terms string, limit int) ([]domain.Finding, error)
	List(limit int) ([]domain.Finding, error)
	Flush() error
}

// FindingRepository persists contributed findings in BadgerDB and keeps
// a Bluge full-text index alongside so the knowledge store is searchable
// by drug name, mechanism or free text.
type FindingRepository struct {
	db     *badger.DB
	writer *bluge.Writer
	log    *slog.Logger
}

func NewFindingRepository(db *badger.DB, writer *bluge.Writer, log *slog.Logger) *FindingRepository {
	return &FindingRepository{db: db, writer: writer, log: log}
}

// Store persists a finding and indexes it.
// The key is formatted as "finding:{ts_padded}:{uuid}" to:
//  1. Keep contributions chronologically sorted under a prefix scan.
//  2. Disambiguate two submissions landing on the same nanosecond.
func (f *FindingRepository) Store(finding domain.Finding) error {
	key := fmt.Sprintf("finding:%019d:%s",
		finding.SubmittedAt.UnixNano(),
		finding.ID,
	)
	bytes, err := json.Marshal(finding)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	err = f.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return err
	}
	return f.index(key, finding)
}

func (f *FindingRepository) index(key string, finding domain.Finding) error {
	doc := bluge.NewDocument(key)
	doc.AddField(bluge.NewTextField("drug", finding.DrugName).StoreValue())
	doc.AddField(bluge.NewTextField("mechanism", finding.Mechanism))
	doc.AddField(bluge.NewTextField("indication", finding.Indication))
	doc.AddField(bluge.NewTextField("text", strings.Join([]string{
		finding.Description,
		finding.Notes,
		strings.Join(finding.SideEffects, " "),
		strings.Join(finding.Interactions, " "),
	}, " ")))
	return f.writer.Update(doc.ID(), doc)
}

// Flush forces the index segment to disk so freshly stored findings
// become visible to Search.
func (f *FindingRepository) Flush() error {
	// Bluge has no explicit flush; a batch round-trip forces a segment.
	batch := bluge.NewBatch()
	return f.writer.Batch(batch)
}

func (f *FindingRepository) GetByID(id string) (domain.Finding, error) {
	var found *domain.Finding
	err := f.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte("finding:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if !strings.HasSuffix(string(it.Item().Key()), id) {
				continue
			}
			return it.Item().Value(func(value []byte) error {
				var finding domain.Finding
				if err := json.Unmarshal(value, &finding); err != nil {
					return err
				}
				found = &finding
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return domain.Finding{}, err
	}
	if found == nil {
		return domain.Finding{}, errors.ErrFindingNotFound
	}
	return *found, nil
}

// Search runs a match query across the indexed fields and resolves the
// hits back to full records through BadgerDB.
func (f *FindingRepository) Search(ctx context.Context, terms string, limit int) ([]domain.Finding, error) {
	reader, err := f.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	query := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(terms).SetField("drug")).
		AddShould(bluge.NewMatchQuery(terms).SetField("mechanism")).
		AddShould(bluge.NewMatchQuery(terms).SetField("indication")).
		AddShould(bluge.NewMatchQuery(terms).SetField("text"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}

	var keys []string
	match, err := iterator.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				keys = append(keys, string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return f.fetch(keys)
}

// List returns the most recent findings, newest first.
func (f *FindingRepository) List(limit int) ([]domain.Finding, error) {
	var findings []domain.Finding
	err := f.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte("finding:")
		// Reverse iteration starts past the newest timestamp.
		seekKey := append([]byte("finding:"), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(findings) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var finding domain.Finding
				if err := json.Unmarshal(value, &finding); err != nil {
					return err
				}
				findings = append(findings, finding)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return findings, err
}

func (f *FindingRepository) fetch(keys []string) ([]domain.Finding, error) {
	var findings []domain.Finding
	err := f.db.View(func(txn *badger.Txn) error {
		for _, key := range keys {
			item, err := txn.Get([]byte(key))
			if err == badger.ErrKeyNotFound {
				// Index ahead of the store; skip the orphan.
				f.log.Warn("indexed finding missing from store", "key", key)
				continue
			}
			if err != nil {
				return err
			}
			err = item.Value(func(value []byte) error {
				var finding domain.Finding
				if err := json.Unmarshal(value, &finding); err != nil {
					return err
				}
				findings = append(findings, finding)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return findings, err
}
