// Package internal hosts operator-facing plumbing that no other module
// should depend on for behavior: the store inspector runs next to the
// assistant and reads BadgerDB directly.
package internal

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"unicode/utf8"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

const previewLimit = 120

type InspectRow struct {
	Key     string
	Size    int
	Preview string
}

// StatsProvider feeds live numbers into the dashboard, typically from
// an engine snapshot.
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves a read-only view over the store on its own
// listener. It never writes and tolerates a concurrently open database.
func StartDebugServer(db *badger.DB, port int, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "finding:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				value, err := item.ValueCopy(nil)
				if err != nil {
					return err
				}
				data.Items = append(data.Items, InspectRow{
					Key:     string(item.Key()),
					Size:    len(value),
					Preview: preview(value),
				})
			}
			return nil
		})

		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
	}()
}

// preview renders a printable prefix of the value; binary blobs show a
// placeholder instead of mangled bytes.
func preview(value []byte) string {
	if !utf8.Valid(value) {
		return "(binary)"
	}
	runes := []rune(string(value))
	if len(runes) > previewLimit {
		// Cut between runes, never inside one.
		return string(runes[:previewLimit]) + "…"
	}
	return string(runes)
}
