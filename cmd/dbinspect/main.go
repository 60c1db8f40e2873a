// Package main provides a read-only inspector for the catalog database.
//
// Usage:
//
//	DATA_PATH=~/Pressroom/data go run ./cmd/dbinspect
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/Pressroom/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Catalog Inspection ===")
	fmt.Println()

	var (
		bookCount, bookDrafts, danglingAuthors int
		journalCount, journalDrafts            int
		authorCount                            int
		assetCount                             int
		assetBytes                             int64
	)

	authorIDs := make(map[string]bool)
	err = db.View(func(txn *badger.Txn) error {
		// Authors first so book credits can be checked against them.
		if err := scan(txn, "author:", func(a *domain.Author) {
			authorCount++
			authorIDs[a.ID] = true
		}); err != nil {
			return err
		}

		if err := scan(txn, "book:", func(b *domain.Book) {
			bookCount++
			if !b.IsPublished() {
				bookDrafts++
			}
			if b.AuthorID != "" && !authorIDs[b.AuthorID] {
				danglingAuthors++
				fmt.Printf("Book with dangling author credit: %s\n", b.Title)
				fmt.Printf("  ID: %s\n", b.ID)
				fmt.Printf("  Author ID: %s\n", b.AuthorID)
				fmt.Println()
			}
		}); err != nil {
			return err
		}

		if err := scan(txn, "journal:", func(j *domain.Journal) {
			journalCount++
			if !j.IsPublished() {
				journalDrafts++
			}
		}); err != nil {
			return err
		}

		return scan(txn, "asset:", func(a *domain.Asset) {
			assetCount++
			assetBytes += a.Size
		})
	})
	if err != nil {
		log.Fatalf("Error iterating database: %v", err)
	}

	fmt.Println("=== Summary ===")
	fmt.Printf("Authors:  %d\n", authorCount)
	fmt.Printf("Books:    %d (%d drafts, %d dangling author credits)\n", bookCount, bookDrafts, danglingAuthors)
	fmt.Printf("Journals: %d (%d drafts)\n", journalCount, journalDrafts)
	fmt.Printf("Assets:   %d (%.1f MB of metadata-tracked bytes)\n", assetCount, float64(assetBytes)/(1024*1024))
}

// scan iterates every value under prefix, unmarshals it as T, and hands it
// to fn. Decode failures are logged and skipped, not fatal: an inspector
// should survive a partially corrupt database.
func scan[T any](txn *badger.Txn, prefix string, fn func(*T)) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
		item := it.Item()
		err := item.Value(func(val []byte) error {
			var v T
			if err := json.Unmarshal(val, &v); err != nil {
				return err
			}
			fn(&v)
			return nil
		})
		if err != nil {
			log.Printf("Error reading %s: %v", item.Key(), err)
		}
	}
	return nil
}
