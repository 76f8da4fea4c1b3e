package db

import (
	"errors"
	"testing"
	"time"

	"github.com/ether/richnote-go/lib/exception"
)

func TestMemoryDataStoreLifecycle(t *testing.T) {
	store := NewMemoryDataStore()

	if err := store.CreateDocument("first"); err != nil {
		t.Fatal(err)
	}

	record, err := store.GetDocument("first")
	if err != nil {
		t.Fatal(err)
	}
	if record.Name != "first" || record.CreatedAt.IsZero() || record.UpdatedAt.IsZero() {
		t.Errorf("incomplete record: %+v", record)
	}

	exists, err := store.DoesDocumentExist("first")
	if err != nil {
		t.Fatal(err)
	}
	if exists == nil || !*exists {
		t.Error("created document should exist")
	}

	exists, err = store.DoesDocumentExist("second")
	if err != nil {
		t.Fatal(err)
	}
	if exists == nil || *exists {
		t.Error("unknown document should not exist")
	}

	if err := store.RemoveDocument("first"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetDocument("first"); err == nil {
		t.Error("removed document still readable")
	}
}

func TestMemoryDataStoreGetMissing(t *testing.T) {
	store := NewMemoryDataStore()
	_, err := store.GetDocument("absent")
	var notFound *exception.DocumentNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("got %v, want DocumentNotFoundError", err)
	}
}

func TestMemoryDataStoreListOrdersByRecency(t *testing.T) {
	store := NewMemoryDataStore()
	for _, name := range []string{"oldest", "middle", "newest"} {
		if err := store.CreateDocument(name); err != nil {
			t.Fatal(err)
		}
		// The clock resolution can swallow back-to-back writes.
		time.Sleep(2 * time.Millisecond)
	}

	if err := store.TouchDocument("oldest"); err != nil {
		t.Fatal(err)
	}

	records, err := store.ListDocuments()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Name != "oldest" {
		t.Errorf("touched document should list first, got %q", records[0].Name)
	}
}

func TestMemoryDataStoreRename(t *testing.T) {
	store := NewMemoryDataStore()
	if err := store.CreateDocument("before"); err != nil {
		t.Fatal(err)
	}

	if err := store.RenameDocument("before", "after"); err != nil {
		t.Fatal(err)
	}

	if _, err := store.GetDocument("before"); err == nil {
		t.Error("old name still resolves")
	}
	record, err := store.GetDocument("after")
	if err != nil {
		t.Fatal(err)
	}
	if record.Name != "after" {
		t.Errorf("got name %q", record.Name)
	}

	err = store.RenameDocument("missing", "anywhere")
	var notFound *exception.DocumentNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("got %v, want DocumentNotFoundError", err)
	}
}
