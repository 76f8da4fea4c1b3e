package db

import "time"

// DocumentRecord is one row of the document index. Content bytes live in the
// file store; the index only names documents and orders them by recency.
type DocumentRecord struct {
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DocumentMethods interface {
	CreateDocument(name string) error
	GetDocument(name string) (*DocumentRecord, error)
	ListDocuments() ([]DocumentRecord, error)
	DoesDocumentExist(name string) (*bool, error)
	RenameDocument(oldName string, newName string) error
	TouchDocument(name string) error
	RemoveDocument(name string) error
}

type DataStore interface {
	DocumentMethods
	Close() error
}
