package db

import (
	"sort"
	"time"

	"github.com/ether/richnote-go/lib/exception"
)

// MemoryDataStore is the test seam: same contract as SQLiteDB, no disk.
type MemoryDataStore struct {
	documents map[string]DocumentRecord
}

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		documents: make(map[string]DocumentRecord),
	}
}

func (m *MemoryDataStore) CreateDocument(name string) error {
	now := time.Now()
	if existing, ok := m.documents[name]; ok {
		existing.UpdatedAt = now
		m.documents[name] = existing
		return nil
	}
	m.documents[name] = DocumentRecord{Name: name, CreatedAt: now, UpdatedAt: now}
	return nil
}

func (m *MemoryDataStore) GetDocument(name string) (*DocumentRecord, error) {
	record, ok := m.documents[name]
	if !ok {
		return nil, exception.NewDocumentNotFoundError(name)
	}
	return &record, nil
}

func (m *MemoryDataStore) ListDocuments() ([]DocumentRecord, error) {
	records := make([]DocumentRecord, 0, len(m.documents))
	for _, record := range m.documents {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
	return records, nil
}

func (m *MemoryDataStore) DoesDocumentExist(name string) (*bool, error) {
	_, ok := m.documents[name]
	return &ok, nil
}

func (m *MemoryDataStore) RenameDocument(oldName string, newName string) error {
	record, ok := m.documents[oldName]
	if !ok {
		return exception.NewDocumentNotFoundError(oldName)
	}
	delete(m.documents, oldName)
	record.Name = newName
	record.UpdatedAt = time.Now()
	m.documents[newName] = record
	return nil
}

func (m *MemoryDataStore) TouchDocument(name string) error {
	record, ok := m.documents[name]
	if !ok {
		return nil
	}
	record.UpdatedAt = time.Now()
	m.documents[name] = record
	return nil
}

func (m *MemoryDataStore) RemoveDocument(name string) error {
	delete(m.documents, name)
	return nil
}

func (m *MemoryDataStore) Close() error {
	return nil
}
