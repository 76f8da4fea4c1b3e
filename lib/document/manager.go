package document

import (
	"regexp"

	"github.com/ether/richnote-go/lib/codec"
	"github.com/ether/richnote-go/lib/db"
	"github.com/ether/richnote-go/lib/exception"
	"github.com/ether/richnote-go/lib/hooks"
	"github.com/ether/richnote-go/lib/models/document"
	"github.com/ether/richnote-go/lib/store"
	"go.uber.org/zap"
)

var nameRegex *regexp.Regexp

func init() {
	nameRegex = regexp.MustCompile(`^[^/\\\x00]{1,64}$`)
}

// Session binds one open model to its document name. Name is empty for the
// scratch session that exists before anything is opened.
type Session struct {
	Name  string
	Model *Model
}

// Manager owns the single active session and the document lifecycle:
// create, open, rename, list, save. Saves always land somewhere — with no
// active document they are redirected to the scratch document.
type Manager struct {
	store    db.DataStore
	files    *store.FileStore
	hook     *hooks.Hook
	logger   *zap.SugaredLogger
	scratch  string
	defaults document.Settings
	active   *Session
}

func NewManager(dataStore db.DataStore, files *store.FileStore, hook *hooks.Hook,
	defaults document.Settings, scratchName string, logger *zap.SugaredLogger) *Manager {
	m := &Manager{
		store:    dataStore,
		files:    files,
		hook:     hook,
		logger:   logger,
		scratch:  scratchName,
		defaults: defaults,
	}

	m.setActive(&Session{Model: NewModel(defaults)})

	// Content mutations schedule a save of whatever is active; edits are
	// never silently lost even with nothing explicitly open.
	hook.EnqueueDocumentChangedHook(func(ctx *hooks.DocumentChangedContext) {
		if _, err := m.SaveActive(); err != nil {
			m.logger.Errorw("autosave failed", "document", ctx.DocumentName, "error", err)
		}
	})

	return m
}

func (m *Manager) setActive(session *Session) {
	m.active = session
	session.Model.SetOnChange(func() {
		m.hook.ExecuteDocumentChangedHooks(&hooks.DocumentChangedContext{DocumentName: session.Name})
	})
}

// ActiveSession never returns nil: at minimum the scratch session is open.
func (m *Manager) ActiveSession() *Session {
	return m.active
}

func (m *Manager) ActiveModel() *Model {
	return m.active.Model
}

func (m *Manager) IsValidDocumentName(name string) bool {
	return nameRegex.MatchString(name) && name != "." && name != ".."
}

// CreateDocument creates an empty document, persists it and makes it active.
func (m *Manager) CreateDocument(name string) error {
	if !m.IsValidDocumentName(name) {
		return exception.NewInvalidDocumentNameError(name)
	}
	if m.files.Exists(name) {
		return exception.NewNameConflictError(name)
	}

	model := NewModel(m.defaults)
	encoded, err := codec.Encode(model.Document(), model.Settings())
	if err != nil {
		return err
	}
	if err := m.files.Write(name, encoded); err != nil {
		return err
	}
	if err := m.store.CreateDocument(name); err != nil {
		return err
	}

	m.setActive(&Session{Name: name, Model: model})
	m.logger.Infow("document created", "document", name)
	return nil
}

// OpenDocument replaces the active session wholesale with the named
// document. Derived sizes and margins come out of the decode pass, never
// from the file.
func (m *Manager) OpenDocument(name string) error {
	raw, err := m.files.Read(name)
	if err != nil {
		return err
	}

	doc, settings := codec.Decode(raw)
	model := NewModelFromDocument(doc, settings)
	m.setActive(&Session{Name: name, Model: model})

	// The index self-heals: files that appeared out of band get a row on
	// first open.
	if exists, err := m.store.DoesDocumentExist(name); err == nil && exists != nil && !*exists {
		if err := m.store.CreateDocument(name); err != nil {
			m.logger.Warnw("could not index document", "document", name, "error", err)
		}
	}

	m.logger.Infow("document opened", "document", name)
	return nil
}

func (m *Manager) ListDocuments() ([]db.DocumentRecord, error) {
	return m.store.ListDocuments()
}

// RenameDocument refuses to clobber: an existing target surfaces a
// NameConflict and leaves both files untouched.
func (m *Manager) RenameDocument(oldName string, newName string) error {
	if !m.IsValidDocumentName(newName) {
		return exception.NewInvalidDocumentNameError(newName)
	}
	if err := m.files.Rename(oldName, newName); err != nil {
		return err
	}
	if err := m.store.RenameDocument(oldName, newName); err != nil {
		return err
	}
	if m.active.Name == oldName {
		m.active.Name = newName
	}
	m.logger.Infow("document renamed", "from", oldName, "to", newName)
	return nil
}

// SaveActive persists the active session. The returned flag reports the
// scratch redirect so callers can surface the status notice. A failed write
// leaves the in-memory model unchanged and propagates the error.
func (m *Manager) SaveActive() (scratch bool, err error) {
	session := m.active
	encoded, err := codec.Encode(session.Model.Document(), session.Model.Settings())
	if err != nil {
		return false, err
	}

	name := session.Name
	if name == "" {
		name = m.scratch
		scratch = true
	}
	if err := m.files.Write(name, encoded); err != nil {
		return scratch, err
	}
	if !scratch {
		if err := m.store.TouchDocument(name); err != nil {
			m.logger.Warnw("could not touch document index", "document", name, "error", err)
		}
	}
	return scratch, nil
}
