package api

import (
	"github.com/ether/richnote-go/lib"
)

// InitAPI mounts the command surface the UI collaborator drives: document
// lifecycle under /api/documents, editing commands and format-state reads
// under /api/editor.
func InitAPI(initStore *lib.InitStore) {
	app := initStore.C

	app.Get("/api/documents", ListDocuments(initStore))
	app.Post("/api/documents", CreateDocument(initStore))
	app.Post("/api/documents/save", SaveDocument(initStore))
	app.Post("/api/documents/:name/open", OpenDocument(initStore))
	app.Post("/api/documents/:name/rename", RenameDocument(initStore))

	app.Get("/api/editor/state", EditorState(initStore))
	app.Post("/api/editor/selection", SetSelection(initStore))
	app.Get("/api/editor/commands", ListCommands(initStore))
	app.Post("/api/editor/commands/:commandId", InvokeCommand(initStore))
}
