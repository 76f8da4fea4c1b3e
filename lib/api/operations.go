package api

import (
	"errors"

	"github.com/ether/richnote-go/lib"
	document2 "github.com/ether/richnote-go/lib/document"
	"github.com/ether/richnote-go/lib/exception"
	"github.com/gofiber/fiber/v2"
)

// CreateDocumentRequest represents the request to create a document
type CreateDocumentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

// RenameDocumentRequest represents the request to rename a document
type RenameDocumentRequest struct {
	NewName string `json:"newName" validate:"required,min=1,max=64"`
}

// DocumentResponse represents one entry of the document listing
type DocumentResponse struct {
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// DocumentListResponse represents the document listing
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// SaveResponse represents the result of a save
type SaveResponse struct {
	Scratch bool   `json:"scratch"`
	Notice  string `json:"notice,omitempty"`
}

// EditorStateResponse represents the format state the UI mirrors
type EditorStateResponse struct {
	Document     string                `json:"document"`
	Selection    document2.Selection   `json:"selection"`
	Format       document2.FormatState `json:"format"`
	LinkState    int                   `json:"linkState"`
	DisplayedURL string                `json:"displayedUrl"`
}

// InvokeCommandResponse represents the state after a command ran
type InvokeCommandResponse struct {
	NeedsURL bool                  `json:"needsUrl,omitempty"`
	Format   document2.FormatState `json:"format"`
}

// CommandDescriptor represents one registered command and its toggle state
type CommandDescriptor struct {
	ID      string `json:"id"`
	Toggle  bool   `json:"toggle"`
	Checked bool   `json:"checked"`
}

func errorJSON(c *fiber.Ctx, err error) error {
	var nameConflict *exception.NameConflictError
	var notFound *exception.DocumentNotFoundError
	var invalidName *exception.InvalidDocumentNameError
	switch {
	case errors.As(err, &nameConflict):
		return c.Status(fiber.StatusConflict).JSON(nameConflict.AppError)
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(notFound.AppError)
	case errors.As(err, &invalidName):
		return c.Status(fiber.StatusBadRequest).JSON(invalidName.AppError)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(&exception.AppError{
		Code:    "INTERNAL_ERROR",
		Message: err.Error(),
	})
}

func ListDocuments(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := initStore.Manager.ListDocuments()
		if err != nil {
			return errorJSON(c, err)
		}

		response := DocumentListResponse{Documents: make([]DocumentResponse, 0, len(records))}
		for _, record := range records {
			response.Documents = append(response.Documents, DocumentResponse{
				Name:      record.Name,
				CreatedAt: record.CreatedAt.UnixMilli(),
				UpdatedAt: record.UpdatedAt.UnixMilli(),
			})
		}
		return c.JSON(response)
	}
}

func CreateDocument(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request CreateDocumentRequest
		if err := c.BodyParser(&request); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		if err := initStore.Validator.Struct(&request); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}

		if err := initStore.Manager.CreateDocument(request.Name); err != nil {
			return errorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusCreated)
	}
}

func OpenDocument(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := initStore.Manager.OpenDocument(c.Params("name")); err != nil {
			return errorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

func RenameDocument(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request RenameDocumentRequest
		if err := c.BodyParser(&request); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		if err := initStore.Validator.Struct(&request); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}

		if err := initStore.Manager.RenameDocument(c.Params("name"), request.NewName); err != nil {
			return errorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

func SaveDocument(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scratch, err := initStore.Manager.SaveActive()
		if err != nil {
			return errorJSON(c, err)
		}

		response := SaveResponse{Scratch: scratch}
		if scratch {
			response.Notice = exception.NewNoActiveDocumentError().Message
		}
		return c.JSON(response)
	}
}

func EditorState(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := initStore.Manager.ActiveSession()
		model := session.Model
		return c.JSON(EditorStateResponse{
			Document:     session.Name,
			Selection:    model.Selection(),
			Format:       model.FormatState(),
			LinkState:    int(model.LinkState()),
			DisplayedURL: model.DisplayedURL(),
		})
	}
}

func SetSelection(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var selection document2.Selection
		if err := c.BodyParser(&selection); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}

		initStore.Manager.ActiveModel().SetSelection(selection)
		return c.SendStatus(fiber.StatusOK)
	}
}

func ListCommands(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := initStore.Manager.ActiveModel().FormatState()
		descriptors := make([]CommandDescriptor, 0)
		for _, cmd := range initStore.Registry.Commands() {
			descriptor := CommandDescriptor{ID: cmd.ID, Toggle: cmd.QueryState != nil}
			if cmd.QueryState != nil {
				descriptor.Checked = cmd.QueryState(state)
			}
			descriptors = append(descriptors, descriptor)
		}
		return c.JSON(descriptors)
	}
}

func InvokeCommand(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cmd, ok := initStore.Registry.Get(c.Params("commandId"))
		if !ok {
			return c.SendStatus(fiber.StatusNotFound)
		}

		var args document2.CommandArgs
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&args); err != nil {
				return c.SendStatus(fiber.StatusBadRequest)
			}
		}

		model := initStore.Manager.ActiveModel()
		if err := cmd.Invoke(model, args); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(&exception.AppError{
				Code:    "INVALID_COMMAND_ARGS",
				Message: err.Error(),
			})
		}

		return c.JSON(InvokeCommandResponse{
			NeedsURL: model.LinkState() == document2.LinkAwaitingURL,
			Format:   model.FormatState(),
		})
	}
}
