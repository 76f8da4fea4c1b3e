package exception

import "fmt"

type DocumentNotFoundError struct {
	*AppError
	Name string
}

func NewDocumentNotFoundError(name string) *DocumentNotFoundError {
	return &DocumentNotFoundError{
		AppError: &AppError{
			Code:    "DOCUMENT_NOT_FOUND",
			Message: fmt.Sprintf("document '%s' does not exist", name),
		},
		Name: name,
	}
}

// NameConflictError signals that a save-as/rename target already exists.
// The original file is untouched when this is returned.
type NameConflictError struct {
	*AppError
	Name string
}

func NewNameConflictError(name string) *NameConflictError {
	return &NameConflictError{
		AppError: &AppError{
			Code:    "NAME_CONFLICT",
			Message: fmt.Sprintf("a document named '%s' already exists", name),
		},
		Name: name,
	}
}

type InvalidDocumentNameError struct {
	*AppError
	Name string
}

func NewInvalidDocumentNameError(name string) *InvalidDocumentNameError {
	return &InvalidDocumentNameError{
		AppError: &AppError{
			Code:    "INVALID_DOCUMENT_NAME",
			Message: fmt.Sprintf("'%s' is not a valid document name", name),
		},
		Name: name,
	}
}

// NoActiveDocumentError is a status notice rather than a failure: the save
// was redirected to the scratch document.
type NoActiveDocumentError struct {
	*AppError
}

func NewNoActiveDocumentError() *NoActiveDocumentError {
	return &NoActiveDocumentError{
		AppError: &AppError{
			Code:    "NO_ACTIVE_DOCUMENT",
			Message: "no document is active; edits were saved to the scratch document",
		},
	}
}
