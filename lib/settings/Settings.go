package settings

import (
	"github.com/ether/richnote-go/lib/models/document"
)

// Typography holds the default modular scale applied to new documents.
// Every saved document carries its own copy in its header.
type Typography struct {
	ScaleBase  float64
	ScaleRatio float64
}

type DBSettings struct {
	Filename string
}

type Settings struct {
	IP   string
	Port string

	// DataRoot is the user-data directory holding the document files.
	DataRoot string
	// ScratchDocument receives saves made with no active document.
	ScratchDocument string

	DBSettings *DBSettings

	Typography  Typography
	AccentColor string

	LogLevel string
}

// DocumentDefaults bridges app configuration to the document-scoped
// settings a fresh document starts with.
func (s *Settings) DocumentDefaults() document.Settings {
	return document.Settings{
		ScaleBase:   s.Typography.ScaleBase,
		ScaleRatio:  s.Typography.ScaleRatio,
		AccentColor: s.AccentColor,
	}
}
