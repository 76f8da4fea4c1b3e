package lib

import (
	"github.com/ether/richnote-go/lib/db"
	document2 "github.com/ether/richnote-go/lib/document"
	"github.com/ether/richnote-go/lib/hooks"
	"github.com/ether/richnote-go/lib/settings"
	"github.com/ether/richnote-go/lib/store"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InitStore bundles everything the API layer needs; main builds one and
// hands it to InitAPI.
type InitStore struct {
	C                 *fiber.App
	RetrievedSettings *settings.Settings
	Store             db.DataStore
	Files             *store.FileStore
	Manager           *document2.Manager
	Registry          *document2.Registry
	Validator         *validator.Validate
	Logger            *zap.SugaredLogger
	Hooks             *hooks.Hook
}
