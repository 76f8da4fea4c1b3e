package main

import (
	"fmt"

	"github.com/ether/richnote-go/lib"
	"github.com/ether/richnote-go/lib/api"
	"github.com/ether/richnote-go/lib/db"
	document2 "github.com/ether/richnote-go/lib/document"
	"github.com/ether/richnote-go/lib/hooks"
	"github.com/ether/richnote-go/lib/settings"
	"github.com/ether/richnote-go/lib/store"
	"github.com/ether/richnote-go/lib/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func main() {
	retrievedSettings, err := settings.ReadConfig("")
	if err != nil {
		panic(err)
	}

	setupLogger := utils.SetupLogger(retrievedSettings.LogLevel)
	defer setupLogger.Sync()

	setupLogger.Info("Starting Richnote Go...")

	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())
	retrievedHooks := hooks.NewHook()

	dataStore, err := db.NewSQLiteDB(retrievedSettings.DBSettings.Filename)
	if err != nil {
		setupLogger.Fatal("Error opening document index: " + err.Error())
		return
	}
	defer dataStore.Close()

	files, err := store.NewFileStore(retrievedSettings.DataRoot)
	if err != nil {
		setupLogger.Fatal("Error preparing data root: " + err.Error())
		return
	}

	manager := document2.NewManager(dataStore, files, &retrievedHooks,
		retrievedSettings.DocumentDefaults(), retrievedSettings.ScratchDocument, setupLogger)
	registry := document2.NewRegistry()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	initStore := &lib.InitStore{
		C:                 app,
		RetrievedSettings: retrievedSettings,
		Store:             dataStore,
		Files:             files,
		Manager:           manager,
		Registry:          registry,
		Validator:         validatorEvaluator,
		Logger:            setupLogger,
		Hooks:             &retrievedHooks,
	}
	api.InitAPI(initStore)

	fiberString := fmt.Sprintf("%s:%s", retrievedSettings.IP, retrievedSettings.Port)
	setupLogger.Info("Listening for editor commands on " + fiberString)
	if err := app.Listen(fiberString); err != nil {
		setupLogger.Fatal("Error starting server: " + err.Error())
	}
}
