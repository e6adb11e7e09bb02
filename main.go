package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/homebudget/backend/internal/config"
	"github.com/homebudget/backend/internal/loader"
	"github.com/homebudget/backend/internal/models"
	"github.com/homebudget/backend/internal/repository"
	"github.com/homebudget/backend/internal/service"
	"github.com/homebudget/backend/internal/session"
	"github.com/homebudget/backend/internal/storage"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development.
	output := io.Writer(os.Stdout)
	if settings.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the data directory
	if err := os.MkdirAll(filepath.Dir(settings.DatabasePath), os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	db, err := models.Connect(settings.DatabasePath + "?_pragma=foreign_keys(1)")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	store, err := storage.NewLocal(settings.AttachmentsDir, settings.AttachmentsBaseURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	sess, err := session.New(repository.NewUsers(db))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	svc := service.New(db, sess, store, settings.PrefsPath)

	sess.SetActiveUserID(settings.DefaultUserID)

	authors, err := svc.UniqueAuthors()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	if err := sess.RegisterDiscoveredUsers(authors); err != nil {
		log.Warn().Err(err).Msg("user discovery incomplete")
	}

	if err := svc.ReloadCache(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Warm the ledger view off the main goroutine.
	result := <-loader.Run(svc.Rows)
	if result.Err != nil {
		log.Fatal().Msg(result.Err.Error())
	}

	wallets, err := svc.Wallets()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	log.Info().
		Int("transactions", len(result.Value)).
		Int("categories", len(svc.Categories())).
		Int("wallets", len(wallets)).
		Str("analytics", settings.AnalyticsURL).
		Msg("ledger loaded")
}
