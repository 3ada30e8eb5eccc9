package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/api"
	"github.com/rpupo63/constructco-site-backend/auth"
	"github.com/rpupo63/constructco-site-backend/config"
	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/errs"
	"github.com/rpupo63/constructco-site-backend/models"
	"github.com/rpupo63/constructco-site-backend/services"
)

type bootstrapSettings struct {
	AdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	AdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}
	log.Info().Msg("Initializing app...")

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx := context.Background()

	if parameterPath := os.Getenv("SSM_PARAMETER_PATH"); parameterPath != "" {
		client, err := config.NewSSMClient(ctx, os.Getenv("AWS_REGION"))
		if err != nil {
			log.Fatal().Err(err).Msg("Error creating SSM client")
		}
		exported, err := config.ExportSSMParameters(ctx, client, parameterPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", parameterPath).Msg("Error loading SSM parameters")
		}
		log.Info().Int("count", exported).Str("path", parameterPath).Msg("Loaded SSM parameters")
	}

	var (
		dbSettings      database.Settings
		authSettings    auth.Settings
		notifySettings  services.NotifySettings
		storageSettings services.StorageSettings
		bootstrap       bootstrapSettings
	)
	for _, target := range []any{&dbSettings, &authSettings, &notifySettings, &storageSettings, &bootstrap} {
		if err := config.ParseEnv(target); err != nil {
			log.Fatal().Err(err).Msg("Error parsing configuration")
		}
	}

	db, err := database.Open(ctx, dbSettings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Error migrating database")
	}

	// If generating models, run generation and the column report, then exit
	if strings.ToLower(os.Getenv("GENERATE_MODELS")) == "true" {
		outPath := config.GetString(config.New(), "GENERATED_QUERY_PATH", "./query")
		log.Info().Str("outPath", outPath).Msg("Generating query helpers...")
		if err := models.GenerateQueries(db, outPath); err != nil {
			log.Fatal().Err(err).Msg("Error generating query helpers")
		}
		report, err := models.ColumnMismatchReport(db)
		if err != nil {
			log.Fatal().Err(err).Msg("Error building column mismatch report")
		}
		models.PrintColumnMismatchReport(os.Stdout, report)
		return
	}

	currentDB := database.New(db)

	if bootstrap.AdminEmail != "" && bootstrap.AdminPassword != "" {
		if err := ensureAdmin(ctx, currentDB.ProfileRepo(), bootstrap.AdminEmail, bootstrap.AdminPassword); err != nil {
			log.Fatal().Err(err).Str("email", bootstrap.AdminEmail).Msg("Error bootstrapping admin profile")
		}
	}

	tokens, err := auth.NewTokens(authSettings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error configuring tokens")
	}

	notifiers := services.NewNotifiers(notifySettings)

	var imageStore services.ImageStore
	s3Store, err := services.NewS3ImageStore(ctx, storageSettings)
	switch {
	case errors.Is(err, services.ErrStorageDisabled):
		log.Warn().Msg("S3_BUCKET not set, image uploads disabled")
	case err != nil:
		log.Fatal().Err(err).Msg("Error configuring image storage")
	default:
		imageStore = s3Store
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, tokens, api.WithNotifier(notifiers), api.WithImageStore(imageStore))
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
}

// ensureAdmin creates the profile with admin rights, or promotes it when it already exists
func ensureAdmin(ctx context.Context, profiles *database.ProfileRepo, email, password string) error {
	existing, err := profiles.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsAdmin {
			return nil
		}
		log.Info().Str("email", existing.Email).Msg("Promoting bootstrap profile to admin")
		return profiles.SetAdmin(ctx, existing.ID, true)
	case !errors.Is(err, errs.ErrNotFound):
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := profiles.Add(ctx, &models.Profile{Email: email, PasswordHash: hash, IsAdmin: true}); err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("Created bootstrap admin profile")
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
