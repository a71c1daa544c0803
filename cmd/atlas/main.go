package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/atlas-intel/atlas-cli/internal/adapters/driven/assets/bucket"
	"github.com/atlas-intel/atlas-cli/internal/adapters/driven/auth"
	"github.com/atlas-intel/atlas-cli/internal/adapters/driven/config/file"
	"github.com/atlas-intel/atlas-cli/internal/adapters/driven/datastore/postgres"
	"github.com/atlas-intel/atlas-cli/internal/adapters/driven/storage/sqlite"
	"github.com/atlas-intel/atlas-cli/internal/adapters/driving/cli"
	"github.com/atlas-intel/atlas-cli/internal/adapters/driving/tui"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/core/services"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

const (
	defaultClientID = "atlas-cli"

	keyDatastoreURL = "datastore.url"
	keyAssetsURL    = "assets.url"
	keyAssetsToken  = "assets.token"
	keyTokenURL     = "auth.token_url"
	keyClientID     = "auth.client_id"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env can supply DATABASE_URL and friends in development.
	_ = godotenv.Load()

	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening draft store: %w", err)
	}
	defer store.Close()

	clientID := setting(config.GetString(keyClientID), "ATLAS_CLIENT_ID", defaultClientID)
	tokenURL := setting(config.GetString(keyTokenURL), "ATLAS_TOKEN_URL", "")

	// With an identity endpoint configured, sessions refresh their
	// access token near expiry; without one they only read the config.
	var sessions driven.SessionProvider = auth.NewConfigSessionProvider(config)
	if tokenURL != "" {
		sessions = auth.NewRefreshSessionProvider(config, clientID, tokenURL)
	}

	svcs := cli.Services{
		Access:    services.NewAccessService(sessions),
		Drafts:    store.DraftStore(),
		Config:    config,
		Login:     auth.NewLoginClient(config, clientID, tokenURL),
		RunWizard: tui.RunWizard,
	}

	// The datastore is optional at startup so auth and draft commands
	// work before the backend is configured.
	if databaseURL := setting(config.GetString(keyDatastoreURL), "DATABASE_URL", ""); databaseURL != "" {
		db, err := postgres.New(context.Background(), databaseURL)
		if err != nil {
			return fmt.Errorf("connecting to datastore: %w", err)
		}
		defer db.Close()

		assets := bucket.New(
			setting(config.GetString(keyAssetsURL), "ATLAS_ASSETS_URL", ""),
			setting(config.GetString(keyAssetsToken), "ATLAS_ASSETS_TOKEN", ""),
		)

		svcs.Profiles = services.NewProfileService(db)
		svcs.Submission = services.NewSubmissionService(db, assets)
	} else {
		logger.Debug("no datastore URL configured; profile commands disabled")
	}

	cli.SetServices(svcs)
	cli.SetVersion(version)
	return cli.Execute()
}

// setting resolves a value from config, then environment, then default.
func setting(configured, envKey, fallback string) string {
	if configured != "" {
		return configured
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}
