package main

import (
	"chat-session/auth"
	"chat-session/client"
	"chat-session/contract"
	"chat-session/internal"
	"chat-session/repositories"
	"fmt"
	"log/slog"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// app holds what every subcommand needs: configuration, logger, durable store and REST client.
type app struct {
	config   internal.Config
	log      *slog.Logger
	db       *badger.DB
	store    repositories.CredentialRepository
	resolver *auth.Resolver
	address  *auth.LaunchAddress
	api      *client.ChatAPI
}

func loadConfig() (internal.Config, error) {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return config, &exitError{code: exitConfig, err: fmt.Errorf("config error: %w", err)}
	}
	if err := config.Validate(); err != nil {
		return config, &exitError{code: exitConfig, err: err}
	}
	return config, nil
}

func newApp() (*app, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	options := badger.DefaultOptions(config.StorePath).WithLoggingLevel(badger.WARNING)
	if config.StorePath == "" {
		log.Warn("CHAT_STORE_PATH is empty, the credential will not survive this process")
		options = badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.WARNING)
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("credential store opening failed: %w", err)
	}

	address, err := auth.NewLaunchAddress(config.BootstrapURL)
	if err != nil {
		_ = db.Close()
		return nil, &exitError{code: exitConfig, err: err}
	}

	store := repositories.NewCredentialRepository(db, log, config.Origin)
	var parent contract.ICredentialStore
	if config.ParentStorePath != "" {
		parent = repositories.NewParentCredentialStore(config.ParentStorePath, config.Origin, log)
	}

	return &app{
		config:   config,
		log:      log,
		db:       db,
		store:    store,
		resolver: auth.NewResolver(log, address, store, parent),
		address:  address,
		api:      client.NewChatAPI(config.APIURL, config.RequestTimeout, log),
	}, nil
}

func (a *app) Close() {
	a.log.Debug("Closing credential store")
	_ = a.db.Close()
}
