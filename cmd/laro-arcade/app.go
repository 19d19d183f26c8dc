package main

import (
	"github.com/ericogr/laro-arcade/internal/config"
	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/ericogr/laro-arcade/internal/logging"
	"github.com/ericogr/laro-arcade/internal/storage"
)

func loadEnvOrExit() config.Env {
	env, err := config.LoadEnv()
	if err != nil {
		logging.Fatal("Invalid environment", err, nil)
	}
	return env
}

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid laro configuration", err, logging.Fields{constants.LogFieldPath: path, "hint": "provide a JSON or .toml file with optional 'server' and 'games' sections, or remove it to use the defaults"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldDB: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}

// warnMissingEnv logs optional settings that change behaviour when absent.
func warnMissingEnv(env config.Env) {
	if env.SessionSecret == "" {
		logging.Warn(constants.EnvSessionSecret+" not set; using a random secret, sessions end on restart", nil, nil)
	}
	if !env.GoogleEnabled() {
		logging.Info("Google sign-in disabled", logging.Fields{"missing": constants.EnvGoogleClientID + "/" + constants.EnvGoogleClientSecret})
	}
}
