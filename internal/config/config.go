package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey     = "API_PORT"
	dbConnEnvKey      = "DB_CONNECTION_URL"
	tokenSecretEnvKey = "TOKEN_SECRET"
)

type App struct {
	Port            string
	DBConnectionURL string
	TokenSecret     string
}

// NewApp reads configuration from the environment. A .env file in the
// working directory is loaded first if present. The token secret is
// required: without it the server must not start.
func NewApp() (App, error) {
	// missing .env is fine, variables may come from the environment itself
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	tokenSecret, ok := os.LookupEnv(tokenSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, tokenSecretEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		TokenSecret:     tokenSecret,
	}, nil
}
