package cli

import (
	"os"

	"github.com/vvka-141/csvload/internal/config"
	"github.com/vvka-141/csvload/internal/db"
	"github.com/vvka-141/csvload/pkg/csvload"
)

// connectionStringFromEnv returns the CSVLOAD_CONNECTION_STRING
// environment variable. DATABASE_URL is handled further down by the
// resolver, where granular flags can still override it.
func connectionStringFromEnv() string {
	return os.Getenv("CSVLOAD_CONNECTION_STRING")
}

// resolveConnection consolidates connection resolution for the load and
// validate commands. It handles the connection string flag, granular
// flags, environment variables and csvload.yaml.
func resolveConnection(
	connStringFlag string,
	granularFlags *db.GranularConnFlags,
	projectConfig *config.ProjectConfig,
) (*csvload.ConnectionConfig, error) {
	connString := connStringFlag
	if connString == "" {
		connString = connectionStringFromEnv()
	}

	envVars := db.LoadFromEnvironment()

	return db.ResolveConnectionParams(connString, granularFlags, envVars, projectConfig)
}
