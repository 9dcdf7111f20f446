//go:build conntest

package conntest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/csvload/internal/db"
)

func TestStandardConnection_UserPassword(t *testing.T) {
	config, err := db.ParseConnectionString(connString)
	require.NoError(t, err)

	pool, err := db.NewStandardConnector(config).Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	var version string
	err = pool.QueryRow(context.Background(), "SELECT version()").Scan(&version)
	require.NoError(t, err)
	assert.Contains(t, version, "PostgreSQL")
}

func TestStandardConnection_WrongPassword(t *testing.T) {
	config, err := db.ParseConnectionString(connString)
	require.NoError(t, err)
	config.Password = "definitely-wrong-password"

	_, err = db.NewStandardConnector(config).Connect(context.Background())
	require.Error(t, err)
	assert.True(t,
		strings.Contains(err.Error(), "password") ||
			strings.Contains(err.Error(), "authentication"),
		"error should mention authentication: %v", err)
}
