package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vvka-141/csvload/pkg/csvload"
)

// pgpassPath returns the platform-appropriate .pgpass file path.
func pgpassPath() string {
	if custom := os.Getenv("PGPASSFILE"); custom != "" {
		return custom
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "postgresql", "pgpass.conf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pgpass")
}

// applyPgpassPassword fills in the password from the .pgpass file when no
// other source provided one. Matching follows the PostgreSQL format:
// host:port:database:username:password, with * as a wildcard in any of
// the first four fields.
func applyPgpassPassword(cfg *csvload.ConnectionConfig) {
	if cfg.Password != "" {
		return
	}

	path := pgpassPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	port := fmt.Sprintf("%d", cfg.Port)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitPgpassLine(line)
		if len(fields) != 5 {
			continue
		}

		if matchPgpassField(fields[0], cfg.Host) &&
			matchPgpassField(fields[1], port) &&
			matchPgpassField(fields[2], cfg.Database) &&
			matchPgpassField(fields[3], cfg.Username) {
			cfg.Password = fields[4]
			return
		}
	}
}

// splitPgpassLine splits a .pgpass line on unescaped colons and resolves
// the \: and \\ escapes in each field.
func splitPgpassLine(line string) []string {
	var fields []string
	var field strings.Builder

	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())
	return fields
}

func matchPgpassField(pattern, value string) bool {
	return pattern == "*" || pattern == value
}
