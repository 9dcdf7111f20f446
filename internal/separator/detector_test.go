package separator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/csvload/pkg/csvload"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   rune
	}{
		{"comma separated", "name,age,city", ','},
		{"semicolon separated", "name;age;city", ';'},
		{"mixed favors comma", "a,b;c,d", ','}, // 3 comma fields vs 2 semicolon fields
		{"mixed favors semicolon", "a;b;c,d", ';'},
		{"tie resolves to comma", "a,b;c;d,e", ','}, // 3 vs 3
		{"single column", "name", ','},
		{"empty line", "", ','},
		{"only semicolons", ";;;", ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.header))
		})
	}
}

func TestDetectFile(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "input.csv")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("reads only the header line", func(t *testing.T) {
		// Data lines are semicolon-heavy but must not influence detection
		path := writeFile(t, "name,age\nx;y;z;w;v\n")
		sep, err := DetectFile(path)
		require.NoError(t, err)
		assert.Equal(t, ',', sep)
	})

	t.Run("semicolon header", func(t *testing.T) {
		path := writeFile(t, "name;age;city\n1;2;3\n")
		sep, err := DetectFile(path)
		require.NoError(t, err)
		assert.Equal(t, ';', sep)
	})

	t.Run("header without trailing newline", func(t *testing.T) {
		path := writeFile(t, "name;age")
		sep, err := DetectFile(path)
		require.NoError(t, err)
		assert.Equal(t, ';', sep)
	})

	t.Run("empty file fails detection", func(t *testing.T) {
		path := writeFile(t, "")
		_, err := DetectFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, csvload.ErrDetectionFailed))
	})

	t.Run("missing file fails detection", func(t *testing.T) {
		_, err := DetectFile(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, csvload.ErrDetectionFailed))
	})
}
