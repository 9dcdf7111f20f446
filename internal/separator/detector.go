package separator

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/vvka-141/csvload/pkg/csvload"
)

// Detect infers the field separator from a header line. It returns ';'
// only when splitting on ';' yields strictly more fields than splitting
// on ','; otherwise it returns ','.
func Detect(headerLine string) rune {
	commaFields := len(strings.Split(headerLine, ","))
	semicolonFields := len(strings.Split(headerLine, ";"))

	if semicolonFields > commaFields {
		return ';'
	}
	return ','
}

// DetectFile reads only the first line of the file at path and infers the
// separator from it. An unreadable or empty file yields an error wrapping
// csvload.ErrDetectionFailed; the caller must abort before any store
// interaction.
func DetectFile(path string) (rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("cannot read input file %q: %v: %w", path, err, csvload.ErrDetectionFailed)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Headers wider than bufio's default line limit are legitimate
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("cannot read input file %q: %v: %w", path, err, csvload.ErrDetectionFailed)
		}
		return 0, fmt.Errorf("input file %q is empty: %w", path, csvload.ErrDetectionFailed)
	}

	return Detect(scanner.Text()), nil
}
