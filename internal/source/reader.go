package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/csvload/pkg/csvload"
)

// ReadFile parses the delimited file at path using the given separator and
// returns its data lines as records. The header line is consumed to name
// the fields and is not itself a record.
func ReadFile(path string, sep rune) ([]csvload.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", path, err)
	}
	defer f.Close()

	return Read(f, sep)
}

// Read parses delimited text from r. Data lines may be ragged: a line with
// fewer fields than the header produces a record with fewer fields, and
// values beyond the header's width are dropped since they have no name.
func Read(r io.Reader, sep rune) ([]csvload.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input has no header line: %w", csvload.ErrDetectionFailed)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse header line: %w", err)
	}

	var records []csvload.Record
	line := 0
	for {
		values, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse line %d: %w", line+1, err)
		}

		line++
		n := len(values)
		if n > len(header) {
			n = len(header)
		}

		fields := make([]csvload.Field, n)
		for i := 0; i < n; i++ {
			fields[i] = csvload.Field{Name: header[i], Value: values[i]}
		}

		records = append(records, csvload.Record{Line: line, Fields: fields})
	}

	return records, nil
}
