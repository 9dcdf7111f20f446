package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/csvload/pkg/csvload"
)

func sampleReport() *csvload.RunReport {
	return &csvload.RunReport{
		RunID:        uuid.MustParse("3f1b7a52-8a34-4a7b-9b10-6f2f6a1f0c11"),
		Separator:    ';',
		RowsRead:     5,
		EligibleRows: 3,
		RowsLoaded:   3,
		Duration:     1234 * time.Millisecond,
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer

	Write(&buf, sampleReport())

	out := buf.String()
	assert.Contains(t, out, "3f1b7a52-8a34-4a7b-9b10-6f2f6a1f0c11")
	assert.Contains(t, out, `';'`)
	assert.Contains(t, out, "1.234s")
	assert.NotContains(t, out, "line ")
}

func TestWriteErrorsOnePerLine(t *testing.T) {
	r := sampleReport()
	r.Errors = []csvload.ValidationError{
		{Line: 2, Message: "field \"name\" is too long"},
		{Line: 4, Message: "duplicate of an existing row"},
	}

	var buf bytes.Buffer
	Write(&buf, r)

	out := buf.String()
	assert.Contains(t, out, "line 2: field \"name\" is too long\n")
	assert.Contains(t, out, "line 4: duplicate of an existing row\n")
}

func TestWriteDryRun(t *testing.T) {
	r := sampleReport()
	r.DryRun = true
	r.RowsLoaded = 0

	var buf bytes.Buffer
	Write(&buf, r)

	assert.Contains(t, buf.String(), "0 (dry run)")
}