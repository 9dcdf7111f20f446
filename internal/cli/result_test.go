package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vvka-141/csvload/internal/logging"
	"github.com/vvka-141/csvload/pkg/csvload"
)

func TestWriteRunResult_Success(t *testing.T) {
	var buf bytes.Buffer
	result := &csvload.RunReport{RowsRead: 2, EligibleRows: 2, RowsLoaded: 2}

	err := writeRunResult(&buf, logging.NewNullLogger(), result, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Rows Read") {
		t.Errorf("expected summary table in output, got:\n%s", buf.String())
	}
}

func TestWriteRunResult_LoadFailureKeepsValidationReport(t *testing.T) {
	var buf bytes.Buffer
	result := &csvload.RunReport{
		RowsRead:     3,
		EligibleRows: 2,
		RowsLoaded:   1,
		Stage:        csvload.StageAborted,
		Errors: []csvload.ValidationError{
			{Line: 2, Message: `field "name" is 9 characters long, exceeding the limit of 5 (value "Alexandra")`},
		},
	}
	loadErr := errors.New("inserting line 3: connection reset")

	err := writeRunResult(&buf, logging.NewNullLogger(), result, loadErr)
	if err != loadErr {
		t.Fatalf("expected the load error to be returned, got: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Rows Read") {
		t.Errorf("expected summary table despite load failure, got:\n%s", out)
	}
	if !strings.Contains(out, `line 2: field "name"`) {
		t.Errorf("expected validation error lines despite load failure, got:\n%s", out)
	}
}

func TestWriteRunResult_PreValidationAbortWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	result := &csvload.RunReport{RowsRead: 1, Stage: csvload.StageAborted}
	connErr := csvload.ErrConnectionFailed

	err := writeRunResult(&buf, logging.NewNullLogger(), result, connErr)
	if !errors.Is(err, csvload.ErrConnectionFailed) {
		t.Fatalf("expected connection error back, got: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no report before validation produced results, got:\n%s", buf.String())
	}
}

func TestWriteRunResult_NilReportOnError(t *testing.T) {
	var buf bytes.Buffer
	wantErr := errors.New("boom")

	err := writeRunResult(&buf, logging.NewNullLogger(), nil, wantErr)
	if err != wantErr {
		t.Fatalf("expected error back, got: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for a nil report, got:\n%s", buf.String())
	}
}
