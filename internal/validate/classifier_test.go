package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/csvload/pkg/csvload"
)

type fakeChecker struct {
	exists bool
	err    error
	calls  []csvload.Record
}

func (f *fakeChecker) Exists(_ context.Context, rec csvload.Record) (bool, error) {
	f.calls = append(f.calls, rec)
	return f.exists, f.err
}

func intPtr(n int) *int { return &n }

func specs() []csvload.ColumnSpec {
	return []csvload.ColumnSpec{
		{Name: "name", MaxLength: intPtr(5)},
		{Name: "age", MaxLength: intPtr(3)},
		{Name: "notes", MaxLength: nil},
	}
}

func record(line int, pairs ...string) csvload.Record {
	rec := csvload.Record{Line: line}
	for i := 0; i+1 < len(pairs); i += 2 {
		rec.Fields = append(rec.Fields, csvload.Field{Name: pairs[i], Value: pairs[i+1]})
	}
	return rec
}

func TestNewClassifierPanicsOnNilChecker(t *testing.T) {
	assert.Panics(t, func() {
		NewClassifier(specs(), nil)
	})
}

func TestClassifyEligibleRecord(t *testing.T) {
	c := NewClassifier(specs(), &fakeChecker{})

	verdict, err := c.Classify(context.Background(), record(2, "name", "Alice", "age", "30"))

	require.NoError(t, err)
	assert.True(t, verdict.Eligible)
	assert.Empty(t, verdict.Errors)
}

func TestClassifyValueAtExactLimit(t *testing.T) {
	c := NewClassifier(specs(), &fakeChecker{})

	// "Alice" is exactly 5 characters: the boundary is inclusive.
	verdict, err := c.Classify(context.Background(), record(3, "name", "Alice"))

	require.NoError(t, err)
	assert.True(t, verdict.Eligible)
}

func TestClassifyValueOverLimit(t *testing.T) {
	c := NewClassifier(specs(), &fakeChecker{})

	verdict, err := c.Classify(context.Background(), record(4, "name", "Maximilian"))

	require.NoError(t, err)
	assert.False(t, verdict.Eligible)
	require.Len(t, verdict.Errors, 1)
	assert.Equal(t, 4, verdict.Errors[0].Line)
	assert.Contains(t, verdict.Errors[0].Message, `"name"`)
	assert.Contains(t, verdict.Errors[0].Message, "10 characters")
	assert.Contains(t, verdict.Errors[0].Message, "limit of 5")
	assert.Contains(t, verdict.Errors[0].Message, `"Maximilian"`)
}

func TestClassifyCountsRunesNotBytes(t *testing.T) {
	c := NewClassifier(specs(), &fakeChecker{})

	// Five runes, ten bytes.
	verdict, err := c.Classify(context.Background(), record(2, "name", "ααααα"))

	require.NoError(t, err)
	assert.True(t, verdict.Eligible)
}

func TestClassifyUnboundedColumn(t *testing.T) {
	c := NewClassifier(specs(), &fakeChecker{})

	verdict, err := c.Classify(context.Background(), record(2, "notes", strings.Repeat("x", 10_000)))

	require.NoError(t, err)
	assert.True(t, verdict.Eligible)
}

func TestClassifyFieldUnknownToSchema(t *testing.T) {
	c := NewClassifier(specs(), &fakeChecker{})

	verdict, err := c.Classify(context.Background(), record(2, "surname", strings.Repeat("x", 100)))

	require.NoError(t, err)
	assert.True(t, verdict.Eligible)
}

func TestClassifyMultipleErrorsOnOneRecord(t *testing.T) {
	c := NewClassifier(specs(), &fakeChecker{exists: true})

	verdict, err := c.Classify(context.Background(), record(5, "name", "Maximilian", "age", "1234"))

	require.NoError(t, err)
	assert.False(t, verdict.Eligible)
	assert.Len(t, verdict.Errors, 3)
}

func TestClassifyDuplicate(t *testing.T) {
	checker := &fakeChecker{exists: true}
	c := NewClassifier(specs(), checker)

	verdict, err := c.Classify(context.Background(), record(7, "name", "Bob", "age", "41"))

	require.NoError(t, err)
	assert.False(t, verdict.Eligible)
	require.Len(t, verdict.Errors, 1)
	assert.Equal(t, 7, verdict.Errors[0].Line)
	assert.Contains(t, verdict.Errors[0].Message, "duplicate")
	assert.Contains(t, verdict.Errors[0].Message, "Bob, 41")
	require.Len(t, checker.calls, 1)
}

func TestClassifyDuplicateCheckAlwaysRuns(t *testing.T) {
	// A length violation must not short-circuit the duplicate check: the
	// report lists every problem a row has.
	checker := &fakeChecker{exists: true}
	c := NewClassifier(specs(), checker)

	verdict, err := c.Classify(context.Background(), record(6, "name", "Maximilian"))

	require.NoError(t, err)
	assert.Len(t, verdict.Errors, 2)
	assert.Len(t, checker.calls, 1)
}

func TestClassifyStoreFailureIsFatal(t *testing.T) {
	checker := &fakeChecker{err: errors.New("connection reset")}
	c := NewClassifier(specs(), checker)

	_, err := c.Classify(context.Background(), record(9, "name", "Ann"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 9")
	assert.Contains(t, err.Error(), "connection reset")
}
