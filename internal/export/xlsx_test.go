package export

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	table := &domain.SleepTable{
		Columns: []string{domain.ColumnDuration, "deep.%", "type", "minuteData"},
		Rows: []domain.SleepRow{
			{
				Date: time.Date(2020, 3, 9, 0, 0, 0, 0, time.UTC),
				Values: map[string]any{
					domain.ColumnDuration: 420.0,
					"deep.%":              math.NaN(),
					"type":                "stages",
					"minuteData":          []any{1.0, 2.0},
				},
			},
			{
				Date:   time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
				Values: map[string]any{domain.ColumnDuration: 395.5, "deep.%": 18.25},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, table))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"dateOfSleep", "duration", "deep.%", "type", "minuteData"}, rows[0])
	assert.Equal(t, []string{"2020-03-09", "420", "", "stages", "[1,2]"}, rows[1])
	assert.Equal(t, []string{"2020-03-10", "395.5", "18.25"}, rows[2])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, &domain.SleepTable{Columns: []string{domain.ColumnDuration}}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"dateOfSleep", "duration"}}, rows)
}
