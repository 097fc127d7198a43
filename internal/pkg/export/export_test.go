package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Title:   "Attendance Recap 2024-06",
		Headers: []string{"Employee", "Present", "Work Hours"},
		Rows: [][]any{
			{"Budi Santoso", 20, 161.333333},
			{"Siti, Aminah", 18, 144.5},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Employee", "Present", "Work Hours"}, records[0])
	assert.Equal(t, []string{"Budi Santoso", "20", "161.33"}, records[1])
	assert.Equal(t, []string{"Siti, Aminah", "18", "144.50"}, records[2])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Recap"}, f.GetSheetList())

	title, err := f.GetCellValue("Recap", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Attendance Recap 2024-06", title)

	header, err := f.GetCellValue("Recap", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Work Hours", header)

	name, err := f.GetCellValue("Recap", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", name)

	hours, err := f.GetCellValue("Recap", "C4")
	require.NoError(t, err)
	assert.Equal(t, "161.33", hours)
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", formatCell(nil))
	assert.Equal(t, "7", formatCell(7))
	assert.Equal(t, "0.50", formatCell(0.5))
}
