package utils

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	exportHeader = []string{"Tag", "Name", "Status"}
	exportRows   = [][]string{
		{"A-001", "Laptop", "Available"},
		{"A-002", "Monitor", "Checked out"},
	}
)

func TestCreateExcelFile(t *testing.T) {
	file, err := CreateExcelFile("Assets", exportHeader, exportRows)
	require.NoError(t, err)

	v, err := file.GetCellValue("Assets", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tag", v)

	v, err = file.GetCellValue("Assets", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Monitor", v)
}

func TestCreateExcelFileHeaderMismatch(t *testing.T) {
	_, err := CreateExcelFile("Assets", []string{"Tag"}, exportRows)
	assert.Error(t, err)
}

func TestAppendExcelSheet(t *testing.T) {
	file, err := CreateExcelFile("Assets", exportHeader, exportRows)
	require.NoError(t, err)

	err = AppendExcelSheet(file, "Checkouts", []string{"Asset", "To"}, [][]string{{"A-001", "Alice"}})
	require.NoError(t, err)

	v, err := file.GetCellValue("Checkouts", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", v)

	// first sheet untouched
	v, err = file.GetCellValue("Assets", "A2")
	require.NoError(t, err)
	assert.Equal(t, "A-001", v)
}

func TestExport2Csv(t *testing.T) {
	reader, err := Export2Csv(exportHeader, exportRows)
	require.NoError(t, err)

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\xEF\xBB\xBF")))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, []byte("\xEF\xBB\xBF")))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "A-002", records[2][0])
}

func TestExportCsvTwoSections(t *testing.T) {
	reader, err := ExportCsv([]string{"Metric", "Value"}, exportHeader,
		[][]string{{"total", "2"}}, exportRows)
	require.NoError(t, err)

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "Summary")
	assert.Contains(t, text, "Details")
	assert.Less(t, strings.Index(text, "Summary"), strings.Index(text, "Details"))
}

func TestExport2Html(t *testing.T) {
	out, err := Export2Html("Inventory", exportHeader, exportRows)
	require.NoError(t, err)
	assert.Contains(t, out, "Inventory")
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "Tag")
	assert.Contains(t, out, "Monitor")
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	err := SaveFile(dir, "out.txt", bytes.NewReader([]byte("hello")))
	require.NoError(t, err)

	assert.True(t, FileExists(dir + "/out.txt"))
}
