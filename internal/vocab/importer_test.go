package vocab

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", name, cell))
		}
	}
	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportXLSX(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{
		{"word", "transcription", "translation"},
		{"cat", "kæt", "кот,кошка"},
		{"dog", "", "собака"},
		{"", "", "пусто"},
		{"sun", "sʌn", ""},
	})

	records, result, err := ImportXLSX(path, "")
	require.NoError(t, err)
	require.Equal(t, 4, result.Processed)
	require.Equal(t, 2, result.Imported)
	require.Equal(t, 2, result.Skipped)

	require.Len(t, records, 2)
	require.Equal(t, Record{Word: "cat", Transcription: "kæt", Translation: "кот,кошка"}, records[0])
	require.Equal(t, Record{Word: "dog", Translation: "собака"}, records[1])
}

func TestImportXLSX_MissingSheet(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{{"cat", "", "кот"}})

	_, _, err := ImportXLSX(path, "NoSuchSheet")
	require.Error(t, err)
}

func TestImportXLSX_MissingFile(t *testing.T) {
	_, _, err := ImportXLSX(filepath.Join(t.TempDir(), "absent.xlsx"), "")
	require.Error(t, err)
}
