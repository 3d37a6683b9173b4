package vocab

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ImportResult summarizes an Excel import.
type ImportResult struct {
	Processed int
	Imported  int
	Skipped   int
}

// ImportXLSX reads word rows from an Excel sheet and returns them as
// records with zeroed progress. Column layout is word, transcription,
// translation. Rows without a word or a translation are skipped. An
// empty sheet name selects the first sheet.
func ImportXLSX(path, sheet string) ([]Record, *ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	result := &ImportResult{}
	var records []Record
	for i, row := range rows {
		// The first row is a header when it does not look like data.
		if i == 0 && len(row) > 0 && row[0] == "word" {
			continue
		}
		result.Processed++
		rec := Record{
			Word:          field(row, 0),
			Transcription: field(row, 1),
			Translation:   field(row, 2),
		}
		if rec.Word == "" || rec.Translation == "" {
			result.Skipped++
			continue
		}
		records = append(records, rec)
		result.Imported++
	}
	return records, result, nil
}
