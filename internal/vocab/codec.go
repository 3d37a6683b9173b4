package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// The vocabulary file is `;`-separated with a single header row.
const fieldSep = ';'

var header = []string{"word", "transcription", "translation", "success_count", "learning_date"}

// Read decodes a whole vocabulary file. Short rows are padded with
// empty fields; a non-numeric success count is a data fault.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = fieldSep
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := Record{
			Word:          field(row, 0),
			Transcription: field(row, 1),
			Translation:   field(row, 2),
			LearnedOn:     field(row, 4),
		}
		if raw := field(row, 3); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad success count %q: %w", i+2, raw, err)
			}
			rec.Successes = n
		}
		records = append(records, rec)
	}
	return records, nil
}

// Write encodes the header row and all records.
func Write(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = fieldSep

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write vocabulary header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Word,
			rec.Transcription,
			rec.Translation,
			strconv.Itoa(rec.Successes),
			rec.LearnedOn,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write vocabulary row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadFile loads the vocabulary file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile rewrites the vocabulary file at path in full.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
