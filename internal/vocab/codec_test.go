package vocab

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFile = `word;transcription;translation;success_count;learning_date
cat;kæt;кот,кошка;2;
dog;dɒɡ;собака;5;2024-01-10
;;;0;
ice;aɪs;лед;;
`

func TestRead_Sample(t *testing.T) {
	records, err := Read(strings.NewReader(sampleFile))
	require.NoError(t, err)
	require.Len(t, records, 4)

	require.Equal(t, Record{Word: "cat", Transcription: "kæt", Translation: "кот,кошка", Successes: 2}, records[0])
	require.Equal(t, Record{Word: "dog", Transcription: "dɒɡ", Translation: "собака", Successes: 5, LearnedOn: "2024-01-10"}, records[1])
	require.True(t, records[2].Blank())
	require.Equal(t, 0, records[3].Successes, "empty counter reads as zero")
}

func TestRead_ShortRows(t *testing.T) {
	records, err := Read(strings.NewReader("word;transcription;translation;success_count;learning_date\ncat;kæt\n"))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Translation != "" || records[0].LearnedOn != "" {
		t.Errorf("missing fields should read as empty: %+v", records[0])
	}
}

func TestRead_BadSuccessCount(t *testing.T) {
	_, err := Read(strings.NewReader("word;transcription;translation;success_count;learning_date\ncat;kæt;кот;two;\n"))
	if err == nil {
		t.Fatal("expected an error for a non-numeric success count")
	}
}

func TestRead_Empty(t *testing.T) {
	records, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	in := []Record{
		{Word: "cat", Transcription: "kæt", Translation: "кот,кошка", Successes: -1},
		{Word: "dog", Transcription: "dɒɡ", Translation: "собака", Successes: 5, LearnedOn: "2024-01-10"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	out, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	require.Equal(t, in, out)
}

func TestWrite_HeaderFirst(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if first != "word;transcription;translation;success_count;learning_date" {
		t.Errorf("unexpected header row: %q", first)
	}
}

func TestLearnedDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		ok      bool
		wantErr bool
	}{
		{"empty", "", false, false},
		{"valid", "2024-01-10", true, false},
		{"malformed", "10.01.2024", false, true},
		{"partial", "2024-01", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Word: "cat", LearnedOn: tt.raw}
			_, ok, err := rec.LearnedDate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LearnedDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.ok {
				t.Errorf("LearnedDate() ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}
