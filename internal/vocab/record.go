package vocab

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk format of the learning date column.
const DateLayout = "2006-01-02"

// Record is one row of the vocabulary file: an English word, a
// display-only phonetic transcription, one or more comma-separated
// accepted translations, a signed success counter and an optional
// learning date. An empty learning date means the word is not resting.
type Record struct {
	Word          string
	Transcription string
	Translation   string
	Successes     int
	LearnedOn     string
}

// Blank reports whether the row carries no usable content.
func (r Record) Blank() bool {
	return r.Word == ""
}

// LearnedDate parses the learning date. ok is false when the field is
// empty. A non-empty field that does not parse is a data fault and
// must not be swallowed.
func (r Record) LearnedDate() (t time.Time, ok bool, err error) {
	if r.LearnedOn == "" {
		return time.Time{}, false, nil
	}
	t, err = time.Parse(DateLayout, r.LearnedOn)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("word %q: bad learning date %q: %w", r.Word, r.LearnedOn, err)
	}
	return t, true, nil
}
