package vocab

import (
	"fmt"
	"time"
)

// ComebackDays is the number of idle days after which a learned word
// is reset and re-enters rotation.
const ComebackDays = 30

// Kind classifies a store lookup.
type Kind int

const (
	// Eligible items carry a record that can be quizzed right now.
	Eligible Kind = iota
	// Graduated marks records at or above the success threshold.
	Graduated
	// Blank marks rows without usable content.
	Blank
)

// Item is a positioned view over one record, classified at access
// time. Revived is set when the comeback reset fired on this access;
// RevivedFrom then holds the cleared learning date for display.
type Item struct {
	Kind        Kind
	Index       int
	Record      Record
	Revived     bool
	RevivedFrom string
}

// Drillable reports whether the item can be quizzed.
func (it Item) Drillable() bool {
	return it.Kind == Eligible
}

// Store owns the in-memory vocabulary, the comeback reset policy and
// the single update path back into the file.
type Store struct {
	path         string
	maxSuccesses int
	records      []Record
}

// Open loads the vocabulary file at path. maxSuccesses is the counter
// value at which a word graduates.
func Open(path string, maxSuccesses int) (*Store, error) {
	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, maxSuccesses, records), nil
}

// New builds a store over already-loaded records.
func New(path string, maxSuccesses int, records []Record) *Store {
	return &Store{path: path, maxSuccesses: maxSuccesses, records: records}
}

// Size returns the number of records, blank rows included.
func (s *Store) Size() int {
	return len(s.records)
}

// MaxSuccesses returns the graduation threshold.
func (s *Store) MaxSuccesses() int {
	return s.maxSuccesses
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Item classifies the record at index. A learning date more than
// ComebackDays in the past clears the date and zeroes the counter
// before classification, so every read path re-validates freshness.
// An out-of-range index or a malformed learning date is an error.
func (s *Store) Item(index int, now time.Time) (Item, error) {
	if index < 0 || index >= len(s.records) {
		return Item{}, fmt.Errorf("vocabulary index %d out of range [0, %d)", index, len(s.records))
	}

	rec := s.records[index]
	if rec.Blank() {
		return Item{Kind: Blank, Index: index, Record: rec}, nil
	}

	item := Item{Index: index}
	learned, ok, err := rec.LearnedDate()
	if err != nil {
		return Item{}, err
	}
	if ok && stale(learned, now) {
		item.Revived = true
		item.RevivedFrom = rec.LearnedOn
		rec.LearnedOn = ""
		rec.Successes = 0
		s.records[index] = rec
	}

	item.Record = rec
	if rec.Successes < s.maxSuccesses {
		item.Kind = Eligible
	} else {
		item.Kind = Graduated
	}
	return item, nil
}

// Update writes the item's success counter and learning date back into
// the record at its index. The two fields always travel together.
func (s *Store) Update(item Item) error {
	if item.Index < 0 || item.Index >= len(s.records) {
		return fmt.Errorf("vocabulary index %d out of range [0, %d)", item.Index, len(s.records))
	}
	s.records[item.Index].Successes = item.Record.Successes
	s.records[item.Index].LearnedOn = item.Record.LearnedOn
	return nil
}

// LearnedCount returns the number of records at or above the threshold.
func (s *Store) LearnedCount() int {
	n := 0
	for _, rec := range s.records {
		if !rec.Blank() && rec.Successes >= s.maxSuccesses {
			n++
		}
	}
	return n
}

// DrillableCount returns how many records would be served by Item
// right now: eligible ones plus graduated ones due for a comeback
// reset. The session ends when it reaches zero.
func (s *Store) DrillableCount(now time.Time) (int, error) {
	n := 0
	for _, rec := range s.records {
		if rec.Blank() {
			continue
		}
		if rec.Successes < s.maxSuccesses {
			n++
			continue
		}
		learned, ok, err := rec.LearnedDate()
		if err != nil {
			return 0, err
		}
		if ok && stale(learned, now) {
			n++
		}
	}
	return n, nil
}

// Flush rewrites the whole vocabulary file. The caller owns the
// operator-mediated retry on a locked or write-protected file.
func (s *Store) Flush() error {
	return WriteFile(s.path, s.records)
}

func stale(learned, now time.Time) bool {
	return now.Sub(learned) > ComebackDays*24*time.Hour
}
