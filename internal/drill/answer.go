package drill

import "strings"

// Tokens recognized at every prompt.
const (
	// QuitToken ends the session immediately.
	QuitToken = "-1"
	// BonusToken asserts the previous answer was actually correct.
	BonusToken = "+"
)

// Normalize prepares an answer for comparison: surrounding whitespace
// is trimmed, the string is lowercased, and the accented "ё" is folded
// to "е" so both spellings grade the same. Normalizing an already
// normalized string returns it unchanged.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "ё", "е")
}

// Translations splits a translation field into its independently
// normalized accepted answers.
func Translations(field string) []string {
	parts := strings.Split(field, ",")
	answers := make([]string, len(parts))
	for i, p := range parts {
		answers[i] = Normalize(p)
	}
	return answers
}
