package scales

import "strings"

// DegreeCount is the number of notes in a major scale.
const DegreeCount = 7

// keys lists the twelve major keys in selector order.
var keys = []string{"Do", "Sol", "Re", "La", "Mi", "Si", "Fa#", "Reb", "Lab", "Mib", "Sib", "Fa"}

// table maps a key to its seven note names in solfège, sharps as "#" and
// flats as a lower-case "b".
var table = map[string][DegreeCount]string{
	"Do":  {"DO", "RE", "MI", "FA", "SOL", "LA", "SI"},
	"Sol": {"SOL", "LA", "SI", "DO", "RE", "MI", "FA#"},
	"Re":  {"RE", "MI", "FA#", "SOL", "LA", "SI", "DO#"},
	"La":  {"LA", "SI", "DO#", "RE", "MI", "FA#", "SOL#"},
	"Mi":  {"MI", "FA#", "SOL#", "LA", "SI", "DO#", "RE#"},
	"Si":  {"SI", "DO#", "RE#", "MI", "FA#", "SOL#", "LA#"},
	"Fa#": {"FA#", "SOL#", "LA#", "SI", "DO#", "RE#", "MI#"},
	"Reb": {"REb", "MIb", "FA", "SOLb", "LAb", "SIb", "DO"},
	"Lab": {"LAb", "SIb", "DO", "REb", "MIb", "FA", "SOL"},
	"Mib": {"MIb", "FA", "SOL", "LAb", "SIb", "DO", "RE"},
	"Sib": {"SIb", "DO", "RE", "MIb", "FA", "SOL", "LA"},
	"Fa":  {"FA", "SOL", "LA", "SIb", "DO", "RE", "MI"},
}

// DefaultKey is the key selected when nothing else is configured.
const DefaultKey = "Do"

// Keys returns the twelve known keys in selector order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// IsKey reports whether key is one of the twelve known keys.
func IsKey(key string) bool {
	_, ok := table[key]
	return ok
}

// Scale returns the seven notes of key, tonic first.
func Scale(key string) ([]string, error) {
	notes, ok := table[key]
	if !ok {
		return nil, &InvalidKeyError{Key: key}
	}
	out := make([]string, DegreeCount)
	copy(out, notes[:])
	return out, nil
}

// Note returns the note at the 1-based degree of key.
func Note(key string, degree int) (string, error) {
	notes, ok := table[key]
	if !ok {
		return "", &InvalidKeyError{Key: key}
	}
	if degree < 1 || degree > DegreeCount {
		return "", &InvalidDegreeError{Degree: degree}
	}
	return notes[degree-1], nil
}

// MustNote is like Note but panics on an unknown key or degree. Callers only
// pass values they obtained from this package.
func MustNote(key string, degree int) string {
	n, err := Note(key, degree)
	if err != nil {
		panic(err)
	}
	return n
}

// IndexOf returns the position of key in Keys(), or -1.
func IndexOf(key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Normalize turns free-form user input into note spelling for comparison:
// surrounding whitespace is dropped and letters are upper-cased.
func Normalize(answer string) string {
	return strings.ToUpper(strings.TrimSpace(answer))
}

// Matches reports whether answer names the expected note. The comparison is
// case-insensitive, so "reb" matches "REb", but accidentals must agree: "fa#"
// does not match "FA".
func Matches(answer, expected string) bool {
	return Normalize(answer) == strings.ToUpper(expected)
}
