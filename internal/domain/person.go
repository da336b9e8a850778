package domain

import (
	"strconv"
	"strings"
)

// Person is owned by the remote people API. It has no identifier and the
// client never validates it.
type Person struct {
	Name string
	Age  float64
}

func (p Person) AgeLabel() string {
	return strconv.FormatFloat(p.Age, 'f', -1, 64)
}

// DisplayName falls back to a placeholder so empty names still render a row.
func (p Person) DisplayName() string {
	if trimmed := strings.TrimSpace(p.Name); trimmed != "" {
		return trimmed
	}

	return "(unnamed)"
}

// ClonePeople copies the slice so callers cannot mutate a held collection.
// A nil input yields an empty, non-nil slice.
func ClonePeople(people []Person) []Person {
	cloned := make([]Person, len(people))
	copy(cloned, people)
	return cloned
}
