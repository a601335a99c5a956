// This file holds the annotation-scanning helpers shared between the
// structural parser and the line-level rebalancer.
package scenario

import (
	"strconv"
	"strings"
)

// ExtractWeight scans an edge-line annotation for a numeric weight.
//
// The text after the first "edge weight" token is tried first, then the
// text after the first "cost" token. found is false only when neither token
// occurs, in which case DefaultWeight is returned and the caller should log
// a diagnostic. A token whose trailing text does not parse as a number also
// yields DefaultWeight, silently: the token was there, the file just spells
// the value in a way we do not understand, and defaulting beats failing.
func ExtractWeight(annotation string) (weight float64, found bool) {
	text := strings.TrimSpace(annotation)

	var value string
	switch {
	case strings.Contains(text, "edge weight"):
		value = strings.TrimSpace(text[strings.Index(text, "edge weight")+len("edge weight"):])
	case strings.Contains(text, "cost"):
		value = strings.TrimSpace(text[strings.Index(text, "cost")+len("cost"):])
	default:
		return DefaultWeight, false
	}

	w, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return DefaultWeight, true
	}

	return w, true
}

// ParseDepotIDs splits the value of a DEPOT: header into vertex ids.
// Commas, spaces, and tabs all separate; malformed tokens are skipped.
func ParseDepotIDs(s string) []int {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// IsEdgeLine reports whether a trimmed line is an edge entry, i.e. starts
// with the "(u,v)" endpoint marker.
func IsEdgeLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "(")
}
