package wkt

import (
	"strconv"
	"strings"
)

// FormatNumber renders an already rounded value in its shortest form. Negative
// zero prints as "0".
func FormatNumber(x float64) string {
	if x == 0 {
		x = 0
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Format writes a literal. Coordinates must already be rounded.
func Format(keyword string, ring bool, vertices ...[2]float64) string {
	var buf strings.Builder
	buf.WriteString(keyword)
	buf.WriteString(" (")
	if ring {
		buf.WriteByte('(')
	}
	for i, v := range vertices {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(FormatNumber(v[0]))
		buf.WriteByte(' ')
		buf.WriteString(FormatNumber(v[1]))
	}
	if ring {
		buf.WriteByte(')')
	}
	buf.WriteByte(')')
	return buf.String()
}

// FormatEmpty writes the "KEYWORD EMPTY" form.
func FormatEmpty(keyword string) string {
	return keyword + " EMPTY"
}
