package markdown

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var innerUpper = regexp.MustCompile(`\B([A-Z])`)

// HumanizeHeader inserts a space before each upper-case letter that does not
// start a word: "EntityAType" becomes "Entity A Type".
func HumanizeHeader(h string) string {
	return innerUpper.ReplaceAllString(h, " $1")
}

// Table renders rows as a markdown table under a "### title" heading.
// Only the given headers are rendered, in order; transform, if set, rewrites
// the displayed header names. With no rows only the header lines are written.
func Table(title string, headers []string, rows []map[string]any, transform func(string) string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "### %s\n", title)
	}
	if len(headers) == 0 {
		return b.String()
	}

	b.WriteString("|")
	for _, h := range headers {
		if transform != nil {
			h = transform(h)
		}
		b.WriteString(cell(h))
		b.WriteString("|")
	}
	b.WriteString("\n|")
	for range headers {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString("|")
		for _, h := range headers {
			b.WriteString(" ")
			b.WriteString(cell(format(row[h])))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
	return fmt.Sprint(v)
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}
