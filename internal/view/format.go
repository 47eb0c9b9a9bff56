package view

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const releaseDateLayout = "2006-01-02"

// formatValue normalizes the catalog's text sentinels for display.
func formatValue(value string) string {
	trimmed := strings.TrimSpace(value)

	switch strings.ToLower(trimmed) {
	case "":
		return "Unknown"
	case "unknown":
		return "Unknown"
	case "n/a", "na":
		return "N/A"
	case "none":
		return "None"
	case "indefinite":
		return "Indefinite"
	}

	return trimmed
}

// formatNumber adds thousands separators to integer-valued text and leaves
// everything else to formatValue.
func formatNumber(value string) string {
	trimmed := strings.ReplaceAll(strings.TrimSpace(value), ",", "")

	if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
		if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return trimmed
		}

		return formatValue(value)
	}

	negative := strings.HasPrefix(trimmed, "-")
	digits := strings.TrimPrefix(trimmed, "-")

	var out strings.Builder

	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}

		out.WriteRune(digit)
	}

	if negative {
		return "-" + out.String()
	}

	return out.String()
}

// withUnit formats a numeric value followed by a unit, e.g. "172 cm".
// Non-numeric values are shown without the unit.
func withUnit(value, unit string) string {
	formatted := formatNumber(value)
	if !isNumeric(value) {
		return formatted
	}

	if unit == "%" {
		return formatted + unit
	}

	return formatted + " " + unit
}

func isNumeric(value string) bool {
	_, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", ""), 64)

	return err == nil
}

// formatDate renders "1977-05-25" as "May 25, 1977".
func formatDate(value string) string {
	parsed, err := time.Parse(releaseDateLayout, strings.TrimSpace(value))
	if err != nil {
		return formatValue(value)
	}

	return parsed.Format("January 2, 2006")
}

// titleCase upper-cases the first letter of every word and leaves the rest
// of each word as served.
func titleCase(value string) string {
	formatted := formatValue(value)
	if formatted != strings.TrimSpace(value) {
		return formatted
	}

	return cases.Title(language.English, cases.NoLower).String(formatted)
}

// yearOf returns the year of a release date, or "".
func yearOf(value string) string {
	parsed, err := time.Parse(releaseDateLayout, strings.TrimSpace(value))
	if err != nil {
		return ""
	}

	return strconv.Itoa(parsed.Year())
}

// crawlText joins the opening crawl's hard-wrapped lines into paragraphs.
func crawlText(value string) string {
	normalized := strings.ReplaceAll(value, "\r\n", "\n")
	paragraphs := strings.Split(normalized, "\n\n")

	for i, paragraph := range paragraphs {
		paragraphs[i] = strings.Join(strings.Fields(paragraph), " ")
	}

	return strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
}

func joinSummary(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, " · ")
}

func urlQueryEscape(value string) string {
	return url.QueryEscape(value)
}
