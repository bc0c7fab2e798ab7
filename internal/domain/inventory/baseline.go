package inventory

import (
	"encoding/csv"
	"regexp"
	"strconv"
	"strings"
)

// UnknownField is substituted for a missing name or code in a baseline row.
// Rows whose code ends up as this sentinel are dropped entirely.
const UnknownField = "Unknown"

var lineBreak = regexp.MustCompile(`\r\n|\n`)

// ParseBaseline converts delimited baseline text into candidate items.
// The first non-blank line is a header and is skipped; each remaining line
// yields (name, code, expectedQty). Malformed rows degrade to defaults
// instead of aborting the import: a missing name or code becomes
// UnknownField, an unparseable quantity becomes 0, and a row without a
// usable code contributes nothing. Item order matches row order and
// duplicate codes are kept as-is.
func ParseBaseline(raw string) []InventoryItem {
	var lines []string
	for _, line := range lineBreak.Split(raw, -1) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) <= 1 {
		return nil
	}

	items := make([]InventoryItem, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitFields(line)
		item := InventoryItem{
			Name:        fieldOr(fields, 0, UnknownField),
			Code:        fieldOr(fields, 1, UnknownField),
			ScripticQty: parseQty(fields, 2),
			ActualQty:   0,
		}
		if item.Code == UnknownField {
			continue
		}
		items = append(items, item)
	}
	return items
}

// splitFields parses one data line per CSV conventions so that quoted fields
// written by the exporter round-trip exactly. A line that is not valid CSV
// falls back to a raw comma split.
func splitFields(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		fields = strings.Split(line, ",")
	}
	return fields
}

func fieldOr(fields []string, idx int, fallback string) string {
	if idx >= len(fields) {
		return fallback
	}
	val := strings.TrimSpace(fields[idx])
	if val == "" {
		return fallback
	}
	return val
}

func parseQty(fields []string, idx int) int {
	if idx >= len(fields) {
		return 0
	}
	qty, err := strconv.Atoi(strings.TrimSpace(fields[idx]))
	if err != nil || qty < 0 {
		return 0
	}
	return qty
}
