package exporter

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
)

// DefaultDelimiter separates fields unless the caller chooses otherwise
const DefaultDelimiter = ','

// Encode converts records to CSV text.
//
// The header row, when enabled, is the key order of the first record,
// and that order is authoritative for every row: fields a later record
// lacks render empty, fields the first record lacks are dropped. Rows
// are joined with a single newline and no trailing newline is emitted.
// An empty records slice yields an empty string even when headers are
// enabled.
//
// Quoting follows the usual CSV rules: a value containing the
// delimiter, a quote, or a line break is quote-wrapped with embedded
// quotes doubled.
func Encode(records []Record, delimiter rune, includeHeaders bool) string {
	if len(records) == 0 {
		return ""
	}

	headers := records[0].Keys()

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if delimiter != 0 {
		w.Comma = delimiter
	}

	// strings.Builder writes cannot fail, so csv errors are ignored
	if includeHeaders {
		w.Write(headers)
	}

	row := make([]string, len(headers))
	for _, record := range records {
		for i, name := range headers {
			value, _ := record.Get(name)
			row[i] = formatValue(value)
		}
		w.Write(row)
	}
	w.Flush()

	return strings.TrimSuffix(buf.String(), "\n")
}

// formatValue stringifies a single scalar. Absent and null values
// render empty; anything non-scalar falls back to compact JSON.
func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
