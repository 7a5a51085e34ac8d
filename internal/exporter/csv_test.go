package exporter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeRecords is a test helper turning a JSON array literal into
// ordered records.
func decodeRecords(t *testing.T, data string) []Record {
	t.Helper()
	var records []Record
	require.NoError(t, json.Unmarshal([]byte(data), &records))
	return records
}

func TestEncode_Basic(t *testing.T) {
	records := decodeRecords(t, `[
		{"name":"John","age":30},
		{"name":"Jane","age":25}
	]`)

	got := Encode(records, ',', true)
	assert.Equal(t, "name,age\nJohn,30\nJane,25", got)
}

func TestEncode_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Encode(nil, ',', true))
	assert.Equal(t, "", Encode([]Record{}, ',', true))
	// headers are suppressed for empty input as well
	assert.Equal(t, "", Encode(nil, ',', false))
}

func TestEncode_NoTrailingNewline(t *testing.T) {
	records := decodeRecords(t, `[{"a":"1"}]`)
	got := Encode(records, ',', true)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestEncode_HeaderOrderFromFirstRecord(t *testing.T) {
	// the second record presents its keys in a different order
	records := decodeRecords(t, `[
		{"b":"1","a":"2","c":"3"},
		{"c":"6","a":"5","b":"4"}
	]`)

	got := Encode(records, ',', true)
	assert.Equal(t, "b,a,c\n1,2,3\n4,5,6", got)
}

func TestEncode_MissingKeysRenderEmpty(t *testing.T) {
	records := decodeRecords(t, `[
		{"name":"John","city":"Oslo"},
		{"name":"Jane"}
	]`)

	got := Encode(records, ',', true)
	assert.Equal(t, "name,city\nJohn,Oslo\nJane,", got)
}

func TestEncode_WithoutHeaders(t *testing.T) {
	records := decodeRecords(t, `[{"name":"John","age":30}]`)
	assert.Equal(t, "John,30", Encode(records, ',', false))
}

func TestEncode_Quoting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "value containing delimiter is quoted",
			input:    `[{"v":"a,b"}]`,
			expected: "v\n\"a,b\"",
		},
		{
			name:     "embedded quotes are doubled and wrapped",
			input:    `[{"v":"say \"hi\""}]`,
			expected: "v\n\"say \"\"hi\"\"\"",
		},
		{
			name:     "newline forces quoting",
			input:    `[{"v":"line1\nline2"}]`,
			expected: "v\n\"line1\nline2\"",
		},
		{
			name:     "carriage return forces quoting",
			input:    `[{"v":"a\rb"}]`,
			expected: "v\n\"a\rb\"",
		},
		{
			name:     "plain value stays bare",
			input:    `[{"v":"plain"}]`,
			expected: "v\nplain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(decodeRecords(t, tt.input), ',', true)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEncode_CustomDelimiter(t *testing.T) {
	records := decodeRecords(t, `[{"a":"1","b":"2;3"}]`)
	got := Encode(records, ';', true)
	assert.Equal(t, "a;b\n1;\"2;3\"", got)
}

func TestEncode_ValueStringification(t *testing.T) {
	records := decodeRecords(t, `[
		{"s":"text","n":30,"f":1.25,"b":true,"nul":null}
	]`)

	got := Encode(records, ',', true)
	assert.Equal(t, "s,n,f,b,nul\ntext,30,1.25,true,", got)
}

func TestEncode_RoundTrip(t *testing.T) {
	records := decodeRecords(t, `[
		{"name":"John, Jr.","quote":"he said \"go\"","note":"a\nb"},
		{"name":"Jane","quote":"","note":"plain"}
	]`)

	encoded := Encode(records, ',', true)

	r := csv.NewReader(strings.NewReader(encoded))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"name", "quote", "note"}, rows[0])
	assert.Equal(t, []string{"John, Jr.", `he said "go"`, "a\nb"}, rows[1])
	assert.Equal(t, []string{"Jane", "", "plain"}, rows[2])
}
