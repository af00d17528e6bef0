package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultEmptyMessage is rendered when no row has content.
const DefaultEmptyMessage = "No data entered yet."

// Entry is one key/value pair of the preview.
type Entry struct {
	Key   string
	Value string
}

// Data is the preview derived from the rows: one entry per non-empty row,
// keyed field1..fieldN by position among the non-empty rows.
// Entries are kept in positional order.
type Data []Entry

// Collect derives preview data from rows in their positional order.
// A row counts as empty when its value is blank after trimming. Values are
// kept as typed.
func Collect(rows []*Row) Data {
	data := Data{}
	for _, row := range rows {
		if strings.TrimSpace(row.value) == "" {
			continue
		}
		data = append(data, Entry{
			Key:   fmt.Sprintf("field%d", len(data)+1),
			Value: row.value,
		})
	}
	return data
}

// Len returns the number of entries.
func (d Data) Len() int {
	return len(d)
}

// Get returns the value stored under key.
func (d Data) Get(key string) (string, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Map returns the entries as a plain map. Order is lost.
func (d Data) Map() map[string]string {
	m := make(map[string]string, len(d))
	for _, e := range d {
		m[e.Key] = e.Value
	}
	return m
}

// MarshalJSON encodes the entries as a JSON object in positional order.
func (d Data) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalString(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := marshalString(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Pretty returns the entries as JSON indented by two spaces.
func (d Data) Pretty() (string, error) {
	raw, err := d.MarshalJSON()
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", fmt.Errorf("failed to indent preview: %w", err)
	}
	return out.String(), nil
}

// Render returns the text shown in the preview display: emptyMessage when
// there are no entries, the pretty JSON otherwise.
func (d Data) Render(emptyMessage string) (string, error) {
	if len(d) == 0 {
		return emptyMessage, nil
	}
	return d.Pretty()
}

// marshalString encodes s without HTML escaping so "<" and "&" stay readable.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode %q: %w", s, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
