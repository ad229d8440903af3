package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CategoryEntry is a single label with its count.
type CategoryEntry struct {
	Label string
	Count int
}

// CategoryCount is an ordered label-to-count mapping. The review service
// emits these as JSON objects whose key order is meaningful (ties between
// equal counts keep first-seen order), so a plain map would lose information.
type CategoryCount []CategoryEntry

// Get returns the count for a label and whether the label is present.
func (c CategoryCount) Get(label string) (int, bool) {
	for _, e := range c {
		if e.Label == label {
			return e.Count, true
		}
	}
	return 0, false
}

// Set replaces the count for an existing label or appends a new entry,
// preserving first-seen order.
func (c *CategoryCount) Set(label string, count int) {
	for i := range *c {
		if (*c)[i].Label == label {
			(*c)[i].Count = count
			return
		}
	}
	*c = append(*c, CategoryEntry{Label: label, Count: count})
}

// Add increments the count for a label, appending it on first sight.
func (c *CategoryCount) Add(label string, delta int) {
	for i := range *c {
		if (*c)[i].Label == label {
			(*c)[i].Count += delta
			return
		}
	}
	*c = append(*c, CategoryEntry{Label: label, Count: delta})
}

// Total sums all counts.
func (c CategoryCount) Total() int {
	total := 0
	for _, e := range c {
		total += e.Count
	}
	return total
}

// UnmarshalJSON decodes a JSON object into entries in document order.
func (c *CategoryCount) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode category counts: %w", err)
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category counts must be a JSON object, got %v", tok)
	}

	entries := CategoryCount{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode category label: %w", err)
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("category label must be a string, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode count for %q: %w", label, err)
		}
		count, err := coerceCount(valTok)
		if err != nil {
			return fmt.Errorf("invalid count for %q: %w", label, err)
		}
		entries = append(entries, CategoryEntry{Label: label, Count: count})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode category counts: %w", err)
	}

	*c = entries
	return nil
}

// MarshalJSON encodes the entries as a JSON object in slice order.
func (c CategoryCount) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(e.Label)
		if err != nil {
			return nil, fmt.Errorf("failed to encode category label %q: %w", e.Label, err)
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(e.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// coerceCount accepts integer or float JSON numbers; anything else is an
// error. Floats are truncated, matching how the review service stores counts.
func coerceCount(tok json.Token) (int, error) {
	num, ok := tok.(json.Number)
	if !ok {
		return 0, fmt.Errorf("count must be a number, got %v", tok)
	}
	if n, err := num.Int64(); err == nil {
		return int(n), nil
	}
	f, err := num.Float64()
	if err != nil {
		return 0, fmt.Errorf("count %q is not numeric: %w", num.String(), err)
	}
	return int(f), nil
}
