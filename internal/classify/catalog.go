package classify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// UnknownCode is the sentinel emitted when no catalog codes are available.
const UnknownCode = "UNKNOWN"

// CodeCatalog maps counterparty codes to descriptions while preserving
// insertion order. Order matters: the first code is the fallback when a
// classifier's reply cannot be validated, and the rendered prompt lists
// codes in the order they were supplied.
type CodeCatalog struct {
	codes map[string]string
	order []string
}

// NewCodeCatalog creates an empty catalog.
func NewCodeCatalog() *CodeCatalog {
	return &CodeCatalog{
		codes: make(map[string]string),
	}
}

// Set adds or updates a code. New codes append to the iteration order;
// existing codes keep their position.
func (c *CodeCatalog) Set(code, description string) {
	if _, ok := c.codes[code]; !ok {
		c.order = append(c.order, code)
	}
	c.codes[code] = description
}

// Get returns the description for a code.
func (c *CodeCatalog) Get(code string) (string, bool) {
	desc, ok := c.codes[code]
	return desc, ok
}

// Has reports whether the catalog contains the given code.
func (c *CodeCatalog) Has(code string) bool {
	_, ok := c.codes[code]
	return ok
}

// First returns the first code in insertion order, or UnknownCode
// when the catalog is empty.
func (c *CodeCatalog) First() string {
	if len(c.order) == 0 {
		return UnknownCode
	}
	return c.order[0]
}

// Len returns the number of codes in the catalog.
func (c *CodeCatalog) Len() int {
	return len(c.order)
}

// Codes returns the catalog codes in insertion order.
func (c *CodeCatalog) Codes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Render formats the catalog as "CODE: description" lines in insertion
// order for embedding into a prompt.
func (c *CodeCatalog) Render() string {
	var b strings.Builder
	for i, code := range c.order {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", code, c.codes[code])
	}
	return b.String()
}

// MarshalJSON encodes the catalog as a JSON object with keys in
// insertion order.
func (c *CodeCatalog) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')

	for i, code := range c.order {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := json.Marshal(code)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.codes[code])
		if err != nil {
			return nil, err
		}

		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}

	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving its key order.
func (c *CodeCatalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("code catalog must be a JSON object")
	}

	c.codes = make(map[string]string)
	c.order = nil

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("code catalog key must be a string")
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("code catalog value for %s: %w", key, err)
		}

		c.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}
