package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the persisted shape of the category store:
//
//	{ "categories": { "<name>": [ {"date": "...", "time": 1.5}, ... ] } }
//
// Categories keep their insertion order on both encode and decode.
type Document struct {
	Categories []Category
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Categories: []Category{}}
}

// Index returns the position of the named category or -1.
func (d *Document) Index(name string) int {
	for i, c := range d.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Clone deep-copies the document.
func (d *Document) Clone() *Document {
	out := &Document{Categories: make([]Category, len(d.Categories))}
	for i, c := range d.Categories {
		out.Categories[i] = c.Clone()
	}
	return out
}

// MarshalJSON writes categories as an object whose keys follow slice order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"categories":{`)
	for i, c := range d.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		entries := c.Entries
		if entries == nil {
			entries = []TimeEntry{}
		}
		val, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the categories object token by token so the key order
// of the file becomes the category order.
func (d *Document) UnmarshalJSON(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return err
	}
	d.Categories = []Category{}
	raw, ok := top["categories"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("categories: expected object, got %v", tok)
	}
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("categories: expected name, got %v", tok)
		}
		var entries []TimeEntry
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		if entries == nil {
			entries = []TimeEntry{}
		}
		if seen[name] {
			// last one wins, like a plain JSON object decode
			d.Categories[d.Index(name)].Entries = entries
			continue
		}
		seen[name] = true
		d.Categories = append(d.Categories, Category{Name: name, Entries: entries})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
