package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dependencies is a package.json dependency object. It keeps the key order of
// the document it was decoded from and stores each value verbatim.
type Dependencies struct {
	names  []string
	values map[string]json.RawMessage
}

// NewDependencies returns an empty dependency set.
func NewDependencies() *Dependencies {
	return &Dependencies{values: make(map[string]json.RawMessage)}
}

// Len returns the number of entries.
func (d *Dependencies) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Names returns the package names in document order.
func (d *Dependencies) Names() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

// Get returns the version range for name.
func (d *Dependencies) Get(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	raw, ok := d.values[name]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw), true
	}
	return s, true
}

// Set adds or replaces the version range for name. Replacing keeps the
// entry's original position.
func (d *Dependencies) Set(name, version string) {
	raw, _ := json.Marshal(version)
	d.setRaw(name, raw)
}

func (d *Dependencies) setRaw(name string, raw json.RawMessage) {
	if d.values == nil {
		d.values = make(map[string]json.RawMessage)
	}
	if _, ok := d.values[name]; !ok {
		d.names = append(d.names, name)
	}
	d.values[name] = raw
}

// Clone returns an independent copy.
func (d *Dependencies) Clone() *Dependencies {
	if d == nil {
		return nil
	}
	c := NewDependencies()
	for _, n := range d.names {
		c.setRaw(n, append(json.RawMessage(nil), d.values[n]...))
	}
	return c
}

// MarshalJSON encodes the entries in order.
func (d *Dependencies) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(d.values[n])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, recording key order.
func (d *Dependencies) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dependencies must be a JSON object")
	}

	*d = Dependencies{values: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected dependency key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding dependency %q: %w", name, err)
		}
		d.setRaw(name, raw)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
