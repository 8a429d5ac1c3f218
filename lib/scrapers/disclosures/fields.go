package disclosures

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldMap is an ordered label-to-value map with a first-wins write policy:
// once a key is set it is never overwritten. Filings repeat the same label
// across sections (the registration block, then each officer block) and the
// first occurrence is the one that belongs to the filing itself.
type FieldMap struct {
	keys   []string
	values map[string]string
}

func NewFieldMap() *FieldMap {
	return &FieldMap{values: map[string]string{}}
}

// SetIfAbsent stores the value under key unless the key is already present.
// It reports whether the value was stored. Empty keys are ignored.
func (m *FieldMap) SetIfAbsent(key, value string) bool {
	if key == "" {
		return false
	}
	if _, ok := m.values[key]; ok {
		return false
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
	return true
}

func (m *FieldMap) Get(key string) string {
	return m.values[key]
}

func (m *FieldMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *FieldMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *FieldMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MarshalJSON renders the map as a JSON object in insertion order, so
// re-running extraction on the same document produces identical bytes.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *FieldMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	// opening brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	m.keys = nil
	m.values = map[string]string{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		key, _ := keyTok.(string)
		m.SetIfAbsent(key, value)
	}
	_, err := dec.Token()
	return err
}

// fieldRule maps a label pattern to a promoted field name. The rule tables
// replace per-filing-type label branching: all filing types share the same
// matching loop and differ only in their table.
type fieldRule struct {
	label    string
	contains bool
	field    string
}

func (r fieldRule) matches(label string) bool {
	if r.contains {
		return strings.Contains(label, r.label)
	}
	return label == r.label
}

// promote applies the first matching rule for the label: the target field
// is set only if no earlier label claimed it. A label matches at most one
// rule.
func promote(rules []fieldRule, promoted map[string]string, label, value string) {
	for _, rule := range rules {
		if !rule.matches(label) {
			continue
		}
		if _, claimed := promoted[rule.field]; !claimed {
			promoted[rule.field] = value
		}
		return
	}
}

// CollectFields walks every label on the page, resolves each value from its
// enclosing container, and accumulates both the raw first-wins field map
// and the fields promoted by the rule table. Labels whose value cannot be
// resolved contribute nothing. The promotion state is scoped to this call,
// never shared across documents.
func CollectFields(d Document, rules []fieldRule) (*FieldMap, map[string]string) {
	raw := NewFieldMap()
	promoted := map[string]string{}

	for _, label := range d.Labels() {
		text := labelText(label)
		value := labelValue(label)
		if text == "" || value == "" {
			continue
		}
		raw.SetIfAbsent(text, value)
		promote(rules, promoted, text, value)
	}

	return raw, promoted
}
