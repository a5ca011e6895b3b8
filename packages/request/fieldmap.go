package request

// FieldMap is an ordered string mapping with unique keys. Insertion order
// is preserved; setting an existing key replaces the value in place.
type FieldMap struct {
	keys   []string
	values map[string]string
}

func NewFieldMap() *FieldMap {
	return &FieldMap{
		values: make(map[string]string),
	}
}

// Set stores value under key and reports whether a previous value was
// overwritten.
func (m *FieldMap) Set(key, value string) bool {
	_, exists := m.values[key]
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return exists
}

func (m *FieldMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *FieldMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *FieldMap) Len() int {
	return len(m.keys)
}

// Each calls fn for every entry in insertion order.
func (m *FieldMap) Each(fn func(key, value string)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// Keys returns the keys in insertion order.
func (m *FieldMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}
