package fsattr

import "iter"

// Attributes is an ordered attribute bag returned by ReadAttributeMap.
// Keys keep the position of their first insertion; setting an existing key
// again replaces its value.
type Attributes struct {
	keys   []string
	values map[string]any
}

func newAttributes(capacity int) *Attributes {
	return &Attributes{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

func (a *Attributes) set(key string, value any) {
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value stored for key.
func (a *Attributes) Get(key string) (any, bool) {
	value, ok := a.values[key]
	return value, ok
}

// Has reports whether key is present.
func (a *Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Len returns the number of attributes in the bag.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Keys returns the attribute names in insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)

	return keys
}

// All iterates over the attributes in insertion order.
func (a *Attributes) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range a.keys {
			if !yield(key, a.values[key]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the bag.
func (a *Attributes) Map() map[string]any {
	m := make(map[string]any, len(a.keys))
	for key, value := range a.All() {
		m[key] = value
	}

	return m
}
