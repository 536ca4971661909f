// Package prefixmap provides a name-to-value table with an auxiliary
// unique-prefix lookup mode, used for resolving abbreviated command names.
package prefixmap

import (
	"fmt"
	"sort"
	"strings"
)

// Map stores values under string names. Names are never removed once
// inserted.
type Map[V any] struct {
	entries map[string]V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{entries: make(map[string]V)}
}

// Insert registers value under name. It fails if name is already present.
func (m *Map[V]) Insert(name string, value V) error {
	if _, ok := m.entries[name]; ok {
		return fmt.Errorf("name %q already registered", name)
	}
	m.entries[name] = value
	return nil
}

// Get returns the value stored under exactly name.
func (m *Map[V]) Get(name string) (V, bool) {
	v, ok := m.entries[name]
	return v, ok
}

// GetPrefix resolves name to the single entry whose key starts with it. An
// exact key always wins, even when it is also a prefix of other keys. Zero
// matches and multiple matches both report not found; distinguishing the two
// is left to the caller.
func (m *Map[V]) GetPrefix(name string) (V, bool) {
	if v, ok := m.entries[name]; ok {
		return v, true
	}
	var match V
	var count int
	for k, v := range m.entries {
		if strings.HasPrefix(k, name) {
			match = v
			count++
		}
	}
	if count != 1 {
		var zero V
		return zero, false
	}
	return match, true
}

// Names returns the registered names in sorted order.
func (m *Map[V]) Names() []string {
	names := make([]string, 0, len(m.entries))
	for k := range m.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}
