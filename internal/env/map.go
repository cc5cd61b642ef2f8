package env

import (
	"fmt"
	"maps"
	"os"
	"sort"
	"strings"
)

// Map is an in-memory environment. It backs tests, dotenv layering, and
// snapshots of the process environment. The startup sequence is
// single-threaded, so Map does no locking.
type Map struct {
	data map[string]string
}

var _ Resolver = (*Map)(nil)

// Empty returns a Map with no variables set.
func Empty() *Map {
	return &Map{data: make(map[string]string)}
}

// FromMap returns a Map seeded from data.
func FromMap(data map[string]string) *Map {
	m := Empty()
	for k, v := range data {
		m.Set(k, v)
	}
	return m
}

// FromOS returns a Map snapshot of the current process environment.
func FromOS() *Map {
	m := Empty()
	for _, pair := range os.Environ() {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 {
			m.Set(parts[0], parts[1])
		}
	}
	return m
}

// Lookup implements Resolver.
func (m *Map) Lookup(name string) (string, bool) {
	value, found := m.data[name]
	return value, found
}

// Expand implements Resolver.
func (m *Map) Expand(s string) string {
	return expandTokens(m, s)
}

// Get returns the value of the named variable, or "" if unset.
func (m *Map) Get(name string) string {
	return m.data[name]
}

// Set assigns a variable.
func (m *Map) Set(name, value string) {
	m.data[name] = value
}

// Unset removes a variable.
func (m *Map) Unset(name string) {
	delete(m.data, name)
}

// Clone returns an independent copy of the Map.
func (m *Map) Clone() *Map {
	out := Empty()
	maps.Copy(out.data, m.data)
	return out
}

// Keys returns the sorted variable names.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToSlice returns the variables as KEY=VALUE pairs, sorted by key.
func (m *Map) ToSlice() []string {
	out := make([]string, 0, len(m.data))
	for _, k := range m.Keys() {
		out = append(out, fmt.Sprintf("%s=%s", k, m.data[k]))
	}
	return out
}

// Merge copies variables from other into m. Existing keys are kept unless
// overwrite is set.
func (m *Map) Merge(other *Map, overwrite bool) {
	for k, v := range other.data {
		if _, found := m.Lookup(k); found && !overwrite {
			continue
		}
		m.Set(k, v)
	}
}
