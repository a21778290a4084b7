package model

import (
	"sort"
	"strconv"
	"strings"
)

// Configuration maps formatter setting names to values. Values are kept in
// their string form; booleans are "true"/"false" and integers are decimal.
type Configuration map[string]string

// Clone returns an independent copy of the configuration.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// With returns a copy of the configuration with one setting overridden.
func (c Configuration) With(setting, value string) Configuration {
	out := c.Clone()
	out[setting] = value

	return out
}

// Get returns the value of a setting and whether it is set.
func (c Configuration) Get(setting string) (string, bool) {
	v, ok := c[setting]
	return v, ok
}

// Equal reports whether both configurations hold exactly the same mappings.
func (c Configuration) Equal(other Configuration) bool {
	if len(c) != len(other) {
		return false
	}

	for k, v := range c {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// Keys returns the setting names in lexicographic order.
func (c Configuration) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Key returns a canonical string for the configuration, usable as a cache key.
// Equal configurations always produce the same key and different ones never
// share a key, since names and values are quoted.
func (c Configuration) Key() string {
	var b strings.Builder

	for _, k := range c.Keys() {
		b.WriteString(strconv.Quote(k))
		b.WriteByte('=')
		b.WriteString(strconv.Quote(c[k]))
		b.WriteByte(';')
	}

	return b.String()
}

// Overrides counts the settings whose value differs from base, including
// settings that base does not set at all.
func (c Configuration) Overrides(base Configuration) int {
	count := 0

	for k, v := range c {
		if bv, ok := base[k]; !ok || bv != v {
			count++
		}
	}

	return count
}
