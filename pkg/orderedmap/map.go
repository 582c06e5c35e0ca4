// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

// Map is a string map that remembers the order in which keys were
// first set. Lookups ignore the order; iteration follows it.
type Map struct {
	items []MapItem
}

type MapItem struct {
	Key   string
	Value string
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []MapItem) *Map {
	return &Map{items}
}

func (m *Map) Set(key, value string) {
	for i, item := range m.items {
		if item.Key == key {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key string) (string, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return "", false
}

// GetWithDefault returns the value set for key, or def when the key
// was never set.
func (m *Map) GetWithDefault(key, def string) string {
	if val, found := m.Get(key); found {
		return val
	}
	return def
}

func (m *Map) Delete(key string) bool {
	for i, item := range m.items {
		if item.Key == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

func (m *Map) Keys() []string {
	var result []string
	for _, item := range m.items {
		result = append(result, item.Key)
	}
	return result
}

func (m *Map) Iterate(iterFunc func(k, v string)) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}
