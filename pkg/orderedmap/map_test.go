// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"testing"

	"github.com/qtmvvm/settingsgen/pkg/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("b", "1")
	m.Set("a", "2")
	m.Set("c", "3")
	m.Set("a", "4") // resetting a key keeps its original slot

	require.Equal(t, []string{"b", "a", "c"}, m.Keys())
	require.Equal(t, 3, m.Len())

	val, found := m.Get("a")
	require.True(t, found)
	require.Equal(t, "4", val)

	var seen []string
	m.Iterate(func(k, v string) { seen = append(seen, k+"="+v) })
	require.Equal(t, []string{"b=1", "a=4", "c=3"}, seen)
}

func TestMapGetWithDefault(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("url", "QUrl")

	require.Equal(t, "QUrl", m.GetWithDefault("url", "url"))
	require.Equal(t, "int", m.GetWithDefault("int", "int"))
}

func TestMapDelete(t *testing.T) {
	m := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}})

	require.True(t, m.Delete("a"))
	require.False(t, m.Delete("a"))
	require.Equal(t, []string{"b"}, m.Keys())
}

func TestNilMapLen(t *testing.T) {
	var m *orderedmap.Map
	require.Equal(t, 0, m.Len())
}
