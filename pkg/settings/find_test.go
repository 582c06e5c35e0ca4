// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settings_test

import (
	"testing"

	"github.com/qtmvvm/settingsgen/pkg/settings"
	"github.com/stretchr/testify/require"
)

func TestFindPrefersKeyedChildrenOverAnonymousGroups(t *testing.T) {
	imported := settings.NewContentGroup()
	imported.Append(&settings.EntryNode{Key: "lang", ValueType: "imported"})

	root := settings.NewContentGroup()
	root.Append(imported)
	root.Append(&settings.EntryNode{Key: "lang", ValueType: "direct"})

	found := root.Find("lang")
	require.NotNil(t, found)

	entry, ok := found.(*settings.EntryNode)
	require.True(t, ok)
	require.Equal(t, "direct", entry.ValueType)
}

func TestFindSearchesAnonymousGroupsDepthFirst(t *testing.T) {
	inner := settings.NewContentGroup()
	inner.Append(&settings.ContainerNode{Key: "net"})

	outer := settings.NewContentGroup()
	outer.Append(inner)

	root := settings.NewContentGroup()
	root.Append(outer)

	found := root.Find("net")
	require.NotNil(t, found)

	_, ok := found.(*settings.ContainerNode)
	require.True(t, ok)

	require.Nil(t, root.Find("absent"))
}

func TestFindContainerIgnoresEntries(t *testing.T) {
	root := settings.NewContentGroup()
	root.Append(&settings.EntryNode{Key: "lang", ValueType: "string"})
	root.Append(&settings.ContainerNode{Key: "net"})

	require.Nil(t, root.FindContainer("lang"))
	require.NotNil(t, root.FindContainer("net"))
	require.Nil(t, root.FindContainer("absent"))
}
