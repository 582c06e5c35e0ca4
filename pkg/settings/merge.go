// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"strings"

	"github.com/qtmvvm/settingsgen/pkg/filepos"
)

// EntryMeta is the value metadata of one entry definition about to be
// merged into a tree.
type EntryMeta struct {
	ValueType string
	Default   *string
	Tr        *bool
	TrContext *string

	Position *filepos.Position
}

// MergeEntry inserts an entry described by "meta" at the `/`-separated
// "keyPath" below "root", creating missing intermediate containers.
//
// An intermediate segment that resolves to an existing Entry is
// descended into: entries double as namespaces by virtue of owning an
// optional child group. At the terminal segment three outcomes exist:
// a fresh Entry is appended, an existing Container is promoted in place
// to an Entry (keeping its children and its position among siblings),
// or an existing Entry makes the definition a duplicate and the merge
// fails.
func MergeEntry(root *ContentGroup, keyPath string, meta EntryMeta) error {
	segments := splitKeyPath(keyPath)
	if len(segments) == 0 {
		return NewMalformedDocumentError("Expected entry key to not be empty", meta.Position)
	}

	containerKeys := segments[:len(segments)-1]
	entryKey := segments[len(segments)-1]

	curGroup := EnsureGroup(root, containerKeys)

	var entry *EntryNode

	found := findInGroup(curGroup, entryKey)
	switch {
	case found == nil:
		entry = &EntryNode{Key: entryKey, Position: meta.Position}
		curGroup.Append(entry)

	default:
		switch typedNode := found.node.(type) {
		case *ContainerNode:
			// promote: the entry takes over the container's children and
			// its slot, so sibling order stays intact
			entry = &EntryNode{Key: entryKey, Content: typedNode.Content, Position: meta.Position}
			found.owner.Items[found.idx] = entry
		case *EntryNode:
			return NewDuplicateEntryError(strings.Join(segments, "."), meta.Position)
		default:
			panic("Unknown content node kind")
		}
	}

	entry.ValueType = meta.ValueType
	entry.Default = meta.Default
	entry.Tr = meta.Tr
	entry.TrContext = meta.TrContext

	return nil
}

// EnsureGroup walks "keys" below "root", descending into existing
// containers and entries (an entry's child group is created on first
// use) and creating missing containers, and returns the group at the
// end of the walk.
func EnsureGroup(root *ContentGroup, keys []string) *ContentGroup {
	curGroup := root
	for _, key := range keys {
		found := findInGroup(curGroup, key)
		if found == nil {
			newContainer := &ContainerNode{Key: key, Position: filepos.NewUnknownPosition()}
			curGroup.Append(newContainer)
			curGroup = newContainer.group()
			continue
		}

		switch typedNode := found.node.(type) {
		case *ContainerNode:
			curGroup = typedNode.group()
		case *EntryNode:
			curGroup = typedNode.group()
		default:
			panic("Unknown content node kind")
		}
	}
	return curGroup
}

func splitKeyPath(keyPath string) []string {
	var segments []string
	for _, piece := range strings.Split(keyPath, "/") {
		if len(piece) > 0 {
			segments = append(segments, piece)
		}
	}
	return segments
}
