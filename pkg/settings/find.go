// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settings

// Find locates the Container or Entry directly answering to "key"
// within the group. Keyed children are checked first in definition
// order; only when none match are anonymous child groups searched,
// depth-first, again in definition order. Returns nil when the key is
// not present. Pure lookup, nothing is created.
func (g *ContentGroup) Find(key string) Node {
	if found := findInGroup(g, key); found != nil {
		return found.node
	}
	return nil
}

// FindContainer is Container-only resolution: a key that resolves to an
// Entry is treated as not found. Used for Import rootNode selectors.
func (g *ContentGroup) FindContainer(key string) *ContainerNode {
	found := findInGroup(g, key)
	if found == nil {
		return nil
	}
	if container, ok := found.node.(*ContainerNode); ok {
		return container
	}
	return nil
}

// foundNode remembers where a match lives so that promotion can replace
// it in place. The owner group is the group that directly holds the
// node, which may be a nested anonymous group rather than the group the
// search started from.
type foundNode struct {
	owner *ContentGroup
	idx   int
	node  Node
}

func findInGroup(g *ContentGroup, key string) *foundNode {
	for i, item := range g.Items {
		switch typedNode := item.(type) {
		case *ContainerNode:
			if typedNode.Key == key {
				return &foundNode{g, i, typedNode}
			}
		case *EntryNode:
			if typedNode.Key == key {
				return &foundNode{g, i, typedNode}
			}
		case *ContentGroup:
			// searched in a second pass; keyed children win
		default:
			panic("Unknown content node kind")
		}
	}

	for _, item := range g.Items {
		if anon, ok := item.(*ContentGroup); ok {
			if found := findInGroup(anon, key); found != nil {
				return found
			}
		}
	}

	return nil
}
