// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"github.com/qtmvvm/settingsgen/pkg/filepos"
)

// Node is a single member of a ContentGroup.
type Node interface {
	GetPosition() *filepos.Position

	sealed() // limit the concrete types of Node to the three kinds of tree members
}

var _ = []Node{&ContainerNode{}, &EntryNode{}, &ContentGroup{}}

// ContentGroup is an ordered sequence of nodes. It appears both as the
// child collection owned by containers and entries, and as a node in its
// own right: an unkeyed ("anonymous") group spliced in by an Import.
// Key lookups pass through anonymous groups without consuming a path
// segment.
type ContentGroup struct {
	Items    []Node
	Position *filepos.Position
}

// ContainerNode is a keyed node that only namespaces its children.
type ContainerNode struct {
	Key      string
	Content  *ContentGroup
	Position *filepos.Position
}

// EntryNode is a keyed node carrying value metadata. It may additionally
// own children, making it simultaneously a leaf and a namespace.
type EntryNode struct {
	Key       string
	ValueType string
	Default   *string
	Tr        *bool
	TrContext *string

	Content  *ContentGroup // nil until children appear
	Position *filepos.Position
}

func NewContentGroup() *ContentGroup {
	return &ContentGroup{Position: filepos.NewUnknownPosition()}
}

func (g *ContentGroup) GetPosition() *filepos.Position { return g.Position }
func (n *ContainerNode) GetPosition() *filepos.Position {
	return n.Position
}
func (e *EntryNode) GetPosition() *filepos.Position { return e.Position }

func (g *ContentGroup) sealed()  {}
func (n *ContainerNode) sealed() {}
func (e *EntryNode) sealed()     {}

// Append adds a node at the end of the group, preserving definition order.
func (g *ContentGroup) Append(node Node) {
	g.Items = append(g.Items, node)
}

// group returns the node's owned child group, allocating it on first use.
// Entries legitimately start without one.
func (n *ContainerNode) group() *ContentGroup {
	if n.Content == nil {
		n.Content = NewContentGroup()
	}
	return n.Content
}

func (e *EntryNode) group() *ContentGroup {
	if e.Content == nil {
		e.Content = NewContentGroup()
	}
	return e.Content
}
