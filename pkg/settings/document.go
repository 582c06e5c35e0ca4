// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"github.com/qtmvvm/settingsgen/pkg/filepos"
	"github.com/qtmvvm/settingsgen/pkg/orderedmap"
)

// Document is one fully parsed settings document: its resolved content
// tree plus the metadata consumed by emission. It is built once per
// input and handed to the emission layer as-is.
type Document struct {
	Name       *string
	Prefix     *string
	MinVersion *string

	Backend      *Backend
	Includes     []Include
	TypeMappings *orderedmap.Map

	Content  *ContentGroup
	Position *filepos.Position
}

// Backend describes the accessor backend the generated class constructs:
// a class name plus ordered, typed constructor arguments.
type Backend struct {
	ClassName string
	Params    []BackendParam
}

type BackendParam struct {
	Type     string
	Value    string
	AsString bool
}

// Include is a third-party include emitted into the generated header.
// Distinct from Import, which pulls another settings document into the
// tree before merging.
type Include struct {
	Local bool
	Path  string
}

// Import describes a cross-document inclusion directive.
type Import struct {
	Path     string
	Required bool
	RootNode *string // optional `/`-separated sub-path into the imported tree

	Position *filepos.Position
}

func NewDocument() *Document {
	return &Document{
		TypeMappings: orderedmap.NewMap(),
		Content:      NewContentGroup(),
		Position:     filepos.NewUnknownPosition(),
	}
}
