// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settingsconf

import (
	"github.com/qtmvvm/settingsgen/pkg/filepos"
	"github.com/qtmvvm/settingsgen/pkg/settings"
)

// Element is a single member of a SettingsConfig level.
type Element interface {
	GetPosition() *filepos.Position

	sealed() // limit the concrete types of Element to the shapes the grammar recognizes
}

var _ = []Element{&Category{}, &Section{}, &Group{}, &Entry{}, &ImportedGroup{}}

// Config is a parsed SettingsConfig document.
type Config struct {
	Content  []Element
	Position *filepos.Position
}

// Category is the outermost presentation level. Its key, when present,
// prefixes the key paths of all entries below it.
type Category struct {
	Key      *string
	Title    *string
	Content  []Element
	Position *filepos.Position
}

type Section struct {
	Key      *string
	Title    *string
	Content  []Element
	Position *filepos.Position
}

type Group struct {
	Key      *string
	Title    *string
	Content  []Element
	Position *filepos.Position
}

// Entry is a leaf definition. Unlike the native grammar, its key is a
// full `/`-separated path fragment merged below the accumulated
// ancestor keys.
type Entry struct {
	Key       string
	ValueType string
	Default   *string
	Tr        *bool
	TrContext *string
	Position  *filepos.Position
}

// ImportedGroup carries the already-resolved content group of an
// Import directive, spliced into the target tree during normalization
// at the level the directive appeared on.
type ImportedGroup struct {
	Group    *settings.ContentGroup
	Position *filepos.Position
}

func (c *Category) GetPosition() *filepos.Position      { return c.Position }
func (s *Section) GetPosition() *filepos.Position       { return s.Position }
func (g *Group) GetPosition() *filepos.Position         { return g.Position }
func (e *Entry) GetPosition() *filepos.Position         { return e.Position }
func (i *ImportedGroup) GetPosition() *filepos.Position { return i.Position }

func (c *Category) sealed()      {}
func (s *Section) sealed()       {}
func (g *Group) sealed()         {}
func (e *Entry) sealed()         {}
func (i *ImportedGroup) sealed() {}
