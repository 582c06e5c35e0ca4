// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package gen

import (
	"github.com/qtmvvm/settingsgen/pkg/files"
	"github.com/qtmvvm/settingsgen/pkg/settings"
)

// Generator emits the header/source pair for one resolved Document.
// "name" is the settings class name and the base name of both output
// files.
type Generator struct {
	doc  *settings.Document
	name string
}

func NewGenerator(doc *settings.Document, name string) *Generator {
	return &Generator{doc, name}
}

func (g *Generator) GenerateFiles() []files.OutputFile {
	return []files.OutputFile{
		files.NewOutputFile(g.name+".h", g.Header()),
		files.NewOutputFile(g.name+".cpp", g.Source()),
	}
}
