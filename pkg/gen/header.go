// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package gen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/qtmvvm/settingsgen/pkg/settings"
)

var defaultIncludes = []settings.Include{
	{Local: false, Path: "QtCore/QObject"},
	{Local: false, Path: "QtMvvmCore/ISettingsAccessor"},
	{Local: false, Path: "QtMvvmCore/SettingsEntry"},
}

func (g *Generator) Header() []byte {
	buf := new(bytes.Buffer)

	guard := includeGuard(g.name)
	fmt.Fprintf(buf, "#ifndef %s\n#define %s\n\n", guard, guard)

	for _, include := range append(append([]settings.Include{}, defaultIncludes...), g.doc.Includes...) {
		if include.Local {
			fmt.Fprintf(buf, "#include \"%s\"\n", include.Path)
		} else {
			fmt.Fprintf(buf, "#include <%s>\n", include.Path)
		}
	}
	buf.WriteString("\n")

	className := g.name
	if g.doc.Prefix != nil {
		className = *g.doc.Prefix + " " + g.name
	}

	fmt.Fprintf(buf, "class %s : public QObject\n", className)
	buf.WriteString("{\n")
	buf.WriteString("\tQ_OBJECT\n\n")
	buf.WriteString("\tQ_PROPERTY(QtMvvm::ISettingsAccessor *accessor READ accessor CONSTANT FINAL)\n\n")
	buf.WriteString("public:\n")
	fmt.Fprintf(buf, "\tQ_INVOKABLE explicit %s(QObject *parent = nullptr);\n", g.name)
	fmt.Fprintf(buf, "\texplicit %s(QtMvvm::ISettingsAccessor *accessor, QObject *parent);\n\n", g.name)
	fmt.Fprintf(buf, "\tstatic %s *instance();\n\n", g.name)
	buf.WriteString("\tQtMvvm::ISettingsAccessor *accessor() const;\n\n")

	g.writeGroupElements(buf, g.doc.Content, 1)

	buf.WriteString("\nprivate:\n")
	buf.WriteString("\tQtMvvm::ISettingsAccessor *_accessor;\n")
	buf.WriteString("};\n\n")
	fmt.Fprintf(buf, "#endif //%s\n", guard)

	return buf.Bytes()
}

// writeGroupElements walks a content group in order; anonymous groups
// flatten into their surroundings without an extra nesting level.
func (g *Generator) writeGroupElements(buf *bytes.Buffer, group *settings.ContentGroup, indent int) {
	if group == nil {
		return
	}

	for _, item := range group.Items {
		switch typedNode := item.(type) {
		case *settings.ContainerNode:
			g.writeContainer(buf, typedNode, indent)
		case *settings.EntryNode:
			g.writeEntry(buf, typedNode, indent)
		case *settings.ContentGroup:
			g.writeGroupElements(buf, typedNode, indent)
		default:
			panic("Unknown content node kind")
		}
	}
}

func (g *Generator) writeContainer(buf *bytes.Buffer, node *settings.ContainerNode, indent int) {
	tabs := strings.Repeat("\t", indent)
	fmt.Fprintf(buf, "%sstruct { //%s\n", tabs, node.Key)
	g.writeGroupElements(buf, node.Content, indent+1)
	fmt.Fprintf(buf, "%s} %s;\n", tabs, node.Key)
}

func (g *Generator) writeEntry(buf *bytes.Buffer, entry *settings.EntryNode, indent int) {
	tabs := strings.Repeat("\t", indent)
	mappedType := g.doc.TypeMappings.GetWithDefault(entry.ValueType, entry.ValueType)

	if entry.Content == nil || len(entry.Content.Items) == 0 {
		fmt.Fprintf(buf, "%sQtMvvm::SettingsEntry<%s> %s;\n", tabs, mappedType, entry.Key)
		return
	}

	fmt.Fprintf(buf, "%sstruct : QtMvvm::SettingsEntry<%s> { //%s\n", tabs, mappedType, entry.Key)
	g.writeGroupElements(buf, entry.Content, indent+1)
	fmt.Fprintf(buf, "%s} %s;\n", tabs, entry.Key)
}

func includeGuard(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, ".", "_")) + "_H"
}
