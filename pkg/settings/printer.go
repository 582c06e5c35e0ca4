// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"bytes"
	"fmt"
	"io"

	"github.com/qtmvvm/settingsgen/pkg/filepos"
)

// Printer renders a settings tree in a compact debug notation. Used by
// the inspect command and by tests comparing tree structures.
type Printer struct {
	writer io.Writer
	opts   PrinterOpts
}

type PrinterOpts struct {
	// ExcludePositions drops source locations, leaving only the key
	// structure. Two documents with equal structure print identically.
	ExcludePositions bool
}

func NewPrinter(writer io.Writer) Printer {
	return Printer{writer, PrinterOpts{}}
}

func NewPrinterWithOpts(writer io.Writer, opts PrinterOpts) Printer {
	return Printer{writer, opts}
}

func (p Printer) Print(val interface{}) {
	fmt.Fprintf(p.writer, "%s", p.PrintStr(val))
}

func (p Printer) PrintStr(val interface{}) string {
	buf := new(bytes.Buffer)
	p.print(val, "", buf)
	return buf.String()
}

func (p Printer) print(val interface{}, indent string, writer io.Writer) {
	const indentLvl = "    "

	switch typedVal := val.(type) {
	case *Document:
		fmt.Fprintf(writer, "%s%s: doc%s\n", indent, p.lineStr(typedVal.Position), p.docStr(typedVal))
		p.print(typedVal.Content, indent+indentLvl, writer)

	case *ContentGroup:
		fmt.Fprintf(writer, "%s%s: group\n", indent, p.lineStr(typedVal.Position))
		for _, item := range typedVal.Items {
			p.print(item, indent+indentLvl, writer)
		}

	case *ContainerNode:
		fmt.Fprintf(writer, "%s%s: node key=%s\n", indent, p.lineStr(typedVal.Position), typedVal.Key)
		if typedVal.Content != nil {
			for _, item := range typedVal.Content.Items {
				p.print(item, indent+indentLvl, writer)
			}
		}

	case *EntryNode:
		fmt.Fprintf(writer, "%s%s: entry key=%s%s\n", indent, p.lineStr(typedVal.Position), typedVal.Key, p.entryStr(typedVal))
		if typedVal.Content != nil {
			for _, item := range typedVal.Content.Items {
				p.print(item, indent+indentLvl, writer)
			}
		}

	default:
		panic(fmt.Sprintf("Unknown type '%T' in settings tree", typedVal))
	}
}

func (p Printer) lineStr(pos *filepos.Position) string {
	if p.opts.ExcludePositions {
		return "-"
	}
	return pos.AsCompactString()
}

func (p Printer) docStr(doc *Document) string {
	result := ""
	if doc.Name != nil {
		result += fmt.Sprintf(" name=%s", *doc.Name)
	}
	if doc.Prefix != nil {
		result += fmt.Sprintf(" prefix=%s", *doc.Prefix)
	}
	return result
}

func (p Printer) entryStr(entry *EntryNode) string {
	result := ""
	if len(entry.ValueType) > 0 {
		result += fmt.Sprintf(" type=%s", entry.ValueType)
	}
	if entry.Default != nil {
		result += fmt.Sprintf(" default=%s", *entry.Default)
	}
	if entry.Tr != nil {
		result += fmt.Sprintf(" tr=%t", *entry.Tr)
	}
	return result
}
