// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settingsconf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/qtmvvm/settingsgen/pkg/filepos"
	"github.com/qtmvvm/settingsgen/pkg/settings"
)

type ParserOpts struct {
	// ResolveImport turns an Import directive into the content group
	// spliced at the directive's position. Leaving it nil makes any
	// Import directive a malformed-document error.
	ResolveImport func(settings.Import) (*settings.ContentGroup, error)
}

// Parser reads the SettingsConfig grammar.
type Parser struct {
	opts ParserOpts
}

func NewParser(opts ParserOpts) *Parser {
	return &Parser{opts}
}

// level encodes which element shapes are legal at a nesting depth.
type level int

const (
	levelRoot level = iota
	levelCategory
	levelSection
	levelGroup
)

func (l level) String() string {
	switch l {
	case levelRoot:
		return "SettingsConfig"
	case levelCategory:
		return "Category"
	case levelSection:
		return "Section"
	case levelGroup:
		return "Group"
	default:
		panic("Unknown SettingsConfig level")
	}
}

func (p *Parser) ParseBytes(data []byte, file string) (*Config, error) {
	parser := &confParser{
		dec:           xml.NewDecoder(bytes.NewReader(data)),
		file:          file,
		lines:         strings.Split(string(data), "\n"),
		resolveImport: p.opts.ResolveImport,
	}

	root, pos, err := parser.rootElement()
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "SettingsConfig" {
		return nil, settings.NewMalformedDocumentError(
			fmt.Sprintf("Expected root element 'SettingsConfig', but was '%s'", root.Name.Local), pos)
	}

	content, err := parser.parseElements(root, levelRoot)
	if err != nil {
		return nil, err
	}

	return &Config{Content: content, Position: pos}, nil
}

type confParser struct {
	dec           *xml.Decoder
	file          string
	lines         []string
	resolveImport func(settings.Import) (*settings.ContentGroup, error)
}

func (p *confParser) pos() *filepos.Position {
	line, _ := p.dec.InputPos()
	if line <= 0 {
		return filepos.NewUnknownPositionInFile(p.file)
	}
	pos := filepos.NewPositionInFile(line, p.file)
	if line <= len(p.lines) {
		pos.SetLine(p.lines[line-1])
	}
	return pos
}

func (p *confParser) rootElement() (xml.StartElement, *filepos.Position, error) {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return xml.StartElement{}, nil, settings.NewMalformedDocumentError(err.Error(),
				filepos.NewUnknownPositionInFile(p.file))
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, p.pos(), nil
		}
	}
}

func (p *confParser) parseElements(start xml.StartElement, lvl level) ([]Element, error) {
	var content []Element

	err := p.eachChild(start, func(child xml.StartElement, childPos *filepos.Position) error {
		element, err := p.parseElement(child, childPos, lvl)
		if err != nil {
			return err
		}
		content = append(content, element)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return content, nil
}

func (p *confParser) parseElement(child xml.StartElement, childPos *filepos.Position, lvl level) (Element, error) {
	name := child.Name.Local

	allowed := map[level][]string{
		levelRoot:     {"Category", "Section", "Group", "Entry", "Import"},
		levelCategory: {"Section", "Group", "Entry", "Import"},
		levelSection:  {"Group", "Entry", "Import"},
		levelGroup:    {"Entry", "Import"},
	}[lvl]

	if !contains(allowed, name) {
		return nil, settings.NewMalformedDocumentError(
			fmt.Sprintf("Unexpected element '%s' in <%s>", name, lvl), childPos)
	}

	switch name {
	case "Category":
		content, err := p.parseElements(child, levelCategory)
		if err != nil {
			return nil, err
		}
		return &Category{Key: optAttr(child, "key"), Title: optAttr(child, "title"),
			Content: content, Position: childPos}, nil

	case "Section":
		content, err := p.parseElements(child, levelSection)
		if err != nil {
			return nil, err
		}
		return &Section{Key: optAttr(child, "key"), Title: optAttr(child, "title"),
			Content: content, Position: childPos}, nil

	case "Group":
		content, err := p.parseElements(child, levelGroup)
		if err != nil {
			return nil, err
		}
		return &Group{Key: optAttr(child, "key"), Title: optAttr(child, "title"),
			Content: content, Position: childPos}, nil

	case "Entry":
		return p.parseEntry(child, childPos)

	case "Import":
		return p.parseImport(child, childPos)

	default:
		panic("Unknown SettingsConfig element")
	}
}

func (p *confParser) parseEntry(start xml.StartElement, pos *filepos.Position) (*Entry, error) {
	key, found := attrValue(start, "key")
	if !found {
		return nil, settings.NewMalformedDocumentError("Expected 'key' attribute on <Entry>", pos)
	}
	valueType, found := attrValue(start, "type")
	if !found {
		return nil, settings.NewMalformedDocumentError(
			fmt.Sprintf("Expected 'type' attribute on <Entry key=\"%s\">", key), pos)
	}

	entry := &Entry{Key: key, ValueType: valueType, Position: pos}
	entry.Default = optAttr(start, "default")
	entry.TrContext = optAttr(start, "trContext")

	if trStr, found := attrValue(start, "tr"); found {
		tr, err := strconv.ParseBool(trStr)
		if err != nil {
			return nil, settings.NewMalformedDocumentError(
				fmt.Sprintf("Expected 'tr' attribute to be a boolean, but was '%s'", trStr), pos)
		}
		entry.Tr = &tr
	}

	if _, err := p.elementText(start, pos); err != nil {
		return nil, err
	}

	return entry, nil
}

func (p *confParser) parseImport(start xml.StartElement, pos *filepos.Position) (*ImportedGroup, error) {
	imp := settings.Import{Required: true, RootNode: optAttr(start, "rootNode"), Position: pos}

	if requiredStr, found := attrValue(start, "required"); found {
		required, err := strconv.ParseBool(requiredStr)
		if err != nil {
			return nil, settings.NewMalformedDocumentError(
				fmt.Sprintf("Expected 'required' attribute to be a boolean, but was '%s'", requiredStr), pos)
		}
		imp.Required = required
	}

	path, err := p.elementText(start, pos)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, settings.NewMalformedDocumentError("Expected <Import> to specify a source path", pos)
	}
	imp.Path = path

	if p.resolveImport == nil {
		return nil, settings.NewMalformedDocumentError("Import directives are not supported in this context", pos)
	}

	group, err := p.resolveImport(imp)
	if err != nil {
		return nil, err
	}
	if group == nil {
		group = settings.NewContentGroup()
	}
	return &ImportedGroup{Group: group, Position: pos}, nil
}

func (p *confParser) eachChild(start xml.StartElement, fn func(xml.StartElement, *filepos.Position) error) error {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return settings.NewMalformedDocumentError(err.Error(), p.pos())
		}

		switch typedTok := tok.(type) {
		case xml.StartElement:
			if err := fn(typedTok, p.pos()); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		default:
			// whitespace, comments, processing instructions
		}
	}
}

func (p *confParser) elementText(start xml.StartElement, pos *filepos.Position) (string, error) {
	var text strings.Builder
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return "", settings.NewMalformedDocumentError(err.Error(), p.pos())
		}

		switch typedTok := tok.(type) {
		case xml.CharData:
			text.Write(typedTok)
		case xml.EndElement:
			return strings.TrimSpace(text.String()), nil
		case xml.StartElement:
			return "", settings.NewMalformedDocumentError(
				fmt.Sprintf("Unexpected element '%s' within <%s>", typedTok.Name.Local, start.Name.Local), p.pos())
		}
	}
}

func contains(strs []string, str string) bool {
	for _, candidate := range strs {
		if candidate == str {
			return true
		}
	}
	return false
}

func attrValue(start xml.StartElement, name string) (string, bool) {
	for _, attr := range start.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

func optAttr(start xml.StartElement, name string) *string {
	if val, found := attrValue(start, name); found {
		return &val
	}
	return nil
}
