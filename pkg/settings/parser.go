// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qtmvvm/settingsgen/pkg/filepos"
)

type ParserOpts struct {
	// ResolveImport turns an Import directive into the content group
	// spliced at the directive's position. Leaving it nil makes any
	// Import directive a malformed-document error.
	ResolveImport func(Import) (*ContentGroup, error)
}

// Parser reads the native settings tree grammar: a Settings root with
// nested Node/Entry elements plus document-level metadata.
type Parser struct {
	opts ParserOpts
}

func NewParser(opts ParserOpts) *Parser {
	return &Parser{opts}
}

// DetectRootElement returns the local name of the document's root
// element, which selects the grammar the document is parsed with.
func DetectRootElement(data []byte, file string) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return "", NewMalformedDocumentError("Expected document to contain a root element",
					filepos.NewUnknownPositionInFile(file))
			}
			return "", NewMalformedDocumentError(err.Error(), filepos.NewUnknownPositionInFile(file))
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}

func (p *Parser) ParseBytes(data []byte, file string) (*Document, error) {
	parser := &xmlParser{
		dec:           xml.NewDecoder(bytes.NewReader(data)),
		file:          file,
		lines:         strings.Split(string(data), "\n"),
		resolveImport: p.opts.ResolveImport,
	}

	root, pos, err := parser.rootElement()
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "Settings" {
		return nil, NewMalformedDocumentError(
			fmt.Sprintf("Expected root element 'Settings', but was '%s'", root.Name.Local), pos)
	}

	return parser.parseSettings(root, pos)
}

type xmlParser struct {
	dec           *xml.Decoder
	file          string
	lines         []string
	resolveImport func(Import) (*ContentGroup, error)
}

func (p *xmlParser) pos() *filepos.Position {
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

func (p *xmlParser) rootElement() (xml.StartElement, *filepos.Position, error) {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return xml.StartElement{}, nil, NewMalformedDocumentError(err.Error(),
				filepos.NewUnknownPositionInFile(p.file))
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, p.pos(), nil
		}
	}
}

func (p *xmlParser) parseSettings(start xml.StartElement, pos *filepos.Position) (*Document, error) {
	doc := NewDocument()
	doc.Position = pos
	doc.Name = optAttr(start, "name")
	doc.Prefix = optAttr(start, "prefix")
	doc.MinVersion = optAttr(start, "minVersion")

	err := p.eachChild(start, func(child xml.StartElement, childPos *filepos.Position) error {
		switch child.Name.Local {
		case "Include":
			include, err := p.parseInclude(child, childPos)
			if err != nil {
				return err
			}
			doc.Includes = append(doc.Includes, include)
			return nil
		case "Backend":
			backend, err := p.parseBackend(child, childPos)
			if err != nil {
				return err
			}
			doc.Backend = backend
			return nil
		case "TypeMappings":
			return p.parseTypeMappings(child, doc)
		default:
			return p.parseContentChild(child, childPos, doc.Content)
		}
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// parseContentChild handles the elements legal inside any content
// group: Node, Entry and Import.
func (p *xmlParser) parseContentChild(child xml.StartElement, childPos *filepos.Position, group *ContentGroup) error {
	switch child.Name.Local {
	case "Node":
		container, err := p.parseNode(child, childPos)
		if err != nil {
			return err
		}
		return p.appendKeyed(group, container, container.Key, childPos)
	case "Entry":
		entry, err := p.parseEntry(child, childPos)
		if err != nil {
			return err
		}
		return p.appendKeyed(group, entry, entry.Key, childPos)
	case "Import":
		imported, err := p.parseImport(child, childPos)
		if err != nil {
			return err
		}
		group.Append(imported)
		return nil
	default:
		return NewMalformedDocumentError(
			fmt.Sprintf("Unexpected element '%s'", child.Name.Local), childPos)
	}
}

// appendKeyed enforces key uniqueness among a group's direct children.
// Anonymous groups are exempt: identical keys arriving via separate
// imports live in separate groups.
func (p *xmlParser) appendKeyed(group *ContentGroup, node Node, key string, pos *filepos.Position) error {
	for _, item := range group.Items {
		switch typedNode := item.(type) {
		case *ContainerNode:
			if typedNode.Key == key {
				return NewMalformedDocumentError(fmt.Sprintf("Duplicate key '%s' within one group", key), pos)
			}
		case *EntryNode:
			if typedNode.Key == key {
				return NewMalformedDocumentError(fmt.Sprintf("Duplicate key '%s' within one group", key), pos)
			}
		case *ContentGroup:
			// exempt
		default:
			panic("Unknown content node kind")
		}
	}
	group.Append(node)
	return nil
}

func (p *xmlParser) parseNode(start xml.StartElement, pos *filepos.Position) (*ContainerNode, error) {
	key, found := attrValue(start, "key")
	if !found {
		return nil, NewMalformedDocumentError("Expected 'key' attribute on <Node>", pos)
	}

	container := &ContainerNode{Key: key, Position: pos}
	content := container.group()

	err := p.eachChild(start, func(child xml.StartElement, childPos *filepos.Position) error {
		return p.parseContentChild(child, childPos, content)
	})
	if err != nil {
		return nil, err
	}

	return container, nil
}

func (p *xmlParser) parseEntry(start xml.StartElement, pos *filepos.Position) (*EntryNode, error) {
	key, found := attrValue(start, "key")
	if !found {
		return nil, NewMalformedDocumentError("Expected 'key' attribute on <Entry>", pos)
	}
	valueType, found := attrValue(start, "type")
	if !found {
		return nil, NewMalformedDocumentError(
			fmt.Sprintf("Expected 'type' attribute on <Entry key=\"%s\">", key), pos)
	}

	entry := &EntryNode{Key: key, ValueType: valueType, Position: pos}
	entry.Default = optAttr(start, "default")
	entry.TrContext = optAttr(start, "trContext")

	tr, err := p.optBoolAttr(start, "tr", pos)
	if err != nil {
		return nil, err
	}
	entry.Tr = tr

	err = p.eachChild(start, func(child xml.StartElement, childPos *filepos.Position) error {
		return p.parseContentChild(child, childPos, entry.group())
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (p *xmlParser) parseImport(start xml.StartElement, pos *filepos.Position) (*ContentGroup, error) {
	imp := Import{Required: true, RootNode: optAttr(start, "rootNode"), Position: pos}

	if requiredStr, found := attrValue(start, "required"); found {
		required, err := strconv.ParseBool(requiredStr)
		if err != nil {
			return nil, NewMalformedDocumentError(
				fmt.Sprintf("Expected 'required' attribute to be a boolean, but was '%s'", requiredStr), pos)
		}
		imp.Required = required
	}

	path, err := p.elementText(start, pos)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, NewMalformedDocumentError("Expected <Import> to specify a source path", pos)
	}
	imp.Path = path

	if p.resolveImport == nil {
		return nil, NewMalformedDocumentError("Import directives are not supported in this context", pos)
	}

	group, err := p.resolveImport(imp)
	if err != nil {
		return nil, err
	}
	if group == nil {
		group = NewContentGroup()
	}
	return group, nil
}

func (p *xmlParser) parseInclude(start xml.StartElement, pos *filepos.Position) (Include, error) {
	include := Include{}

	if localStr, found := attrValue(start, "local"); found {
		local, err := strconv.ParseBool(localStr)
		if err != nil {
			return Include{}, NewMalformedDocumentError(
				fmt.Sprintf("Expected 'local' attribute to be a boolean, but was '%s'", localStr), pos)
		}
		include.Local = local
	}

	path, err := p.elementText(start, pos)
	if err != nil {
		return Include{}, err
	}
	if len(path) == 0 {
		return Include{}, NewMalformedDocumentError("Expected <Include> to specify an include path", pos)
	}
	include.Path = path

	return include, nil
}

func (p *xmlParser) parseBackend(start xml.StartElement, pos *filepos.Position) (*Backend, error) {
	className, found := attrValue(start, "className")
	if !found {
		return nil, NewMalformedDocumentError("Expected 'className' attribute on <Backend>", pos)
	}

	backend := &Backend{ClassName: className}

	err := p.eachChild(start, func(child xml.StartElement, childPos *filepos.Position) error {
		if child.Name.Local != "Param" {
			return NewMalformedDocumentError(
				fmt.Sprintf("Unexpected element '%s' in <Backend>", child.Name.Local), childPos)
		}

		paramType, found := attrValue(child, "type")
		if !found {
			return NewMalformedDocumentError("Expected 'type' attribute on <Param>", childPos)
		}

		param := BackendParam{Type: paramType}

		if asStr, found := attrValue(child, "asStr"); found {
			parsed, err := strconv.ParseBool(asStr)
			if err != nil {
				return NewMalformedDocumentError(
					fmt.Sprintf("Expected 'asStr' attribute to be a boolean, but was '%s'", asStr), childPos)
			}
			param.AsString = parsed
		}

		value, err := p.elementText(child, childPos)
		if err != nil {
			return err
		}
		param.Value = value

		backend.Params = append(backend.Params, param)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return backend, nil
}

func (p *xmlParser) parseTypeMappings(start xml.StartElement, doc *Document) error {
	return p.eachChild(start, func(child xml.StartElement, childPos *filepos.Position) error {
		if child.Name.Local != "TypeMapping" {
			return NewMalformedDocumentError(
				fmt.Sprintf("Unexpected element '%s' in <TypeMappings>", child.Name.Local), childPos)
		}

		key, found := attrValue(child, "key")
		if !found {
			return NewMalformedDocumentError("Expected 'key' attribute on <TypeMapping>", childPos)
		}
		mappedType, found := attrValue(child, "type")
		if !found {
			return NewMalformedDocumentError("Expected 'type' attribute on <TypeMapping>", childPos)
		}

		doc.TypeMappings.Set(key, mappedType)
		return p.expectNoChildren(child, childPos)
	})
}

// eachChild walks the direct child elements of an already-consumed
// start element, invoking fn per child, until the matching end element.
// Character data between children is ignored.
func (p *xmlParser) eachChild(start xml.StartElement, fn func(xml.StartElement, *filepos.Position) error) error {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return NewMalformedDocumentError(err.Error(), p.pos())
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

// elementText consumes an element's character data up to its end
// element. Nested elements are malformed.
func (p *xmlParser) elementText(start xml.StartElement, pos *filepos.Position) (string, error) {
	var text strings.Builder
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return "", NewMalformedDocumentError(err.Error(), p.pos())
		}

		switch typedTok := tok.(type) {
		case xml.CharData:
			text.Write(typedTok)
		case xml.EndElement:
			return strings.TrimSpace(text.String()), nil
		case xml.StartElement:
			return "", NewMalformedDocumentError(
				fmt.Sprintf("Unexpected element '%s' within <%s>", typedTok.Name.Local, start.Name.Local), p.pos())
		}
	}
}

func (p *xmlParser) expectNoChildren(start xml.StartElement, pos *filepos.Position) error {
	_, err := p.elementText(start, pos)
	return err
}

func (p *xmlParser) optBoolAttr(start xml.StartElement, name string, pos *filepos.Position) (*bool, error) {
	str, found := attrValue(start, name)
	if !found {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(str)
	if err != nil {
		return nil, NewMalformedDocumentError(
			fmt.Sprintf("Expected '%s' attribute to be a boolean, but was '%s'", name, str), pos)
	}
	return &parsed, nil
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
