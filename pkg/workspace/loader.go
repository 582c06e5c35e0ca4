// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/qtmvvm/settingsgen/pkg/cmd/ui"
	"github.com/qtmvvm/settingsgen/pkg/files"
	"github.com/qtmvvm/settingsgen/pkg/filepos"
	"github.com/qtmvvm/settingsgen/pkg/settings"
	"github.com/qtmvvm/settingsgen/pkg/settingsconf"
	"github.com/qtmvvm/settingsgen/pkg/version"
)

// Loader resolves one top-level settings document and everything it
// imports. A Loader is good for a single Load call: the in-flight
// import chain it tracks is scoped to one build invocation.
type Loader struct {
	ui ui.UI

	// canonical paths of documents on the current descent; a path
	// revisited while still in flight is an import cycle. Importing
	// the same document twice on separate branches stays legal.
	inFlight map[string]struct{}
}

func NewLoader(ui ui.UI) *Loader {
	return &Loader{ui: ui, inFlight: map[string]struct{}{}}
}

func (l *Loader) Load(file *files.File) (*settings.Document, error) {
	data, err := file.Bytes()
	if err != nil {
		return nil, fmt.Errorf("Reading %s: %s", file.Description(), err)
	}

	localPath := file.LocalPath()
	if localPath != "" {
		canonical, err := canonicalPath(localPath)
		if err != nil {
			return nil, err
		}
		l.inFlight[canonical] = struct{}{}
		defer delete(l.inFlight, canonical)
	}

	return l.loadBytes(data, file.RelativePath(), localPath)
}

func (l *Loader) loadBytes(data []byte, name, localPath string) (*settings.Document, error) {
	rootName, err := settings.DetectRootElement(data, name)
	if err != nil {
		return nil, err
	}

	baseDir := ""
	if localPath != "" {
		baseDir = filepath.Dir(localPath)
	}
	resolveImport := l.resolveImportFunc(baseDir)

	var doc *settings.Document

	switch rootName {
	case "Settings":
		doc, err = settings.NewParser(settings.ParserOpts{ResolveImport: resolveImport}).ParseBytes(data, name)
		if err != nil {
			return nil, err
		}

	case "SettingsConfig":
		conf, err := settingsconf.NewParser(settingsconf.ParserOpts{ResolveImport: resolveImport}).ParseBytes(data, name)
		if err != nil {
			return nil, err
		}
		doc, err = settingsconf.ToDocument(conf)
		if err != nil {
			return nil, err
		}

	default:
		return nil, settings.NewMalformedDocumentError(
			fmt.Sprintf("Expected root element 'Settings' or 'SettingsConfig', but was '%s'", rootName),
			filepos.NewUnknownPositionInFile(name))
	}

	err = l.checkMinVersion(doc)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func (l *Loader) resolveImportFunc(baseDir string) func(settings.Import) (*settings.ContentGroup, error) {
	return func(imp settings.Import) (*settings.ContentGroup, error) {
		path := imp.Path
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}

		canonical, err := canonicalPath(path)
		if err != nil {
			return nil, err
		}
		if _, found := l.inFlight[canonical]; found {
			return nil, settings.NewMalformedDocumentError(
				fmt.Sprintf("Import cycle detected at '%s'", imp.Path), imp.Position)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if imp.Required {
				return nil, fmt.Errorf("Reading import '%s': %s", imp.Path, err)
			}
			l.ui.Warnf("settingsgen: Warning: Skipping optional import '%s': %s\n", imp.Path, err)
			return settings.NewContentGroup(), nil
		}

		l.inFlight[canonical] = struct{}{}
		defer delete(l.inFlight, canonical)

		doc, err := l.loadBytes(data, path, path)
		if err != nil {
			return nil, err
		}

		group := doc.Content
		if imp.RootNode != nil {
			group = subGroup(group, *imp.RootNode)
		}
		return group, nil
	}
}

// subGroup descends into the imported tree along the `/`-separated
// selector, Container-only. Any miss makes the import contribute
// nothing, independent of the required flag.
func subGroup(group *settings.ContentGroup, rootNode string) *settings.ContentGroup {
	cur := group
	for _, key := range splitSelector(rootNode) {
		container := cur.FindContainer(key)
		if container == nil || container.Content == nil {
			return settings.NewContentGroup()
		}
		cur = container.Content
	}
	return cur
}

func splitSelector(selector string) []string {
	var keys []string
	for _, piece := range strings.Split(selector, "/") {
		if len(piece) > 0 {
			keys = append(keys, piece)
		}
	}
	return keys
}

func (l *Loader) checkMinVersion(doc *settings.Document) error {
	if doc.MinVersion == nil {
		return nil
	}

	minVersion, err := goversion.NewVersion(*doc.MinVersion)
	if err != nil {
		return settings.NewMalformedDocumentError(
			fmt.Sprintf("Expected 'minVersion' attribute to be a version, but was '%s'", *doc.MinVersion),
			doc.Position)
	}

	curVersion, err := goversion.NewVersion(version.Version)
	if err != nil {
		return fmt.Errorf("Parsing own version '%s': %s", version.Version, err)
	}

	if curVersion.LessThan(minVersion) {
		return settings.NewMalformedDocumentError(
			fmt.Sprintf("Document requires settingsgen version %s or newer, but this is %s",
				*doc.MinVersion, version.Version), doc.Position)
	}

	return nil
}

func canonicalPath(path string) (string, error) {
	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("Resolving path '%s': %s", path, err)
	}
	return absPath, nil
}
