// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"

	"github.com/qtmvvm/settingsgen/pkg/cmd/ui"
)

type OutputDirectory struct {
	path  string
	files []OutputFile
	ui    ui.UI
}

func NewOutputDirectory(path string, files []OutputFile, ui ui.UI) *OutputDirectory {
	return &OutputDirectory{path, files, ui}
}

func (d *OutputDirectory) Files() []OutputFile { return d.files }

// Write writes all files into the directory, creating it if needed.
// Unlike a templating pipeline, generated settings artifacts live next
// to other sources, so the directory is never wiped first.
func (d *OutputDirectory) Write() error {
	filePaths := map[string]struct{}{}

	for _, file := range d.files {
		path := file.RelativePath()
		if _, found := filePaths[path]; found {
			return fmt.Errorf("Multiple files have same output destination paths: %s", path)
		}
		filePaths[path] = struct{}{}
	}

	for _, file := range d.files {
		d.ui.Printf("creating: %s\n", file.Path(d.path))

		err := file.Create(d.path)
		if err != nil {
			return err
		}
	}

	return nil
}
