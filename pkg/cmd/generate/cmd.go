// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qtmvvm/settingsgen/pkg/cmd/ui"
	"github.com/qtmvvm/settingsgen/pkg/files"
	"github.com/qtmvvm/settingsgen/pkg/gen"
	"github.com/qtmvvm/settingsgen/pkg/settings"
	"github.com/qtmvvm/settingsgen/pkg/workspace"
	"github.com/spf13/cobra"
)

type Options struct {
	Debug   bool
	Inspect bool
	Name    string

	FileSourceOpts FileSourceOpts
	OutputDirOpts  OutputDirOpts
}

type Input struct {
	File *files.File
}

type Output struct {
	Files []files.OutputFile
	Doc   *settings.Document
	Err   error
	Empty bool
}

func NewOptions() *Options {
	return &Options{}
}

func NewCmd(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g", "gen"},
		Short:   "Generate settings accessor sources from a settings document",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVar(&o.Inspect, "inspect", false, "Print the resolved settings tree instead of generating")
	cmd.Flags().StringVar(&o.Name, "name", "", "Override the settings class name")
	o.FileSourceOpts.Set(cmd)
	o.OutputDirOpts.Set(cmd)
	return cmd
}

func (o *Options) Run() error {
	ui := ui.NewTTY(o.Debug)

	if len(o.FileSourceOpts.File) == 0 {
		return fmt.Errorf("Expected one input file to be specified with -f")
	}

	file, err := files.NewFileFromPath(o.FileSourceOpts.File)
	if err != nil {
		return err
	}

	out := o.RunWithFile(Input{File: file}, ui)
	if out.Err != nil {
		return out.Err
	}
	if out.Empty {
		return nil
	}

	return files.NewOutputDirectory(o.OutputDirOpts.OutputDir, out.Files, ui).Write()
}

// RunWithFile resolves the document and produces the generated files,
// without touching the filesystem for output. Tests drive this directly.
func (o *Options) RunWithFile(in Input, ui ui.UI) Output {
	loader := workspace.NewLoader(ui)

	doc, err := loader.Load(in.File)
	if err != nil {
		return Output{Err: err}
	}

	name := o.resolveName(doc, in.File)

	if o.Inspect {
		ui.Printf("%s", settings.NewPrinter(nil).PrintStr(doc))
		return Output{Doc: doc, Empty: true}
	}

	return Output{Files: gen.NewGenerator(doc, name).GenerateFiles(), Doc: doc}
}

// resolveName picks the settings class name: the --name flag wins, then
// the document's own name, then the input file's base name.
func (o *Options) resolveName(doc *settings.Document, file *files.File) string {
	if len(o.Name) > 0 {
		return o.Name
	}
	if doc.Name != nil && len(*doc.Name) > 0 {
		return *doc.Name
	}
	base := filepath.Base(file.RelativePath())
	return strings.TrimSuffix(base, filepath.Ext(base))
}
