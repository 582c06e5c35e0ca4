// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	cmdgen "github.com/qtmvvm/settingsgen/pkg/cmd/generate"
	"github.com/qtmvvm/settingsgen/pkg/version"
	"github.com/spf13/cobra"
)

type SettingsGenOptions struct{}

func NewDefaultSettingsGenOptions() *SettingsGenOptions {
	return &SettingsGenOptions{}
}

func NewDefaultSettingsGenCmd() *cobra.Command {
	return NewSettingsGenCmd(NewDefaultSettingsGenOptions())
}

func NewSettingsGenCmd(o *SettingsGenOptions) *cobra.Command {
	cmd := cmdgen.NewCmd(cmdgen.NewOptions())

	cmd.Use = "settingsgen"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "settingsgen generates settings accessor sources"
	cmd.Long = `settingsgen merges hierarchical settings documents into one
canonical settings tree and generates accessor sources from it.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdgen.NewCmd(cmdgen.NewOptions())) // for scripts preferring an explicit verb

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
