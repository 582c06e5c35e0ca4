// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"github.com/spf13/cobra"
)

type FileSourceOpts struct {
	File string
}

func (s *FileSourceOpts) Set(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.File, "file", "f", "", "Settings document (ie local path, -)")
}

type OutputDirOpts struct {
	OutputDir string
}

func (s *OutputDirOpts) Set(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.OutputDir, "output", "o", ".", "Directory for generated files")
}
