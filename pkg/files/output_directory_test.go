// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qtmvvm/settingsgen/pkg/cmd/ui"
	"github.com/qtmvvm/settingsgen/pkg/files"
	"github.com/stretchr/testify/require"
)

func TestOutputDirectoryWrite(t *testing.T) {
	dir := t.TempDir()

	outputFiles := []files.OutputFile{
		files.NewOutputFile("App.h", []byte("header")),
		files.NewOutputFile("App.cpp", []byte("source")),
	}

	err := files.NewOutputDirectory(dir, outputFiles, ui.NewCustomWriterTTY(false, nil, nil)).Write()
	require.NoError(t, err)

	header, err := os.ReadFile(filepath.Join(dir, "App.h"))
	require.NoError(t, err)
	require.Equal(t, "header", string(header))

	source, err := os.ReadFile(filepath.Join(dir, "App.cpp"))
	require.NoError(t, err)
	require.Equal(t, "source", string(source))
}

func TestOutputDirectoryRejectsDuplicateDestinations(t *testing.T) {
	outputFiles := []files.OutputFile{
		files.NewOutputFile("App.h", []byte("one")),
		files.NewOutputFile("App.h", []byte("two")),
	}

	err := files.NewOutputDirectory(t.TempDir(), outputFiles, ui.NewCustomWriterTTY(false, nil, nil)).Write()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Multiple files have same output destination paths: App.h")
}
