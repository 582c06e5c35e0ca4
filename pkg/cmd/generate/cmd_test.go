// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package generate_test

import (
	"bytes"
	"testing"

	cmdgen "github.com/qtmvvm/settingsgen/pkg/cmd/generate"
	"github.com/qtmvvm/settingsgen/pkg/cmd/ui"
	"github.com/qtmvvm/settingsgen/pkg/files"
	"github.com/stretchr/testify/require"
)

func TestRunWithFileGeneratesHeaderAndSource(t *testing.T) {
	data := []byte(`<Settings name="AppSettings">
	<Entry key="lang" type="QString"/>
</Settings>`)

	out := runWithBytes(t, cmdgen.NewOptions(), "settings.xml", data)
	require.NoError(t, out.Err)
	require.False(t, out.Empty)

	require.Len(t, out.Files, 2)
	require.Equal(t, "AppSettings.h", out.Files[0].RelativePath())
	require.Equal(t, "AppSettings.cpp", out.Files[1].RelativePath())

	require.Contains(t, string(out.Files[0].Bytes()), "class AppSettings : public QObject")
	require.Contains(t, string(out.Files[0].Bytes()), "QtMvvm::SettingsEntry<QString> lang;")
}

func TestRunWithFileNameResolution(t *testing.T) {
	named := []byte(`<Settings name="AppSettings"/>`)
	unnamed := []byte(`<Settings/>`)

	// --name flag wins over the document's own name
	opts := cmdgen.NewOptions()
	opts.Name = "Overridden"

	out := runWithBytes(t, opts, "settings.xml", named)
	require.NoError(t, out.Err)
	require.Equal(t, "Overridden.h", out.Files[0].RelativePath())

	// document name wins over the file name
	out = runWithBytes(t, cmdgen.NewOptions(), "settings.xml", named)
	require.NoError(t, out.Err)
	require.Equal(t, "AppSettings.h", out.Files[0].RelativePath())

	// input base name is the fallback
	out = runWithBytes(t, cmdgen.NewOptions(), "my_settings.xml", unnamed)
	require.NoError(t, out.Err)
	require.Equal(t, "my_settings.h", out.Files[0].RelativePath())
}

func TestRunWithFileInspectPrintsTree(t *testing.T) {
	data := []byte(`<Settings name="AppSettings">
	<Node key="general">
		<Entry key="lang" type="QString"/>
	</Node>
</Settings>`)

	opts := cmdgen.NewOptions()
	opts.Inspect = true

	stdout := bytes.NewBufferString("")
	file := files.MustNewFileFromSource(files.NewBytesSource("settings.xml", data))

	out := opts.RunWithFile(cmdgen.Input{File: file}, ui.NewCustomWriterTTY(false, stdout, nil))
	require.NoError(t, out.Err)
	require.True(t, out.Empty)
	require.Empty(t, out.Files)

	require.Contains(t, stdout.String(), "doc name=AppSettings")
	require.Contains(t, stdout.String(), "node key=general")
	require.Contains(t, stdout.String(), "entry key=lang type=QString")
}

func TestRunWithFileReportsLoadErrors(t *testing.T) {
	data := []byte(`<Settings><Entry key="a" type="int"/><Entry key="a" type="int"/></Settings>`)

	out := runWithBytes(t, cmdgen.NewOptions(), "settings.xml", data)
	require.Error(t, out.Err)
	require.Contains(t, out.Err.Error(), "Duplicate key 'a' within one group")
}

func runWithBytes(t *testing.T, opts *cmdgen.Options, path string, data []byte) cmdgen.Output {
	t.Helper()
	file := files.MustNewFileFromSource(files.NewBytesSource(path, data))
	return opts.RunWithFile(cmdgen.Input{File: file}, ui.NewCustomWriterTTY(false, nil, nil))
}
