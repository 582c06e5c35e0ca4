// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

// Package filetests runs generation tests expressed as files: a
// settings document, a "+++" separator line, then either the expected
// generated header or an "ERR:" line with the expected failure.
package filetests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k14s/difflib"
	cmdgen "github.com/qtmvvm/settingsgen/pkg/cmd/generate"
	"github.com/qtmvvm/settingsgen/pkg/cmd/ui"
	"github.com/qtmvvm/settingsgen/pkg/files"
	"github.com/stretchr/testify/require"
)

type FileTests struct {
	PathToTests string
}

func (f FileTests) Run(t *testing.T) {
	entries, err := os.ReadDir(f.PathToTests)
	require.NoError(t, err)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".gentest") {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(f.PathToTests, entry.Name()))
			require.NoError(t, err)

			pieces := strings.SplitN(string(data), "\n+++\n", 2)
			require.Len(t, pieces, 2, "expected file to have a +++ separator line")

			input, expected := pieces[0], pieces[1]

			file := files.MustNewFileFromSource(files.NewBytesSource("settings.xml", []byte(input)))
			out := cmdgen.NewOptions().RunWithFile(cmdgen.Input{File: file}, ui.NewCustomWriterTTY(false, nil, nil))

			if strings.HasPrefix(expected, "ERR:") {
				expectedErr := strings.TrimSpace(strings.TrimPrefix(expected, "ERR:"))
				require.Error(t, out.Err)
				require.Contains(t, out.Err.Error(), expectedErr)
				return
			}

			require.NoError(t, out.Err)
			require.NotEmpty(t, out.Files)

			header := string(out.Files[0].Bytes())
			if header != expected {
				t.Fatalf("Not equal; diff expected...actual:\n%v\n",
					difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(header, "\n")))
			}
		})
	}
}
