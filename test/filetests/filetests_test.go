// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package filetests

import (
	"testing"
)

func TestGeneration(t *testing.T) {
	FileTests{PathToTests: "testdata"}.Run(t)
}
