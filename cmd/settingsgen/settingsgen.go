// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/qtmvvm/settingsgen/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultSettingsGenCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "settingsgen: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
