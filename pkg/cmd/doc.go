// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd implements the settingsgen command-line interface.
*/
package cmd
