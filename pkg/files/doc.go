// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for loading data from file or file-like
Source's and for writing generated output to filesystem files and directories.

This allows the rest of settingsgen code to process logically chunked
streams of data without becoming entangled in the details of how to read or
write data.
*/
package files
