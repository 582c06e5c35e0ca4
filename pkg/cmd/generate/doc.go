// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package generate implements the primary settingsgen command: load one
settings document, resolve its imports, merge, and emit the generated
sources.
*/
package generate
