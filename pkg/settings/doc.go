// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package settings provides the canonical settings tree: a position-annotated
AST of containers, entries and anonymous content groups, a parser for the
native Settings XML grammar, and the merge operation that folds entry
definitions from any source grammar into one conflict-free tree.
*/
package settings
