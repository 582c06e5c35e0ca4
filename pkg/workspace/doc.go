// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package workspace loads settings documents: it selects the grammar by
root element name, resolves Import directives against the including
document's location (recursively, guarding against cycles), and hands
back one fully merged Document per top-level input.
*/
package workspace
