// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package settingsconf reads the alternate SettingsConfig grammar: a
presentation-oriented tree of Category, Section, Group and Entry
elements. Normalization drives the same merge engine as the native
grammar, so both input shapes produce identical settings trees.
*/
package settingsconf
