// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the build version, overridden at link time for releases.
var Version = "0.4.0"
