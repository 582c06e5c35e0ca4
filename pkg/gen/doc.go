// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package gen renders a resolved settings Document into the generated
C++ artifacts: a header declaring the strongly typed settings accessor
class and a source file wiring up its backend.
*/
package gen
