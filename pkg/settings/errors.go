// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"fmt"
	"strings"

	"github.com/qtmvvm/settingsgen/pkg/filepos"
)

// NewMalformedDocumentError reports structurally invalid input: an
// unexpected element, a missing required attribute, an unparseable
// selector, an import cycle. Always fatal.
func NewMalformedDocumentError(message string, pos *filepos.Position) error {
	return &malformedDocumentError{Message: message, Position: pos}
}

// NewDuplicateEntryError reports two entry definitions colliding at the
// same terminal key, both already of entry kind. Always fatal.
// "dottedPath" is the full key path of the second definition.
func NewDuplicateEntryError(dottedPath string, pos *filepos.Position) error {
	return &duplicateEntryError{Path: dottedPath, Position: pos}
}

type malformedDocumentError struct {
	Message  string
	Position *filepos.Position
}

func (e malformedDocumentError) Error() string {
	return formatWithPosition(e.Position, "MALFORMED DOCUMENT - "+e.Message)
}

type duplicateEntryError struct {
	Path     string
	Position *filepos.Position
}

func (e duplicateEntryError) Error() string {
	return formatWithPosition(e.Position, fmt.Sprintf("DUPLICATE ENTRY - found second definition for entry '%s'", e.Path))
}

// DuplicateEntryPath extracts the colliding dotted path when err is a
// duplicate entry error.
func DuplicateEntryPath(err error) (string, bool) {
	if typedErr, ok := err.(*duplicateEntryError); ok {
		return typedErr.Path, true
	}
	return "", false
}

// IsMalformedDocumentError reports whether err is a structural input error.
func IsMalformedDocumentError(err error) bool {
	_, ok := err.(*malformedDocumentError)
	return ok
}

func formatWithPosition(pos *filepos.Position, message string) string {
	if pos == nil {
		pos = filepos.NewUnknownPosition()
	}

	position := pos.AsCompactString()
	leftColumnSize := len(position) + 1

	msg := "\n"
	msg += formatLine(leftColumnSize, position, pos.GetLine())
	msg += formatLine(leftColumnSize, "", "")
	msg += formatLine(leftColumnSize, "", message)
	return msg
}

func formatLine(leftColumnSize int, left, right string) string {
	if len(right) > 0 {
		right = " " + right
	}
	return fmt.Sprintf("%s%s|%s\n", left, strings.Repeat(" ", leftColumnSize-len(left)), right)
}
