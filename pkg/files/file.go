// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"path/filepath"
	"strings"
)

var (
	xmlExts = []string{".xml"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeXML
)

type File struct {
	src     Source
	relPath string
}

// NewFileFromPath builds a File from a local path, treating "-" as stdin.
func NewFileFromPath(path string) (*File, error) {
	if path == "-" {
		return NewFileFromSource(NewStdinSource())
	}
	return NewFileFromSource(NewLocalSource(path, ""))
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc, err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

// LocalPath returns the path of the file on disk, or "" for
// file-like sources that have no filesystem location (stdin, bytes).
// Import paths inside a document resolve relative to this location.
func (r *File) LocalPath() string {
	if local, ok := r.src.(LocalSource); ok {
		return local.path
	}
	return ""
}

func (r *File) Type() Type {
	switch {
	case r.matchesExt(xmlExts):
		return TypeXML
	default:
		return TypeUnknown
	}
}

func (r *File) matchesExt(exts []string) bool {
	filename := filepath.Base(r.RelativePath())
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
