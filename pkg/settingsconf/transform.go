// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settingsconf

import (
	"strings"

	"github.com/qtmvvm/settingsgen/pkg/settings"
)

// ToDocument normalizes a SettingsConfig into a settings Document by
// merging every entry into a fresh tree at its full accumulated key
// path. The resulting tree is indistinguishable from one parsed out of
// the native grammar.
func ToDocument(conf *Config) (*settings.Document, error) {
	doc := settings.NewDocument()
	doc.Position = conf.Position

	err := mergeElements(conf.Content, nil, doc.Content)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func mergeElements(elements []Element, prefix []string, target *settings.ContentGroup) error {
	for _, element := range elements {
		switch typedElement := element.(type) {
		case *Category:
			if err := mergeElements(typedElement.Content, appendKey(prefix, typedElement.Key), target); err != nil {
				return err
			}

		case *Section:
			if err := mergeElements(typedElement.Content, appendKey(prefix, typedElement.Key), target); err != nil {
				return err
			}

		case *Group:
			if err := mergeElements(typedElement.Content, appendKey(prefix, typedElement.Key), target); err != nil {
				return err
			}

		case *Entry:
			keyPath := strings.Join(append(appendKey(prefix, nil), typedElement.Key), "/")
			err := settings.MergeEntry(target, keyPath, settings.EntryMeta{
				ValueType: typedElement.ValueType,
				Default:   typedElement.Default,
				Tr:        typedElement.Tr,
				TrContext: typedElement.TrContext,
				Position:  typedElement.Position,
			})
			if err != nil {
				return err
			}

		case *ImportedGroup:
			group := settings.EnsureGroup(target, prefix)
			group.Append(typedElement.Group)

		default:
			panic("Unknown SettingsConfig element")
		}
	}

	return nil
}

// appendKey extends the accumulated prefix without sharing backing
// storage between sibling branches.
func appendKey(prefix []string, key *string) []string {
	result := make([]string, len(prefix), len(prefix)+1)
	copy(result, prefix)
	if key != nil && len(*key) > 0 {
		result = append(result, *key)
	}
	return result
}
