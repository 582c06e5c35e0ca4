// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package settings_test

import (
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/qtmvvm/settingsgen/pkg/settings"
	"github.com/stretchr/testify/require"
)

func TestParserSettingsTree(t *testing.T) {
	data := []byte(`<Settings name="AppSettings" prefix="Q_DECL_EXPORT">
	<Node key="general">
		<Entry key="lang" type="QString" default="en" tr="true"/>
		<Node key="net">
			<Entry key="timeout" type="int" default="30"/>
		</Node>
	</Node>
	<Entry key="beta" type="bool">
		<Entry key="channel" type="QString"/>
	</Entry>
</Settings>`)

	doc, err := settings.NewParser(settings.ParserOpts{}).ParseBytes(data, "settings.xml")
	require.NoError(t, err)

	expected := `-: doc name=AppSettings prefix=Q_DECL_EXPORT
    -: group
        -: node key=general
            -: entry key=lang type=QString default=en tr=true
            -: node key=net
                -: entry key=timeout type=int default=30
        -: entry key=beta type=bool
            -: entry key=channel type=QString
`

	assertTreeEqual(t, doc, expected)
}

func TestParserDocumentMetadata(t *testing.T) {
	data := []byte(`<Settings minVersion="1.1.0">
	<Include local="true">settings.h</Include>
	<Include>QtCore/QUrl</Include>
	<Backend className="QtMvvm::QSettingsAccessor">
		<Param type="string" asStr="true">cfg</Param>
		<Param type="int">42</Param>
	</Backend>
	<TypeMappings>
		<TypeMapping key="url" type="QUrl"/>
	</TypeMappings>
</Settings>`)

	doc, err := settings.NewParser(settings.ParserOpts{}).ParseBytes(data, "settings.xml")
	require.NoError(t, err)

	require.Nil(t, doc.Name)
	require.NotNil(t, doc.MinVersion)
	require.Equal(t, "1.1.0", *doc.MinVersion)

	require.Equal(t, []settings.Include{
		{Local: true, Path: "settings.h"},
		{Local: false, Path: "QtCore/QUrl"},
	}, doc.Includes)

	require.NotNil(t, doc.Backend)
	require.Equal(t, "QtMvvm::QSettingsAccessor", doc.Backend.ClassName)
	require.Equal(t, []settings.BackendParam{
		{Type: "string", Value: "cfg", AsString: true},
		{Type: "int", Value: "42"},
	}, doc.Backend.Params)

	mapped, found := doc.TypeMappings.Get("url")
	require.True(t, found)
	require.Equal(t, "QUrl", mapped)
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectedErr string
	}{
		{
			name:        "wrong root element",
			data:        `<Config/>`,
			expectedErr: "Expected root element 'Settings', but was 'Config'",
		},
		{
			name:        "unexpected element",
			data:        `<Settings><Foo/></Settings>`,
			expectedErr: "Unexpected element 'Foo'",
		},
		{
			name:        "node without key",
			data:        `<Settings><Node/></Settings>`,
			expectedErr: "Expected 'key' attribute on <Node>",
		},
		{
			name:        "entry without type",
			data:        `<Settings><Entry key="x"/></Settings>`,
			expectedErr: `Expected 'type' attribute on <Entry key="x">`,
		},
		{
			name:        "duplicate key within group",
			data:        `<Settings><Entry key="a" type="int"/><Node key="a"/></Settings>`,
			expectedErr: "Duplicate key 'a' within one group",
		},
		{
			name:        "non-boolean tr attribute",
			data:        `<Settings><Entry key="a" type="int" tr="yep"/></Settings>`,
			expectedErr: "Expected 'tr' attribute to be a boolean, but was 'yep'",
		},
		{
			name:        "import without resolver",
			data:        `<Settings><Import>other.xml</Import></Settings>`,
			expectedErr: "Import directives are not supported in this context",
		},
		{
			name:        "include without path",
			data:        `<Settings><Include/></Settings>`,
			expectedErr: "Expected <Include> to specify an include path",
		},
		{
			name:        "unclosed element",
			data:        `<Settings><Node key="a">`,
			expectedErr: "unexpected EOF",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := settings.NewParser(settings.ParserOpts{}).ParseBytes([]byte(test.data), "settings.xml")
			require.Error(t, err)
			require.Contains(t, err.Error(), test.expectedErr)
		})
	}
}

func TestParserImportSplicesResolvedGroup(t *testing.T) {
	var gotImport settings.Import

	parser := settings.NewParser(settings.ParserOpts{
		ResolveImport: func(imp settings.Import) (*settings.ContentGroup, error) {
			gotImport = imp
			group := settings.NewContentGroup()
			group.Append(&settings.EntryNode{Key: "imported", ValueType: "bool"})
			return group, nil
		},
	})

	data := []byte(`<Settings>
	<Import required="false" rootNode="a/b">other.xml</Import>
</Settings>`)

	doc, err := parser.ParseBytes(data, "settings.xml")
	require.NoError(t, err)

	require.Equal(t, "other.xml", gotImport.Path)
	require.False(t, gotImport.Required)
	require.NotNil(t, gotImport.RootNode)
	require.Equal(t, "a/b", *gotImport.RootNode)

	expected := `-: doc
    -: group
        -: group
            -: entry key=imported type=bool
`

	assertTreeEqual(t, doc, expected)

	// spliced content stays reachable through the anonymous group
	require.NotNil(t, doc.Content.Find("imported"))
}

func assertEqual(t *testing.T, actual, expected string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n", difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}
