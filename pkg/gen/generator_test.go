// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package gen_test

import (
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/qtmvvm/settingsgen/pkg/gen"
	"github.com/qtmvvm/settingsgen/pkg/settings"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	doc := parseDoc(t, `<Settings prefix="Q_DECL_EXPORT">
	<Include local="true">converters.h</Include>
	<Node key="general">
		<Entry key="lang" type="string"/>
	</Node>
	<Entry key="beta" type="bool">
		<Entry key="channel" type="string"/>
	</Entry>
	<TypeMappings>
		<TypeMapping key="string" type="QString"/>
	</TypeMappings>
</Settings>`)

	expected := `#ifndef APPSETTINGS_H
#define APPSETTINGS_H

#include <QtCore/QObject>
#include <QtMvvmCore/ISettingsAccessor>
#include <QtMvvmCore/SettingsEntry>
#include "converters.h"

class Q_DECL_EXPORT AppSettings : public QObject
{
	Q_OBJECT

	Q_PROPERTY(QtMvvm::ISettingsAccessor *accessor READ accessor CONSTANT FINAL)

public:
	Q_INVOKABLE explicit AppSettings(QObject *parent = nullptr);
	explicit AppSettings(QtMvvm::ISettingsAccessor *accessor, QObject *parent);

	static AppSettings *instance();

	QtMvvm::ISettingsAccessor *accessor() const;

	struct { //general
		QtMvvm::SettingsEntry<QString> lang;
	} general;
	struct : QtMvvm::SettingsEntry<bool> { //beta
		QtMvvm::SettingsEntry<QString> channel;
	} beta;

private:
	QtMvvm::ISettingsAccessor *_accessor;
};

#endif //APPSETTINGS_H
`

	header := string(gen.NewGenerator(doc, "AppSettings").Header())
	assertEqual(t, header, expected)
}

func TestHeaderGuardReplacesDots(t *testing.T) {
	doc := parseDoc(t, `<Settings/>`)

	header := string(gen.NewGenerator(doc, "app.settings").Header())
	require.Contains(t, header, "#ifndef APP_SETTINGS_H\n#define APP_SETTINGS_H\n")
	require.Contains(t, header, "#endif //APP_SETTINGS_H\n")
}

func TestSourceWithBackendParams(t *testing.T) {
	doc := parseDoc(t, `<Settings>
	<Backend className="CustomAccessor">
		<Param type="QString" asStr="true">cfg.ini</Param>
		<Param type="int">42</Param>
	</Backend>
</Settings>`)

	expected := `#include "AppSettings.h"

AppSettings::AppSettings(QObject *parent) :
	AppSettings{new CustomAccessor{
		QVariant{QStringLiteral("cfg.ini")}.value<QString>(),
		QVariant{42}.value<int>()
	}, parent}
{
	_accessor->setParent(this);
}

AppSettings::AppSettings(QtMvvm::ISettingsAccessor *accessor, QObject *parent) :
	QObject{parent},
	_accessor{accessor}
{}

AppSettings *AppSettings::instance()
{
	return nullptr;
}

QtMvvm::ISettingsAccessor *AppSettings::accessor() const
{
	return _accessor;
}
`

	source := string(gen.NewGenerator(doc, "AppSettings").Source())
	assertEqual(t, source, expected)
}

func TestSourceDefaultBackend(t *testing.T) {
	doc := parseDoc(t, `<Settings/>`)

	source := string(gen.NewGenerator(doc, "AppSettings").Source())
	require.Contains(t, source, "#include <QtMvvmCore/QSettingsAccessor>\n")
	require.Contains(t, source, "\tAppSettings{new QtMvvm::QSettingsAccessor{}, parent}\n")
}

func TestGenerateFilesNamesOutputs(t *testing.T) {
	doc := parseDoc(t, `<Settings/>`)

	outputFiles := gen.NewGenerator(doc, "AppSettings").GenerateFiles()
	require.Len(t, outputFiles, 2)
	require.Equal(t, "AppSettings.h", outputFiles[0].RelativePath())
	require.Equal(t, "AppSettings.cpp", outputFiles[1].RelativePath())
}

func parseDoc(t *testing.T, data string) *settings.Document {
	t.Helper()
	doc, err := settings.NewParser(settings.ParserOpts{}).ParseBytes([]byte(data), "settings.xml")
	require.NoError(t, err)
	return doc
}

func assertEqual(t *testing.T, actual, expected string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n", difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}
