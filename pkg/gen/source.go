// Copyright 2024 The Settingsgen Authors.
// SPDX-License-Identifier: Apache-2.0

package gen

import (
	"bytes"
	"fmt"

	"github.com/qtmvvm/settingsgen/pkg/settings"
)

var defaultBackend = settings.Backend{ClassName: "QtMvvm::QSettingsAccessor"}

func (g *Generator) Source() []byte {
	buf := new(bytes.Buffer)

	fmt.Fprintf(buf, "#include \"%s.h\"\n", g.name)
	if g.doc.Backend == nil {
		buf.WriteString("#include <QtMvvmCore/QSettingsAccessor>\n")
	}
	buf.WriteString("\n")

	backend := defaultBackend
	if g.doc.Backend != nil {
		backend = *g.doc.Backend
	}

	fmt.Fprintf(buf, "%s::%s(QObject *parent) :\n", g.name, g.name)
	fmt.Fprintf(buf, "\t%s{new %s{", g.name, backend.ClassName)
	if len(backend.Params) > 0 {
		buf.WriteString("\n")
		for i, param := range backend.Params {
			if i > 0 {
				buf.WriteString(",\n")
			}
			buf.WriteString("\t\tQVariant{")
			if param.AsString {
				fmt.Fprintf(buf, "QStringLiteral(\"%s\")", param.Value)
			} else {
				buf.WriteString(param.Value)
			}
			fmt.Fprintf(buf, "}.value<%s>()", param.Type)
		}
		buf.WriteString("\n\t")
	}
	buf.WriteString("}, parent}\n")
	buf.WriteString("{\n")
	buf.WriteString("\t_accessor->setParent(this);\n")
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "%s::%s(QtMvvm::ISettingsAccessor *accessor, QObject *parent) :\n", g.name, g.name)
	buf.WriteString("\tQObject{parent},\n")
	buf.WriteString("\t_accessor{accessor}\n")
	buf.WriteString("{}\n\n")

	fmt.Fprintf(buf, "%s *%s::instance()\n", g.name, g.name)
	buf.WriteString("{\n")
	buf.WriteString("\treturn nullptr;\n")
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "QtMvvm::ISettingsAccessor *%s::accessor() const\n", g.name)
	buf.WriteString("{\n")
	buf.WriteString("\treturn _accessor;\n")
	buf.WriteString("}\n")

	return buf.Bytes()
}
