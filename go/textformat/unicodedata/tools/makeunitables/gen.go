/*
Copyright 2025 The Avalonia Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
)

const licenseHeader = `Copyright 2025 The Avalonia Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.`

// Name tables for the hand-maintained enums in classes.go; their order
// must match the constant declarations there. The script names come from
// Scripts.txt through the registry instead.
var (
	generalCategoryAliases = []string{
		"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd", "Nl", "No",
		"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm", "Sc", "Sk", "So",
		"Zs", "Zl", "Zp", "Cc", "Cf", "Cs", "Co",
	}
	lineBreakAliases = []string{
		"XX", "BK", "CR", "LF", "NL", "SP", "ZW", "WJ", "GL", "CM", "ZWJ", "CB",
		"BA", "BB", "B2", "HY", "CL", "CP", "EX", "IN", "NS", "OP", "QU", "IS",
		"NU", "PO", "PR", "SY", "AI", "AL", "CJ", "EB", "EM", "H2", "H3", "HL",
		"ID", "JL", "JV", "JT", "RI", "SA", "SG",
	}
	bidiClassAliases = []string{
		"L", "R", "AL", "EN", "ES", "ET", "AN", "CS", "NSM", "BN", "B", "S",
		"WS", "ON", "LRE", "LRO", "RLE", "RLO", "PDF", "LRI", "RLI", "FSI", "PDI",
	}
	bracketTypeAliases = []string{"None", "Open", "Close"}

	graphemeBreakAliases = []string{
		"Other", "CR", "LF", "Control", "Extend", "ZWJ", "RegionalIndicator",
		"Prepend", "SpacingMark", "L", "V", "T", "LV", "LVT", "ExtendedPictographic",
	}
)

func newGenFile() *jen.File {
	f := jen.NewFile("unicodedata")
	f.HeaderComment("/*\n" + licenseHeader + "\n*/")
	f.HeaderComment("Code generated by makeunitables. DO NOT EDIT.")
	return f
}

func scriptIdent(name string) string {
	return "Script" + strings.ReplaceAll(name, "_", "")
}

func writeScriptEnum(dir string, scripts []string) error {
	f := newGenFile()

	f.Comment("Script identifies the writing system of a codepoint, per the Unicode")
	f.Comment("Scripts.txt data file (Unicode 15.0.0). ScriptUnknown (Zzzz) is the")
	f.Comment("value for unassigned codepoints and for reserved raw field values;")
	f.Comment("ScriptCommon (Zyyy) and ScriptInherited (Zinh) are shared by, or")
	f.Comment("inherit from, surrounding text.")
	f.Type().Id("Script").Uint8()

	f.Const().DefsFunc(func(g *jen.Group) {
		for i, name := range scripts {
			if i == 0 {
				g.Id(scriptIdent(name)).Id("Script").Op("=").Iota()
			} else {
				g.Id(scriptIdent(name))
			}
		}
		g.Line()
		g.Id("numScripts")
	})

	f.Func().Id("script").Params(jen.Id("raw").Uint32()).Id("Script").Block(
		jen.If(jen.Id("raw").Op(">=").Uint32().Call(jen.Id("numScripts"))).Block(
			jen.Return(jen.Id("ScriptUnknown")),
		),
		jen.Return(jen.Id("Script").Call(jen.Id("raw"))),
	)

	return f.Save(filepath.Join(dir, "script.go"))
}

func writeNameTables(dir string, scripts []string) error {
	f := newGenFile()

	emit := func(table, typ, unknown string, names []string) {
		f.Var().Id(table).Op("=").Index(jen.Op("...")).String().ValuesFunc(func(g *jen.Group) {
			for _, n := range names {
				g.Line().Lit(n)
			}
			g.Line()
		})
		f.Func().Params(jen.Id("v").Id(typ)).Id("String").Params().String().Block(
			jen.If(jen.Int().Call(jen.Id("v")).Op(">=").Len(jen.Id(table))).Block(
				jen.Return(jen.Lit(unknown)),
			),
			jen.Return(jen.Id(table).Index(jen.Id("v"))),
		)
	}

	emit("generalCategoryNames", "GeneralCategory", "Cn", generalCategoryAliases)
	emit("scriptNames", "Script", "Unknown", scripts)
	emit("lineBreakNames", "LineBreakClass", "XX", lineBreakAliases)
	emit("bidiClassNames", "BidiClass", "Unknown", bidiClassAliases)
	emit("bracketTypeNames", "BidiPairedBracketType", "None", bracketTypeAliases)
	emit("graphemeBreakNames", "GraphemeBreakClass", "Other", graphemeBreakAliases)

	return f.Save(filepath.Join(dir, "classnames_gen.go"))
}
