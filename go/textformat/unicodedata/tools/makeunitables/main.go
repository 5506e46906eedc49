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

// makeunitables compiles the Unicode Character Database into the binary
// property tables embedded by internal/tabledata, and regenerates the
// script enumeration and the name tables in the unicodedata package.
//
// It expects an extracted UCD tree (the contents of UCD.zip from
// unicode.org, with the auxiliary/ and emoji/ subdirectories):
//
//	go run ./tools/makeunitables --ucd ~/ucd-15.0.0 --out internal/tabledata
package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/pflag"

	"github.com/resslerruntime3/Avalonia/go/internal/log"

	"github.com/resslerruntime3/Avalonia/go/textformat/unicodedata"
	"github.com/resslerruntime3/Avalonia/go/internal/utrie"
)

var (
	ucdDir = pflag.String("ucd", "", "path to an extracted Unicode Character Database")
	outDir = pflag.String("out", "internal/tabledata", "directory to write the binary tables to")
	genDir = pflag.String("gen-dir", ".", "directory to write the regenerated Go sources to")
)

func main() {
	log.RegisterFlags(pflag.CommandLine)
	pflag.Parse()
	if *ucdDir == "" {
		log.Exit("--ucd is required")
	}

	ucd, err := loadUCD(*ucdDir)
	if err != nil {
		log.Exitf("loading UCD: %v", err)
	}

	scripts := scriptRegistry(ucd)
	general := buildGeneral(ucd, scripts)
	bidi := buildBidi(ucd)
	grapheme := buildGrapheme(ucd)

	for name, table := range map[string][]uint32{
		"general.bin":  general,
		"bidi.bin":     bidi,
		"grapheme.bin": grapheme,
	} {
		b := utrie.NewBuilder(0)
		for cp, word := range table {
			if word != 0 {
				if err := b.Set(rune(cp), word); err != nil {
					log.Exitf("building %s: %v", name, err)
				}
			}
		}
		blob := b.Serialize()
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, blob, 0o644); err != nil {
			log.Exitf("writing %s: %v", path, err)
		}
		log.Infof("wrote %s (%d bytes)", path, len(blob))
	}

	if err := writeScriptEnum(*genDir, scripts); err != nil {
		log.Exitf("generating script enum: %v", err)
	}
	if err := writeNameTables(*genDir, scripts); err != nil {
		log.Exitf("generating name tables: %v", err)
	}
	log.Flush()
}

// scriptRegistry assigns stable numeric values to every script seen in
// Scripts.txt: Unknown, Common, and Inherited first, the rest sorted by
// name. The same ordering is emitted into the Script enum, so the blob
// and the Go sources cannot drift apart.
func scriptRegistry(ucd *ucdData) []string {
	seen := map[string]bool{"Unknown": true, "Common": true, "Inherited": true}
	var rest []string
	for _, r := range ucd.scripts {
		if !seen[r.value] {
			seen[r.value] = true
			rest = append(rest, r.value)
		}
	}
	sort.Strings(rest)
	return append([]string{"Unknown", "Common", "Inherited"}, rest...)
}

func buildGeneral(ucd *ucdData, scripts []string) []uint32 {
	scriptIndex := make(map[string]unicodedata.Script, len(scripts))
	for i, name := range scripts {
		scriptIndex[name] = unicodedata.Script(i)
	}

	cat := make([]unicodedata.GeneralCategory, utrie.MaxCodepoint+1)
	for _, r := range ucd.categories {
		gc, ok := unicodedata.ParseGeneralCategory(r.value)
		if !ok {
			log.Exitf("unknown general category %q for U+%04X..U+%04X", r.value, r.lo, r.hi)
		}
		for cp := r.lo; cp <= r.hi; cp++ {
			cat[cp] = gc
		}
	}

	scr := make([]unicodedata.Script, utrie.MaxCodepoint+1)
	for _, r := range ucd.scripts {
		for cp := r.lo; cp <= r.hi; cp++ {
			scr[cp] = scriptIndex[r.value]
		}
	}

	lb := make([]unicodedata.LineBreakClass, utrie.MaxCodepoint+1)
	for _, r := range ucd.lineBreak {
		class, ok := unicodedata.ParseLineBreakClass(r.value)
		if !ok {
			// Classes newer than the enum (or the historic AP/AK/..
			// tailoring classes) fall back to unknown.
			log.Warningf("unhandled line-break class %q for U+%04X..U+%04X", r.value, r.lo, r.hi)
			class = unicodedata.LineBreakUnknown
		}
		for cp := r.lo; cp <= r.hi; cp++ {
			lb[cp] = class
		}
	}

	words := make([]uint32, utrie.MaxCodepoint+1)
	for cp := range words {
		words[cp] = unicodedata.PackGeneral(cat[cp], scr[cp], lb[cp])
	}
	return words
}

var bidiAliases = map[string]string{
	"Left_To_Right":           "L",
	"Right_To_Left":           "R",
	"Arabic_Letter":           "AL",
	"European_Number":         "EN",
	"European_Separator":      "ES",
	"European_Terminator":     "ET",
	"Arabic_Number":           "AN",
	"Common_Separator":        "CS",
	"Nonspacing_Mark":         "NSM",
	"Boundary_Neutral":        "BN",
	"Paragraph_Separator":     "B",
	"Segment_Separator":       "S",
	"White_Space":             "WS",
	"Other_Neutral":           "ON",
	"Left_To_Right_Embedding": "LRE",
	"Left_To_Right_Override":  "LRO",
	"Right_To_Left_Embedding": "RLE",
	"Right_To_Left_Override":  "RLO",
	"Pop_Directional_Format":  "PDF",
	"Left_To_Right_Isolate":   "LRI",
	"Right_To_Left_Isolate":   "RLI",
	"First_Strong_Isolate":    "FSI",
	"Pop_Directional_Isolate": "PDI",
}

func buildBidi(ucd *ucdData) []uint32 {
	class := make([]unicodedata.BidiClass, utrie.MaxCodepoint+1)

	// DerivedBidiClass.txt lists the @missing defaults (L plus the R, AL,
	// and ET ranges for unassigned codepoints) before the assignments;
	// applying the ranges in file order resolves both.
	for _, r := range append(append([]ucdRange{}, ucd.bidiDefaults...), ucd.bidiClass...) {
		alias, ok := bidiAliases[r.value]
		if !ok {
			alias = r.value
		}
		c, ok := unicodedata.ParseBidiClass(alias)
		if !ok {
			log.Exitf("unknown bidi class %q for U+%04X..U+%04X", r.value, r.lo, r.hi)
		}
		for cp := r.lo; cp <= r.hi; cp++ {
			class[cp] = c
		}
	}

	words := make([]uint32, utrie.MaxCodepoint+1)
	for cp := range words {
		words[cp] = unicodedata.PackBidi(class[cp], unicodedata.BracketNone, 0)
	}
	for _, br := range ucd.brackets {
		typ := unicodedata.BracketOpen
		if br.value == "c" {
			typ = unicodedata.BracketClose
		}
		words[br.lo] = unicodedata.PackBidi(class[br.lo], typ, br.hi)
	}
	return words
}

func buildGrapheme(ucd *ucdData) []uint32 {
	words := make([]uint32, utrie.MaxCodepoint+1)
	for _, r := range ucd.graphemeBreak {
		class, ok := unicodedata.ParseGraphemeBreakClass(r.value)
		if !ok {
			log.Exitf("unknown grapheme break class %q for U+%04X..U+%04X", r.value, r.lo, r.hi)
		}
		for cp := r.lo; cp <= r.hi; cp++ {
			words[cp] = uint32(class)
		}
	}
	for _, r := range ucd.extPict {
		for cp := r.lo; cp <= r.hi; cp++ {
			if words[cp] == uint32(unicodedata.GraphemeOther) {
				words[cp] = uint32(unicodedata.GraphemeExtendedPictographic)
			}
		}
	}
	return words
}
