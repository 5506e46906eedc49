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

// Package unicodedata resolves Unicode character properties for the text
// formatting engine: general category, script, line-break class, bidi
// class, paired brackets, and grapheme-cluster breaks.
//
// The properties live in three compressed tries (general, bidi, grapheme)
// parsed once from binary tables embedded in the binary; see
// tools/makeunitables for how the tables are produced from the Unicode
// Character Database. Every query is a plain trie read with a shift and a
// mask: total over any rune value, allocation-free, and safe for
// unlimited concurrent callers.
//
// Regenerate the tables with:
//
//	go generate ./go/textformat/unicodedata
package unicodedata

//go:generate go run ./tools/makeunitables --out ../../internal/tabledata

import (
	"fmt"
	"sync"

	"github.com/resslerruntime3/Avalonia/go/internal/tabledata"
	"github.com/resslerruntime3/Avalonia/go/internal/utrie"
)

// Tables holds the three property tries. A Tables is immutable once
// constructed; embedders that do not want the package-level defaults can
// construct their own from external table blobs and share it freely.
type Tables struct {
	general  *utrie.Trie
	bidi     *utrie.Trie
	grapheme *utrie.Trie
}

// NewTables parses the three serialized tries. Each blob is validated in
// full here; lookups on the returned Tables cannot fail.
func NewTables(general, bidi, grapheme []byte) (*Tables, error) {
	gt, err := utrie.FromBytes(general)
	if err != nil {
		return nil, fmt.Errorf("parsing general property table: %w", err)
	}
	bt, err := utrie.FromBytes(bidi)
	if err != nil {
		return nil, fmt.Errorf("parsing bidi property table: %w", err)
	}
	gbt, err := utrie.FromBytes(grapheme)
	if err != nil {
		return nil, fmt.Errorf("parsing grapheme break table: %w", err)
	}
	return &Tables{general: gt, bidi: bt, grapheme: gbt}, nil
}

var defaultTables = sync.OnceValue(func() *Tables {
	t, err := NewTables(tabledata.General, tabledata.Bidi, tabledata.Grapheme)
	if err != nil {
		// The embedded tables are a build artifact; failing to parse
		// them is a build defect, not a runtime condition.
		panic(err)
	}
	return t
})

// Default returns the process-wide Tables backed by the embedded binary
// tables, building it on first use.
func Default() *Tables {
	return defaultTables()
}

// GeneralCategory returns the Unicode general category of a codepoint.
func (t *Tables) GeneralCategory(cp rune) GeneralCategory {
	return generalCategory(field(t.general.Get32(cp), CategoryShift, CategoryWidth))
}

// Script returns the script a codepoint belongs to.
func (t *Tables) Script(cp rune) Script {
	return script(field(t.general.Get32(cp), ScriptShift, ScriptWidth))
}

// LineBreakClass returns the UAX #14 line-breaking class of a codepoint.
func (t *Tables) LineBreakClass(cp rune) LineBreakClass {
	return lineBreakClass(field(t.general.Get32(cp), LineBreakShift, LineBreakWidth))
}

// BidiClass returns the bidirectional character type of a codepoint.
func (t *Tables) BidiClass(cp rune) BidiClass {
	return bidiClass(field(t.bidi.Get32(cp), BidiClassShift, BidiClassWidth))
}

// BidiPairedBracketType reports whether a codepoint is an opening or
// closing paired bracket.
func (t *Tables) BidiPairedBracketType(cp rune) BidiPairedBracketType {
	return bracketType(field(t.bidi.Get32(cp), BracketTypeShift, BracketTypeWidth))
}

// BidiPairedBracket returns the bracket codepoint paired with cp, or 0 if
// cp is not a paired bracket.
func (t *Tables) BidiPairedBracket(cp rune) rune {
	return rune(field(t.bidi.Get32(cp), BracketShift, BracketWidth))
}

// GraphemeClusterBreak returns the UAX #29 grapheme-cluster break class
// of a codepoint.
func (t *Tables) GraphemeClusterBreak(cp rune) GraphemeBreakClass {
	return graphemeBreakClass(field(t.grapheme.Get32(cp), GraphemeShift, GraphemeWidth))
}

// Package-level lookups against the default Tables. These are what the
// shaping, line-breaking, and bidi algorithms call.

func GeneralCategoryOf(cp rune) GeneralCategory { return Default().GeneralCategory(cp) }

func ScriptOf(cp rune) Script { return Default().Script(cp) }

func LineBreakClassOf(cp rune) LineBreakClass { return Default().LineBreakClass(cp) }

func BidiClassOf(cp rune) BidiClass { return Default().BidiClass(cp) }

func BidiPairedBracketTypeOf(cp rune) BidiPairedBracketType { return Default().BidiPairedBracketType(cp) }

func BidiPairedBracketOf(cp rune) rune { return Default().BidiPairedBracket(cp) }

func GraphemeClusterBreakOf(cp rune) GraphemeBreakClass { return Default().GraphemeClusterBreak(cp) }
