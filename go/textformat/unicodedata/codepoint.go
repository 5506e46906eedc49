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

package unicodedata

// Properties bundles every field of the general table. Callers that need
// more than one of category, script, and line-break class for the same
// codepoint should use PropertiesOf to pay for a single trie read.
type Properties struct {
	Category  GeneralCategory
	Script    Script
	LineBreak LineBreakClass
}

// Properties returns all general-table fields of a codepoint from one
// trie access.
func (t *Tables) Properties(cp rune) Properties {
	word := t.general.Get32(cp)
	return Properties{
		Category:  generalCategory(field(word, CategoryShift, CategoryWidth)),
		Script:    script(field(word, ScriptShift, ScriptWidth)),
		LineBreak: lineBreakClass(field(word, LineBreakShift, LineBreakWidth)),
	}
}

// PropertiesOf is Properties against the default Tables.
func PropertiesOf(cp rune) Properties { return Default().Properties(cp) }

// IsWhiteSpace reports whether a codepoint is white space for text
// layout: the space separator categories plus the white-space controls.
func IsWhiteSpace(cp rune) bool {
	switch cp {
	case '\t', '\n', '\v', '\f', '\r', 0x85:
		return true
	}
	switch GeneralCategoryOf(cp) {
	case SpaceSeparator, LineSeparator, ParagraphSeparator:
		return true
	}
	return false
}

// IsBreakChar reports whether a codepoint mandates a line break.
func IsBreakChar(cp rune) bool {
	switch cp {
	case '\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
