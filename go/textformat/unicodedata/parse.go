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

// Reverse lookups from UCD value aliases to enumeration members. The
// table generator resolves property files through these, so the enums in
// this package are the single source of truth for the numeric encoding.

func ParseGeneralCategory(alias string) (GeneralCategory, bool) {
	for i, name := range generalCategoryNames {
		if name == alias {
			return GeneralCategory(i), true
		}
	}
	return Unassigned, false
}

func ParseScript(name string) (Script, bool) {
	for i, n := range scriptNames {
		if n == name {
			return Script(i), true
		}
	}
	return ScriptUnknown, false
}

func ParseLineBreakClass(alias string) (LineBreakClass, bool) {
	for i, name := range lineBreakNames {
		if name == alias {
			return LineBreakClass(i), true
		}
	}
	return LineBreakUnknown, false
}

func ParseBidiClass(alias string) (BidiClass, bool) {
	for i, name := range bidiClassNames {
		if name == alias {
			return BidiClass(i), true
		}
	}
	return BidiUnknown, false
}

func ParseGraphemeBreakClass(name string) (GraphemeBreakClass, bool) {
	for i, n := range graphemeBreakNames {
		if n == name {
			return GraphemeBreakClass(i), true
		}
	}
	return GraphemeOther, false
}
