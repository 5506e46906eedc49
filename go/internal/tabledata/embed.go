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

// Package tabledata carries the serialized Unicode property tables
// produced by tools/makeunitables from the Unicode Character Database.
// The blobs are build artifacts: regenerate them, do not edit them.
package tabledata

import _ "embed"

// General is the trie packing general category, script, and line-break
// class.
//
//go:embed general.bin
var General []byte

// Bidi is the trie packing bidi class, paired-bracket type, and the
// paired-bracket partner codepoint.
//
//go:embed bidi.bin
var Bidi []byte

// Grapheme is the trie holding the grapheme-cluster break class.
//
//go:embed grapheme.bin
var Grapheme []byte
