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

// Package utrie implements the compressed two-level trie that backs every
// per-codepoint property lookup.
//
// A trie maps the full codepoint domain [0, 0x10FFFF] to 32-bit packed
// property words. Codepoints below the high-range boundary are addressed
// through small blocks of 64 words; the supplementary range above it uses
// coarser blocks of 512 words, since assignment density is much lower
// there. Blocks with identical contents are deduplicated by the builder,
// so long runs of identically-classified codepoints (above all, the large
// unassigned ranges) share a single block.
//
// Lookup is total: any input, including negative values and values beyond
// 0x10FFFF, resolves to a word. Every structural error in a serialized
// trie is detected once, at construction; Get32 cannot fail.
package utrie

import (
	"fmt"

	"github.com/resslerruntime3/Avalonia/go/internal/udata"
)

const (
	// MaxCodepoint is the last codepoint in the Unicode codespace.
	MaxCodepoint = 0x10FFFF

	// Blocks below the high-range boundary span 1<<ShiftBMP codepoints;
	// blocks at or above it span 1<<ShiftSupplementary codepoints. The
	// boundary must be a multiple of both block sizes.
	ShiftBMP           = 6
	ShiftSupplementary = 9

	blockSizeBMP  = 1 << ShiftBMP
	blockSizeSupp = 1 << ShiftSupplementary
	maskBMP       = blockSizeBMP - 1
	maskSupp      = blockSizeSupp - 1

	// DefaultHighStart is the high-range boundary used by the table
	// generator: the end of the Basic Multilingual Plane.
	DefaultHighStart = 0x10000

	headerSize = 16
)

// Trie is an immutable codepoint-to-word lookup table. It is safe for
// unlimited concurrent readers.
type Trie struct {
	defaultValue uint32
	highStart    rune
	bmpLength    int
	index        []uint32
	data         []uint32
}

// FromBytes parses a serialized trie. The layout is a 16-byte header
// (default value, high-range boundary, index length, data length, all
// little-endian uint32), followed by the index array and the data array.
// The blob must contain exactly the declared amount of data, and every
// index entry must point to a whole block inside the data array; any
// violation is reported here so that lookups never have to re-check.
func FromBytes(blob []byte) (*Trie, error) {
	b := udata.New(blob)

	t := &Trie{}
	t.defaultValue = b.Uint32()
	t.highStart = rune(b.Uint32())
	indexLen := int(b.Uint32())
	dataLen := int(b.Uint32())
	if err := b.Error(); err != nil {
		return nil, err
	}

	if t.highStart < 0 || t.highStart > MaxCodepoint+1 || t.highStart%blockSizeSupp != 0 {
		return nil, fmt.Errorf("invalid high-range boundary U+%04X", t.highStart)
	}
	t.bmpLength = int(t.highStart) >> ShiftBMP
	suppLength := (MaxCodepoint + 1 - int(t.highStart)) >> ShiftSupplementary
	if indexLen != t.bmpLength+suppLength {
		return nil, fmt.Errorf("declared index length %d does not match boundary U+%04X (want %d)",
			indexLen, t.highStart, t.bmpLength+suppLength)
	}

	t.index = b.Uint32Slice(indexLen)
	t.data = b.Uint32Slice(dataLen)
	if err := b.Error(); err != nil {
		return nil, err
	}
	if b.Remaining() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after serialized trie", b.Remaining())
	}

	for i, off := range t.index {
		blockSize := blockSizeBMP
		if i >= t.bmpLength {
			blockSize = blockSizeSupp
		}
		if int(off)+blockSize > dataLen {
			return nil, fmt.Errorf("index entry %d points outside data array (offset %d, data length %d)", i, off, dataLen)
		}
	}
	return t, nil
}

// Get32 returns the packed property word for a codepoint. Codepoints
// outside [0, 0x10FFFF] resolve to the trie's default value.
func (t *Trie) Get32(cp rune) uint32 {
	switch {
	case cp < 0 || cp > MaxCodepoint:
		return t.defaultValue
	case cp < t.highStart:
		block := t.index[cp>>ShiftBMP]
		return t.data[int(block)+int(cp&maskBMP)]
	default:
		block := t.index[t.bmpLength+int(cp-t.highStart)>>ShiftSupplementary]
		return t.data[int(block)+int(cp&maskSupp)]
	}
}

// DefaultValue returns the word stored for unassigned and out-of-range
// codepoints.
func (t *Trie) DefaultValue() uint32 {
	return t.defaultValue
}

// SerializedSize returns the byte length of the serialized form this trie
// was parsed from or would serialize to.
func (t *Trie) SerializedSize() int {
	return headerSize + 4*len(t.index) + 4*len(t.data)
}
