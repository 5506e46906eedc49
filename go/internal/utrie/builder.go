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

package utrie

import (
	"encoding/binary"
	"fmt"
)

// Builder accumulates per-codepoint property words and serializes them
// into the compressed trie format understood by FromBytes. It holds one
// word per codepoint while building, so it is only meant for the offline
// table generator and for tests; the runtime path never constructs one.
type Builder struct {
	defaultValue uint32
	highStart    rune
	values       []uint32
}

// NewBuilder returns a builder whose codepoints all start out mapped to
// defaultValue, with the high-range boundary at the end of the BMP.
func NewBuilder(defaultValue uint32) *Builder {
	b := &Builder{
		defaultValue: defaultValue,
		highStart:    DefaultHighStart,
		values:       make([]uint32, MaxCodepoint+1),
	}
	for i := range b.values {
		b.values[i] = defaultValue
	}
	return b
}

// SetHighStart moves the boundary between fine-grained and coarse blocks.
// The boundary must be a multiple of the coarse block size. Tests use
// this to build small tries; the generator keeps the default.
func (b *Builder) SetHighStart(highStart rune) error {
	if highStart < 0 || highStart > MaxCodepoint+1 || highStart%blockSizeSupp != 0 {
		return fmt.Errorf("invalid high-range boundary U+%04X", highStart)
	}
	b.highStart = highStart
	return nil
}

// Set maps a single codepoint to a packed word.
func (b *Builder) Set(cp rune, value uint32) error {
	if cp < 0 || cp > MaxCodepoint {
		return fmt.Errorf("codepoint U+%04X out of range", cp)
	}
	b.values[cp] = value
	return nil
}

// SetRange maps every codepoint in [lo, hi] (inclusive) to a packed word.
func (b *Builder) SetRange(lo, hi rune, value uint32) error {
	if lo < 0 || hi > MaxCodepoint || lo > hi {
		return fmt.Errorf("invalid codepoint range U+%04X..U+%04X", lo, hi)
	}
	for cp := lo; cp <= hi; cp++ {
		b.values[cp] = value
	}
	return nil
}

// Serialize deduplicates blocks and emits the serialized trie. Identical
// blocks share one region of the data array, so large uniform ranges
// (unassigned planes, single-script runs) cost a single block each.
func (b *Builder) Serialize() []byte {
	bmpLength := int(b.highStart) >> ShiftBMP
	suppLength := (MaxCodepoint + 1 - int(b.highStart)) >> ShiftSupplementary

	var index []uint32
	var data []uint32
	seen := make(map[string]uint32)

	appendBlock := func(block []uint32) {
		key := blockKey(block)
		if off, ok := seen[key]; ok {
			index = append(index, off)
			return
		}
		off := uint32(len(data))
		seen[key] = off
		data = append(data, block...)
		index = append(index, off)
	}

	for i := 0; i < bmpLength; i++ {
		appendBlock(b.values[i<<ShiftBMP : (i+1)<<ShiftBMP])
	}
	base := int(b.highStart)
	for i := 0; i < suppLength; i++ {
		appendBlock(b.values[base+i<<ShiftSupplementary : base+(i+1)<<ShiftSupplementary])
	}

	out := make([]byte, 0, headerSize+4*len(index)+4*len(data))
	out = binary.LittleEndian.AppendUint32(out, b.defaultValue)
	out = binary.LittleEndian.AppendUint32(out, uint32(b.highStart))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(index)))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
	for _, v := range index {
		out = binary.LittleEndian.AppendUint32(out, v)
	}
	for _, v := range data {
		out = binary.LittleEndian.AppendUint32(out, v)
	}
	return out
}

func blockKey(block []uint32) string {
	key := make([]byte, 4*len(block))
	for i, v := range block {
		binary.LittleEndian.PutUint32(key[4*i:], v)
	}
	return string(key)
}
