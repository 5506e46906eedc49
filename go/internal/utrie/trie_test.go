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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTrie(t *testing.T, defaultValue uint32, set func(b *Builder)) []byte {
	t.Helper()
	b := NewBuilder(defaultValue)
	if set != nil {
		set(b)
	}
	return b.Serialize()
}

func TestRoundTrip(t *testing.T) {
	blob := buildTestTrie(t, 0xDEAD, func(b *Builder) {
		require.NoError(t, b.Set(0x41, 1))
		require.NoError(t, b.SetRange(0x100, 0x2FF, 2))
		require.NoError(t, b.SetRange(0x10300, 0x1037F, 3))
		require.NoError(t, b.Set(MaxCodepoint, 4))
	})

	tr, err := FromBytes(blob)
	require.NoError(t, err)

	assert.Equal(t, uint32(0xDEAD), tr.DefaultValue())
	assert.Equal(t, uint32(1), tr.Get32(0x41))
	assert.Equal(t, uint32(0xDEAD), tr.Get32(0x42))
	for cp := rune(0x100); cp <= 0x2FF; cp++ {
		require.Equal(t, uint32(2), tr.Get32(cp), "U+%04X", cp)
	}
	assert.Equal(t, uint32(0xDEAD), tr.Get32(0x300))
	assert.Equal(t, uint32(3), tr.Get32(0x10300))
	assert.Equal(t, uint32(3), tr.Get32(0x1037F))
	assert.Equal(t, uint32(0xDEAD), tr.Get32(0x10380))
	assert.Equal(t, uint32(4), tr.Get32(MaxCodepoint))
	assert.Equal(t, len(blob), tr.SerializedSize())
}

func TestLookupIsTotal(t *testing.T) {
	tr, err := FromBytes(buildTestTrie(t, 7, nil))
	require.NoError(t, err)

	for _, cp := range []rune{-1, -0x80000000, MaxCodepoint + 1, 0x7FFFFFFF} {
		assert.Equal(t, uint32(7), tr.Get32(cp), "U+%04X", cp)
	}
	// The whole codepoint domain resolves without faulting.
	for cp := rune(0); cp <= MaxCodepoint; cp++ {
		require.Equal(t, uint32(7), tr.Get32(cp), "U+%04X", cp)
	}
}

func TestBlockDeduplication(t *testing.T) {
	// A trie where two distant ranges carry identical words must share
	// blocks: adding the second range may not grow the data array.
	one := buildTestTrie(t, 0, func(b *Builder) {
		require.NoError(t, b.SetRange(0x40000, 0x407FF, 9))
	})
	two := buildTestTrie(t, 0, func(b *Builder) {
		require.NoError(t, b.SetRange(0x40000, 0x407FF, 9))
		require.NoError(t, b.SetRange(0xC0000, 0xC07FF, 9))
	})
	assert.Equal(t, len(one), len(two))

	tr, err := FromBytes(two)
	require.NoError(t, err)
	for i := rune(0); i < 0x800; i++ {
		require.Equal(t, tr.Get32(0x40000+i), tr.Get32(0xC0000+i))
	}
}

func TestCustomHighStart(t *testing.T) {
	b := NewBuilder(0)
	require.NoError(t, b.SetHighStart(0x800))
	require.NoError(t, b.Set(0x7FF, 1))
	require.NoError(t, b.Set(0x800, 2))

	tr, err := FromBytes(b.Serialize())
	require.NoError(t, err)
	assert.Equal(t, uint32(1), tr.Get32(0x7FF))
	assert.Equal(t, uint32(2), tr.Get32(0x800))
	assert.Equal(t, uint32(0), tr.Get32(0x801))

	assert.Error(t, b.SetHighStart(0x123))
	assert.Error(t, b.SetHighStart(-512))
}

func TestBuilderRejectsOutOfRange(t *testing.T) {
	b := NewBuilder(0)
	assert.Error(t, b.Set(-1, 1))
	assert.Error(t, b.Set(MaxCodepoint+1, 1))
	assert.Error(t, b.SetRange(-1, 10, 1))
	assert.Error(t, b.SetRange(20, 10, 1))
	assert.Error(t, b.SetRange(0, MaxCodepoint+1, 1))
}

func TestMalformedBlobs(t *testing.T) {
	valid := buildTestTrie(t, 0, func(b *Builder) {
		require.NoError(t, b.SetRange(0x100, 0x1FF, 5))
	})

	t.Run("truncated header", func(t *testing.T) {
		for n := 0; n < headerSize; n++ {
			_, err := FromBytes(valid[:n])
			require.Error(t, err, "header length %d", n)
		}
	})

	t.Run("truncated body", func(t *testing.T) {
		for _, n := range []int{headerSize, headerSize + 100, len(valid) - 1} {
			_, err := FromBytes(valid[:n])
			require.Error(t, err, "blob length %d", n)
		}
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := FromBytes(append(append([]byte{}, valid...), 0))
		require.Error(t, err)
	})

	t.Run("index offset out of bounds", func(t *testing.T) {
		corrupt := append([]byte{}, valid...)
		binary.LittleEndian.PutUint32(corrupt[headerSize:], 0xFFFFFF)
		_, err := FromBytes(corrupt)
		require.Error(t, err)
	})

	t.Run("bad high start", func(t *testing.T) {
		corrupt := append([]byte{}, valid...)
		binary.LittleEndian.PutUint32(corrupt[4:], 0x123)
		_, err := FromBytes(corrupt)
		require.Error(t, err)

		binary.LittleEndian.PutUint32(corrupt[4:], 0x200000)
		_, err = FromBytes(corrupt)
		require.Error(t, err)
	})

	t.Run("index length mismatch", func(t *testing.T) {
		corrupt := append([]byte{}, valid...)
		binary.LittleEndian.PutUint32(corrupt[8:], 12)
		_, err := FromBytes(corrupt)
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := FromBytes(nil)
		require.Error(t, err)
	})
}
