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

package udata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReads(t *testing.T) {
	b := New([]byte{
		0x01, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
	})

	assert.Equal(t, uint32(1), b.Uint32())
	assert.Equal(t, uint32(0xFFFFFFFF), b.Uint32())
	assert.Equal(t, []uint32{2, 3}, b.Uint32Slice(2))
	assert.Equal(t, 0, b.Remaining())
	require.NoError(t, b.Error())
}

func TestShortRead(t *testing.T) {
	b := New([]byte{0x01, 0x02})

	assert.Equal(t, uint32(0), b.Uint32())
	require.Error(t, b.Error())

	// The reader stays poisoned and keeps reporting the first error.
	err := b.Error()
	assert.Nil(t, b.Uint32Slice(1))
	assert.Equal(t, uint32(0), b.Uint32())
	assert.Equal(t, err, b.Error())
}

func TestShortSlice(t *testing.T) {
	b := New([]byte{0x01, 0x00, 0x00, 0x00})

	assert.Nil(t, b.Uint32Slice(2))
	require.Error(t, b.Error())
}

func TestNegativeCount(t *testing.T) {
	b := New([]byte{0x01, 0x00, 0x00, 0x00})

	assert.Nil(t, b.Uint32Slice(-1))
	require.Error(t, b.Error())
}

func TestEmpty(t *testing.T) {
	b := New(nil)

	assert.Equal(t, 0, b.Remaining())
	assert.Equal(t, uint32(0), b.Uint32())
	require.Error(t, b.Error())
}
