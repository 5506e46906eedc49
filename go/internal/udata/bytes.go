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

// Package udata implements a bounds-checked reader for the serialized
// Unicode property tables. All values are little-endian.
package udata

import (
	"encoding/binary"
	"fmt"
)

// Bytes reads fixed-width integers from an in-memory blob. It never reads
// past the end of the blob: once a read fails, the reader is poisoned and
// every subsequent read reports the same error.
type Bytes struct {
	buf []byte
	pos int
	err error
}

func New(buf []byte) *Bytes {
	return &Bytes{buf: buf}
}

func (b *Bytes) fail(want int) {
	if b.err == nil {
		b.err = fmt.Errorf("serialized table too short: need %d bytes at offset %d, have %d", want, b.pos, len(b.buf)-b.pos)
	}
}

// Uint32 reads one little-endian uint32. It returns 0 after a failed read.
func (b *Bytes) Uint32() uint32 {
	if b.err != nil {
		return 0
	}
	if len(b.buf)-b.pos < 4 {
		b.fail(4)
		return 0
	}
	v := binary.LittleEndian.Uint32(b.buf[b.pos:])
	b.pos += 4
	return v
}

// Uint32Slice reads n little-endian uint32 values into a fresh slice.
// It returns nil after a failed read.
func (b *Bytes) Uint32Slice(n int) []uint32 {
	if b.err != nil {
		return nil
	}
	if n < 0 || len(b.buf)-b.pos < 4*n {
		b.fail(4 * n)
		return nil
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b.buf[b.pos+4*i:])
	}
	b.pos += 4 * n
	return out
}

// Remaining returns the number of unread bytes.
func (b *Bytes) Remaining() int {
	return len(b.buf) - b.pos
}

// Error returns the first read failure, if any.
func (b *Bytes) Error() error {
	return b.err
}
