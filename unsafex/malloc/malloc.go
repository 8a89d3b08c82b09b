/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package malloc provides the byte allocators used by smallstr.
//
// An Allocator hands out buffers of an exact length and takes them back.
// A nil buffer from Alloc means the request cannot be satisfied; callers
// turn that into their own out-of-memory error.
package malloc

import (
	"math"
	"strconv"

	"github.com/bytedance/gopkg/lang/dirtmake"
	"github.com/bytedance/gopkg/lang/mcache"
)

// Allocator is the memory capability consumed by smallstr.String.
//
// Alloc returns a buffer with len == n, or nil if it can't.
// Free must be called with the exact slice returned by Alloc.
// MaxSize is the largest n Alloc may succeed for.
type Allocator interface {
	Alloc(n int) []byte
	Free(b []byte)
	MaxSize() int
}

// is64bit is 1 on 64-bit platforms and 0 on 32-bit ones.
const is64bit = strconv.IntSize / 64

const (
	// maxHeapSize keeps makeslice away from its own panics.
	// It's 1<<47-1 on 64-bit and math.MaxInt32 on 32-bit.
	maxHeapSize = math.MaxInt >> (is64bit * 16)

	// mcache keeps 46 size classes, the last one is 1<<45.
	// On 32-bit the address space caps it at 1<<30.
	maxPoolSize = 1 << (30 + is64bit*15)
)

var (
	_ Allocator = Heap{}
	_ Allocator = Pool{}
)

// Heap allocates from the Go heap without zeroing.
// Free is a no-op and the buffer is reclaimed by GC.
type Heap struct{}

// Alloc returns an uninitialized buffer of n bytes, or nil if n is out of range.
func (Heap) Alloc(n int) []byte {
	if n <= 0 || n > maxHeapSize {
		return nil
	}
	return dirtmake.Bytes(n, n)
}

// Free does nothing, GC takes the buffer back.
func (Heap) Free([]byte) {}

// MaxSize returns the largest buffer Heap will allocate.
func (Heap) MaxSize() int { return maxHeapSize }

// Pool allocates from mcache, which rounds sizes up to a power of two
// and recycles buffers through sync.Pool.
//
// Buffers returned by Pool may contain data of a previous user.
type Pool struct{}

// Alloc returns a pooled buffer of n bytes, or nil if n is out of range.
// The cap of the buffer is n rounded up to a power of two.
func (Pool) Alloc(n int) []byte {
	if n <= 0 || n > maxPoolSize {
		return nil
	}
	return mcache.Malloc(n)
}

// Free returns b to its size class.
// DO NOT use b after calling Free.
func (Pool) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	mcache.Free(b)
}

// MaxSize returns the size of the largest mcache size class in use.
func (Pool) MaxSize() int { return maxPoolSize }
