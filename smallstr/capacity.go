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

package smallstr

import "fmt"

// Len returns the number of bytes, not counting the terminator.
func (s *String) Len() int {
	if s.heap == nil {
		return s.traits().Length(s.small()[:])
	}
	return int(s.meta[0])
}

// Size is the same as Len.
func (s *String) Size() int {
	return s.Len()
}

// Empty reports whether Len is zero.
func (s *String) Empty() bool {
	return s.Len() == 0
}

// Cap returns the number of bytes s can hold without allocating.
// It's MaxInline in inline mode.
func (s *String) Cap() int {
	if s.heap == nil {
		return MaxInline
	}
	return int(s.meta[1])
}

// MaxSize returns the largest capacity the allocator can serve.
func (s *String) MaxSize() int {
	return s.allocator().MaxSize() - 1
}

// Reserve makes sure Cap() >= n.
//
// It's a no-op if n <= Cap(). Otherwise a heap buffer of exactly n+1 bytes
// is allocated, the contents are moved into it and any old buffer is freed.
// The capacity never grows more than requested.
//
// On ErrOutOfMemory s is left unchanged.
func (s *String) Reserve(n int) error {
	if n <= s.Cap() {
		return nil
	}
	if limit := s.MaxSize(); n > limit {
		return fmt.Errorf("%w: reserve %d, max size %d", ErrOutOfMemory, n, limit)
	}
	a := s.allocator()
	nbuf := a.Alloc(n + 1)
	if nbuf == nil {
		return fmt.Errorf("%w: alloc %d bytes", ErrOutOfMemory, n+1)
	}

	size := s.Len()
	s.traits().Copy(nbuf, s.buf(), size)
	nbuf[size] = 0

	if s.heap != nil {
		a.Free(s.heap)
	}
	s.heap = nbuf
	s.meta[0] = uintptr(size)
	s.meta[1] = uintptr(n)
	return nil
}

// Resize is ResizeFill(n, 0).
func (s *String) Resize(n int) error {
	return s.ResizeFill(n, 0)
}

// ResizeFill changes Len to n.
//
// Growing appends copies of c, reserving first if n > Cap().
// Shrinking truncates and keeps the capacity.
//
// In inline mode the length is where the first zero byte is,
// so growing an inline String with c == 0 doesn't change its Len.
func (s *String) ResizeFill(n int, c byte) error {
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrOutOfRange, n)
	}
	size := s.Len()
	if n > size {
		if err := s.Reserve(n); err != nil {
			return err
		}
		b := s.buf()[size:n]
		for i := range b {
			b[i] = c
		}
	}
	s.setLen(n)
	return nil
}

// Clear frees the heap buffer, if any, and resets s to an empty inline String.
//
// Clear is also how a String gives its memory back, call it when done with
// a String built on a pooled or arena allocator.
func (s *String) Clear() {
	if s.heap != nil {
		s.allocator().Free(s.heap)
		s.heap = nil
	}
	s.meta = [2]uintptr{}
}
