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

import (
	"iter"
	"unsafe"
)

// Iterator is a mutable position in the contiguous buffer of a String.
//
// Like a pointer, it's only valid until the String is reserved, grown,
// assigned or cleared. Dereferencing End is undefined.
type Iterator struct {
	buf []byte
	i   int
}

// Begin returns an Iterator to the first byte.
func (s *String) Begin() Iterator {
	return Iterator{buf: s.buf()}
}

// End returns an Iterator one past the last byte.
func (s *String) End() Iterator {
	return Iterator{buf: s.buf(), i: s.Len()}
}

// CBegin is the read-only version of Begin.
func (s *String) CBegin() ConstIterator {
	return s.Begin().Const()
}

// CEnd is the read-only version of End.
func (s *String) CEnd() ConstIterator {
	return s.End().Const()
}

// RBegin returns a ReverseIterator to the last byte.
func (s *String) RBegin() ReverseIterator {
	return ReverseIterator{base: s.End()}
}

// REnd returns a ReverseIterator one before the first byte.
func (s *String) REnd() ReverseIterator {
	return ReverseIterator{base: s.Begin()}
}

// CRBegin is the read-only version of RBegin.
func (s *String) CRBegin() ConstReverseIterator {
	return s.RBegin().Const()
}

// CREnd is the read-only version of REnd.
func (s *String) CREnd() ConstReverseIterator {
	return s.REnd().Const()
}

// All returns an iterator over index-byte pairs from the first byte.
// s must not be resized while ranging.
func (s *String) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range s.Data() {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward is like All but from the last byte.
func (s *String) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		b := s.Data()
		for i := len(b) - 1; i >= 0; i-- {
			if !yield(i, b[i]) {
				return
			}
		}
	}
}

// Value returns the byte at it.
func (it Iterator) Value() byte { return it.buf[it.i] }

// Set sets the byte at it.
func (it Iterator) Set(c byte) { it.buf[it.i] = c }

// Next returns the Iterator to the following byte.
func (it Iterator) Next() Iterator { it.i++; return it }

// Prev returns the Iterator to the preceding byte.
func (it Iterator) Prev() Iterator { it.i--; return it }

// Add returns the Iterator n bytes ahead, n may be negative.
func (it Iterator) Add(n int) Iterator { it.i += n; return it }

// Sub returns the distance from o to it.
func (it Iterator) Sub(o Iterator) int { return it.i - o.i }

// Index returns the offset of it from the first byte.
func (it Iterator) Index() int { return it.i }

// Equal reports whether it and o point to the same byte of the same buffer.
func (it Iterator) Equal(o Iterator) bool {
	return it.i == o.i && sameBuf(it.buf, o.buf)
}

// Less reports whether it is before o. Both must come from the same String.
func (it Iterator) Less(o Iterator) bool { return it.i < o.i }

// Const returns the read-only version of it.
func (it Iterator) Const() ConstIterator { return ConstIterator{it: it} }

// ConstIterator is a read-only Iterator.
type ConstIterator struct {
	it Iterator
}

// Value returns the byte at c.
func (c ConstIterator) Value() byte { return c.it.Value() }

// Next returns the ConstIterator to the following byte.
func (c ConstIterator) Next() ConstIterator { return ConstIterator{it: c.it.Next()} }

// Prev returns the ConstIterator to the preceding byte.
func (c ConstIterator) Prev() ConstIterator { return ConstIterator{it: c.it.Prev()} }

// Add returns the ConstIterator n bytes ahead, n may be negative.
func (c ConstIterator) Add(n int) ConstIterator { return ConstIterator{it: c.it.Add(n)} }

// Sub returns the distance from o to c.
func (c ConstIterator) Sub(o ConstIterator) int { return c.it.Sub(o.it) }

// Index returns the offset of c from the first byte.
func (c ConstIterator) Index() int { return c.it.Index() }

// Equal reports whether c and o point to the same byte of the same buffer.
func (c ConstIterator) Equal(o ConstIterator) bool { return c.it.Equal(o.it) }

// Less reports whether c is before o.
func (c ConstIterator) Less(o ConstIterator) bool { return c.it.Less(o.it) }

// ReverseIterator walks a String from the back.
// It refers to the byte just before its base.
type ReverseIterator struct {
	base Iterator
}

// Value returns the byte at r.
func (r ReverseIterator) Value() byte { return r.base.buf[r.base.i-1] }

// Set sets the byte at r.
func (r ReverseIterator) Set(c byte) { r.base.buf[r.base.i-1] = c }

// Next moves r towards the front.
func (r ReverseIterator) Next() ReverseIterator { return ReverseIterator{base: r.base.Prev()} }

// Prev moves r towards the back.
func (r ReverseIterator) Prev() ReverseIterator { return ReverseIterator{base: r.base.Next()} }

// Add returns the ReverseIterator n bytes further towards the front.
func (r ReverseIterator) Add(n int) ReverseIterator { return ReverseIterator{base: r.base.Add(-n)} }

// Sub returns the distance from o to r.
func (r ReverseIterator) Sub(o ReverseIterator) int { return o.base.i - r.base.i }

// Index returns the offset of the referred byte from the first byte.
func (r ReverseIterator) Index() int { return r.base.i - 1 }

// Equal reports whether r and o refer to the same byte of the same buffer.
func (r ReverseIterator) Equal(o ReverseIterator) bool { return r.base.Equal(o.base) }

// Less reports whether r is before o in reverse order.
func (r ReverseIterator) Less(o ReverseIterator) bool { return o.base.Less(r.base) }

// Base returns the underlying Iterator, which is one past the referred byte.
func (r ReverseIterator) Base() Iterator { return r.base }

// Const returns the read-only version of r.
func (r ReverseIterator) Const() ConstReverseIterator { return ConstReverseIterator{it: r} }

// ConstReverseIterator is a read-only ReverseIterator.
type ConstReverseIterator struct {
	it ReverseIterator
}

// Value returns the byte at c.
func (c ConstReverseIterator) Value() byte { return c.it.Value() }

// Next moves c towards the front.
func (c ConstReverseIterator) Next() ConstReverseIterator {
	return ConstReverseIterator{it: c.it.Next()}
}

// Prev moves c towards the back.
func (c ConstReverseIterator) Prev() ConstReverseIterator {
	return ConstReverseIterator{it: c.it.Prev()}
}

// Add returns the ConstReverseIterator n bytes further towards the front.
func (c ConstReverseIterator) Add(n int) ConstReverseIterator {
	return ConstReverseIterator{it: c.it.Add(n)}
}

// Sub returns the distance from o to c.
func (c ConstReverseIterator) Sub(o ConstReverseIterator) int { return c.it.Sub(o.it) }

// Index returns the offset of the referred byte from the first byte.
func (c ConstReverseIterator) Index() int { return c.it.Index() }

// Equal reports whether c and o refer to the same byte of the same buffer.
func (c ConstReverseIterator) Equal(o ConstReverseIterator) bool { return c.it.Equal(o.it) }

// Less reports whether c is before o in reverse order.
func (c ConstReverseIterator) Less(o ConstReverseIterator) bool { return c.it.Less(o.it) }

// Base returns the underlying ConstIterator, one past the referred byte.
func (c ConstReverseIterator) Base() ConstIterator { return c.it.Base().Const() }

func sameBuf(a, b []byte) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
