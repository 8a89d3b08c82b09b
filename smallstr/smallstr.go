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

// Package smallstr implements String, a null-terminated byte string which
// keeps short contents inline and only goes to the allocator once it grows
// beyond MaxInline bytes.
//
// A String has two modes:
//   - inline: the bytes live in the String itself, followed by a zero byte.
//     The length is the offset of that zero byte and isn't stored anywhere.
//   - heap: the bytes live in a buffer of Cap()+1 bytes from the allocator,
//     and the same inline storage is reused for the {size, capacity} pair.
//
// Once a String is in heap mode it stays there until Clear.
//
// A String must not be copied after first use. It owns its heap buffer
// exclusively, and a copy would free it twice. It's NOT safe for concurrent use.
package smallstr

import (
	"unsafe"

	"github.com/cloudwego/smallstr/unsafex/malloc"
)

const (
	// InlineBytes is the size of the inline buffer, the same as {size, capacity}.
	InlineBytes = int(2 * unsafe.Sizeof(uintptr(0)))

	// MaxInline is the longest string kept inline. One byte is for the terminator.
	MaxInline = InlineBytes - 1
)

// String is a byte string with small string optimization.
//
// The zero value is an empty inline String using DefaultOption.
type String struct {
	noCopy noCopy

	// heap is the exact buffer returned by the allocator, len(heap) == Cap()+1.
	// nil means inline mode.
	heap []byte

	// meta is {size, capacity} in heap mode.
	// In inline mode its memory is the inline buffer, see small.
	meta [2]uintptr

	opt *Option
}

// New returns a String holding src up to its first zero byte.
func New(src []byte) (*String, error) {
	return NewWithOption(src, nil)
}

// NewString is like New but takes a string.
func NewString(src string) (*String, error) {
	return NewWithOption(stringToBinary(src), nil)
}

// NewWithOption returns a String built on the given option.
// A nil option means DefaultOption.
func NewWithOption(src []byte, o *Option) (*String, error) {
	s := &String{opt: o.normalize()}
	if err := s.Assign(src); err != nil {
		return nil, err
	}
	return s, nil
}

// Init clears s and makes it use the given option.
// It's meant for Strings declared as values rather than created with New.
func (s *String) Init(o *Option) {
	s.Clear()
	s.opt = o.normalize()
}

// Assign replaces the contents with src up to its first zero byte.
//
// On ErrOutOfMemory the contents are unchanged.
// A heap String stays in heap mode even if src would fit inline.
func (s *String) Assign(src []byte) error {
	t := s.traits()
	n := t.Length(src)
	if err := s.Reserve(n); err != nil {
		return err
	}
	t.Copy(s.buf(), src, n)
	s.setLen(n)
	return nil
}

// AssignString is like Assign but takes a string.
func (s *String) AssignString(src string) error {
	return s.Assign(stringToBinary(src))
}

// IsInline reports whether the contents are stored in s itself.
func (s *String) IsInline() bool {
	return s.heap == nil
}

// small returns the inline buffer, which is the memory of meta.
// only valid in inline mode.
func (s *String) small() *[InlineBytes]byte {
	return (*[InlineBytes]byte)(unsafe.Pointer(&s.meta))
}

// buf returns the active buffer including the room for the terminator.
func (s *String) buf() []byte {
	if s.heap == nil {
		return s.small()[:]
	}
	return s.heap
}

// setLen moves the terminator to n, which must be <= Cap().
func (s *String) setLen(n int) {
	if s.heap == nil {
		s.small()[n] = 0
		return
	}
	s.heap[n] = 0
	s.meta[0] = uintptr(n)
}

func (s *String) option() *Option {
	if s.opt == nil {
		return defaultOption
	}
	return s.opt
}

func (s *String) allocator() malloc.Allocator {
	return s.option().Allocator
}

func (s *String) traits() Traits {
	return s.option().Traits
}

// stringToBinary returns a read-only view of the bytes of s.
func stringToBinary(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// noCopy may be embedded into structs which must not be copied
// after the first use. See sync.noCopy.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
