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
	"fmt"
	"unsafe"
)

// Index returns the i-th byte without checking i against Len.
// Reading past Len is undefined and may panic.
func (s *String) Index(i int) byte {
	return s.buf()[i]
}

// SetIndex sets the i-th byte without checking i against Len.
func (s *String) SetIndex(i int, c byte) {
	s.buf()[i] = c
}

// At returns the i-th byte, or ErrOutOfRange if i isn't in [0, Len()).
func (s *String) At(i int) (byte, error) {
	if err := s.boundsCheck(i); err != nil {
		return 0, err
	}
	return s.Index(i), nil
}

// SetAt sets the i-th byte, or returns ErrOutOfRange if i isn't in [0, Len()).
func (s *String) SetAt(i int, c byte) error {
	if err := s.boundsCheck(i); err != nil {
		return err
	}
	s.SetIndex(i, c)
	return nil
}

// Front returns the first byte. s must not be empty.
func (s *String) Front() byte {
	return s.buf()[0]
}

// Back returns the last byte. s must not be empty.
func (s *String) Back() byte {
	return s.buf()[s.Len()-1]
}

// Data returns the contents as a mutable view of the active buffer.
//
// The view is capped at Len so append never writes over the terminator.
// It's invalidated by anything which may change the capacity or the mode.
func (s *String) Data() []byte {
	n := s.Len()
	return s.buf()[:n:n]
}

// CStr is like Data but includes the trailing zero byte. It's never nil.
func (s *String) CStr() []byte {
	n := s.Len()
	return s.buf()[: n+1 : n+1]
}

// String returns a copy of the contents.
func (s *String) String() string {
	return string(s.Data())
}

// UnsafeString returns the contents without copy.
// DO NOT use the result after s is changed.
func (s *String) UnsafeString() string {
	b := s.Data()
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func (s *String) boundsCheck(i int) error {
	if n := s.Len(); i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, n)
	}
	return nil
}
