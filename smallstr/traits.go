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

import "bytes"

// Traits is the byte-sequence capability a String delegates to.
type Traits interface {
	// Length returns the offset of the first zero byte of s, or len(s) if there is none.
	Length(s []byte) int

	// Compare compares the first n bytes of a and b, returning <0, 0 or >0.
	Compare(a, b []byte, n int) int

	// Copy copies the first n bytes of src to dst.
	Copy(dst, src []byte, n int)
}

var (
	_ Traits = ByteTraits{}
	_ Traits = FoldTraits{}
)

// ByteTraits compares bytes as unsigned values.
type ByteTraits struct{}

// Length returns the offset of the first zero byte.
func (ByteTraits) Length(s []byte) int {
	return cstrlen(s)
}

// Compare compares the first n bytes as unsigned values.
func (ByteTraits) Compare(a, b []byte, n int) int {
	return bytes.Compare(a[:n], b[:n])
}

// Copy copies the first n bytes of src to dst.
func (ByteTraits) Copy(dst, src []byte, n int) {
	copy(dst[:n], src[:n])
}

// FoldTraits is like ByteTraits but compares ASCII letters case-insensitively.
// Non-ASCII bytes are compared as is.
type FoldTraits struct{}

// Length returns the offset of the first zero byte.
func (FoldTraits) Length(s []byte) int {
	return cstrlen(s)
}

// Compare compares the first n bytes with A-Z folded to a-z.
func (FoldTraits) Compare(a, b []byte, n int) int {
	a, b = a[:n], b[:n]
	for i := 0; i < n; i++ {
		x, y := lower(a[i]), lower(b[i])
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Copy copies the first n bytes of src to dst, case is kept.
func (FoldTraits) Copy(dst, src []byte, n int) {
	copy(dst[:n], src[:n])
}

func cstrlen(s []byte) int {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
