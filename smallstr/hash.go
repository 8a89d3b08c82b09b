/*
 * Copyright 2024 CloudWeGo Authors
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

import "unsafe"

const (
	fnvHashOffset64 = uint64(14695981039346656037) // fnv hash offset64
	fnvHashPrime64  = uint64(1099511628211)
)

// Hash returns a FNV-1a variant hash of the contents.
//
// It computes 8 bytes per round by loading them as uint64 directly,
// so the result differs between cpu archs.
// DO NOT STORE the return value, it's designed for in-memory use.
//
// With FoldTraits ASCII letters are folded first, so Strings which are Equal
// hash the same. Custom Traits get the raw byte hash, which is only
// consistent with byte-wise equality.
func (s *String) Hash() uint64 {
	b := s.Data()
	if _, ok := s.traits().(FoldTraits); ok {
		return hashFold(b)
	}
	return hashBytes(unsafe.Pointer(unsafe.SliceData(b)), len(b))
}

// hashFold is hashBytes of b with A-Z folded to a-z, one byte per round.
func hashFold(b []byte) uint64 {
	h := fnvHashOffset64
	for _, c := range b {
		h ^= uint64(lower(c))
		h *= fnvHashPrime64
	}
	return h
}

func hashBytes(p unsafe.Pointer, n int) uint64 {
	h := fnvHashOffset64
	i := 0
	// 8 byte per round
	for m := n >> 3; i < m; i++ {
		h ^= *(*uint64)(unsafe.Add(p, i<<3)) // p[i*8]
		h *= fnvHashPrime64
	}
	// left 0-7 bytes
	i = i << 3
	for ; i < n; i++ {
		h ^= uint64(*(*byte)(unsafe.Add(p, i)))
		h *= fnvHashPrime64
	}
	return h
}
