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

import "reflect"

// Compare compares s and o byte-wise.
//
// The common prefix decides first. If it's equal the shorter one is less.
// The result is <0, 0 or >0.
//
// Strings with the same Traits compare with them. Otherwise ByteTraits is
// used, so a.Compare(b) is always the negation of b.Compare(a).
func (s *String) Compare(o *String) int {
	t := s.traits()
	if !sameTraits(t, o.traits()) {
		t = ByteTraits{}
	}
	return compareWith(t, s.Data(), o.Data())
}

// CompareBytes compares s with b up to the first zero byte of b.
func (s *String) CompareBytes(b []byte) int {
	return s.compare(b[:s.traits().Length(b)])
}

// CompareString is like CompareBytes but takes a string.
func (s *String) CompareString(str string) int {
	return s.CompareBytes(stringToBinary(str))
}

func (s *String) compare(b []byte) int {
	return compareWith(s.traits(), s.Data(), b)
}

func compareWith(t Traits, a, b []byte) int {
	if ret := t.Compare(a, b, min(len(a), len(b))); ret != 0 {
		return ret
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// sameTraits reports whether a and b are the same comparable Traits value.
func sameTraits(a, b Traits) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	return ta.Comparable() && a == b
}

// Equal reports whether s == o.
func (s *String) Equal(o *String) bool { return s.Compare(o) == 0 }

// NotEqual reports whether s != o.
func (s *String) NotEqual(o *String) bool { return s.Compare(o) != 0 }

// Less reports whether s < o.
func (s *String) Less(o *String) bool { return s.Compare(o) < 0 }

// LessEqual reports whether s <= o.
func (s *String) LessEqual(o *String) bool { return s.Compare(o) <= 0 }

// Greater reports whether s > o.
func (s *String) Greater(o *String) bool { return s.Compare(o) > 0 }

// GreaterEqual reports whether s >= o.
func (s *String) GreaterEqual(o *String) bool { return s.Compare(o) >= 0 }

// EqualString reports whether s == str.
func (s *String) EqualString(str string) bool { return s.CompareString(str) == 0 }

// EqualBytes reports whether s == b.
func (s *String) EqualBytes(b []byte) bool { return s.CompareBytes(b) == 0 }

// NotEqualBytes reports whether s != b.
func (s *String) NotEqualBytes(b []byte) bool { return s.CompareBytes(b) != 0 }

// LessBytes reports whether s < b.
func (s *String) LessBytes(b []byte) bool { return s.CompareBytes(b) < 0 }

// LessEqualBytes reports whether s <= b.
func (s *String) LessEqualBytes(b []byte) bool { return s.CompareBytes(b) <= 0 }

// GreaterBytes reports whether s > b.
func (s *String) GreaterBytes(b []byte) bool { return s.CompareBytes(b) > 0 }

// GreaterEqualBytes reports whether s >= b.
func (s *String) GreaterEqualBytes(b []byte) bool { return s.CompareBytes(b) >= 0 }

// The Bytes* funcs take the raw sequence on the left.
// The comparison is still done by s, so its result is negated.

// BytesEqual reports whether b == s.
func BytesEqual(b []byte, s *String) bool { return s.CompareBytes(b) == 0 }

// BytesNotEqual reports whether b != s.
func BytesNotEqual(b []byte, s *String) bool { return s.CompareBytes(b) != 0 }

// BytesLess reports whether b < s.
func BytesLess(b []byte, s *String) bool { return s.CompareBytes(b) > 0 }

// BytesLessEqual reports whether b <= s.
func BytesLessEqual(b []byte, s *String) bool { return s.CompareBytes(b) >= 0 }

// BytesGreater reports whether b > s.
func BytesGreater(b []byte, s *String) bool { return s.CompareBytes(b) < 0 }

// BytesGreaterEqual reports whether b >= s.
func BytesGreaterEqual(b []byte, s *String) bool { return s.CompareBytes(b) <= 0 }
