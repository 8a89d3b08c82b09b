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

package malloc

var _ Allocator = &Limited{}

// Limited caps the bytes outstanding from another Allocator.
// It's NOT safe for concurrent use.
type Limited struct {
	a     Allocator
	limit int
	inuse int
}

// NewLimited returns a Limited which allows at most limit bytes from a.
// If a is nil, Heap is used.
func NewLimited(a Allocator, limit int) *Limited {
	if a == nil {
		a = Heap{}
	}
	if limit < 0 {
		limit = 0
	}
	return &Limited{a: a, limit: limit}
}

// Alloc returns nil if n would exceed the remaining budget.
func (l *Limited) Alloc(n int) []byte {
	if n <= 0 || n > l.limit-l.inuse {
		return nil
	}
	b := l.a.Alloc(n)
	if b == nil {
		return nil
	}
	l.inuse += len(b)
	return b
}

// Free gives b back to the inner allocator and the budget.
func (l *Limited) Free(b []byte) {
	if b == nil {
		return
	}
	l.inuse -= len(b)
	if l.inuse < 0 {
		l.inuse = 0
	}
	l.a.Free(b)
}

// MaxSize returns the smaller of the limit and the inner allocator's max.
func (l *Limited) MaxSize() int {
	if m := l.a.MaxSize(); m < l.limit {
		return m
	}
	return l.limit
}

// InUse returns the bytes currently allocated and not freed.
func (l *Limited) InUse() int {
	return l.inuse
}
