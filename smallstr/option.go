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

import "github.com/cloudwego/smallstr/unsafex/malloc"

// Option configures the capabilities a String is built on.
// A nil field means the default.
type Option struct {
	// Allocator supplies heap buffers once a String outgrows MaxInline.
	Allocator malloc.Allocator

	// Traits supplies length, compare and copy of byte sequences.
	Traits Traits
}

// DefaultOption returns the default values of Option.
func DefaultOption() *Option {
	return &Option{
		Allocator: malloc.Heap{},
		Traits:    ByteTraits{},
	}
}

var defaultOption = DefaultOption()

// normalize returns a private copy of o with nil fields set to defaults.
func (o *Option) normalize() *Option {
	if o == nil {
		return defaultOption
	}
	ret := *o
	if ret.Allocator == nil {
		ret.Allocator = defaultOption.Allocator
	}
	if ret.Traits == nil {
		ret.Traits = defaultOption.Traits
	}
	return &ret
}
