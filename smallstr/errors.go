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

import "errors"

var (
	// ErrOutOfMemory is returned when the allocator can't satisfy a growth request.
	// The String is left as it was before the call.
	ErrOutOfMemory = errors.New("smallstr: out of memory")

	// ErrOutOfRange is returned by checked accessors for an index not less than Len.
	ErrOutOfRange = errors.New("smallstr: index out of range")
)
