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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwego/smallstr/unsafex/malloc"
)

func TestReserve(t *testing.T) {
	s := mustNew(t, "abc")

	// fits inline, no-op
	require.NoError(t, s.Reserve(0))
	require.NoError(t, s.Reserve(-1))
	require.NoError(t, s.Reserve(MaxInline))
	assert.True(t, s.IsInline())
	assert.Equal(t, "abc", s.String())

	require.NoError(t, s.Reserve(MaxInline+1))
	assert.False(t, s.IsInline())
	assert.Equal(t, MaxInline+1, s.Cap())
	assert.Equal(t, "abc", s.String())
	assertTerminated(t, s)

	require.NoError(t, s.Reserve(100))
	assert.Equal(t, 100, s.Cap())
	assert.Equal(t, "abc", s.String())

	// never shrinks
	require.NoError(t, s.Reserve(20))
	assert.Equal(t, 100, s.Cap())
	assertTerminated(t, s)
}

func TestReserveMaxSize(t *testing.T) {
	l := malloc.NewLimited(nil, 32)
	s, err := NewWithOption([]byte("abc"), &Option{Allocator: l})
	require.NoError(t, err)
	assert.Equal(t, 31, s.MaxSize())

	err = s.Reserve(32)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Equal(t, 0, l.InUse())

	require.NoError(t, s.Reserve(31))
	assert.Equal(t, 32, l.InUse())

	var d String
	assert.Equal(t, malloc.Heap{}.MaxSize()-1, d.MaxSize())
}

func TestOutOfMemoryKeepsState(t *testing.T) {
	l := malloc.NewLimited(nil, 64)
	opt := &Option{Allocator: l}

	t.Run("inline", func(t *testing.T) {
		s, err := NewWithOption([]byte("abc"), opt)
		require.NoError(t, err)

		err = s.AssignString(strings.Repeat("x", 100))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfMemory))
		assert.True(t, s.IsInline())
		assert.Equal(t, "abc", s.String())
		assertTerminated(t, s)
	})

	t.Run("heap", func(t *testing.T) {
		s, err := NewWithOption([]byte(longStr), opt)
		require.NoError(t, err)
		inuse := l.InUse()
		assert.Equal(t, len(longStr)+1, inuse)

		// within MaxSize, but the budget is used up by s itself
		err = s.Reserve(60)
		assert.True(t, errors.Is(err, ErrOutOfMemory))
		assert.False(t, s.IsInline())
		assert.Equal(t, len(longStr), s.Cap())
		assert.Equal(t, longStr, s.String())
		assert.Equal(t, inuse, l.InUse())

		err = s.ResizeFill(60, 'x')
		assert.True(t, errors.Is(err, ErrOutOfMemory))
		assert.Equal(t, longStr, s.String())
		assertTerminated(t, s)

		s.Clear()
		assert.Equal(t, 0, l.InUse())
	})
}

func TestResize(t *testing.T) {
	s := mustNew(t, "hello world")

	require.NoError(t, s.Resize(5))
	assert.Equal(t, "hello", s.String())
	assertTerminated(t, s)

	require.NoError(t, s.ResizeFill(11, '-'))
	assert.True(t, s.IsInline())
	assert.Equal(t, "hello------", s.String())
	assertTerminated(t, s)

	// grows into heap mode
	require.NoError(t, s.ResizeFill(20, '+'))
	assert.False(t, s.IsInline())
	assert.Equal(t, 20, s.Cap())
	assert.Equal(t, "hello------+++++++++", s.String())
	assertTerminated(t, s)

	require.NoError(t, s.Resize(5))
	assert.Equal(t, "hello", s.String())
	assert.Equal(t, 20, s.Cap())

	// heap mode keeps the size, zero fill included
	require.NoError(t, s.Resize(8))
	assert.Equal(t, 8, s.Len())
	assert.Equal(t, []byte("hello\x00\x00\x00"), s.Data())
	assertTerminated(t, s)

	require.NoError(t, s.Resize(0))
	assert.True(t, s.Empty())
	assert.False(t, s.IsInline())

	err := s.Resize(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestResizeInlineZeroFill(t *testing.T) {
	s := mustNew(t, "hello")

	// the inline length is where the first zero byte is
	require.NoError(t, s.Resize(10))
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "hello", s.String())

	require.NoError(t, s.Resize(MaxInline+1))
	assert.False(t, s.IsInline())
	assert.Equal(t, MaxInline+1, s.Len())
	assert.Equal(t, "hello", s.String()[:5])
}

func TestResizeRoundTrip(t *testing.T) {
	for _, src := range []string{"", "ayy", "ayy lmao", longStr} {
		s := mustNew(t, src)
		for _, n := range []int{0, 3, 15, 16, 40, 100} {
			require.NoError(t, s.AssignString(src))
			require.NoError(t, s.ResizeFill(n, '.'))
			require.NoError(t, s.Resize(len(src)))
			keep := min(n, len(src))
			assert.Equal(t, src[:keep], s.String()[:keep], "src=%q n=%d", src, n)
			assertTerminated(t, s)
		}
	}
}

func TestClear(t *testing.T) {
	arena, err := malloc.NewBuddy(make([]byte, 64*1024))
	require.NoError(t, err)
	opt := &Option{Allocator: arena}

	s, err := NewWithOption([]byte("inline"), opt)
	require.NoError(t, err)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, MaxInline, s.Cap())
	assert.Equal(t, 64*1024, arena.Available())

	require.NoError(t, s.AssignString(longStr))
	assert.Less(t, arena.Available(), 64*1024)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, MaxInline, s.Cap())
	assert.True(t, s.IsInline())
	assert.Equal(t, 64*1024, arena.Available())

	// clear twice is fine
	s.Clear()
	assert.True(t, s.Empty())
}

func TestArenaExhaustion(t *testing.T) {
	arena, err := malloc.NewBuddyWithBlockSize(make([]byte, 1024), 64, 1024)
	require.NoError(t, err)
	opt := &Option{Allocator: arena}

	var ss []*String
	for {
		s, err := NewWithOption([]byte(longStr), opt)
		if err != nil {
			assert.True(t, errors.Is(err, ErrOutOfMemory))
			break
		}
		ss = append(ss, s)
	}
	// 49 bytes each, in 64 bytes blocks
	assert.Len(t, ss, 1024/64)
	for _, s := range ss {
		assert.Equal(t, longStr, s.String())
		s.Clear()
	}
	assert.Equal(t, 1024, arena.Available())
}

func TestPoolAllocator(t *testing.T) {
	opt := &Option{Allocator: malloc.Pool{}}
	for i := 0; i < 100; i++ {
		src := strings.Repeat("p", i)
		s, err := NewWithOption([]byte(src), opt)
		require.NoError(t, err)
		assert.Equal(t, src, s.String())
		assert.Equal(t, i <= MaxInline, s.IsInline())
		assertTerminated(t, s)
		s.Clear()
	}
}

func BenchmarkResize(b *testing.B) {
	var s String
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.ResizeFill(i&0x3f, 'x')
	}
	s.Clear()
}
