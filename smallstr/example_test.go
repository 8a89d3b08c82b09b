package smallstr

import (
	"errors"
	"fmt"

	"github.com/cloudwego/smallstr/unsafex/malloc"
)

func Example() {
	s, _ := NewString("ayy lmao")
	fmt.Println(s.Len(), s.Cap(), s.IsInline())

	_ = s.AssignString("this is a pretty long string that won't be short")
	fmt.Println(s.Len(), s.Cap(), s.IsInline())

	_ = s.Resize(4)
	fmt.Printf("%s %d\n", s, s.Cap())

	s.Clear()
	fmt.Println(s.Len(), s.Cap(), s.IsInline())

	// Output:
	// 8 15 true
	// 48 48 false
	// this 48
	// 0 15 true
}

func ExampleOption() {
	l := malloc.NewLimited(nil, 32)
	s, _ := NewWithOption([]byte("short"), &Option{Allocator: l})

	err := s.AssignString("a string too long for the allocator")
	fmt.Println(errors.Is(err, ErrOutOfMemory), s)

	// Output:
	// true short
}
