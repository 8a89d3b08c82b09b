package malloc

import (
	"fmt"
	"log"
	"math/bits"
	"unsafe"
)

const (
	// DefaultMinBlockSize is the default minimum block size (64B).
	DefaultMinBlockSize = 64

	// DefaultMaxBlockSize is the default maximum block size (64KB).
	DefaultMaxBlockSize = 64 * 1024
)

var _ Allocator = &Buddy{}

// Buddy is a buddy system allocator over a fixed arena.
//
// Blocks are powers of two between minBlockSize and maxBlockSize.
// Alloc returns nil once the arena can't hold the request,
// which makes it handy for bounding the memory of a set of strings.
//
// It's NOT safe for concurrent use.
type Buddy struct {
	arena []byte

	// arenaStart is used for offset calculations in Free.
	arenaStart unsafe.Pointer

	// freeLists[o] holds offsets of free blocks of size minBlockSize<<o.
	freeLists [][]int

	// used maps the offset of a live block to its order.
	used map[int]int

	minBlockSize  int
	minBlockShift int
	maxBlockSize  int
	maxBlockOrder int
}

// NewBuddy creates a buddy allocator with default block sizes (64B min, 64KB max).
// The arena's size MUST be a multiple of DefaultMaxBlockSize.
func NewBuddy(arena []byte) (*Buddy, error) {
	return NewBuddyWithBlockSize(arena, DefaultMinBlockSize, DefaultMaxBlockSize)
}

// NewBuddyWithBlockSize creates a buddy allocator with custom block sizes.
// Both minBlock and maxBlock must be powers of two, and minBlock <= maxBlock.
// The arena's size MUST be a multiple of maxBlock.
func NewBuddyWithBlockSize(arena []byte, minBlock, maxBlock int) (*Buddy, error) {
	if minBlock <= 0 || minBlock&(minBlock-1) != 0 {
		return nil, fmt.Errorf("minBlockSize must be a power of two, got %d", minBlock)
	}
	if maxBlock <= 0 || maxBlock&(maxBlock-1) != 0 {
		return nil, fmt.Errorf("maxBlockSize must be a power of two, got %d", maxBlock)
	}
	if minBlock > maxBlock {
		return nil, fmt.Errorf("minBlockSize (%d) must be <= maxBlockSize (%d)", minBlock, maxBlock)
	}
	if len(arena) < maxBlock || len(arena)%maxBlock != 0 {
		return nil, fmt.Errorf("arena size must be a multiple of %d bytes, got %d", maxBlock, len(arena))
	}

	minShift := bits.TrailingZeros(uint(minBlock))
	maxOrder := bits.TrailingZeros(uint(maxBlock)) - minShift

	a := &Buddy{
		arena:         arena,
		arenaStart:    unsafe.Pointer(&arena[0]),
		freeLists:     make([][]int, maxOrder+1),
		used:          make(map[int]int),
		minBlockSize:  minBlock,
		minBlockShift: minShift,
		maxBlockSize:  maxBlock,
		maxBlockOrder: maxOrder,
	}
	a.Reset()
	return a, nil
}

// Alloc returns a block of exactly n bytes, or nil if no free block is large enough.
// The cap of the returned slice is the size of the underlying block.
func (a *Buddy) Alloc(n int) []byte {
	if n <= 0 || n > a.maxBlockSize {
		return nil
	}
	order := a.orderForSize(n)

	found := -1
	for o := order; o <= a.maxBlockOrder; o++ {
		if len(a.freeLists[o]) > 0 {
			found = o
			break
		}
	}
	if found < 0 {
		return nil
	}

	freeList := a.freeLists[found]
	offset := freeList[len(freeList)-1]
	a.freeLists[found] = freeList[:len(freeList)-1]

	// the left half keeps the offset, the right half goes to the lower order
	for found > order {
		found--
		a.freeLists[found] = append(a.freeLists[found], offset+(a.minBlockSize<<found))
	}

	a.used[offset] = order
	blockSize := a.minBlockSize << order
	return a.arena[offset : offset+n : offset+blockSize]
}

// Free returns a block to the allocator and merges it with its free buddies.
//
// Blocks not owned by this allocator, or already freed, are logged and ignored.
func (a *Buddy) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	offset := int(uintptr(unsafe.Pointer(unsafe.SliceData(b))) - uintptr(a.arenaStart))
	if offset < 0 || offset >= len(a.arena) {
		log.Printf("MALLOC: buddy: free of block not in arena")
		return
	}
	order, ok := a.used[offset]
	if !ok {
		log.Printf("MALLOC: buddy: double free or invalid block at offset %d", offset)
		return
	}
	delete(a.used, offset)

	for order < a.maxBlockOrder {
		blockSize := a.minBlockSize << order
		i := indexOf(a.freeLists[order], offset^blockSize)
		if i < 0 {
			break
		}
		a.freeLists[order] = removeAt(a.freeLists[order], i)
		offset &^= blockSize
		order++
	}
	a.freeLists[order] = append(a.freeLists[order], offset)
}

// MaxSize returns the size of the largest block.
func (a *Buddy) MaxSize() int {
	return a.maxBlockSize
}

// Available returns the total free bytes, regardless of fragmentation.
func (a *Buddy) Available() int {
	total := 0
	for order, freeList := range a.freeLists {
		total += len(freeList) * (a.minBlockSize << order)
	}
	return total
}

// Reset drops all allocations and returns the allocator to its initial state.
func (a *Buddy) Reset() {
	for i := range a.freeLists {
		a.freeLists[i] = a.freeLists[i][:0]
	}
	for off := 0; off < len(a.arena); off += a.maxBlockSize {
		a.freeLists[a.maxBlockOrder] = append(a.freeLists[a.maxBlockOrder], off)
	}
	for off := range a.used {
		delete(a.used, off)
	}
}

// orderForSize returns the smallest order whose block can hold size bytes.
func (a *Buddy) orderForSize(size int) int {
	if size <= a.minBlockSize {
		return 0
	}
	return bits.Len(uint(size-1)) - a.minBlockShift
}

func indexOf(offsets []int, v int) int {
	for i, off := range offsets {
		if off == v {
			return i
		}
	}
	return -1
}

func removeAt(offsets []int, i int) []int {
	n := len(offsets) - 1
	offsets[i] = offsets[n]
	return offsets[:n]
}
