package cbor

// itemRef addresses an item inside a Model's arena. It replaces the raw
// parent/sibling/child pointers of the original C++ item_t: indices survive
// growth of the backing slice, where a cached pointer would not.
type itemRef int32

// nilRef is the sentinel meaning "no item" (unset parent, no next sibling,
// empty child list).
const nilRef itemRef = -1

// ItemAllocator owns the storage for a Model's item arena. Allocate hands
// out a fresh, empty item (no links, no tag) and its stable ref; Get resolves a ref back
// to the item it addresses.
type ItemAllocator interface {
	Allocate() (itemRef, error)
	Get(ref itemRef) *item
	Size() int
	Capacity() int
	Clear()
}

// BlobAllocator owns storage for byte/text string payloads. Allocate
// returns a slice of length n; if init is non-nil its contents are copied
// (or, for the zero-copy allocator, aliased) into the returned slice.
type BlobAllocator interface {
	Allocate(n int, init []byte) ([]byte, error)
	Size() int
	Capacity() int
	Clear()
}

// staticItemAllocator is a preallocated, fixed-capacity item arena. It
// never regrows, so indices are stable for the allocator's entire lifetime
// and allocation never moves existing items in memory.
type staticItemAllocator struct {
	items []item
	size  int
}

// newStaticItemAllocator preallocates capacity items.
func newStaticItemAllocator(capacity int) *staticItemAllocator {
	return &staticItemAllocator{items: make([]item, capacity)}
}

func (a *staticItemAllocator) Allocate() (itemRef, error) {
	if a.size >= len(a.items) {
		return nilRef, ErrItemAllocFailed
	}
	ref := itemRef(a.size)
	a.items[ref] = item{parent: nilRef, next: nilRef, firstChild: nilRef, lastChild: nilRef, tag: noTag}
	a.size++
	return ref, nil
}

func (a *staticItemAllocator) Get(ref itemRef) *item {
	if ref < 0 || int(ref) >= a.size {
		return nil
	}
	return &a.items[ref]
}

func (a *staticItemAllocator) Size() int     { return a.size }
func (a *staticItemAllocator) Capacity() int { return len(a.items) }
func (a *staticItemAllocator) Clear()        { a.size = 0 }

// dynamicItemAllocator grows its backing slice with append as needed.
// Previously issued itemRef values remain valid across growth because they
// are offsets, not pointers — the defining property of the arena+index
// design (spec.md §9 Design Notes).
type dynamicItemAllocator struct {
	items []item
}

func newDynamicItemAllocator() *dynamicItemAllocator {
	return &dynamicItemAllocator{}
}

func (a *dynamicItemAllocator) Allocate() (itemRef, error) {
	ref := itemRef(len(a.items))
	a.items = append(a.items, item{parent: nilRef, next: nilRef, firstChild: nilRef, lastChild: nilRef, tag: noTag})
	return ref, nil
}

func (a *dynamicItemAllocator) Get(ref itemRef) *item {
	if ref < 0 || int(ref) >= len(a.items) {
		return nil
	}
	return &a.items[ref]
}

func (a *dynamicItemAllocator) Size() int    { return len(a.items) }
func (a *dynamicItemAllocator) Capacity() int { return cap(a.items) }
func (a *dynamicItemAllocator) Clear()        { a.items = a.items[:0] }

// borrowBlobAllocator hands out sub-slices of a single retained input
// buffer, never copying. The caller must keep that buffer alive for as long
// as the Model using this allocator is in use.
type borrowBlobAllocator struct {
	source []byte
}

func newBorrowBlobAllocator(source []byte) *borrowBlobAllocator {
	return &borrowBlobAllocator{source: source}
}

// Allocate ignores n and returns init itself (a sub-slice of source); the
// zero-copy contract only makes sense when init already aliases source.
func (a *borrowBlobAllocator) Allocate(n int, init []byte) ([]byte, error) {
	if init == nil {
		if n == 0 {
			return nil, nil
		}
		return nil, ErrBlobAllocFailed
	}
	return init, nil
}

func (a *borrowBlobAllocator) Size() int     { return len(a.source) }
func (a *borrowBlobAllocator) Capacity() int { return len(a.source) }
func (a *borrowBlobAllocator) Clear()        {}

// staticBlobAllocator is a fixed-capacity bump pool: every Allocate call
// carves the next n bytes off a single preallocated backing array.
type staticBlobAllocator struct {
	pool []byte
	used int
}

func newStaticBlobAllocator(capacity int) *staticBlobAllocator {
	return &staticBlobAllocator{pool: make([]byte, capacity)}
}

func (a *staticBlobAllocator) Allocate(n int, init []byte) ([]byte, error) {
	if n < 0 || a.used+n > len(a.pool) {
		return nil, ErrBlobAllocFailed
	}
	b := a.pool[a.used : a.used+n]
	a.used += n
	if init != nil {
		copy(b, init)
	}
	return b, nil
}

func (a *staticBlobAllocator) Size() int     { return a.used }
func (a *staticBlobAllocator) Capacity() int { return len(a.pool) }
func (a *staticBlobAllocator) Clear()        { a.used = 0 }

// dynamicBlobAllocator gives every blob its own heap allocation and tracks
// total bytes handed out for Size()/Clear().
type dynamicBlobAllocator struct {
	blobs [][]byte
	size  int
}

func newDynamicBlobAllocator() *dynamicBlobAllocator {
	return &dynamicBlobAllocator{}
}

func (a *dynamicBlobAllocator) Allocate(n int, init []byte) ([]byte, error) {
	if n < 0 {
		return nil, ErrBlobAllocFailed
	}
	b := make([]byte, n)
	if init != nil {
		copy(b, init)
	}
	a.blobs = append(a.blobs, b)
	a.size += n
	return b, nil
}

func (a *dynamicBlobAllocator) Size() int     { return a.size }
func (a *dynamicBlobAllocator) Capacity() int { return a.size }
func (a *dynamicBlobAllocator) Clear() {
	a.blobs = a.blobs[:0]
	a.size = 0
}
