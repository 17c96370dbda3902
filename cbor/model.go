package cbor

// payload is the sum type backing an item's type-dependent value. Only one
// concrete type is ever stored per item, selected by that item's
// LogicalType — the Go-native replacement for the original's C-style union.
type payload interface {
	isPayload()
}

type intPayload struct{ v int64 }
type floatPayload struct{ v float64 }
type boolPayload struct{ v bool }
type bytesPayload struct{ b []byte }
type stringPayload struct{ s string }

func (intPayload) isPayload()    {}
func (floatPayload) isPayload()  {}
func (boolPayload) isPayload()   {}
func (bytesPayload) isPayload()  {}
func (stringPayload) isPayload() {}

// item is one arena-resident tree node. Parent/sibling/children edges are
// itemRef indices rather than pointers, so they stay valid across growth of
// the owning allocator's backing slice.
type item struct {
	logical LogicalType
	tag     uint64 // noTag when untagged

	parent itemRef
	next   itemRef // next sibling in the owning container's child list
	key    itemRef // key item, set only on map value children

	firstChild itemRef
	lastChild  itemRef
	childCount int

	payload payload
}

// Model is the data-model facade: it owns a pair of allocators and the root
// of a single decoded or programmatically built tree.
type Model struct {
	items ItemAllocator
	blobs BlobAllocator
	root  itemRef

	// retain keeps a borrowed input buffer alive for as long as the model
	// exists, when built with a borrow blob allocator over it.
	retain []byte
}

// NewModel pairs an arbitrary ItemAllocator and BlobAllocator — the general
// constructor for callers who want a custom combination (e.g. static items
// with dynamic blobs).
func NewModel(items ItemAllocator, blobs BlobAllocator) *Model {
	return &Model{items: items, blobs: blobs, root: nilRef}
}

// NewStaticModel returns the embedded preset: both allocators are fixed
// capacity, never regrow, and allocation failure surfaces as an error
// rather than a dynamic grow.
func NewStaticModel(maxItems, maxBlobBytes int) *Model {
	return NewModel(newStaticItemAllocator(maxItems), newStaticBlobAllocator(maxBlobBytes))
}

// NewDynamicModel returns the tooling preset: both allocators grow the
// heap as needed, with no fixed ceiling.
func NewDynamicModel() *Model {
	return NewModel(newDynamicItemAllocator(), newDynamicBlobAllocator())
}

// NewZeroCopyModel returns a preset for decoding source in place: items are
// a growing arena, byte payloads are sub-slices of source rather than
// copies. Text payloads are held as Go strings, so their bytes are copied
// out of source. source must outlive the Model.
func NewZeroCopyModel(maxItems int, source []byte) *Model {
	m := NewModel(newDynamicItemAllocator(), newBorrowBlobAllocator(source))
	m.retain = source
	return m
}

// Clear releases every item and blob allocation, resetting the model to
// empty. The root handle becomes invalid.
func (m *Model) Clear() {
	m.items.Clear()
	m.blobs.Clear()
	m.root = nilRef
}

// CreateRoot discards any existing tree and allocates a fresh root item of
// the given logical type.
func (m *Model) CreateRoot(logical LogicalType) (Item, error) {
	m.Clear()
	ref, err := m.items.Allocate()
	if err != nil {
		return Item{}, err
	}
	it := m.items.Get(ref)
	it.logical = logical
	it.tag = noTag
	it.parent, it.next, it.key, it.firstChild, it.lastChild = nilRef, nilRef, nilRef, nilRef, nilRef
	m.root = ref
	return Item{ref: ref, model: m}, nil
}

// Root returns a handle to the model's root item, or the zero Item if none
// has been created yet.
func (m *Model) Root() Item {
	if m.root == nilRef {
		return Item{}
	}
	return Item{ref: m.root, model: m}
}

func (m *Model) allocChild(logical LogicalType) (itemRef, *item, error) {
	ref, err := m.items.Allocate()
	if err != nil {
		return nilRef, nil, err
	}
	it := m.items.Get(ref)
	it.logical = logical
	it.tag = noTag
	it.parent, it.next, it.key, it.firstChild, it.lastChild = nilRef, nilRef, nilRef, nilRef, nilRef
	return ref, it, nil
}

// appendChild links child onto parent's child list (O(1), tail-cached) and
// sets child's parent back-reference.
func (m *Model) appendChild(parentRef, childRef itemRef) {
	parent := m.items.Get(parentRef)
	child := m.items.Get(childRef)
	child.parent = parentRef
	child.next = nilRef
	if parent.firstChild == nilRef {
		parent.firstChild = childRef
	} else {
		m.items.Get(parent.lastChild).next = childRef
	}
	parent.lastChild = childRef
	parent.childCount++
}

// Item is a cheap-to-copy navigation handle: an arena ref paired with a
// back-reference to the owning Model. The zero Item (IsValid() == false) is
// the miss sentinel; every read-only accessor is safe to call on it.
type Item struct {
	ref   itemRef
	model *Model
}

// IsValid reports whether the handle refers to a live item.
func (it Item) IsValid() bool {
	return it.model != nil && it.ref != nilRef && it.model.items.Get(it.ref) != nil
}

func (it Item) node() *item {
	if it.model == nil || it.ref == nilRef {
		return nil
	}
	return it.model.items.Get(it.ref)
}

// Type returns the item's logical type, or InvalidType for an invalid
// handle.
func (it Item) Type() LogicalType {
	n := it.node()
	if n == nil {
		return InvalidType
	}
	return n.logical
}

// Tag returns the item's tag modifier and whether one is present.
func (it Item) Tag() (uint64, bool) {
	n := it.node()
	if n == nil || n.tag == noTag {
		return 0, false
	}
	return n.tag, true
}

// SetTag attaches tag to the item. Returns ErrDoubleTagged if the item
// already carries a tag.
func (it Item) SetTag(tag uint64) error {
	n := it.node()
	if n == nil {
		return ErrMalformedMessage
	}
	if n.tag != noTag {
		return ErrDoubleTagged
	}
	n.tag = tag
	return nil
}

// Parent returns the item's parent, or the zero Item at the root.
func (it Item) Parent() Item {
	n := it.node()
	if n == nil || n.parent == nilRef {
		return Item{}
	}
	return Item{ref: n.parent, model: it.model}
}

// Sibling returns the next item in the owning container's child list, or
// the zero Item after the last child.
func (it Item) Sibling() Item {
	n := it.node()
	if n == nil || n.next == nilRef {
		return Item{}
	}
	return Item{ref: n.next, model: it.model}
}

// Key returns the key item for a map-value child, or the zero Item if this
// item has no key (array children, the root, or a map's key items
// themselves).
func (it Item) Key() Item {
	n := it.node()
	if n == nil || n.key == nilRef {
		return Item{}
	}
	return Item{ref: n.key, model: it.model}
}

// Begin returns the first child of an array or map item, or the zero Item
// if empty.
func (it Item) Begin() Item {
	n := it.node()
	if n == nil || n.firstChild == nilRef {
		return Item{}
	}
	return Item{ref: n.firstChild, model: it.model}
}

// Len returns the number of children for array/map, the byte count for
// bytes/string payloads (UTF-8 bytes, not runes, for strings), or 0
// otherwise.
func (it Item) Len() int {
	n := it.node()
	if n == nil {
		return 0
	}
	switch n.logical {
	case ArrayType, MapType:
		return n.childCount
	case BytesType:
		if p, ok := n.payload.(bytesPayload); ok {
			return len(p.b)
		}
	case StringType:
		if p, ok := n.payload.(stringPayload); ok {
			return len(p.s)
		}
	}
	return 0
}

// At walks the child list to return the i'th child (0-based), or the zero
// Item if out of range. O(n); callers iterating a whole container should
// use Begin/Sibling instead.
func (it Item) At(i int) Item {
	if i < 0 {
		return Item{}
	}
	cur := it.Begin()
	for j := 0; j < i && cur.IsValid(); j++ {
		cur = cur.Sibling()
	}
	return cur
}

// Int returns the item's integer value and true, or (0, false) if the item
// is not an integer.
func (it Item) Int() (int64, bool) {
	n := it.node()
	if n == nil {
		return 0, false
	}
	if p, ok := n.payload.(intPayload); ok {
		return p.v, true
	}
	return 0, false
}

// Float returns the item's float value and true, or (0, false) if the item
// is not a float.
func (it Item) Float() (float64, bool) {
	n := it.node()
	if n == nil {
		return 0, false
	}
	if p, ok := n.payload.(floatPayload); ok {
		return p.v, true
	}
	return 0, false
}

// Bool returns the item's boolean value and true, or (false, false) if the
// item is not a bool.
func (it Item) Bool() (bool, bool) {
	n := it.node()
	if n == nil {
		return false, false
	}
	if p, ok := n.payload.(boolPayload); ok {
		return p.v, true
	}
	return false, false
}

// Bytes returns the item's byte-string payload and true, or (nil, false)
// otherwise. The returned slice aliases the model's storage; callers must
// copy before the model is cleared if they need to retain it independently.
func (it Item) Bytes() ([]byte, bool) {
	n := it.node()
	if n == nil {
		return nil, false
	}
	if p, ok := n.payload.(bytesPayload); ok {
		return p.b, true
	}
	return nil, false
}

// String returns the item's text-string payload and true, or ("", false)
// otherwise.
func (it Item) String() (string, bool) {
	n := it.node()
	if n == nil {
		return "", false
	}
	if p, ok := n.payload.(stringPayload); ok {
		return p.s, true
	}
	return "", false
}

// IsNull reports whether the item's logical type is NullType.
func (it Item) IsNull() bool {
	n := it.node()
	return n != nil && n.logical == NullType
}

// IsUndefined reports whether the item's logical type is UndefinedType.
func (it Item) IsUndefined() bool {
	n := it.node()
	return n != nil && n.logical == UndefinedType
}

// AddChild allocates a new item of the given logical type and appends it as
// a child of it (which must be an array or map item). For a map item, the
// returned child is the entry's value; the caller attaches its key with
// AddKey on that value.
func (it Item) AddChild(logical LogicalType) (Item, error) {
	n := it.node()
	if n == nil || (n.logical != ArrayType && n.logical != MapType) {
		return Item{}, ErrUnsupportedDatatype
	}
	ref, _, err := it.model.allocChild(logical)
	if err != nil {
		return Item{}, err
	}
	it.model.appendChild(it.ref, ref)
	return Item{ref: ref, model: it.model}, nil
}

// AddKey allocates a key item of the given logical type (must be
// IntegerType or StringType) and binds it as this item's key. Used when
// building map entries programmatically: the value child is created via
// the parent map's AddChild, then its key is attached with AddKey.
func (it Item) AddKey(logical LogicalType) (Item, error) {
	if logical != IntegerType && logical != StringType {
		return Item{}, ErrUnsupportedKeyType
	}
	n := it.node()
	if n == nil {
		return Item{}, ErrUnsupportedDatatype
	}
	ref, _, err := it.model.allocChild(logical)
	if err != nil {
		return Item{}, err
	}
	n.key = ref
	return Item{ref: ref, model: it.model}, nil
}

// SetInt sets an integer payload on the item (logical type must already be
// IntegerType, as set by CreateRoot/AddChild).
func (it Item) SetInt(v int64) error {
	n := it.node()
	if n == nil || n.logical != IntegerType {
		return ErrUnsupportedDatatype
	}
	n.payload = intPayload{v: v}
	return nil
}

// SetFloat sets a float payload on the item.
func (it Item) SetFloat(v float64) error {
	n := it.node()
	if n == nil || n.logical != FloatType {
		return ErrUnsupportedDatatype
	}
	n.payload = floatPayload{v: v}
	return nil
}

// SetBool sets a boolean payload on the item.
func (it Item) SetBool(v bool) error {
	n := it.node()
	if n == nil || n.logical != BoolType {
		return ErrUnsupportedDatatype
	}
	n.payload = boolPayload{v: v}
	return nil
}

// SetBytes allocates a blob through the model's BlobAllocator, copies (or
// borrows, per the allocator) v into it, and attaches it to the item.
func (it Item) SetBytes(v []byte) error {
	n := it.node()
	if n == nil || n.logical != BytesType {
		return ErrUnsupportedDatatype
	}
	b, err := it.model.blobs.Allocate(len(v), v)
	if err != nil {
		return err
	}
	n.payload = bytesPayload{b: b}
	return nil
}

// SetString allocates a blob through the model's BlobAllocator for v's
// bytes and attaches it as the item's text payload.
func (it Item) SetString(v string) error {
	n := it.node()
	if n == nil || n.logical != StringType {
		return ErrUnsupportedDatatype
	}
	b, err := it.model.blobs.Allocate(len(v), []byte(v))
	if err != nil {
		return err
	}
	n.payload = stringPayload{s: string(b)}
	return nil
}

// SetNull marks the item as NullType with no payload.
func (it Item) SetNull() error {
	n := it.node()
	if n == nil {
		return ErrUnsupportedDatatype
	}
	n.logical = NullType
	n.payload = nil
	return nil
}

// SetUndefined marks the item as UndefinedType with no payload.
func (it Item) SetUndefined() error {
	n := it.node()
	if n == nil {
		return ErrUnsupportedDatatype
	}
	n.logical = UndefinedType
	n.payload = nil
	return nil
}
