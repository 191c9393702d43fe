package json

import "fmt"

// SetObject releases v, then sets it to an empty Object with the given
// initial capacity (0 is legal and allocates no backing storage).
func (v *Value) SetObject(capacity int) {
	v.Release()
	v.tag = Object
	if capacity > 0 {
		v.obj = make([]Member, 0, capacity)
	}
}

func (v *Value) requireObject(op string) error {
	if v.Tag() != Object {
		return fmt.Errorf("%w: %s requires an object, got %s", ErrType, op, v.Tag())
	}
	return nil
}

// ObjectReserve grows v's backing storage to exactly capacity if capacity
// is greater than v's current capacity. It never shrinks. Grounded on the
// spec's §9 open question: the correct source for the reallocation is the
// object's own member storage, never the array variant's — a mistake that
// is structurally impossible here because Array and Object are distinct
// Go types, not overlapping union fields.
func (v *Value) ObjectReserve(capacity int) error {
	if err := v.requireObject("ObjectReserve"); err != nil {
		return err
	}
	if capacity > cap(v.obj) {
		grown := make([]Member, len(v.obj), capacity)
		copy(grown, v.obj)
		v.obj = grown
	}
	return nil
}

// ObjectShrink reallocates v's backing storage down to exactly its current
// size, releasing the storage entirely if size is 0.
func (v *Value) ObjectShrink() error {
	if err := v.requireObject("ObjectShrink"); err != nil {
		return err
	}
	if cap(v.obj) > len(v.obj) {
		if len(v.obj) == 0 {
			v.obj = nil
			return nil
		}
		shrunk := make([]Member, len(v.obj))
		copy(shrunk, v.obj)
		v.obj = shrunk
	}
	return nil
}

// ObjectClear removes every member of v, releasing each value (keys are
// plain Go strings and need no explicit release).
func (v *Value) ObjectClear() error {
	if err := v.requireObject("ObjectClear"); err != nil {
		return err
	}
	for i := range v.obj {
		v.obj[i].Val.Release()
	}
	v.obj = v.obj[:0]
	return nil
}

func objectGrow(obj []Member, minSize int) []Member {
	newCap := cap(obj)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < minSize {
		newCap *= 2
	}
	grown := make([]Member, len(obj), newCap)
	copy(grown, obj)
	return grown
}

// FindMember returns the index of the first member whose key equals key,
// or -1 ("not found") if none matches. Duplicate keys are representable;
// this always returns the first match ("first wins for lookup"), even
// though structural equality treats an Object's members as an unordered
// multiset.
func (v *Value) FindMember(key string) int {
	if v.Tag() != Object {
		return -1
	}
	for i := range v.obj {
		if v.obj[i].Key == key {
			return i
		}
	}
	return -1
}

// FindValue is sugar over FindMember: it returns a handle to the first
// matching member's value, and whether a match was found at all.
func (v *Value) FindValue(key string) (*Value, bool) {
	i := v.FindMember(key)
	if i < 0 {
		return nil, false
	}
	return &v.obj[i].Val, true
}

// MemberAt returns a handle to the member at index.
func (v *Value) MemberAt(index int) (*Member, error) {
	if err := v.requireObject("MemberAt"); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(v.obj) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrType, index, len(v.obj))
	}
	return &v.obj[index], nil
}

// SetObjectValue always appends a new member with the given key — it does
// NOT deduplicate against an existing member with the same key. It
// allocates the key and returns a handle to the new (Null) value for the
// caller to populate. Callers who need upsert semantics should use
// ReplaceObjectItem, or find-then-remove via FindMember/RemoveMember first.
func (v *Value) SetObjectValue(key string) (*Value, error) {
	if err := v.requireObject("SetObjectValue"); err != nil {
		return nil, err
	}
	if len(v.obj) == cap(v.obj) {
		v.obj = objectGrow(v.obj, len(v.obj)+1)
	}
	v.obj = v.obj[:len(v.obj)+1]
	v.obj[len(v.obj)-1] = Member{Key: key}
	return &v.obj[len(v.obj)-1].Val, nil
}

// RemoveMember releases the key and value at index and shifts subsequent
// members one slot left.
func (v *Value) RemoveMember(index int) error {
	if err := v.requireObject("RemoveMember"); err != nil {
		return err
	}
	if index < 0 || index >= len(v.obj) {
		return fmt.Errorf("%w: index %d out of range [0,%d)", ErrType, index, len(v.obj))
	}
	v.obj[index].Val.Release()
	for i := index; i < len(v.obj)-1; i++ {
		v.obj[i] = v.obj[i+1]
	}
	v.obj = v.obj[:len(v.obj)-1]
	return nil
}

// DetachObjectItem removes the first member with the given key and returns
// its value to the caller instead of releasing it. Reports false if no
// member matched.
func (v *Value) DetachObjectItem(key string) (*Value, bool) {
	i := v.FindMember(key)
	if i < 0 {
		return nil, false
	}
	detached := v.obj[i].Val
	for j := i; j < len(v.obj)-1; j++ {
		v.obj[j] = v.obj[j+1]
	}
	v.obj = v.obj[:len(v.obj)-1]
	return &detached, true
}

// ReplaceObjectItem implements upsert (otherwise find-then-remove): if a
// member with key already exists its value is released and replaced in
// place; otherwise a new member is appended.
func (v *Value) ReplaceObjectItem(key string, replacement *Value) error {
	if err := v.requireObject("ReplaceObjectItem"); err != nil {
		return err
	}
	if i := v.FindMember(key); i >= 0 {
		v.obj[i].Val.Release()
		return v.obj[i].Val.Copy(replacement)
	}
	slot, err := v.SetObjectValue(key)
	if err != nil {
		return err
	}
	return slot.Copy(replacement)
}
