package json

import "fmt"

// SetArray releases v, then sets it to an empty Array with the given
// initial capacity (0 is legal and allocates no backing storage).
func (v *Value) SetArray(capacity int) {
	v.Release()
	v.tag = Array
	if capacity > 0 {
		v.arr = make([]Value, 0, capacity)
	}
}

func (v *Value) requireArray(op string) error {
	if v.Tag() != Array {
		return fmt.Errorf("%w: %s requires an array, got %s", ErrType, op, v.Tag())
	}
	return nil
}

// ArrayReserve grows v's backing storage to exactly capacity if capacity is
// greater than v's current capacity. It never shrinks.
func (v *Value) ArrayReserve(capacity int) error {
	if err := v.requireArray("ArrayReserve"); err != nil {
		return err
	}
	if capacity > cap(v.arr) {
		grown := make([]Value, len(v.arr), capacity)
		copy(grown, v.arr)
		v.arr = grown
	}
	return nil
}

// ArrayShrink reallocates v's backing storage down to exactly its current
// size, releasing the storage entirely if size is 0.
func (v *Value) ArrayShrink() error {
	if err := v.requireArray("ArrayShrink"); err != nil {
		return err
	}
	if cap(v.arr) > len(v.arr) {
		if len(v.arr) == 0 {
			v.arr = nil
			return nil
		}
		shrunk := make([]Value, len(v.arr))
		copy(shrunk, v.arr)
		v.arr = shrunk
	}
	return nil
}

// ArrayClear removes every element of v, releasing each one.
func (v *Value) ArrayClear() error {
	if err := v.requireArray("ArrayClear"); err != nil {
		return err
	}
	return v.Erase(0, len(v.arr))
}

// arrayGrow grows capacity by doubling: max(1, capacity*2).
func arrayGrow(arr []Value, minSize int) []Value {
	newCap := cap(arr)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < minSize {
		newCap *= 2
	}
	grown := make([]Value, len(arr), newCap)
	copy(grown, arr)
	return grown
}

// PushBack appends a new Null slot to v and returns a handle to it for the
// caller to populate. The handle is only valid until the next structural
// mutation of v (any operation that may reallocate v's backing storage).
func (v *Value) PushBack() (*Value, error) {
	if err := v.requireArray("PushBack"); err != nil {
		return nil, err
	}
	if len(v.arr) == cap(v.arr) {
		v.arr = arrayGrow(v.arr, len(v.arr)+1)
	}
	v.arr = v.arr[:len(v.arr)+1]
	v.arr[len(v.arr)-1] = Value{}
	return &v.arr[len(v.arr)-1], nil
}

// PopBack releases and removes the last element of v. Requires v be
// non-empty.
func (v *Value) PopBack() error {
	if err := v.requireArray("PopBack"); err != nil {
		return err
	}
	if len(v.arr) == 0 {
		return fmt.Errorf("%w: PopBack on empty array", ErrType)
	}
	last := len(v.arr) - 1
	v.arr[last].Release()
	v.arr = v.arr[:last]
	return nil
}

// Insert grows v if needed, shifts elements [index, size) one slot to the
// right, and returns a handle to the new Null slot at index. Inserting at
// index == Size() is equivalent to PushBack.
func (v *Value) Insert(index int) (*Value, error) {
	if err := v.requireArray("Insert"); err != nil {
		return nil, err
	}
	if index < 0 || index > len(v.arr) {
		return nil, fmt.Errorf("%w: Insert index %d out of range [0,%d]", ErrType, index, len(v.arr))
	}
	if len(v.arr) == cap(v.arr) {
		v.arr = arrayGrow(v.arr, len(v.arr)+1)
	}
	v.arr = v.arr[:len(v.arr)+1]
	copy(v.arr[index+1:], v.arr[index:len(v.arr)-1])
	v.arr[index] = Value{}
	return &v.arr[index], nil
}

// At returns a handle to the element at index. Returns ErrType if v isn't
// an Array or index is out of range.
func (v *Value) At(index int) (*Value, error) {
	if err := v.requireArray("At"); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(v.arr) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrType, index, len(v.arr))
	}
	return &v.arr[index], nil
}

// Erase releases elements [index, index+n) and shifts the remaining tail
// left by n. n == 0 is a no-op.
func (v *Value) Erase(index, n int) error {
	if err := v.requireArray("Erase"); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if index < 0 || n < 0 || index+n > len(v.arr) {
		return fmt.Errorf("%w: Erase range [%d,%d) out of bounds for size %d", ErrType, index, index+n, len(v.arr))
	}
	for i := index; i < index+n; i++ {
		v.arr[i].Release()
	}
	for i := index; i < len(v.arr)-n; i++ {
		v.arr[i] = v.arr[i+n]
	}
	v.arr = v.arr[:len(v.arr)-n]
	return nil
}

// DetachArrayItem removes the element at index and returns it to the
// caller instead of releasing it, leaving the caller responsible for its
// lifetime. The remaining tail shifts left by one.
func (v *Value) DetachArrayItem(index int) (*Value, error) {
	if err := v.requireArray("DetachArrayItem"); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(v.arr) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrType, index, len(v.arr))
	}
	detached := v.arr[index]
	for i := index; i < len(v.arr)-1; i++ {
		v.arr[i] = v.arr[i+1]
	}
	v.arr = v.arr[:len(v.arr)-1]
	return &detached, nil
}

// ReplaceArrayItem releases the element at index and installs a copy of
// replacement in its place.
func (v *Value) ReplaceArrayItem(index int, replacement *Value) error {
	slot, err := v.At(index)
	if err != nil {
		return err
	}
	slot.Release()
	return slot.Copy(replacement)
}
