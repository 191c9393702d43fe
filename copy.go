package json

import "fmt"

// Copy deep-copies src into v. v is released first; v and src must not be
// the same Value. Array and Object payloads are reallocated with capacity
// equal to src's size (so the result always has Capacity() == Size()),
// then every element/member is copied recursively, keys included.
func (v *Value) Copy(src *Value) error {
	if v == src {
		return fmt.Errorf("%w: Copy requires distinct src and dst", ErrType)
	}
	v.Release()
	switch src.Tag() {
	case Null:
		// already Null after Release
	case Bool:
		v.tag, v.b = Bool, src.b
	case Number:
		v.tag, v.n = Number, src.n
	case String:
		v.tag, v.s = String, src.s
	case Array:
		v.tag = Array
		if len(src.arr) > 0 {
			v.arr = make([]Value, len(src.arr))
			for i := range src.arr {
				if err := v.arr[i].Copy(&src.arr[i]); err != nil {
					return err
				}
			}
		}
	case Object:
		v.tag = Object
		if len(src.obj) > 0 {
			v.obj = make([]Member, len(src.obj))
			for i := range src.obj {
				v.obj[i].Key = src.obj[i].Key
				if err := v.obj[i].Val.Copy(&src.obj[i].Val); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Clone returns a new, independent deep copy of v.
func (v *Value) Clone() *Value {
	dup := &Value{}
	// Copy only errors when dst == src, which can't happen for a freshly
	// allocated dup.
	_ = dup.Copy(v)
	return dup
}

// Duplicate is an alias for Clone, named after cJSON's cJSON_Duplicate.
func Duplicate(v *Value) *Value { return v.Clone() }

// Move releases dst, bitwise-transfers src's payload into dst, and resets
// src to Null. dst and src must not be the same Value.
func (dst *Value) Move(src *Value) error {
	if dst == src {
		return fmt.Errorf("%w: Move requires distinct src and dst", ErrType)
	}
	dst.Release()
	*dst = *src
	*src = Value{}
	return nil
}

// Swap exchanges the full contents of v and other. A no-op if v == other.
func (v *Value) Swap(other *Value) {
	if v == other {
		return
	}
	*v, *other = *other, *v
}

// Equal reports whether a and b are structurally equal: same tag; for
// Number, IEEE-754 == (so NaN != NaN); for String, identical bytes; for
// Array, identical size and pairwise-equal elements in order; for Object,
// identical size and, for every member of one, a member of the other with
// an identical key and an equal value — member order does NOT affect
// Object equality.
func Equal(a, b *Value) bool {
	if a.Tag() != b.Tag() {
		return false
	}
	switch a.Tag() {
	case Null:
		return true
	case Bool:
		return a.b == b.b
	case Number:
		return a.n == b.n
	case String:
		return a.s == b.s
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(&a.arr[i], &b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.obj) != len(b.obj) {
			return false
		}
		used := make([]bool, len(b.obj))
		for i := range a.obj {
			found := false
			for j := range b.obj {
				if used[j] || b.obj[j].Key != a.obj[i].Key {
					continue
				}
				if Equal(&a.obj[i].Val, &b.obj[j].Val) {
					used[j] = true
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
	return false
}

// Equal is a method form of the package-level Equal, for fluent call sites.
func (v *Value) Equal(other *Value) bool {
	return Equal(v, other)
}
