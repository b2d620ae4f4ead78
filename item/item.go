// Package item defines the key/payload pair shared by this module's
// priority queue. A Key is either a real, comparable value or the -∞
// sentinel used by Fibonacci-heap deletion.
package item

import "golang.org/x/exp/constraints"

// Key is a totally ordered value that additionally admits a -∞
// sentinel strictly less than any real K. The sentinel is a typed
// variant rather than a magic numeric constant, since K's zero value
// is not guaranteed to be smaller than every value callers might use.
type Key[K constraints.Ordered] struct {
	negInf bool
	value  K
}

// KeyOf wraps a real value as a Key.
func KeyOf[K constraints.Ordered](v K) Key[K] {
	return Key[K]{value: v}
}

// NegInf returns the -∞ sentinel: strictly less than every Key built
// with KeyOf.
func NegInf[K constraints.Ordered]() Key[K] {
	return Key[K]{negInf: true}
}

// Value returns the wrapped value and true, or the zero value and
// false if k is the -∞ sentinel.
func (k Key[K]) Value() (K, bool) {
	if k.negInf {
		var zero K
		return zero, false
	}
	return k.value, true
}

// Less reports whether k orders strictly before other.
func (k Key[K]) Less(other Key[K]) bool {
	if k.negInf {
		return !other.negInf
	}
	if other.negInf {
		return false
	}
	return k.value < other.value
}

// LessOrEqual reports whether k orders at or before other.
func (k Key[K]) LessOrEqual(other Key[K]) bool {
	return k.Less(other) || k.Equal(other)
}

// Equal reports whether k and other represent the same key.
func (k Key[K]) Equal(other Key[K]) bool {
	if k.negInf || other.negInf {
		return k.negInf && other.negInf
	}
	return k.value == other.value
}

// Item pairs an ordered Key with an opaque Payload. Item itself is a
// plain value type; containers that need intrusive linkage (such as a
// Fibonacci heap) embed it rather than extending it in place, keeping
// Item reusable outside any one container.
type Item[K constraints.Ordered, V any] struct {
	key     Key[K]
	Payload V
}

// New builds an Item from a real key and a payload.
func New[K constraints.Ordered, V any](key K, payload V) Item[K, V] {
	return Item[K, V]{key: KeyOf(key), Payload: payload}
}

// Key returns the item's key.
func (it Item[K, V]) Key() Key[K] {
	return it.key
}

// SetKey overwrites the item's key in place. Exported for use by
// container implementations that mutate a key for decrease-key style
// operations; most callers should treat Item as immutable.
func (it *Item[K, V]) SetKey(k Key[K]) {
	it.key = k
}
