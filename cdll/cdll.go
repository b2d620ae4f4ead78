// Package cdll implements a generic intrusive circular doubly-linked
// ring, the pointer structure a Fibonacci heap uses for its root list
// and every node's child list. Elements carry their own left/right
// links, so insert/delete/merge are O(1) with no extra allocation.
package cdll

import "iter"

// Elem is implemented by ring members of type T. T is typically a
// pointer type, with the zero value of T (nil) reserved to mean
// "no element" — List relies on that to represent emptiness.
type Elem[T any] interface {
	comparable
	Left() T
	Right() T
	SetLeft(T)
	SetRight(T)
}

// List is a ring of elements reachable from start by following Right,
// and back to start by following Left. An empty list has a zero-value
// start.
type List[T Elem[T]] struct {
	start T
}

// Empty reports whether the list has no members.
func (l *List[T]) Empty() bool {
	var zero T
	return l.start == zero
}

// Start returns the list's anchor member, or the zero value of T if
// the list is empty.
func (l *List[T]) Start() T {
	return l.start
}

// Insert splices x into the ring immediately before start. An empty
// list becomes the singleton ring {x} and start becomes x. A
// non-empty list's start is left unchanged — x lands next to the
// anchor without becoming it.
func (l *List[T]) Insert(x T) {
	var zero T
	if l.start == zero {
		x.SetLeft(x)
		x.SetRight(x)
		l.start = x
		return
	}
	last := l.start.Left()
	x.SetRight(l.start)
	x.SetLeft(last)
	last.SetRight(x)
	l.start.SetLeft(x)
}

// Delete unlinks x from the ring. x must be a current member; Delete
// does not check membership, matching the caller-validity contract
// this module uses throughout (an invalid handle is undefined
// behavior, not a reported error). If x was the sole member, the list
// becomes empty. If x was start, start advances to x's former right
// neighbor.
func (l *List[T]) Delete(x T) {
	if x.Right() == x {
		var zero T
		l.start = zero
	} else {
		x.Left().SetRight(x.Right())
		x.Right().SetLeft(x.Left())
		if x == l.start {
			l.start = x.Right()
		}
	}
	var zero T
	x.SetLeft(zero)
	x.SetRight(zero)
}

// Merge splices other's ring into l and leaves other empty. If either
// ring is empty, the result is simply the other. Otherwise the two
// rings are spliced together in O(1).
func (l *List[T]) Merge(other *List[T]) {
	var zero T
	if other.start == zero {
		return
	}
	if l.start == zero {
		l.start = other.start
		other.start = zero
		return
	}
	a, c := l.start, other.start
	b, d := a.Left(), c.Left()
	b.SetRight(c)
	c.SetLeft(b)
	d.SetRight(a)
	a.SetLeft(d)
	other.start = zero
}

// All iterates every member exactly once, starting at start and
// following Right, stopping once start is seen again. The sequence is
// finite and not safe to restart concurrently with mutation of the
// list it walks.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		if l.start == zero {
			return
		}
		x := l.start
		for {
			if !yield(x) {
				return
			}
			x = x.Right()
			if x == l.start {
				return
			}
		}
	}
}
