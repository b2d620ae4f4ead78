// Package veb implements a van Emde Boas tree: an ordered set over a
// fixed integer universe {0, ..., u-1}, u = 2^(2^k), supporting
// member, minimum, maximum, insert, delete, predecessor and successor
// in O(log log u).
//
// The structure recursively splits its universe into √u clusters of
// size √u each, plus a summary vEB tree (also of size √u) tracking
// which clusters are non-empty. The current minimum is hoisted: it is
// never also stored in a cluster, which is what collapses the
// recurrence T(u) = T(√u) + O(1) down to O(log log u) instead of the
// O(log u) a naive binary split would give.
package veb

import "math"

// none marks an absent min/max. Every real element is >= 0 by
// construction, so -1 can never collide with a real value.
const none = -1

// Tree is one node of a van Emde Boas tree, either a base node
// (Universe() == 2) or an internal node with a summary and √Universe()
// clusters.
type Tree struct {
	u        int
	ru       int
	min, max int
	summary  *Tree
	clusters []*Tree
}

// New allocates a van Emde Boas tree over the universe {0, ..., u-1}.
// u must be of the form 2^(2^k) for some k >= 0; New allocates Θ(u)
// nodes up front, so callers should size u to what they actually need.
func New(u int) (*Tree, error) {
	if !validUniverse(u) {
		return nil, ErrInvalidUniverse
	}
	return newNode(u), nil
}

func validUniverse(u int) bool {
	if u == 2 {
		return true
	}
	if u < 4 {
		return false
	}
	r := isqrt(u)
	if r*r != u {
		return false
	}
	return validUniverse(r)
}

func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	// guard against float rounding at the sizes this module targets.
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func newNode(u int) *Tree {
	t := &Tree{u: u, min: none, max: none}
	if u > 2 {
		t.ru = isqrt(u)
		t.summary = newNode(t.ru)
		t.clusters = make([]*Tree, t.ru)
		for i := range t.clusters {
			t.clusters[i] = newNode(t.ru)
		}
	}
	return t
}

func high(x, ru int) int     { return x / ru }
func low(x, ru int) int      { return x % ru }
func index(h, l, ru int) int { return h*ru + l }

// Universe returns the size of the universe this tree was built over.
func (t *Tree) Universe() int {
	return t.u
}

// Minimum returns the smallest element and true, or (0, false) if the
// tree is empty. O(1).
func (t *Tree) Minimum() (int, bool) {
	if t.min == none {
		return 0, false
	}
	return t.min, true
}

// Maximum returns the largest element and true, or (0, false) if the
// tree is empty. O(1).
func (t *Tree) Maximum() (int, bool) {
	if t.max == none {
		return 0, false
	}
	return t.max, true
}

// Member reports whether x is in the tree. O(log log u).
func (t *Tree) Member(x int) bool {
	if x < 0 || x >= t.u {
		return false
	}
	return t.member(x)
}

func (t *Tree) member(x int) bool {
	if x == t.min || x == t.max {
		return true
	}
	if t.u == 2 {
		return false
	}
	return t.clusters[high(x, t.ru)].member(low(x, t.ru))
}

// Insert adds x to the tree. It returns ErrOutOfRange if x is outside
// [0, Universe()). O(log log u).
func (t *Tree) Insert(x int) error {
	if x < 0 || x >= t.u {
		return ErrOutOfRange
	}
	t.insert(x)
	return nil
}

func (t *Tree) insert(x int) {
	if t.min == none {
		t.min, t.max = x, x
		return
	}
	if x < t.min {
		x, t.min = t.min, x
	}
	if t.u > 2 {
		h, l := high(x, t.ru), low(x, t.ru)
		if _, ok := t.clusters[h].Minimum(); !ok {
			t.summary.insert(h)
		}
		t.clusters[h].insert(l)
	}
	if x > t.max {
		t.max = x
	}
}

// Delete removes x from the tree, if present. It returns
// ErrOutOfRange if x is outside [0, Universe()); deleting an absent
// in-range value is a no-op. O(log log u).
func (t *Tree) Delete(x int) error {
	if x < 0 || x >= t.u {
		return ErrOutOfRange
	}
	t.delete(x)
	return nil
}

func (t *Tree) delete(x int) {
	if t.min == t.max {
		if x == t.min {
			t.min, t.max = none, none
		}
		return
	}
	if t.u == 2 {
		if x == 0 {
			t.min = 1
		} else {
			t.min = 0
		}
		t.max = t.min
		return
	}
	if x == t.min {
		firstCluster, _ := t.summary.Minimum()
		clusterMin, _ := t.clusters[firstCluster].Minimum()
		x = index(firstCluster, clusterMin, t.ru)
		t.min = x
	}
	h, l := high(x, t.ru), low(x, t.ru)
	t.clusters[h].delete(l)
	if _, ok := t.clusters[h].Minimum(); !ok {
		t.summary.delete(h)
		if x == t.max {
			if sMax, ok := t.summary.Maximum(); ok {
				cMax, _ := t.clusters[sMax].Maximum()
				t.max = index(sMax, cMax, t.ru)
			} else {
				t.max = t.min
			}
		}
	} else if x == t.max {
		cMax, _ := t.clusters[h].Maximum()
		t.max = index(h, cMax, t.ru)
	}
}

// Successor returns the smallest element strictly greater than x, and
// true, or (0, false) if none exists. x must be in [0, Universe());
// an out-of-range x also yields (0, false) rather than panicking.
// O(log log u).
func (t *Tree) Successor(x int) (int, bool) {
	if x < 0 || x >= t.u {
		return 0, false
	}
	if t.u == 2 {
		if x == 0 && t.max == 1 {
			return 1, true
		}
		return 0, false
	}
	if t.min != none && x < t.min {
		return t.min, true
	}
	h, l := high(x, t.ru), low(x, t.ru)
	if maxIn, ok := t.clusters[h].Maximum(); ok && l < maxIn {
		succLow, _ := t.clusters[h].Successor(l)
		return index(h, succLow, t.ru), true
	}
	sc, ok := t.summary.Successor(h)
	if !ok {
		return 0, false
	}
	m, _ := t.clusters[sc].Minimum()
	return index(sc, m, t.ru), true
}

// Predecessor returns the largest element strictly less than x, and
// true, or (0, false) if none exists. x must be in [0, Universe());
// an out-of-range x also yields (0, false) rather than panicking.
// O(log log u).
func (t *Tree) Predecessor(x int) (int, bool) {
	if x < 0 || x >= t.u {
		return 0, false
	}
	if t.u == 2 {
		if x == 1 && t.min == 0 {
			return 0, true
		}
		return 0, false
	}
	h, l := high(x, t.ru), low(x, t.ru)
	if minIn, ok := t.clusters[h].Minimum(); ok && l > minIn {
		predLow, _ := t.clusters[h].Predecessor(l)
		return index(h, predLow, t.ru), true
	}
	sc, ok := t.summary.Predecessor(h)
	if !ok {
		if t.min != none && x > t.min {
			return t.min, true
		}
		return 0, false
	}
	m, _ := t.clusters[sc].Maximum()
	return index(sc, m, t.ru), true
}
