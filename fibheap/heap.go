// Package fibheap implements a Fibonacci heap: a mergeable priority
// queue supporting insert, find-min, merge and decrease-key in O(1)
// amortized time, and extract-min and delete in O(log n) amortized
// time.
//
// A Fibonacci heap is a forest of heap-ordered trees linked into a
// root list. Extract-min consolidates the forest by pairwise-linking
// equal-degree roots; decrease-key may cut a node from its parent and,
// via cascading cut, propagate the cut up the tree, which is what
// keeps every node's degree bounded by O(log n) despite cuts.
//
// Keys must be golang.org/x/exp/constraints.Ordered. Handles returned
// by Insert remain valid for DecreaseKey and Delete until the item
// they reference is removed from the heap.
package fibheap

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/maxspencer/fibveb/cdll"
	"github.com/maxspencer/fibveb/item"
)

// Heap is a Fibonacci heap of items keyed by K, each carrying a
// payload V. The zero value is an empty, ready-to-use heap.
type Heap[K constraints.Ordered, V any] struct {
	roots cdll.List[*node[K, V]]
	min   *node[K, V]
	n     int
}

// New returns an empty Fibonacci heap. A Heap's zero value is already
// usable; New exists for symmetry with the rest of this module's
// constructors.
func New[K constraints.Ordered, V any]() *Heap[K, V] {
	return &Heap[K, V]{}
}

// Len returns the number of items currently in the heap.
func (h *Heap[K, V]) Len() int {
	return h.n
}

// Insert adds a new item with the given key and payload, returning a
// handle for later DecreaseKey/Delete calls. O(1) amortized.
func (h *Heap[K, V]) Insert(key K, payload V) *Handle[K, V] {
	x := &node[K, V]{it: item.New(key, payload)}
	h.roots.Insert(x)
	if h.min == nil || x.it.Key().Less(h.min.it.Key()) {
		h.min = x
	}
	h.n++
	return &Handle[K, V]{n: x}
}

// Minimum returns a handle to the item with the smallest key, or
// (nil, false) if the heap is empty. O(1).
func (h *Heap[K, V]) Minimum() (*Handle[K, V], bool) {
	if h.min == nil {
		return nil, false
	}
	return &Handle[K, V]{n: h.min}, true
}

// Merge splices other's items into h and leaves other empty. O(1)
// amortized, regardless of whether either heap starts out empty.
func (h *Heap[K, V]) Merge(other *Heap[K, V]) {
	h.roots.Merge(&other.roots)
	h.n += other.n
	if h.min == nil || (other.min != nil && other.min.it.Key().Less(h.min.it.Key())) {
		h.min = other.min
	}
	other.min = nil
	other.n = 0
}

// ExtractMin removes and returns a handle to the item with the
// smallest key, or (nil, false) if the heap is empty. O(log n)
// amortized.
func (h *Heap[K, V]) ExtractMin() (*Handle[K, V], bool) {
	z := h.min
	if z == nil {
		return nil, false
	}

	for c := range z.children.All() {
		c.parent = nil
		c.marked = false
	}
	h.roots.Merge(&z.children)
	h.roots.Delete(z)
	h.n--
	z.parent = nil
	z.marked = false
	z.degree = 0

	if h.roots.Empty() {
		h.min = nil
	} else {
		h.min = h.roots.Start()
		h.consolidate()
	}

	return &Handle[K, V]{n: z}, true
}

// DecreaseKey lowers x's key to key. It returns ErrIncreasedKey
// without modifying the heap if key is greater than x's current key.
// O(1) amortized.
func (h *Heap[K, V]) DecreaseKey(x *Handle[K, V], key K) error {
	return h.decreaseKey(x.n, item.KeyOf(key))
}

// Delete removes x from the heap regardless of its key, by decreasing
// it below every possible real key and extracting it. O(log n)
// amortized.
func (h *Heap[K, V]) Delete(x *Handle[K, V]) {
	_ = h.decreaseKey(x.n, item.NegInf[K]())
	h.ExtractMin()
}

func (h *Heap[K, V]) decreaseKey(x *node[K, V], k item.Key[K]) error {
	if x.it.Key().Less(k) {
		return ErrIncreasedKey
	}
	x.it.SetKey(k)
	p := x.parent
	if p != nil && x.it.Key().Less(p.it.Key()) {
		h.cut(x, p)
		h.cascadingCut(p)
	}
	if h.min == nil || x.it.Key().Less(h.min.it.Key()) {
		h.min = x
	}
	return nil
}

// link makes child a new child of parent. It does not unlink child
// from the ring it currently sits in: children.Insert overwrites
// child's links, leaving that ring's neighbors still pointing at it.
// Its only caller, consolidate, rebuilds the root list afterwards.
func (h *Heap[K, V]) link(child, parent *node[K, V]) {
	parent.children.Insert(child)
	child.parent = parent
	child.marked = false
	parent.degree++
}

// cut detaches x from parent p and promotes it to the root list.
func (h *Heap[K, V]) cut(x, p *node[K, V]) {
	p.children.Delete(x)
	p.degree--
	x.parent = nil
	x.marked = false
	h.roots.Insert(x)
}

// cascadingCut walks up from p, marking an unmarked non-root or
// cutting and continuing from a marked one. It is iterative rather
// than recursive so a long chain of cascading cuts costs no stack
// depth.
func (h *Heap[K, V]) cascadingCut(p *node[K, V]) {
	for {
		z := p.parent
		if z == nil {
			return
		}
		if !p.marked {
			p.marked = true
			return
		}
		h.cut(p, z)
		p = z
	}
}

// consolidate pairwise-links equal-degree roots until every surviving
// root has a distinct degree, then rebuilds the root list directly
// from the degree table. It never goes through the public Insert,
// which would double-count n and pay for a min comparison already
// done below.
func (h *Heap[K, V]) consolidate() {
	var snapshot []*node[K, V]
	for x := range h.roots.All() {
		snapshot = append(snapshot, x)
	}

	table := make([]*node[K, V], degreeBound(h.n)+1)
	grow := func(d int) {
		for d >= len(table) {
			table = append(table, nil)
		}
	}

	for _, w := range snapshot {
		x := w
		d := x.degree
		grow(d)
		for table[d] != nil {
			y := table[d]
			if y.it.Key().Less(x.it.Key()) {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = nil
			d++
			grow(d)
		}
		table[d] = x
	}

	h.roots = cdll.List[*node[K, V]]{}
	h.min = nil
	for _, x := range table {
		if x == nil {
			continue
		}
		h.roots.Insert(x)
		if h.min == nil || x.it.Key().Less(h.min.it.Key()) {
			h.min = x
		}
	}
}

// degreeBound returns ⌈log_φ(n)⌉ + 1, an upper bound on any node's
// degree in an n-item Fibonacci heap; the consolidation table grows
// past this if it is ever exceeded.
func degreeBound(n int) int {
	if n < 1 {
		return 1
	}
	const phi = 1.618033988749895
	return int(math.Ceil(math.Log(float64(n))/math.Log(phi))) + 1
}
