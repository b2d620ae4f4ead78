package fibheap

import (
	"golang.org/x/exp/constraints"

	"github.com/maxspencer/fibveb/cdll"
	"github.com/maxspencer/fibveb/item"
)

// node is the heap's intrusive tree node: an item.Item plus the
// linkage, degree and mark bit a Fibonacci-heap element needs. It
// implements cdll.Elem[*node[K, V]] so it can be a member of both the
// heap's root list and any parent's child list.
type node[K constraints.Ordered, V any] struct {
	left, right *node[K, V]
	parent      *node[K, V]
	children    cdll.List[*node[K, V]]
	degree      int
	marked      bool
	it          item.Item[K, V]
}

func (n *node[K, V]) Left() *node[K, V]      { return n.left }
func (n *node[K, V]) Right() *node[K, V]     { return n.right }
func (n *node[K, V]) SetLeft(x *node[K, V])  { n.left = x }
func (n *node[K, V]) SetRight(x *node[K, V]) { n.right = x }

// Handle is a stable, opaque reference to an item inserted into a
// Heap. It remains valid across consolidation, cuts and links, and is
// required by DecreaseKey and Delete.
type Handle[K constraints.Ordered, V any] struct {
	n *node[K, V]
}

// Key returns the current key of the referenced item.
func (h *Handle[K, V]) Key() K {
	k, _ := h.n.it.Key().Value()
	return k
}

// Value returns the payload carried alongside the key.
func (h *Handle[K, V]) Value() V {
	return h.n.it.Payload
}
