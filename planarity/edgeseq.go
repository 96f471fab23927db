// File: edgeseq.go
// Role: Edge sequences backing face handles.
//   - treeSeq: binary concatenation tree with a lazy per-node reversal flag;
//     push, concat and reverse are O(1), flattening is O(size).
//   - listSeq: gods doubly-linked list; reverse and concat copy, O(size).

package planarity

import "github.com/emirpasic/gods/lists/doublylinkedlist"

// edgeSeq is an ordered sequence of edge indices.
type edgeSeq interface {
	pushFront(e int)
	pushBack(e int)
	// concatFront moves other's edges in front of this sequence.
	concatFront(other edgeSeq)
	// concatBack moves other's edges behind this sequence.
	concatBack(other edgeSeq)
	reverse()
	// appendTo appends the edges in order to out.
	appendTo(out []int) []int
}

// treeNode is a leaf (edge >= 0) or an inner concatenation node.
type treeNode struct {
	edge        int
	left, right *treeNode
	reversed    bool
}

type treeSeq struct {
	root *treeNode
}

func newTreeSeq() edgeSeq { return &treeSeq{} }

func join(a, b *treeNode) *treeNode {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}

	return &treeNode{edge: none, left: a, right: b}
}

func (s *treeSeq) pushFront(e int) { s.root = join(&treeNode{edge: e}, s.root) }
func (s *treeSeq) pushBack(e int)  { s.root = join(s.root, &treeNode{edge: e}) }

func (s *treeSeq) concatFront(other edgeSeq) {
	o := other.(*treeSeq)
	s.root = join(o.root, s.root)
	o.root = nil
}

func (s *treeSeq) concatBack(other edgeSeq) {
	o := other.(*treeSeq)
	s.root = join(s.root, o.root)
	o.root = nil
}

func (s *treeSeq) reverse() {
	if s.root != nil {
		s.root.reversed = !s.root.reversed
	}
}

// appendTo flattens the tree iteratively, accumulating reversal parity.
func (s *treeSeq) appendTo(out []int) []int {
	type item struct {
		node    *treeNode
		flipped bool
	}
	if s.root == nil {
		return out
	}
	stack := []item{{node: s.root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.node.left == nil && it.node.right == nil {
			out = append(out, it.node.edge)
			continue
		}
		flipped := it.flipped != it.node.reversed
		first, second := it.node.left, it.node.right
		if flipped {
			first, second = second, first
		}
		// push second first so that first is emitted first
		if second != nil {
			stack = append(stack, item{node: second, flipped: flipped})
		}
		if first != nil {
			stack = append(stack, item{node: first, flipped: flipped})
		}
	}

	return out
}

// listSeq trades the lazy reversal for a plain doubly-linked list.
type listSeq struct {
	list *doublylinkedlist.List
}

func newListSeq() edgeSeq { return &listSeq{list: doublylinkedlist.New()} }

func (s *listSeq) pushFront(e int) { s.list.Prepend(e) }
func (s *listSeq) pushBack(e int)  { s.list.Add(e) }

func (s *listSeq) concatFront(other edgeSeq) {
	o := other.(*listSeq)
	s.list.Prepend(o.list.Values()...)
	o.list.Clear()
}

func (s *listSeq) concatBack(other edgeSeq) {
	o := other.(*listSeq)
	s.list.Add(o.list.Values()...)
	o.list.Clear()
}

func (s *listSeq) reverse() {
	values := s.list.Values()
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	s.list.Clear()
	s.list.Add(values...)
}

func (s *listSeq) appendTo(out []int) []int {
	it := s.list.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}

	return out
}
