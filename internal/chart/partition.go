package chart

import "math"

// Node is one level of a value-weighted hierarchy. Leaf weight sits in
// Value; internal nodes may carry their own weight on top of their
// children.
type Node struct {
	Name     string
	Value    float64
	Children []*Node
}

// Sum returns the node's value plus the sums of all children.
func (n *Node) Sum() float64 {
	if n == nil {
		return 0
	}
	total := n.Value
	for _, c := range n.Children {
		total += c.Sum()
	}
	return total
}

// Height returns the number of levels below and including the node.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, c := range n.Children {
		if h := c.Height(); h > deepest {
			deepest = h
		}
	}
	return deepest + 1
}

// Arc is one node of a partitioned hierarchy flattened to an angular
// sweep. Angles are radians growing clockwise from twelve o'clock, with
// the root covering the full circle at depth 0.
type Arc struct {
	Name       string
	Depth      int
	Start, End float64
	Value      float64
}

// Partition flattens the tree into arcs, walking depth-first and
// allocating each child a sweep proportional to its subtree sum within
// the parent's sweep. Sibling order is preserved. Children of a
// zero-sum parent split the sweep evenly so degenerate trees still
// render.
func Partition(root *Node) []Arc {
	if root == nil {
		return nil
	}
	var out []Arc
	var walk func(n *Node, depth int, start, end float64)
	walk = func(n *Node, depth int, start, end float64) {
		out = append(out, Arc{Name: n.Name, Depth: depth, Start: start, End: end, Value: n.Sum()})
		if len(n.Children) == 0 {
			return
		}
		var total float64
		for _, c := range n.Children {
			total += c.Sum()
		}
		cursor := start
		for i, c := range n.Children {
			var sweep float64
			if total > 0 {
				sweep = (end - start) * c.Sum() / total
			} else {
				sweep = (end - start) / float64(len(n.Children))
			}
			next := cursor + sweep
			if i == len(n.Children)-1 {
				next = end
			}
			walk(c, depth+1, cursor, next)
			cursor = next
		}
	}
	walk(root, 0, 0, 2*math.Pi)
	return out
}
