package ast

import "reflect"

// VisitFunc is called once per node during Walk, in pre-order. Returning
// false skips that node's children (but sibling traversal continues).
type VisitFunc func(n Node) bool

// Walk visits node and every descendant reachable through Args, calling
// visit in pre-order. It has no knowledge of any concrete node type —
// it only knows the Arg shape, so adding a new node kind never requires
// touching this function.
func Walk(n Node, visit VisitFunc) {
	if n == nil || isNilNode(n) {
		return
	}
	if !visit(n) {
		return
	}
	for _, a := range n.Args() {
		switch a.Kind {
		case ArgNode:
			if a.Node != nil {
				Walk(a.Node, visit)
			}
		case ArgList:
			for _, child := range a.Nodes {
				if child != nil {
					Walk(child, visit)
				}
			}
		}
	}
}

// WalkOrder selects the traversal order WalkOrdered uses.
type WalkOrder int

const (
	// DFS visits a node before its children, same as Walk.
	DFS WalkOrder = iota
	// BFS visits every node at a given depth before any node at the
	// next depth.
	BFS
)

// WalkOrdered visits node's tree in the requested order. DFS defers to
// Walk; BFS walks a FIFO queue of pending nodes instead of recursing,
// so a node's children are only enqueued (not visited) until every
// node already queued at shallower depth has been visited first.
// Returning false from visit still prunes that node's own children —
// it just doesn't affect nodes already sitting in the queue.
func WalkOrdered(n Node, order WalkOrder, visit VisitFunc) {
	if order == DFS {
		Walk(n, visit)
		return
	}
	if n == nil || isNilNode(n) {
		return
	}
	queue := []Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == nil || isNilNode(cur) || !visit(cur) {
			continue
		}
		for _, a := range cur.Args() {
			switch a.Kind {
			case ArgNode:
				if a.Node != nil {
					queue = append(queue, a.Node)
				}
			case ArgList:
				for _, child := range a.Nodes {
					if child != nil {
						queue = append(queue, child)
					}
				}
			}
		}
	}
}

// TransformFunc is called once per node during Transform, post-order
// (children already rebuilt). It returns the replacement node, or the
// node it was given unchanged to keep it.
type TransformFunc func(n Node) Node

// Transform rebuilds node bottom-up: every child is transformed first,
// the node is rebuilt from the (possibly replaced) children via
// WithArgs, and only then is f applied to the rebuilt node. Transform
// never mutates node or any of its descendants — every node on the
// path from the root to a changed child is a freshly built value: the
// original tree remains fully intact and safe to keep using after a
// call to Transform returns a different tree.
func Transform(n Node, f TransformFunc) Node {
	if n == nil || isNilNode(n) {
		return n
	}
	args := n.Args()
	changed := false
	newArgs := make([]Arg, len(args))
	for i, a := range args {
		newArgs[i] = a
		switch a.Kind {
		case ArgNode:
			if a.Node == nil {
				continue
			}
			replaced := Transform(a.Node, f)
			if replaced != a.Node {
				newArgs[i].Node = replaced
				changed = true
			}
		case ArgList:
			newNodes := make([]Node, len(a.Nodes))
			listChanged := false
			for j, child := range a.Nodes {
				if child == nil {
					newNodes[j] = nil
					continue
				}
				replaced := Transform(child, f)
				newNodes[j] = replaced
				if replaced != child {
					listChanged = true
				}
			}
			if listChanged {
				newArgs[i].Nodes = newNodes
				changed = true
			}
		}
	}

	rebuilt := n
	if changed {
		rebuilt = n.WithArgs(newArgs)
	}
	return f(rebuilt)
}

// isNilNode reports whether n is a typed nil pointer boxed in the Node
// interface (e.g. a (*Binary)(nil) returned from a failed parse path).
// Args()/Kind() would panic on such a value, so Walk/Transform treat it
// as an absent node rather than calling into it. Grounded on the
// teacher's own reflection-based nil check in ast/pool.go and
// parser/expression.go's isNilExpr.
func isNilNode(n Node) bool {
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
