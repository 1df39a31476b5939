package optimizer

import (
	"reflect"

	"github.com/brindlecode/sqlforge/ast"
)

// nodesEqual reports whether a and b are structurally identical —
// same Kind, same scalar Arg values, and recursively equal children —
// so two subtrees built from unrelated parts of the source text can be
// recognized as the same predicate (simplify's "x AND x"/"x OR x"
// collapse, normalizePredicates' duplicate-conjunct and direct-
// contradiction detection). Written generically against Kind/Args,
// the same contract Walk/Transform use, rather than a type switch.
func nodesEqual(a, b ast.Node) bool {
	aNil, bNil := isNilNode(a), isNilNode(b)
	if aNil || bNil {
		return aNil == bNil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	aArgs, bArgs := a.Args(), b.Args()
	if len(aArgs) != len(bArgs) {
		return false
	}
	for i := range aArgs {
		x, y := aArgs[i], bArgs[i]
		if x.Kind != y.Kind {
			return false
		}
		switch x.Kind {
		case ast.ArgNode:
			if !nodesEqual(x.Node, y.Node) {
				return false
			}
		case ast.ArgList:
			if len(x.Nodes) != len(y.Nodes) {
				return false
			}
			for j := range x.Nodes {
				if !nodesEqual(x.Nodes[j], y.Nodes[j]) {
					return false
				}
			}
		case ast.ArgScalar:
			if !reflect.DeepEqual(x.Value, y.Value) {
				return false
			}
		}
	}
	return true
}

// isNilNode reports whether n is nil, or a typed nil pointer boxed in
// the Node interface. Duplicated from ast's own unexported helper
// (traverse.go) since that one isn't exported across the package
// boundary.
func isNilNode(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
