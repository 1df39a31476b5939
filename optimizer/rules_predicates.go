package optimizer

import (
	"strings"

	"github.com/brindlecode/sqlforge/ast"
)

// normalizePredicates drives a predicate toward conjunctive normal
// form: De Morgan's laws push NOT down through AND/OR so every
// negation ends up directly against a comparison, then each AND/OR
// chain is flattened into a flat operand sequence, deduplicated,
// checked for a direct contradiction, and rebuilt as a right-leaning
// binary tree. OR is not distributed over AND, so the result is not
// necessarily in conjunctive normal form.
func normalizePredicates(stmt ast.Statement, _ Context) ast.Statement {
	out := ast.Transform(stmt, normalizePredicateNode)
	s, _ := out.(ast.Statement)
	if s == nil {
		return stmt
	}
	return s
}

func normalizePredicateNode(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.Unary:
		if v.Op != ast.OpNot {
			return n
		}
		operand := v.Operand
		if paren, ok := operand.(*ast.Paren); ok {
			operand = paren.Expr
		}
		b, ok := operand.(*ast.Binary)
		if !ok {
			return n
		}
		switch b.Op {
		case ast.OpAnd:
			return &ast.Binary{Op: ast.OpOr,
				Left:  &ast.Unary{Op: ast.OpNot, Operand: b.Left},
				Right: &ast.Unary{Op: ast.OpNot, Operand: b.Right}}
		case ast.OpOr:
			return &ast.Binary{Op: ast.OpAnd,
				Left:  &ast.Unary{Op: ast.OpNot, Operand: b.Left},
				Right: &ast.Unary{Op: ast.OpNot, Operand: b.Right}}
		}
	case *ast.Binary:
		if v.Op == ast.OpAnd || v.Op == ast.OpOr {
			return rebuildFlatPredicate(v)
		}
	}
	return n
}

// rebuildFlatPredicate flattens b's operand chain (every nested
// Binary sharing b's operator), drops duplicate operands, collapses
// an AND chain containing both x and NOT x to FALSE, and rebuilds
// what's left as a right-leaning tree of the same operator.
func rebuildFlatPredicate(b *ast.Binary) ast.Node {
	operands := dedupOperands(flattenSameOp(b, b.Op))
	if b.Op == ast.OpAnd && hasContradiction(operands) {
		return boolLiteralNode(false)
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return rebuildRightLeaning(b.Op, operands)
}

// flattenSameOp flattens a chain of Binary nodes all sharing op into
// its leaf operands, left to right. A Paren wrapping a same-op Binary
// is transparent (associativity makes it redundant); a Paren wrapping
// anything else is kept intact, since it may be load-bearing for
// precedence against a different surrounding operator.
func flattenSameOp(e ast.Expression, op ast.BinOp) []ast.Expression {
	if p, ok := e.(*ast.Paren); ok {
		if b, ok := p.Expr.(*ast.Binary); ok && b.Op == op {
			return flattenSameOp(b, op)
		}
		return []ast.Expression{e}
	}
	if b, ok := e.(*ast.Binary); ok && b.Op == op {
		return append(flattenSameOp(b.Left, op), flattenSameOp(b.Right, op)...)
	}
	return []ast.Expression{e}
}

// dedupOperands drops later operands that are structurally identical
// to an earlier one, preserving first-occurrence order.
func dedupOperands(operands []ast.Expression) []ast.Expression {
	out := make([]ast.Expression, 0, len(operands))
	for _, o := range operands {
		dup := false
		for _, seen := range out {
			if nodesEqual(o, seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, o)
		}
	}
	return out
}

// hasContradiction reports whether operands contains some x alongside
// a NOT x, which makes the whole AND chain unsatisfiable.
func hasContradiction(operands []ast.Expression) bool {
	for i, a := range operands {
		for j, b := range operands {
			if i != j && isNegationOf(a, b) {
				return true
			}
		}
	}
	return false
}

func isNegationOf(a, b ast.Expression) bool {
	u, ok := a.(*ast.Unary)
	return ok && u.Op == ast.OpNot && nodesEqual(u.Operand, b)
}

// rebuildRightLeaning folds operands into a right-leaning chain of op:
// operands[0] op (operands[1] op (... op operands[n-1])).
func rebuildRightLeaning(op ast.BinOp, operands []ast.Expression) ast.Expression {
	if len(operands) == 0 {
		return nil
	}
	expr := operands[len(operands)-1]
	for i := len(operands) - 2; i >= 0; i-- {
		expr = &ast.Binary{Op: op, Left: operands[i], Right: expr}
	}
	return expr
}

// pushdownPredicates moves a WHERE conjunct into a FROM-position
// derived table's own WHERE clause when the conjunct references at
// least one column and every column it references is qualified by
// that derived table's alias — the
// conjunct can only ever affect that subquery's rows, so evaluating it
// there (and not again outside) preserves semantics while letting the
// subquery produce fewer rows for whatever joins follow.
func pushdownPredicates(stmt ast.Statement, ctx Context) ast.Statement {
	out := ast.Transform(stmt, func(n ast.Node) ast.Node {
		sel, ok := n.(*ast.Select)
		if !ok || sel.Where == nil {
			return n
		}
		aliased, ok := sel.From.(*ast.AliasedTableExpr)
		if !ok {
			return n
		}
		sub, ok := aliased.Expr.(*ast.Subquery)
		if !ok || aliased.Alias == "" {
			return n
		}
		conjuncts := splitConjuncts(sel.Where)
		var kept, pushed []ast.Expression
		for _, c := range conjuncts {
			if referencesOnlyAlias(c, aliased.Alias) {
				pushed = append(pushed, c)
			} else {
				kept = append(kept, c)
			}
		}
		if len(pushed) == 0 {
			return n
		}
		newInner := *sub.Select
		newInner.Where = conjoin(append(splitConjuncts(newInner.Where), stripAlias(pushed, aliased.Alias)...))
		newSel := *sel
		newSel.From = &ast.AliasedTableExpr{
			Expr:  &ast.Subquery{Select: &newInner},
			Alias: aliased.Alias,
			Hints: aliased.Hints,
		}
		newSel.Where = conjoin(kept)
		return &newSel
	})
	s, _ := out.(ast.Statement)
	if s == nil {
		return stmt
	}
	return s
}

// splitConjuncts flattens a top-level AND chain into its operands. A
// nil expr yields nil.
func splitConjuncts(e ast.Expression) []ast.Expression {
	if e == nil {
		return nil
	}
	if b, ok := e.(*ast.Binary); ok && b.Op == ast.OpAnd {
		return append(splitConjuncts(b.Left), splitConjuncts(b.Right)...)
	}
	return []ast.Expression{e}
}

// conjoin rebuilds an AND chain from parts, or returns nil for an
// empty slice.
func conjoin(parts []ast.Expression) ast.Expression {
	if len(parts) == 0 {
		return nil
	}
	expr := parts[0]
	for _, p := range parts[1:] {
		expr = &ast.Binary{Op: ast.OpAnd, Left: expr, Right: p}
	}
	return expr
}

// referencesOnlyAlias reports whether e references at least one column
// and every column reference inside it is qualified with the given
// alias (e.g. "t.id" for alias "t"). Unqualified references,
// references to any other alias, and a conjunct with no column
// reference at all disqualify the conjunct from being pushed.
func referencesOnlyAlias(e ast.Expression, alias string) bool {
	only, seen := true, false
	ast.Walk(e, func(n ast.Node) bool {
		col, ok := n.(*ast.ColName)
		if !ok {
			return true
		}
		seen = true
		if len(col.Parts) < 2 || col.Parts[0] != alias {
			only = false
		}
		return true
	})
	return only && seen
}

// stripAlias drops the alias qualifier from every column reference in
// exprs, so a conjunct pushed into alias's own subquery refers to its
// columns unqualified the way that subquery's own WHERE clause would.
func stripAlias(exprs []ast.Expression, alias string) []ast.Expression {
	out := make([]ast.Expression, len(exprs))
	for i, e := range exprs {
		rewritten := ast.Transform(e, func(n ast.Node) ast.Node {
			col, ok := n.(*ast.ColName)
			if !ok || len(col.Parts) < 2 || col.Parts[0] != alias {
				return n
			}
			return &ast.ColName{Parts: col.Parts[1:]}
		})
		out[i], _ = rewritten.(ast.Expression)
		if out[i] == nil {
			out[i] = e
		}
	}
	return out
}

// qualifiedName joins a dotted column reference back into "a.b.c" form.
func qualifiedName(parts []string) string {
	return strings.Join(parts, ".")
}
