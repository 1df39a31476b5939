package optimizer

import "github.com/brindlecode/sqlforge/ast"

// canonicalize rewrites a predicate into one canonical shape among
// several semantically equivalent ones, so downstream rules (and a
// round-trip diff against another dialect's output) see the same tree
// regardless of how the source SQL happened to phrase it: a negated
// comparison becomes its direct opposite, and a literal compared
// against a column is reordered column-first.
func canonicalize(stmt ast.Statement, _ Context) ast.Statement {
	out := ast.Transform(stmt, canonicalizeNode)
	s, _ := out.(ast.Statement)
	if s == nil {
		return stmt
	}
	return s
}

var negatedOp = map[ast.BinOp]ast.BinOp{
	ast.OpEq:  ast.OpNeq,
	ast.OpNeq: ast.OpEq,
	ast.OpLt:  ast.OpGte,
	ast.OpLte: ast.OpGt,
	ast.OpGt:  ast.OpLte,
	ast.OpGte: ast.OpLt,
}

func canonicalizeNode(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.Unary:
		if v.Op == ast.OpNot {
			operand := v.Operand
			if paren, ok := operand.(*ast.Paren); ok {
				operand = paren.Expr
			}
			if b, ok := operand.(*ast.Binary); ok {
				if flipped, ok := negatedOp[b.Op]; ok {
					return &ast.Binary{Op: flipped, Left: b.Left, Right: b.Right}
				}
			}
		}
	case *ast.Binary:
		if swapped := canonicalOperandOrder(v); swapped != nil {
			return swapped
		}
	}
	return n
}

// canonicalOperandOrder puts the "simpler" operand (a literal) on the
// right for commutative operators, so `5 = x` and `x = 5` produce the
// same tree.
func canonicalOperandOrder(b *ast.Binary) *ast.Binary {
	if !commutative(b.Op) {
		return nil
	}
	_, leftIsLit := b.Left.(*ast.Literal)
	_, rightIsLit := b.Right.(*ast.Literal)
	if leftIsLit && !rightIsLit {
		op := b.Op
		if op == ast.OpLt || op == ast.OpGt || op == ast.OpLte || op == ast.OpGte {
			op = flipComparison(op)
		}
		return &ast.Binary{Op: op, Left: b.Right, Right: b.Left}
	}
	return nil
}

func commutative(op ast.BinOp) bool {
	switch op {
	case ast.OpEq, ast.OpNeq, ast.OpAnd, ast.OpOr, ast.OpAdd, ast.OpMul,
		ast.OpLt, ast.OpGt, ast.OpLte, ast.OpGte:
		return true
	}
	return false
}

func flipComparison(op ast.BinOp) ast.BinOp {
	switch op {
	case ast.OpLt:
		return ast.OpGt
	case ast.OpGt:
		return ast.OpLt
	case ast.OpLte:
		return ast.OpGte
	case ast.OpGte:
		return ast.OpLte
	}
	return op
}
