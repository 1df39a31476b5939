package optimizer

import (
	"math"
	"strconv"

	"github.com/brindlecode/sqlforge/ast"
)

// simplify folds constant arithmetic, boolean tautologies/
// contradictions, NULL-propagating boolean combinations, and redundant
// parens/double negation. Every rewrite here preserves semantics
// regardless of dialect or catalog, so the rule never needs ctx.
func simplify(stmt ast.Statement, _ Context) ast.Statement {
	out := ast.Transform(stmt, simplifyNode)
	s, _ := out.(ast.Statement)
	if s == nil {
		return stmt
	}
	return s
}

func simplifyNode(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.Paren:
		switch v.Expr.(type) {
		case *ast.Literal, *ast.ColName, *ast.Parameter, *ast.Star:
			return v.Expr
		}
	case *ast.Unary:
		if v.Op == ast.OpNot {
			if inner, ok := v.Operand.(*ast.Unary); ok && inner.Op == ast.OpNot {
				return inner.Operand
			}
			if bv, ok := boolLiteral(v.Operand); ok {
				return boolLiteralNode(!bv)
			}
		}
	case *ast.Binary:
		if folded := foldArithmetic(v); folded != nil {
			return folded
		}
		if folded := simplifyBoolBinary(v); folded != nil {
			return folded
		}
		if folded := simplifyNullBinary(v); folded != nil {
			return folded
		}
		if nodesEqual(v.Left, v.Right) && (v.Op == ast.OpAnd || v.Op == ast.OpOr) {
			return v.Left
		}
	}
	return n
}

func simplifyBoolBinary(b *ast.Binary) ast.Node {
	if b.Op != ast.OpAnd && b.Op != ast.OpOr {
		return nil
	}
	lv, lok := boolLiteral(b.Left)
	rv, rok := boolLiteral(b.Right)
	switch {
	case b.Op == ast.OpAnd && lok && !lv, b.Op == ast.OpAnd && rok && !rv:
		return boolLiteralNode(false)
	case b.Op == ast.OpOr && lok && lv, b.Op == ast.OpOr && rok && rv:
		return boolLiteralNode(true)
	case b.Op == ast.OpAnd && lok && lv:
		return b.Right
	case b.Op == ast.OpAnd && rok && rv:
		return b.Left
	case b.Op == ast.OpOr && lok && !lv:
		return b.Right
	case b.Op == ast.OpOr && rok && !rv:
		return b.Left
	}
	return nil
}

// simplifyNullBinary implements the two NULL combinations the
// three-valued truth table pins down unconditionally; every other
// NULL/AND/OR combination is itself NULL or depends on what the other
// operand evaluates to at runtime, so it is left intact.
func simplifyNullBinary(b *ast.Binary) ast.Node {
	if b.Op != ast.OpAnd && b.Op != ast.OpOr {
		return nil
	}
	lNull, rNull := nullLiteral(b.Left), nullLiteral(b.Right)
	if !lNull && !rNull {
		return nil
	}
	other := b.Right
	if rNull {
		other = b.Left
	}
	ov, ook := boolLiteral(other)
	if !ook {
		return nil
	}
	switch {
	case b.Op == ast.OpAnd && !ov:
		return boolLiteralNode(false)
	case b.Op == ast.OpOr && ov:
		return boolLiteralNode(true)
	}
	return nil
}

// foldArithmetic constant-folds Add/Sub/Mul/Div/Mod when both operands
// are numeric literals. Division and modulo by a literal zero are left
// unfolded, since the correct error/NULL behavior for that is dialect-
// and context-dependent. The result is rendered as an integer literal
// only when both operands were integers, the operator wasn't division,
// and the mathematical result happens to be whole — otherwise it comes
// out as a float literal.
func foldArithmetic(b *ast.Binary) ast.Node {
	if !isArithmeticOp(b.Op) {
		return nil
	}
	lv, lInt, lok := numericLiteral(b.Left)
	rv, rInt, rok := numericLiteral(b.Right)
	if !lok || !rok {
		return nil
	}
	if (b.Op == ast.OpDiv || b.Op == ast.OpMod) && rv == 0 {
		return nil
	}

	var result float64
	switch b.Op {
	case ast.OpAdd:
		result = lv + rv
	case ast.OpSub:
		result = lv - rv
	case ast.OpMul:
		result = lv * rv
	case ast.OpDiv:
		result = lv / rv
	case ast.OpMod:
		result = math.Mod(lv, rv)
	}

	if lInt && rInt && b.Op != ast.OpDiv && result == math.Trunc(result) {
		return &ast.Literal{LitKind: ast.LiteralInt, Value: strconv.FormatInt(int64(result), 10)}
	}
	return &ast.Literal{LitKind: ast.LiteralFloat, Value: strconv.FormatFloat(result, 'g', -1, 64)}
}

func isArithmeticOp(op ast.BinOp) bool {
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return true
	}
	return false
}

// numericLiteral reports e's value as a float64 if it is an integer or
// floating-point literal, along with whether it was an integer literal.
func numericLiteral(e ast.Expression) (value float64, isInt bool, ok bool) {
	lit, isLit := e.(*ast.Literal)
	if !isLit {
		return 0, false, false
	}
	switch lit.LitKind {
	case ast.LiteralInt:
		n, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			return 0, false, false
		}
		return float64(n), true, true
	case ast.LiteralFloat:
		f, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return 0, false, false
		}
		return f, false, true
	}
	return 0, false, false
}

func nullLiteral(e ast.Expression) bool {
	lit, ok := e.(*ast.Literal)
	return ok && lit.LitKind == ast.LiteralNull
}

func boolLiteral(e ast.Expression) (value bool, ok bool) {
	lit, isLit := e.(*ast.Literal)
	if !isLit || lit.LitKind != ast.LiteralBool {
		return false, false
	}
	return lit.Value == "true", true
}

func boolLiteralNode(v bool) *ast.Literal {
	if v {
		return &ast.Literal{LitKind: ast.LiteralBool, Value: "true"}
	}
	return &ast.Literal{LitKind: ast.LiteralBool, Value: "false"}
}
