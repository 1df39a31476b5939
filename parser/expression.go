package parser

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/token"
)

// Operator precedence, low to high. parseExprPrec parses a chain of
// binary operators with an explicit operand/operator stack instead of
// recursing on itself for the right-hand side of every operator, so a
// long flat chain (a+a+a+...) costs one Go stack frame regardless of
// how many operators it contains.
const (
	precLowest = iota
	precOr
	precXor
	precAnd
	precNot
	precComparison
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precAdditive
	precMultiply
	precUnary
	precCollate
	precHighest
)

func precedence(t token.Token) int {
	switch t {
	case token.OR:
		return precOr
	case token.XOR:
		return precXor
	case token.AND:
		return precAnd
	case token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE:
		return precComparison
	case token.BITOR:
		return precBitOr
	case token.BITXOR:
		return precBitXor
	case token.BITAND:
		return precBitAnd
	case token.LSHIFT, token.RSHIFT:
		return precShift
	case token.PLUS, token.MINUS:
		return precAdditive
	case token.ASTERISK, token.SLASH, token.PERCENT, token.CONCAT:
		return precMultiply
	default:
		return precLowest
	}
}

func isBinaryOp(t token.Token) bool {
	switch t {
	case token.OR, token.XOR, token.AND,
		token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE,
		token.BITOR, token.BITXOR, token.BITAND, token.LSHIFT, token.RSHIFT,
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT, token.CONCAT:
		return true
	default:
		return false
	}
}

func tokenToBinOp(t token.Token) ast.BinOp {
	switch t {
	case token.OR:
		return ast.OpOr
	case token.XOR:
		return ast.OpXor
	case token.AND:
		return ast.OpAnd
	case token.EQ:
		return ast.OpEq
	case token.NEQ:
		return ast.OpNeq
	case token.LT:
		return ast.OpLt
	case token.GT:
		return ast.OpGt
	case token.LTE:
		return ast.OpLte
	case token.GTE:
		return ast.OpGte
	case token.PLUS:
		return ast.OpAdd
	case token.MINUS:
		return ast.OpSub
	case token.ASTERISK:
		return ast.OpMul
	case token.SLASH:
		return ast.OpDiv
	case token.PERCENT:
		return ast.OpMod
	case token.CONCAT:
		return ast.OpConcat
	case token.BITOR:
		return ast.OpBitOr
	case token.BITXOR:
		return ast.OpBitXor
	case token.BITAND:
		return ast.OpBitAnd
	case token.LSHIFT:
		return ast.OpLShift
	case token.RSHIFT:
		return ast.OpRShift
	default:
		return ast.OpAdd
	}
}

func (p *Parser) parseExpr() ast.Expression {
	return p.parseExprPrec(precLowest)
}

// pendingOp is one binary operator on parseExprPrec's operator stack,
// awaiting a right operand and any tighter-binding operators after it.
type pendingOp struct {
	op   ast.BinOp
	prec int
}

func (p *Parser) parseExprPrec(minPrec int) ast.Expression {
	operand := p.parsePrimaryExpr()
	if isNilExpr(operand) {
		return operand
	}
	operands := []ast.Expression{operand}
	var ops []pendingOp

	for {
		// NOT-prefixed predicates (NOT IN, NOT BETWEEN, NOT LIKE) bind at
		// the same precedence as their non-negated form.
		not := false
		level := precComparison
		kind := p.cur.Type
		if p.curIs(token.NOT) {
			switch p.peek().Type {
			case token.IN, token.BETWEEN, token.LIKE, token.ILIKE_KW, token.SIMILAR_KW:
				if precNot < minPrec {
					return finishExpr(operands, ops)
				}
				not = true
				level = precNot
				kind = p.peek().Type
			default:
				return finishExpr(operands, ops)
			}
		}

		switch kind {
		case token.IS, token.IN, token.BETWEEN, token.LIKE, token.ILIKE_KW, token.SIMILAR_KW:
			if level < minPrec {
				return finishExpr(operands, ops)
			}
			reducePending(&operands, &ops, level)
			if not {
				p.advance() // consume NOT
			}
			top := operands[len(operands)-1]
			switch kind {
			case token.IS:
				operands[len(operands)-1] = p.parseIsExpr(top)
			case token.IN:
				operands[len(operands)-1] = p.parseInExpr(top, not)
			case token.BETWEEN:
				operands[len(operands)-1] = p.parseBetweenExpr(top, not)
			case token.LIKE, token.ILIKE_KW:
				operands[len(operands)-1] = p.parseLikeExpr(top, not)
			case token.SIMILAR_KW:
				operands[len(operands)-1] = p.parseSimilarExpr(top, not)
			}
			continue
		case token.COLLATE:
			if precCollate < minPrec {
				return finishExpr(operands, ops)
			}
			reducePending(&operands, &ops, precCollate)
			operands[len(operands)-1] = p.parseCollateExpr(operands[len(operands)-1])
			continue
		case token.DCOLON:
			if precHighest < minPrec {
				return finishExpr(operands, ops)
			}
			reducePending(&operands, &ops, precHighest)
			operands[len(operands)-1] = p.parsePostgresCast(operands[len(operands)-1])
			continue
		case token.LBRACKET:
			if precHighest < minPrec {
				return finishExpr(operands, ops)
			}
			reducePending(&operands, &ops, precHighest)
			operands[len(operands)-1] = p.parseSubscript(operands[len(operands)-1])
			continue
		}

		if !isBinaryOp(p.cur.Type) {
			return finishExpr(operands, ops)
		}
		prec := precedence(p.cur.Type)
		if prec < minPrec {
			return finishExpr(operands, ops)
		}

		op := tokenToBinOp(p.cur.Type)
		p.advance()
		reducePending(&operands, &ops, prec)

		right := p.parsePrimaryExpr()
		operands = append(operands, right)
		ops = append(ops, pendingOp{op: op, prec: prec})
		if isNilExpr(right) {
			return finishExpr(operands, ops)
		}
	}
}

// reducePending collapses operators on top of ops whose precedence is
// at least level into their combined Binary node, left to right, so
// that a looser-binding construct (a lower-precedence operator, or a
// postfix form like IS/BETWEEN/COLLATE/::) sees a fully-built operand
// rather than a partially-reduced chain.
func reducePending(operands *[]ast.Expression, ops *[]pendingOp, level int) {
	for len(*ops) > 0 && (*ops)[len(*ops)-1].prec >= level {
		reduceTop(operands, ops)
	}
}

// reduceTop pops the top pending operator and its two operands,
// combines them into a single Binary node, and pushes the result back
// as the new top operand.
func reduceTop(operands *[]ast.Expression, ops *[]pendingOp) {
	n := len(*ops)
	top := (*ops)[n-1]
	*ops = (*ops)[:n-1]

	o := len(*operands)
	right, left := (*operands)[o-1], (*operands)[o-2]
	*operands = (*operands)[:o-2]
	*operands = append(*operands, &ast.Binary{Op: top.op, Left: left, Right: right})
}

// finishExpr reduces every remaining pending operator and returns the
// single expression left on the operand stack.
func finishExpr(operands []ast.Expression, ops []pendingOp) ast.Expression {
	for len(ops) > 0 {
		reduceTop(&operands, &ops)
	}
	return operands[0]
}

func (p *Parser) parsePrimaryExpr() ast.Expression {
	switch p.cur.Type {
	case token.INT:
		return p.parseLiteral(ast.LiteralInt)
	case token.FLOAT:
		return p.parseLiteral(ast.LiteralFloat)
	case token.STRING:
		return p.parseLiteral(ast.LiteralString)
	case token.BLOB:
		return p.parseLiteral(ast.LiteralBlob)
	case token.NULL:
		p.advance()
		return &ast.Literal{LitKind: ast.LiteralNull}
	case token.TRUE:
		p.advance()
		return &ast.Literal{LitKind: ast.LiteralBool, Value: "true"}
	case token.FALSE:
		p.advance()
		return &ast.Literal{LitKind: ast.LiteralBool, Value: "false"}
	case token.DEFAULT:
		p.advance()
		return &ast.Literal{LitKind: ast.LiteralNull, Value: "DEFAULT"}
	case token.PARAM:
		return p.parseParam()
	case token.LPAREN:
		return p.parseParenOrSubquery()
	case token.NOT:
		return p.parseNotExpr()
	case token.MINUS:
		return p.parseUnaryMinus()
	case token.PLUS:
		p.advance()
		return p.parseExprPrec(precUnary)
	case token.BITNOT:
		return p.parseUnaryBitnot()
	case token.EXISTS:
		return p.parseExistsExpr()
	case token.CASE:
		return p.parseCaseExpr()
	case token.CAST:
		return p.parseCastExpr()
	case token.INTERVAL:
		return p.parseIntervalExpr()
	case token.EXTRACT:
		return p.parseExtractExpr()
	case token.TRIM:
		return p.parseTrimExpr()
	case token.SUBSTRING:
		return p.parseSubstringExpr()
	case token.POSITION:
		return p.parsePositionExpr()
	case token.ARRAY:
		return p.parseArrayExpr()
	case token.ASTERISK:
		p.advance()
		return &ast.Star{}
	default:
		if p.curIsIdent() {
			return p.parseIdentifierOrFunc()
		}
		p.errorf("unexpected token %v in expression", p.cur.Type)
		p.advance()
		return nil
	}
}

func (p *Parser) parseLiteral(litKind ast.LiteralKind) *ast.Literal {
	lit := &ast.Literal{LitKind: litKind, Value: p.cur.Value}
	p.advance()
	return lit
}

func (p *Parser) parseIdentifierOrFunc() ast.Expression {
	parts := []string{p.curIdentValue()}
	p.advance()

	for p.curIs(token.DOT) {
		p.advance()
		if p.curIs(token.ASTERISK) {
			p.advance()
			return &ast.Star{Qualifier: parts[len(parts)-1]}
		}
		if !p.curIsIdent() {
			p.errorf("expected identifier after '.'")
			return &ast.ColName{Parts: parts}
		}
		parts = append(parts, p.curIdentValue())
		p.advance()
	}

	if p.curIs(token.LPAREN) {
		return p.parseFuncCall(parts[len(parts)-1])
	}

	return &ast.ColName{Parts: parts}
}

func (p *Parser) parseFuncCall(name string) *ast.Func {
	p.advance() // consume '('

	fn := &ast.Func{Name: name}

	if p.curIs(token.DISTINCT) {
		fn.Distinct = true
		p.advance()
	}

	if p.curIs(token.ASTERISK) {
		p.advance()
		fn.Args_ = append(fn.Args_, &ast.Star{})
	} else {
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
			if p.curIs(token.ORDER) {
				break
			}
			arg := p.parseExpr()
			if arg == nil {
				break
			}
			fn.Args_ = append(fn.Args_, arg)
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}

	if p.curIs(token.ORDER) {
		fn.OrderBy = p.parseOrderBy()
	}

	p.expect(token.RPAREN)

	if p.curIs(token.FILTER) {
		p.advance()
		p.expect(token.LPAREN)
		p.expect(token.WHERE)
		fn.Filter = p.parseExpr()
		p.expect(token.RPAREN)
	}

	if p.curIs(token.OVER) {
		p.advance()
		fn.Over = p.parseWindowSpec()
	}

	return fn
}

func (p *Parser) parseWindowSpec() *ast.WindowSpec {
	spec := &ast.WindowSpec{}

	if p.curIs(token.IDENT) {
		spec.Name = p.cur.Value
		p.advance()
		return spec
	}

	if !p.expect(token.LPAREN) {
		return spec
	}

	if p.curIs(token.IDENT) {
		spec.Name = p.cur.Value
		p.advance()
	}

	if p.curIs(token.PARTITION) {
		p.advance()
		p.expect(token.BY)
		spec.PartitionBy = p.parseExprList()
	}

	if p.curIs(token.ORDER) {
		p.advance()
		p.expect(token.BY)
		for {
			expr := p.parseExpr()
			if expr == nil {
				break
			}
			item := &ast.OrderBy{Expr: expr}
			if p.curIs(token.DESC) {
				item.Desc = true
				p.advance()
			} else if p.curIs(token.ASC) {
				p.advance()
			}
			spec.OrderBy = append(spec.OrderBy, item)
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}

	if p.curIs(token.ROWS) || p.curIs(token.RANGE) || p.curIs(token.GROUPS) {
		spec.Frame = p.parseWindowFrame()
	}

	p.expect(token.RPAREN)
	return spec
}

func (p *Parser) parseWindowFrame() *ast.WindowFrame {
	frame := &ast.WindowFrame{}
	switch p.cur.Type {
	case token.ROWS:
		frame.FrameKind = ast.FrameRows
	case token.RANGE:
		frame.FrameKind = ast.FrameRange
	case token.GROUPS:
		frame.FrameKind = ast.FrameGroups
	}
	p.advance()

	if p.curIs(token.BETWEEN) {
		p.advance()
		frame.Start = p.parseFrameBound()
		p.expect(token.AND)
		frame.End = p.parseFrameBound()
	} else {
		frame.Start = p.parseFrameBound()
	}
	return frame
}

func (p *Parser) parseFrameBound() *ast.FrameBound {
	if p.curIs(token.CURRENT) {
		p.advance()
		p.expect(token.ROW)
		return &ast.FrameBound{BoundKind: ast.BoundCurrentRow}
	}
	if p.curIs(token.UNBOUNDED) {
		p.advance()
		if p.curIs(token.PRECEDING) {
			p.advance()
			return &ast.FrameBound{BoundKind: ast.BoundUnboundedPreceding}
		}
		p.expect(token.FOLLOWING)
		return &ast.FrameBound{BoundKind: ast.BoundUnboundedFollowing}
	}

	offset := p.parseExpr()
	if p.curIs(token.PRECEDING) {
		p.advance()
		return &ast.FrameBound{BoundKind: ast.BoundPreceding, Offset: offset}
	}
	p.expect(token.FOLLOWING)
	return &ast.FrameBound{BoundKind: ast.BoundFollowing, Offset: offset}
}

// parseParam handles every placeholder spelling this module
// recognizes: bare '?', PostgreSQL '$1', named ':name', and MySQL
// user-variable-shaped '@name'.
func (p *Parser) parseParam() ast.Expression {
	val := p.cur.Value
	p.advance()

	if val == "?" {
		return &ast.Parameter{Style: ast.ParamQuestion}
	}
	if strings.HasPrefix(val, "$") {
		n, _ := strconv.Atoi(strings.TrimPrefix(val, "$"))
		return &ast.Parameter{Style: ast.ParamDollar, Index: n}
	}
	if strings.HasPrefix(val, ":") {
		return &ast.Parameter{Style: ast.ParamColon, Name: strings.TrimPrefix(val, ":")}
	}
	if strings.HasPrefix(val, "@") {
		return &ast.Parameter{Style: ast.ParamAt, Name: strings.TrimPrefix(val, "@")}
	}
	return &ast.Parameter{Style: ast.ParamQuestion}
}

func (p *Parser) parseExistsExpr() ast.Expression {
	not := false
	if p.curIs(token.NOT) {
		not = true
		p.advance()
	}
	p.expect(token.EXISTS)
	p.expect(token.LPAREN)
	sel := p.parseSelectOrWith()
	p.expect(token.RPAREN)
	return &ast.Exists{Not: not, Subquery: &ast.Subquery{Select: sel}}
}

func (p *Parser) parseCaseExpr() ast.Expression {
	p.advance() // consume CASE

	c := &ast.Case{}
	if !p.curIs(token.WHEN) {
		c.Operand = p.parseExpr()
	}

	for p.curIs(token.WHEN) {
		p.advance()
		cond := p.parseExpr()
		p.expect(token.THEN)
		result := p.parseExpr()
		c.Whens = append(c.Whens, &ast.When{Cond: cond, Result: result})
	}

	if p.curIs(token.ELSE) {
		p.advance()
		c.Else = p.parseExpr()
	}

	p.expect(token.END)
	return c
}

func (p *Parser) parseCastExpr() ast.Expression {
	p.advance() // consume CAST
	p.expect(token.LPAREN)
	expr := p.parseExpr()
	p.expect(token.AS)
	dt := p.parseDataType()
	p.expect(token.RPAREN)
	return &ast.Cast{Expr: expr, Type: dt}
}

func (p *Parser) parsePostgresCast(left ast.Expression) ast.Expression {
	p.advance() // consume '::'
	dt := p.parseDataType()
	return &ast.Cast{Expr: left, Type: dt, IsShorthand: true}
}

func (p *Parser) parseIntervalExpr() ast.Expression {
	p.advance() // consume INTERVAL
	iv := &ast.Interval{}
	iv.Value = p.parseExpr()

	if p.curIsIdent() {
		iv.Unit = p.curIdentValue()
		p.advance()
	}
	return iv
}

func (p *Parser) parseExtractExpr() ast.Expression {
	p.advance() // consume EXTRACT
	p.expect(token.LPAREN)

	field := ""
	if p.curIsIdent() {
		field = p.curIdentValue()
		p.advance()
	}
	p.expect(token.FROM)
	source := p.parseExpr()
	p.expect(token.RPAREN)
	return &ast.Extract{Field: field, Source: source}
}

func (p *Parser) parseTrimExpr() ast.Expression {
	p.advance() // consume TRIM
	p.expect(token.LPAREN)

	tr := &ast.Trim{}
	switch p.cur.Type {
	case token.LEADING:
		tr.TrimKind = ast.TrimLeading
		p.advance()
	case token.TRAILING:
		tr.TrimKind = ast.TrimTrailing
		p.advance()
	case token.BOTH:
		p.advance()
	}

	if !p.curIs(token.FROM) && !p.curIs(token.RPAREN) {
		expr := p.parseExpr()
		if p.curIs(token.FROM) {
			tr.TrimChars = expr
		} else {
			tr.Expr = expr
			p.expect(token.RPAREN)
			return tr
		}
	}

	if p.curIs(token.FROM) {
		p.advance()
		tr.Expr = p.parseExpr()
	}

	p.expect(token.RPAREN)
	return tr
}

func (p *Parser) parseSubstringExpr() ast.Expression {
	p.advance() // consume SUBSTRING
	p.expect(token.LPAREN)

	s := &ast.Substring{}
	s.Expr = p.parseExpr()

	if p.curIs(token.FROM) {
		p.advance()
		s.From = p.parseExpr()
	} else if p.curIs(token.COMMA) {
		p.advance()
		s.From = p.parseExpr()
	}

	if p.curIs(token.FOR) {
		p.advance()
		s.For = p.parseExpr()
	} else if p.curIs(token.COMMA) {
		p.advance()
		s.For = p.parseExpr()
	}

	p.expect(token.RPAREN)
	return s
}

func (p *Parser) parsePositionExpr() ast.Expression {
	p.advance() // consume POSITION
	p.expect(token.LPAREN)
	needle := p.parseExpr()
	p.expect(token.IN)
	haystack := p.parseExpr()
	p.expect(token.RPAREN)
	return &ast.Position{Needle: needle, Haystack: haystack}
}

func (p *Parser) parseArrayExpr() ast.Expression {
	p.advance() // consume ARRAY
	p.expect(token.LBRACKET)

	arr := &ast.Array{}
	for !p.curIs(token.RBRACKET) && !p.curIs(token.EOF) {
		arr.Elements = append(arr.Elements, p.parseExpr())
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	p.expect(token.RBRACKET)
	return arr
}

func (p *Parser) parseSubscript(left ast.Expression) ast.Expression {
	p.advance() // consume '['
	idx := p.parseExpr()
	p.expect(token.RBRACKET)
	return &ast.Subscript{Expr: left, Index: idx}
}

func (p *Parser) parseParenOrSubquery() ast.Expression {
	p.advance() // consume '('

	if p.curIs(token.SELECT) || p.curIs(token.WITH) {
		sel := p.parseSelectOrWith()
		p.expect(token.RPAREN)
		return &ast.Subquery{Select: sel}
	}

	inner := p.parseExpr()
	p.expect(token.RPAREN)
	return &ast.Paren{Expr: inner}
}

func (p *Parser) parseNotExpr() ast.Expression {
	p.advance() // consume NOT
	operand := p.parseExprPrec(precNot)
	return &ast.Unary{Op: ast.OpNot, Operand: operand}
}

func (p *Parser) parseUnaryMinus() ast.Expression {
	p.advance() // consume '-'
	operand := p.parseExprPrec(precUnary)
	return &ast.Unary{Op: ast.OpNeg, Operand: operand}
}

func (p *Parser) parseUnaryBitnot() ast.Expression {
	p.advance() // consume '~'
	operand := p.parseExprPrec(precUnary)
	return &ast.Unary{Op: ast.OpBitNot, Operand: operand}
}

func (p *Parser) parseIsExpr(left ast.Expression) ast.Expression {
	p.advance() // consume IS

	not := false
	if p.curIs(token.NOT) {
		not = true
		p.advance()
	}

	is := &ast.Is{Expr: left, Not: not}
	switch p.cur.Type {
	case token.NULL:
		is.What = ast.IsNull
		p.advance()
	case token.TRUE:
		is.What = ast.IsTrue
		p.advance()
	case token.FALSE:
		is.What = ast.IsFalse
		p.advance()
	case token.UNKNOWN:
		is.What = ast.IsUnknown
		p.advance()
	default:
		p.errorf("expected NULL, TRUE, FALSE, or UNKNOWN after IS")
	}
	return is
}

func (p *Parser) parseInExpr(left ast.Expression, not bool) ast.Expression {
	if !not && p.curIs(token.NOT) {
		p.advance()
		not = true
	}
	p.advance() // consume IN
	p.expect(token.LPAREN)

	in := &ast.In{Expr: left, Not: not}
	if p.curIs(token.SELECT) || p.curIs(token.WITH) {
		in.Select = p.parseSelectOrWith()
	} else {
		in.Values = p.parseExprList()
	}
	p.expect(token.RPAREN)
	return in
}

func (p *Parser) parseBetweenExpr(left ast.Expression, not bool) ast.Expression {
	if !not && p.curIs(token.NOT) {
		p.advance()
		not = true
	}
	p.advance() // consume BETWEEN
	low := p.parseExprPrec(precComparison + 1)
	p.expect(token.AND)
	high := p.parseExprPrec(precComparison + 1)
	return &ast.Between{Expr: left, Low: low, High: high, Not: not}
}

func (p *Parser) parseLikeExpr(left ast.Expression, not bool) ast.Expression {
	if !not && p.curIs(token.NOT) {
		p.advance()
		not = true
	}

	variant := ast.LikeOrdinary
	if p.curIs(token.ILIKE_KW) {
		variant = ast.LikeInsensitive
	}
	p.advance() // consume LIKE/ILIKE

	pattern := p.parseExprPrec(precComparison + 1)

	like := &ast.Like{Expr: left, Pattern: pattern, Not: not, Variant: variant}
	if p.curIs(token.ESCAPE) {
		p.advance()
		like.Escape = p.parseExprPrec(precComparison + 1)
	}
	return like
}

func (p *Parser) parseSimilarExpr(left ast.Expression, not bool) ast.Expression {
	if !not && p.curIs(token.NOT) {
		p.advance()
		not = true
	}
	p.advance() // consume SIMILAR
	p.expect(token.TO)

	pattern := p.parseExprPrec(precComparison + 1)
	like := &ast.Like{Expr: left, Pattern: pattern, Not: not, Variant: ast.LikeSimilarTo}
	if p.curIs(token.ESCAPE) {
		p.advance()
		like.Escape = p.parseExprPrec(precComparison + 1)
	}
	return like
}

func (p *Parser) parseCollateExpr(left ast.Expression) ast.Expression {
	p.advance() // consume COLLATE
	collation := ""
	if p.curIs(token.IDENT) || p.curIs(token.STRING) {
		collation = p.cur.Value
		p.advance()
	}
	return &ast.Collate{Expr: left, Collation: collation}
}

func (p *Parser) parseExprList() []ast.Expression {
	var exprs []ast.Expression
	for {
		expr := p.parseExpr()
		if expr == nil {
			break
		}
		exprs = append(exprs, expr)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return exprs
}

// isNilExpr reports whether e is a nil interface, or a typed-nil
// pointer boxed in one (the result of a failed sub-parse propagating
// up through code that returns a concrete *T as ast.Expression).
func isNilExpr(e ast.Expression) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
