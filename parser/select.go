package parser

import (
	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/token"
)

func (p *Parser) parseSelect() *ast.Select {
	if !p.expect(token.SELECT) {
		return nil
	}

	stmt := &ast.Select{}

	// Skip hints like SQL_CALC_FOUND_ROWS
	for p.curIs(token.SQL_CALC_FOUND_ROWS) || p.curIs(token.SQL_SMALL_RESULT) ||
		p.curIs(token.SQL_BIG_RESULT) || p.curIs(token.SQL_BUFFER_RESULT) ||
		p.curIs(token.HIGH_PRIORITY) || p.curIs(token.STRAIGHT_JOIN) {
		p.advance()
	}

	if p.curIs(token.DISTINCT) {
		stmt.Distinct = true
		p.advance()
	} else if p.curIs(token.ALL) {
		p.advance()
	}

	stmt.Columns = p.parseSelectItems()

	if p.curIs(token.FROM) {
		p.advance()
		stmt.From = p.parseTableExpr()
	}

	if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr()
	}

	if p.curIs(token.GROUP) {
		p.advance()
		if !p.expect(token.BY) {
			return stmt
		}
		stmt.GroupBy = p.parseExprList()
	}

	if p.curIs(token.HAVING) {
		p.advance()
		stmt.Having = p.parseExpr()
	}

	if p.curIs(token.WINDOW) {
		stmt.WindowDefs = p.parseWindowDefs()
	}

	if p.curIs(token.ORDER) {
		stmt.OrderBy = p.parseOrderBy()
	}

	if p.curIs(token.LIMIT) {
		stmt.Limit = p.parseLimit()
	}

	// OFFSET without a preceding LIMIT (PostgreSQL style).
	if p.curIs(token.OFFSET) && stmt.Limit == nil {
		p.advance()
		stmt.Limit = &ast.Limit{Offset: p.parseExpr()}
	}

	// FETCH FIRST/NEXT n ROWS ONLY (SQL standard).
	if p.curIs(token.FETCH) {
		if stmt.Limit == nil {
			stmt.Limit = &ast.Limit{}
		}
		p.advance()
		if p.curIs(token.FIRST) || p.curIs(token.NEXT) {
			p.advance()
		}
		stmt.Limit.Count = p.parseExpr()
		if p.curIs(token.ROW) || p.curIs(token.ROWS) {
			p.advance()
		}
		if p.curIs(token.ONLY) {
			p.advance()
		}
	}

	if p.curIs(token.FOR) {
		stmt.Lock = p.parseLockClause()
	}

	if p.curIs(token.UNION) || p.curIs(token.INTERSECT) || p.curIs(token.EXCEPT) {
		return p.parseSetOp(stmt)
	}

	return stmt
}

func (p *Parser) parseSelectItems() []ast.SelectItem {
	var items []ast.SelectItem
	for {
		item := p.parseSelectItem()
		if item == nil {
			break
		}
		items = append(items, item)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return items
}

func (p *Parser) parseSelectItem() ast.SelectItem {
	p.skipComments()

	if p.curIs(token.ASTERISK) {
		p.advance()
		return &ast.Star{}
	}

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}
	if star, ok := expr.(*ast.Star); ok {
		return star
	}

	alias := ""
	if p.curIs(token.AS) {
		p.advance()
		if !p.curIs(token.IDENT) && !p.curIs(token.STRING) {
			p.errorf("expected alias after AS")
			return &ast.AliasedExpr{Expr: expr}
		}
		alias = p.cur.Value
		p.advance()
	} else if p.curIsIdent() && !isClauseKeyword(p.cur.Type) {
		alias = p.curIdentValue()
		p.advance()
	}

	if alias == "" {
		return &ast.AliasedExpr{Expr: expr}
	}
	return &ast.AliasedExpr{Expr: expr, Alias: alias}
}

func (p *Parser) parseAliasedTableExpr() ast.TableExpr {
	return p.parseTablePrimary()
}

func (p *Parser) parseTableExpr() ast.TableExpr {
	left := p.parseTablePrimary()
	if left == nil {
		return nil
	}

	for {
		joinType, natural, hasJoin := p.checkJoinKeyword()
		if !hasJoin {
			break
		}

		join := &ast.Join{JoinKind: joinType, Natural: natural, Left: left}

		p.consumeJoinKeywords()

		if p.curIs(token.LATERAL) {
			join.Lateral = true
			p.advance()
		}

		join.Right = p.parseTablePrimary()

		if join.JoinKind != ast.JoinCross && !natural {
			if p.curIs(token.ON) {
				p.advance()
				join.On = p.parseExpr()
			} else if p.curIs(token.USING) {
				p.advance()
				join.Using = p.parseColumnNameList()
			}
		}

		left = join
	}

	return left
}

func (p *Parser) parseTablePrimary() ast.TableExpr {
	var expr ast.TableExpr

	lateral := false
	if p.curIs(token.LATERAL) {
		lateral = true
		p.advance()
	}

	if p.curIs(token.LPAREN) {
		p.advance()
		if p.curIs(token.SELECT) || p.curIs(token.WITH) {
			sel := p.parseSelectOrWith()
			if sel == nil {
				return nil
			}
			if !p.expect(token.RPAREN) {
				return nil
			}
			expr = &ast.Subquery{Select: sel}
		} else {
			inner := p.parseTableExpr()
			if !p.expect(token.RPAREN) {
				return nil
			}
			expr = &ast.ParenTableExpr{Expr: inner}
		}
	} else if p.curIsIdent() {
		tn := p.parseTableName()
		if tn == nil {
			return nil
		}
		expr = tn
	} else if p.curIs(token.VALUES) {
		expr = p.parseValuesClause()
	} else {
		p.errorf("expected table name or subquery")
		return nil
	}

	alias := ""
	if p.curIs(token.AS) {
		p.advance()
	}
	if p.curIsIdent() && !isClauseKeyword(p.cur.Type) {
		alias = p.curIdentValue()
		p.advance()
	}

	// Column alias lists on derived tables (t(a, b)) are parsed and
	// discarded: AliasedTableExpr has no home for per-column renames.
	if p.curIs(token.LPAREN) {
		p.parseColumnNameList()
	}

	var hints []*ast.IndexHint
	for p.curIs(token.USE) || p.curIs(token.FORCE) || p.curIs(token.IGNORE) {
		hints = append(hints, p.parseIndexHint())
	}

	if lateral {
		if join, ok := expr.(*ast.Join); ok {
			join.Lateral = true
		}
	}

	if alias != "" || len(hints) > 0 {
		return &ast.AliasedTableExpr{Expr: expr, Alias: alias, Hints: hints}
	}
	return expr
}

func (p *Parser) parseValuesClause() *ast.Values {
	p.advance() // consume VALUES
	return &ast.Values{Rows: p.parseValuesList()}
}

func (p *Parser) parseIndexHint() *ast.IndexHint {
	hint := &ast.IndexHint{}

	switch p.cur.Type {
	case token.USE:
		hint.HintType = ast.HintUse
	case token.FORCE:
		hint.HintType = ast.HintForce
	case token.IGNORE:
		hint.HintType = ast.HintIgnore
	}
	p.advance()

	if p.curIs(token.INDEX) || p.curIs(token.KEY) {
		p.advance()
	}

	if p.curIs(token.FOR) {
		p.advance()
		switch p.cur.Type {
		case token.JOIN:
			hint.For = ast.HintForJoin
			p.advance()
		case token.ORDER:
			hint.For = ast.HintForOrderBy
			p.advance()
			p.expect(token.BY)
		case token.GROUP:
			hint.For = ast.HintForGroupBy
			p.advance()
			p.expect(token.BY)
		}
	}

	if p.curIs(token.LPAREN) {
		p.advance()
		for {
			if p.curIs(token.IDENT) || p.curIs(token.PRIMARY) {
				hint.Indexes = append(hint.Indexes, p.cur.Value)
				p.advance()
			} else {
				break
			}
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
		p.expect(token.RPAREN)
	}

	return hint
}

func (p *Parser) parseOrderBy() []*ast.OrderBy {
	p.advance() // consume ORDER
	if !p.expect(token.BY) {
		return nil
	}

	var items []*ast.OrderBy
	for {
		expr := p.parseExpr()
		if expr == nil {
			break
		}

		item := &ast.OrderBy{Expr: expr}

		if p.curIs(token.ASC) {
			p.advance()
		} else if p.curIs(token.DESC) {
			item.Desc = true
			p.advance()
		}

		if p.curIs(token.NULLS) {
			p.advance()
			if p.curIs(token.FIRST) {
				t := true
				item.NullsFirst = &t
				p.advance()
			} else if p.curIs(token.LAST) {
				f := false
				item.NullsFirst = &f
				p.advance()
			}
		}

		items = append(items, item)

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}

	return items
}

func (p *Parser) parseLimit() *ast.Limit {
	p.advance() // consume LIMIT

	limit := &ast.Limit{}
	limit.Count = p.parseExpr()

	if p.curIs(token.OFFSET) {
		p.advance()
		limit.Offset = p.parseExpr()
	} else if p.curIs(token.COMMA) {
		// MySQL: LIMIT offset, count
		p.advance()
		limit.Offset = limit.Count
		limit.Count = p.parseExpr()
	}

	return limit
}

func (p *Parser) parseLockClause() string {
	p.advance() // consume FOR

	var lock string
	if p.curIs(token.UPDATE) {
		lock = "UPDATE"
		p.advance()
	} else if p.curIs(token.SHARE) {
		lock = "SHARE"
		p.advance()
	}

	if p.curIs(token.NOWAIT) {
		lock += " NOWAIT"
		p.advance()
	} else if p.curIs(token.SKIP) {
		p.advance()
		if p.curIs(token.LOCKED) {
			lock += " SKIP LOCKED"
			p.advance()
		}
	}

	return lock
}

func (p *Parser) parseWindowDefs() []*ast.WindowDef {
	p.advance() // consume WINDOW

	var defs []*ast.WindowDef
	for {
		if !p.curIs(token.IDENT) {
			break
		}

		def := &ast.WindowDef{Name: p.cur.Value}
		p.advance()

		if !p.expect(token.AS) {
			break
		}

		def.Spec = p.parseWindowSpec()
		defs = append(defs, def)

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}

	return defs
}

// parseSetOp folds a chain of UNION/INTERSECT/EXCEPT into a
// left-associative tree: ((a UNION b) INTERSECT c) EXCEPT d.
func (p *Parser) parseSetOp(left *ast.Select) ast.Statement {
	var result ast.Statement = left

	for p.curIs(token.UNION) || p.curIs(token.INTERSECT) || p.curIs(token.EXCEPT) {
		var op ast.SetOpType
		switch p.cur.Type {
		case token.UNION:
			op = ast.SetUnion
		case token.INTERSECT:
			op = ast.SetIntersect
		case token.EXCEPT:
			op = ast.SetExcept
		}
		p.advance()

		all := false
		if p.curIs(token.ALL) {
			all = true
			p.advance()
		} else if p.curIs(token.DISTINCT) {
			p.advance()
		}

		var right ast.Statement
		if p.curIs(token.LPAREN) {
			right = p.parseParenthesizedStatement()
		} else {
			right = p.parseSelect()
		}

		result = &ast.SetOp{Op: op, All: all, Left: result, Right: right}
	}

	setOp := result.(*ast.SetOp)
	if p.curIs(token.ORDER) {
		setOp.OrderBy = p.parseOrderBy()
	}
	if p.curIs(token.LIMIT) {
		setOp.Limit = p.parseLimit()
	}
	return setOp
}

func (p *Parser) checkJoinKeyword() (ast.JoinType, bool, bool) {
	natural := p.curIs(token.NATURAL)

	switch p.cur.Type {
	case token.JOIN, token.INNER:
		return ast.JoinInner, natural, true
	case token.LEFT:
		return ast.JoinLeft, natural, true
	case token.RIGHT:
		return ast.JoinRight, natural, true
	case token.FULL:
		return ast.JoinFull, natural, true
	case token.CROSS:
		return ast.JoinCross, natural, true
	case token.NATURAL:
		return ast.JoinInner, true, true
	case token.STRAIGHT_JOIN:
		return ast.JoinInner, false, true
	case token.COMMA:
		return ast.JoinCross, false, true
	default:
		return 0, false, false
	}
}

func (p *Parser) consumeJoinKeywords() {
	for p.curIs(token.NATURAL) || p.curIs(token.INNER) || p.curIs(token.LEFT) ||
		p.curIs(token.RIGHT) || p.curIs(token.FULL) || p.curIs(token.OUTER) ||
		p.curIs(token.CROSS) || p.curIs(token.JOIN) || p.curIs(token.STRAIGHT_JOIN) ||
		p.curIs(token.COMMA) {
		p.advance()
	}
}

func isClauseKeyword(t token.Token) bool {
	switch t {
	case token.FROM, token.WHERE, token.GROUP, token.HAVING, token.ORDER,
		token.LIMIT, token.OFFSET, token.UNION, token.INTERSECT, token.EXCEPT,
		token.FOR, token.INTO, token.ON, token.USING, token.JOIN, token.INNER,
		token.LEFT, token.RIGHT, token.FULL, token.CROSS, token.NATURAL,
		token.AND, token.OR, token.THEN, token.ELSE, token.END, token.WHEN,
		token.AS, token.SET, token.VALUES, token.RETURNING, token.WINDOW,
		token.FETCH:
		return true
	default:
		return false
	}
}
