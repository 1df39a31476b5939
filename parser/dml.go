package parser

import (
	"github.com/brindlecode/sqlforge/ast"
	"github.com/brindlecode/sqlforge/token"
)

func (p *Parser) parseInsert() *ast.Insert {
	stmt := &ast.Insert{}

	if p.curIs(token.REPLACE) {
		stmt.Replace = true
		p.advance()
	} else {
		p.advance() // consume INSERT
	}

	if p.curIs(token.IGNORE) {
		stmt.Ignore = true
		p.advance()
	}

	if !p.expect(token.INTO) {
		return nil
	}

	stmt.Table = p.parseTableName()

	if p.curIs(token.LPAREN) {
		p.advance()
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
			if p.curIsIdent() {
				stmt.Columns = append(stmt.Columns, &ast.ColName{Parts: []string{p.curIdentValue()}})
				p.advance()
			}
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
		p.expect(token.RPAREN)
	}

	switch p.cur.Type {
	case token.VALUES, token.VALUE:
		p.advance()
		stmt.Values = p.parseValuesList()
	case token.SELECT, token.WITH:
		stmt.Select = p.parseSelectOrWith()
	case token.DEFAULT:
		p.advance()
		p.expect(token.VALUES)
	default:
		p.errorf("expected VALUES or SELECT in INSERT")
	}

	if p.curIs(token.ON) {
		p.advance()
		switch p.cur.Type {
		case token.DUPLICATE:
			p.advance()
			p.expect(token.KEY)
			p.expect(token.UPDATE)
			stmt.OnDuplicateUpdate = p.parseUpdateExprs()
		case token.CONFLICT:
			p.advance()
			stmt.OnConflict = p.parseOnConflict()
		}
	}

	if p.curIs(token.RETURNING) {
		p.advance()
		stmt.Returning = p.parseSelectItems()
	}
	return stmt
}

// parseSelectOrWith parses a SELECT, possibly preceded by a WITH
// clause, returning it as an *ast.Select with With attached.
func (p *Parser) parseSelectOrWith() *ast.Select {
	if p.curIs(token.WITH) {
		with := p.parseWithClause()
		sel := p.parseSelect()
		if sel != nil {
			sel.With = with
		}
		return sel
	}
	return p.parseSelect()
}

func (p *Parser) parseValuesList() [][]ast.Expression {
	var rows [][]ast.Expression
	for {
		if !p.expect(token.LPAREN) {
			break
		}
		var row []ast.Expression
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
			row = append(row, p.parseExpr())
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
		p.expect(token.RPAREN)
		rows = append(rows, row)

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return rows
}

func (p *Parser) parseOnConflict() *ast.OnConflict {
	oc := &ast.OnConflict{}

	if p.curIs(token.LPAREN) {
		oc.Columns = p.parseColumnNameList()
	}

	if p.curIs(token.WHERE) {
		p.advance()
		oc.Where = p.parseExpr()
	}

	p.expect(token.DO)
	switch p.cur.Type {
	case token.NOTHING:
		p.advance()
		oc.DoNothing = true
	case token.UPDATE:
		p.advance()
		p.expect(token.SET)
		oc.Updates = p.parseUpdateExprs()
	}
	return oc
}

func (p *Parser) parseUpdateExprs() []*ast.UpdateExpr {
	var exprs []*ast.UpdateExpr
	for {
		if !p.curIsIdent() {
			break
		}
		col := &ast.ColName{Parts: []string{p.curIdentValue()}}
		p.advance()
		for p.curIs(token.DOT) {
			p.advance()
			if p.curIsIdent() {
				col.Parts = append(col.Parts, p.curIdentValue())
				p.advance()
			}
		}

		if !p.expect(token.EQ) {
			break
		}
		exprs = append(exprs, &ast.UpdateExpr{Column: col, Expr: p.parseExpr()})

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return exprs
}

func (p *Parser) parseUpdate() *ast.Update {
	p.advance() // consume UPDATE

	stmt := &ast.Update{}
	stmt.Table = p.parseAliasedTableExpr()

	if !p.expect(token.SET) {
		return stmt
	}
	stmt.Set = p.parseUpdateExprs()

	if p.curIs(token.FROM) {
		p.advance()
		stmt.From = p.parseTableExpr()
	}

	if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr()
	}

	if p.curIs(token.ORDER) {
		stmt.OrderBy = p.parseOrderBy()
	}
	if p.curIs(token.LIMIT) {
		stmt.Limit = p.parseLimit()
	}
	if p.curIs(token.RETURNING) {
		p.advance()
		stmt.Returning = p.parseSelectItems()
	}
	return stmt
}

func (p *Parser) parseDelete() *ast.Delete {
	p.advance() // consume DELETE

	if p.curIs(token.FROM) {
		p.advance()
	}

	stmt := &ast.Delete{}
	stmt.Table = p.parseAliasedTableExpr()

	if p.curIs(token.USING) {
		p.advance()
		stmt.Using = p.parseTableExpr()
	}

	if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr()
	}

	if p.curIs(token.ORDER) {
		stmt.OrderBy = p.parseOrderBy()
	}
	if p.curIs(token.LIMIT) {
		stmt.Limit = p.parseLimit()
	}
	if p.curIs(token.RETURNING) {
		p.advance()
		stmt.Returning = p.parseSelectItems()
	}
	return stmt
}
